// Package parent finds the pathway shared by a list of events.
package parent

import (
	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Infer returns the unique pathway that contains every event, or nil.
//
// Candidates start as the pathway containers of the first event and are
// narrowed by each later event. An event with no containers means there is
// no parent, as does ending with zero or several candidates. Containers are
// typed against g, so ids that do not resolve to a pathway never qualify.
func Infer(g *domain.Graph, events []domain.Event) *domain.Pathway {
	if len(events) == 0 {
		return nil
	}
	first := events[0].Base().EventOf
	if len(first) == 0 {
		return nil
	}

	var candidates []*domain.Pathway
	for _, id := range first {
		if p, err := g.Pathway(id); err == nil && !contains(candidates, p.DBID) {
			candidates = append(candidates, p)
		}
	}

	for _, e := range events[1:] {
		eventOf := e.Base().EventOf
		if len(eventOf) == 0 {
			return nil
		}
		containers := make(map[domain.DBID]struct{}, len(eventOf))
		for _, id := range eventOf {
			if _, err := g.Pathway(id); err == nil {
				containers[id] = struct{}{}
			}
		}
		kept := candidates[:0]
		for _, p := range candidates {
			if _, ok := containers[p.DBID]; ok {
				kept = append(kept, p)
			}
		}
		candidates = kept
		if len(candidates) == 0 {
			return nil
		}
	}

	if len(candidates) != 1 {
		return nil
	}
	return candidates[0]
}

func contains(ps []*domain.Pathway, id domain.DBID) bool {
	for _, p := range ps {
		if p.DBID == id {
			return true
		}
	}
	return false
}
