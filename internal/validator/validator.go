// Package validator checks a source graph for the gaps the model builder
// would silently skip: dangling references, composite cycles and species
// without a compartment.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Issue is one problem found in the graph.
type Issue struct {
	ID      domain.DBID
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d: %s", i.ID, i.Message)
}

// ValidateGraph crawls from roots and returns every issue as a single error,
// or nil for a clean graph.
func ValidateGraph(g *domain.Graph, roots ...domain.DBID) error {
	issues := Check(g, roots...)
	if len(issues) == 0 {
		return nil
	}
	lines := make([]string, len(issues))
	for i, is := range issues {
		lines[i] = is.String()
	}
	return fmt.Errorf("found %d errors:\n- %s", len(issues), strings.Join(lines, "\n- "))
}

// Check crawls events breadth first from roots, then the entities they
// reference, and lists issues in visit order.
func Check(g *domain.Graph, roots ...domain.DBID) []Issue {
	c := &checker{
		g:        g,
		events:   make(map[domain.DBID]bool),
		entities: make(map[domain.DBID]bool),
	}

	queue := append([]domain.DBID(nil), roots...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if c.events[id] {
			continue
		}
		c.events[id] = true

		ev, ok := g.Event(id)
		if !ok {
			c.report(id, "missing event")
			continue
		}
		switch e := ev.(type) {
		case *domain.Pathway:
			for _, child := range e.HasEvent {
				if !c.events[child] {
					queue = append(queue, child)
				}
			}
		case *domain.ReactionLikeEvent:
			c.reaction(e)
		}
	}
	return c.issues
}

type checker struct {
	g        *domain.Graph
	events   map[domain.DBID]bool
	entities map[domain.DBID]bool
	issues   []Issue
}

func (c *checker) report(id domain.DBID, format string, args ...any) {
	c.issues = append(c.issues, Issue{ID: id, Message: fmt.Sprintf(format, args...)})
}

func (c *checker) reaction(r *domain.ReactionLikeEvent) {
	for _, id := range r.Input {
		c.participant(r.DBID, "input", id)
	}
	for _, id := range r.Output {
		c.participant(r.DBID, "output", id)
	}
	for _, ca := range r.CatalystActivities {
		if ca.PhysicalEntity != 0 {
			c.participant(r.DBID, "catalyst", ca.PhysicalEntity)
		}
	}
	regs := append(append([]domain.Regulation(nil), r.PositivelyRegulatedBy...), r.NegativelyRegulatedBy...)
	for _, reg := range regs {
		if _, ok := c.g.Entity(reg.Regulator); ok {
			c.participant(r.DBID, "regulator", reg.Regulator)
			continue
		}
		if _, ok := c.g.Event(reg.Regulator); !ok {
			c.report(r.DBID, "regulator %d not found", reg.Regulator)
		}
	}
}

func (c *checker) participant(reaction domain.DBID, role string, id domain.DBID) {
	if _, ok := c.g.Entity(id); !ok {
		c.report(reaction, "%s %d not found", role, id)
		return
	}
	c.entity(id, nil)
}

// entity checks id and its parts. path holds the composites being expanded.
func (c *checker) entity(id domain.DBID, path []domain.DBID) {
	for _, p := range path {
		if p == id {
			c.report(path[0], "composite cycle through %d", id)
			return
		}
	}
	if c.entities[id] {
		return
	}
	pe, ok := c.g.Entity(id)
	if !ok {
		c.report(path[len(path)-1], "part %d not found", id)
		return
	}

	base := pe.Base()
	switch {
	case len(base.Compartments) == 0:
		c.report(id, "no compartment")
	default:
		if _, ok := c.g.Compartment(base.Compartments[0]); !ok {
			c.report(id, "compartment %d not found", base.Compartments[0])
		}
	}

	path = append(path, id)
	for _, part := range domain.Children(pe) {
		c.entity(part, path)
	}
	c.entities[id] = true
}
