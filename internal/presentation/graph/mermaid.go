package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/sbmlexport/pkg/domain"
)

// GraphOverlay marks objects to highlight on the diagram.
type GraphOverlay struct {
	// Issues are ids the validator reported.
	Issues []domain.DBID
	// Focus is drawn emphasised, typically the exported root.
	Focus domain.DBID
}

// GenerateMermaid produces a Mermaid flowchart of the reaction network below root.
// It applies semantic styling:
// - Pathway: [[Subroutine]]
// - Reaction: {{Hexagon}}
// - Physical entity: (Rounded)
// Inputs flow into reactions and reactions into outputs. Catalysts are dotted,
// positive regulators are labelled "+", negative ones end in a cross.
func GenerateMermaid(g *domain.Graph, root domain.DBID, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	declared := make(map[domain.DBID]bool)
	declare := func(id domain.DBID, opener, label, closer string) {
		if declared[id] {
			return
		}
		declared[id] = true
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", nodeID(id), opener, sanitizeLabel(label), closer))
	}
	entity := func(id domain.DBID) {
		if pe, ok := g.Entity(id); ok {
			declare(id, "(", pe.Base().DisplayName, ")")
		}
	}
	edge := func(from domain.DBID, arrow string, to domain.DBID) {
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", nodeID(from), arrow, nodeID(to)))
	}

	visited := make(map[domain.DBID]bool)
	queue := []domain.DBID{root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true

		ev, ok := g.Event(id)
		if !ok {
			continue
		}
		switch e := ev.(type) {
		case *domain.Pathway:
			declare(e.DBID, "[[", e.DisplayName, "]]")
			for _, child := range e.HasEvent {
				if _, ok := g.Event(child); !ok {
					continue
				}
				edge(e.DBID, "-.->", child)
				queue = append(queue, child)
			}
		case *domain.ReactionLikeEvent:
			declare(e.DBID, "{{", e.DisplayName, "}}")
			for _, in := range e.Input {
				entity(in)
				edge(in, "-->", e.DBID)
			}
			for _, out := range e.Output {
				entity(out)
				edge(e.DBID, "-->", out)
			}
			for _, ca := range e.CatalystActivities {
				if ca.PhysicalEntity == 0 {
					continue
				}
				entity(ca.PhysicalEntity)
				edge(ca.PhysicalEntity, "-. catalyses .->", e.DBID)
			}
			for _, reg := range e.PositivelyRegulatedBy {
				entity(reg.Regulator)
				edge(reg.Regulator, `-- "+" -->`, e.DBID)
			}
			for _, reg := range e.NegativelyRegulatedBy {
				entity(reg.Regulator)
				edge(reg.Regulator, `-- "-" --x`, e.DBID)
			}
		}
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef issue fill:#ffebee,stroke:#b71c1c,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef focus fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.DBID]bool)
		for _, id := range overlay.Issues {
			// Only style nodes present on the diagram
			if !seen[id] && declared[id] {
				seen[id] = true
				sb.WriteString(fmt.Sprintf("    class %s issue;\n", nodeID(id)))
			}
		}
		if overlay.Focus != 0 && declared[overlay.Focus] {
			sb.WriteString(fmt.Sprintf("    class %s focus;\n", nodeID(overlay.Focus)))
		}
	}

	return sb.String()
}

func nodeID(id domain.DBID) string {
	return fmt.Sprintf("n%d", id)
}

func sanitizeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.ReplaceAll(s, "\n", " ")
}
