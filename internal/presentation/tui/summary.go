package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/sbmlexport/pkg/sbml"
)

// MaxRows caps the reaction table of a summary.
const MaxRows = 20

// Summary describes a built document as markdown. issues lists validator
// findings to append.
func Summary(doc *sbml.Document, issues []string) string {
	var sb strings.Builder
	if doc == nil || doc.Model == nil {
		sb.WriteString("# Empty document\n\nNo model was built.\n")
		return sb.String()
	}

	m := doc.Model
	fmt.Fprintf(&sb, "# %s\n\n", escape(m.Name))
	fmt.Fprintf(&sb, "Model `%s`, SBML Level %d Version %d.\n\n", m.ID, doc.Level, doc.Version)
	for _, p := range doc.Annotation {
		fmt.Fprintf(&sb, "> %s\n", escape(p))
	}
	if len(doc.Annotation) > 0 {
		sb.WriteString("\n")
	}

	sb.WriteString("| Element | Count |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Compartments | %d |\n", len(m.Compartments))
	fmt.Fprintf(&sb, "| Species | %d |\n", len(m.Species))
	fmt.Fprintf(&sb, "| Reactions | %d |\n\n", len(m.Reactions))

	if len(m.Reactions) > 0 {
		sb.WriteString("## Reactions\n\n| Id | Name | In | Out | Modifiers |\n|---|---|---|---|---|\n")
		for i, r := range m.Reactions {
			if i == MaxRows {
				fmt.Fprintf(&sb, "\n_%d more not shown._\n", len(m.Reactions)-MaxRows)
				break
			}
			fmt.Fprintf(&sb, "| `%s` | %s | %d | %d | %d |\n",
				r.ID, escape(r.Name), len(r.Reactants), len(r.Products), len(r.Modifiers))
		}
		sb.WriteString("\n")
	}

	if len(issues) > 0 {
		fmt.Fprintf(&sb, "## Issues (%d)\n\n", len(issues))
		for _, is := range issues {
			fmt.Fprintf(&sb, "- %s\n", escape(is))
		}
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
