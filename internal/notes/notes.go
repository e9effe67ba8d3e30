// Package notes composes the descriptive prose attached to output elements.
package notes

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/sbml"
)

// NoParentDisclaimer opens the notes of a model built from unrelated events.
const NoParentDisclaimer = "This model was created from a list of events NOT a pathway. " +
	"An appropriate parent pathway could not be detected. Events include:"

var sanitizers = []struct {
	re   *regexp.Regexp
	with string
}{
	{regexp.MustCompile(`[\x00-\x1f\x7f]+`), " "},
	{regexp.MustCompile(`</*[a-zA-Z][^>]*>`), " "},
	{regexp.MustCompile(`<>`), " interconverts to "},
	{regexp.MustCompile(`<`), " "},
	{regexp.MustCompile(`\n+`), "  "},
	{regexp.MustCompile(`&+`), "  "},
}

// Sanitize strips markup so the text can sit inside an xhtml paragraph.
func Sanitize(s string) string {
	for _, r := range sanitizers {
		s = r.re.ReplaceAllString(s, r.with)
	}
	return s
}

// Composer accumulates sanitized segments for one element.
type Composer struct {
	segments []string
}

// Append adds a sanitized segment.
func (c *Composer) Append(s string) {
	c.segments = append(c.segments, Sanitize(s))
}

// Len returns the number of segments.
func (c *Composer) Len() int { return len(c.segments) }

// String joins the segments with newlines.
func (c *Composer) String() string { return strings.Join(c.segments, "\n") }

// appendSummations reports whether any summation was added.
func (c *Composer) appendSummations(sums []string) bool {
	for _, s := range sums {
		c.Append(s)
	}
	return len(sums) > 0
}

// Event returns the notes of an event: its summations, or "" when it has none.
func Event(e domain.Event) string {
	var c Composer
	if !c.appendSummations(e.Base().Summations) {
		return ""
	}
	return c.String()
}

// Events returns the disclaimer followed by the summations of every event.
func Events(events []domain.Event) string {
	var c Composer
	c.Append(NoParentDisclaimer)
	for _, e := range events {
		c.appendSummations(e.Base().Summations)
	}
	return c.String()
}

// Regulation returns the notes of a regulator link.
func Regulation(r domain.Regulation) string {
	if r.Explanation == "" {
		return ""
	}
	var c Composer
	c.Append(r.Explanation)
	return c.String()
}

// Species builds the notes of physical entities.
type Species struct {
	graph  *domain.Graph
	logger *slog.Logger
}

// NewSpecies creates a species notes builder resolving components through g.
func NewSpecies(g *domain.Graph, logger *slog.Logger) *Species {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Species{graph: g, logger: logger}
}

// Notes returns the notes of pe: where it came from, and a sentence about
// its variant.
func (s *Species) Notes(pe domain.PhysicalEntity) string {
	var c Composer
	derived := func(class string) { c.Append("Derived from a Reactome " + class + ".") }

	switch v := pe.(type) {
	case *domain.SimpleEntity:
		derived(domain.ClassSimpleEntity)
		c.Append("This is a small compound.")
	case *domain.EntityWithAccessionedSequence:
		derived(domain.ClassEWAS)
		c.Append("This is a protein.")
	case *domain.Complex:
		derived(domain.ClassComplex)
		if structure := s.ComplexStructure(v); structure != "" {
			c.Append("Here is Reactomes nested structure for this complex: " + structure)
		} else {
			c.Append(fmt.Sprintf("Reactome uses a nested structure for complexes, which cannot be fully represented in SBML Level %d Version %d core.",
				sbml.Level, sbml.Version))
		}
	case *domain.CandidateSet:
		derived(domain.ClassCandidateSet)
		c.Append("A list of entities, one or more of which might perform the given function.")
	case *domain.DefinedSet:
		derived(domain.ClassDefinedSet)
		c.Append("This is a list of alternative entities, any of which can perform the given function.")
	case *domain.OpenSet:
		derived(domain.ClassOpenSet)
		c.Append("A set of examples characterizing a very large but not explicitly enumerated set, e.g. mRNAs.")
	case *domain.OtherEntity:
		derived(domain.ClassOtherEntity)
	case *domain.GenomeEncodedEntity:
		derived(domain.ClassGenomeEncodedEntity)
	case *domain.Polymer:
		derived(domain.ClassPolymer)
	default:
		s.logger.Warn("unrecognised physical entity", "dbId", pe.Base().DBID, "class", pe.Base().SchemaClass)
		return ""
	}
	return c.String()
}

// ComplexStructure lists the reference identifiers of a complex, flattened
// through nested complexes, as "(id1, id2, ...)". It returns "" when any
// component cannot be expressed by a reference identifier.
func (s *Species) ComplexStructure(cx *domain.Complex) string {
	var ids []string
	path := map[domain.DBID]bool{cx.DBID: true}
	for _, id := range cx.Components {
		if !s.componentIDs(&ids, id, path) {
			return ""
		}
	}
	if len(ids) == 0 {
		return ""
	}
	return "(" + strings.Join(ids, ", ") + ")"
}

func (s *Species) componentIDs(ids *[]string, id domain.DBID, path map[domain.DBID]bool) bool {
	pe, ok := s.graph.Entity(id)
	if !ok {
		return false
	}
	switch v := pe.(type) {
	case *domain.Complex:
		if path[v.DBID] {
			s.logger.Warn("cyclic composite entity, not descending", "dbId", v.DBID)
			return false
		}
		path[v.DBID] = true
		defer delete(path, v.DBID)

		complete := true
		for _, child := range v.Components {
			if !s.componentIDs(ids, child, path) {
				complete = false
			}
		}
		return complete
	case *domain.SimpleEntity:
		if v.ReferenceEntity == nil {
			return false
		}
		*ids = append(*ids, v.ReferenceEntity.Identifier)
		return true
	case *domain.EntityWithAccessionedSequence:
		if v.ReferenceEntity == nil {
			return false
		}
		*ids = append(*ids, v.ReferenceEntity.Identifier)
		return true
	}
	return false
}
