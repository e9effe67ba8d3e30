// Package history derives the authorship record of an exported model from
// the curation edits of its events.
package history

import (
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/sbml"
)

// DateLayout is the format of InstanceEdit timestamps in the source.
const DateLayout = "2006-01-02 15:04:05"

// Builder turns edits into a sbml.History. It only reads the graph, so one
// Builder may serve several builds; each call starts from empty state.
type Builder struct {
	graph  *domain.Graph
	logger *slog.Logger
}

// NewBuilder creates a history builder resolving child events through g.
func NewBuilder(g *domain.Graph, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Builder{graph: g, logger: logger}
}

// Build covers a pathway and its direct children.
func (b *Builder) Build(p *domain.Pathway) *sbml.History {
	c := b.newCollector()
	c.event(p)
	for _, id := range p.HasEvent {
		e, ok := b.graph.Event(id)
		if !ok {
			b.logger.Debug("child event not in graph", "dbId", p.DBID, "child", id)
			continue
		}
		c.event(e)
	}
	return c.history()
}

// BuildEvents covers every event of a list.
func (b *Builder) BuildEvents(events []domain.Event) *sbml.History {
	c := b.newCollector()
	for _, e := range events {
		c.event(e)
	}
	return c.history()
}

// ParseDate parses a source timestamp. Unparsable input yields nil.
func ParseDate(s string) *time.Time {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

type collector struct {
	logger   *slog.Logger
	creators []sbml.Creator
	surnames map[string]struct{}

	haveCreated bool
	earliest    *time.Time
	modified    []*time.Time
}

func (b *Builder) newCollector() *collector {
	return &collector{logger: b.logger, surnames: make(map[string]struct{})}
}

// event gathers created, modified, authored and revised edits. Edited and
// reviewed edits are not part of the record.
func (c *collector) event(e domain.Event) {
	base := e.Base()
	if base.Created != nil {
		c.created(base.DBID, *base.Created)
	}
	if base.Modified != nil {
		c.modification(base.DBID, *base.Modified)
	}
	for _, edit := range base.Authored {
		c.modification(base.DBID, edit)
	}
	for _, edit := range base.Revised {
		c.modification(base.DBID, edit)
	}
}

// created keeps the earliest creation date; any date it displaces, or that
// is not earlier, becomes a modification. An unknown date never displaces a
// known one and is dropped when a known one replaces it.
func (c *collector) created(id domain.DBID, edit domain.InstanceEdit) {
	c.addCreators(edit.Authors)
	date := c.parse(id, edit.DateTime)
	switch {
	case !c.haveCreated:
		c.haveCreated = true
		c.earliest = date
	case date != nil && c.earliest == nil:
		c.earliest = date
	case date != nil && date.Before(*c.earliest):
		c.addModified(c.earliest)
		c.earliest = date
	default:
		c.addModified(date)
	}
}

func (c *collector) modification(id domain.DBID, edit domain.InstanceEdit) {
	c.addCreators(edit.Authors)
	c.addModified(c.parse(id, edit.DateTime))
}

func (c *collector) parse(id domain.DBID, s string) *time.Time {
	t := ParseDate(s)
	if t == nil {
		c.logger.Warn("unparsable edit date", "dbId", id, "dateTime", s)
	}
	return t
}

// addCreators registers contributors once per surname. Two different people
// sharing a surname collapse into the first one seen.
func (c *collector) addCreators(people []domain.Person) {
	for _, p := range people {
		if _, ok := c.surnames[p.Surname]; ok {
			continue
		}
		c.surnames[p.Surname] = struct{}{}
		c.creators = append(c.creators, NewCreator(p))
	}
}

func (c *collector) addModified(t *time.Time) {
	for _, m := range c.modified {
		if equal(m, t) {
			return
		}
	}
	c.modified = append(c.modified, t)
}

func (c *collector) history() *sbml.History {
	sort.SliceStable(c.modified, func(i, j int) bool {
		return before(c.modified[i], c.modified[j])
	})
	return &sbml.History{
		Creators: c.creators,
		Created:  c.earliest,
		Modified: c.modified,
	}
}

// NewCreator maps a person onto a vCard entry. The organisation is the last
// name listed across all affiliations.
func NewCreator(p domain.Person) sbml.Creator {
	cr := sbml.Creator{
		FamilyName: p.Surname,
		GivenName:  p.FirstName,
		Email:      p.Email,
	}
	for _, a := range p.Affiliations {
		for _, name := range a.Names {
			cr.Organisation = name
		}
	}
	return cr
}

// before orders nil (unknown) dates ahead of every real date.
func before(a, b *time.Time) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	}
	return a.Before(*b)
}

func equal(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
