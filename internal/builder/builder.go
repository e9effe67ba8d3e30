// Package builder turns a pathway sub-tree, or a flat list of events, into an
// SBML reaction network.
//
// The traversal is depth-first over child events. Every reaction-like event
// becomes one reaction; pathways are only recursed into, so nested structure
// is flattened. Species, compartments, reactions and role-links are created
// at most once per document.
package builder

import (
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/sbmlexport/internal/annotation"
	"github.com/aretw0/sbmlexport/internal/history"
	"github.com/aretw0/sbmlexport/internal/ids"
	"github.com/aretw0/sbmlexport/internal/notes"
	"github.com/aretw0/sbmlexport/internal/parent"
	"github.com/aretw0/sbmlexport/internal/sbo"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/sbml"
)

// Stats summarises one build.
type Stats struct {
	Reactions    int
	Species      int
	Compartments int
	RoleLinks    int
	// Skipped counts contributions dropped because the source was incomplete.
	Skipped int
}

// Builder builds one document at a time. It is not safe for concurrent use;
// run one Builder per goroutine.
type Builder struct {
	graph       *domain.Graph
	logger      *slog.Logger
	annotations bool
	testMode    bool
	dbVersion   int
	now         func() time.Time
	toolVersion string

	annot   *annotation.Annotator
	species *notes.Species
	history *history.Builder

	// per-build state
	doc     *sbml.Document
	model   *sbml.Model
	metaids ids.MetaIDs
	issued  *ids.Registry
	visit   map[domain.DBID]bool
	skipped int
}

// New creates a builder reading from g.
func New(g *domain.Graph, opts ...Option) *Builder {
	b := &Builder{
		graph:       g,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		annotations: true,
		now:         time.Now,
		toolVersion: DefaultToolVersion,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.annot = annotation.NewAnnotator(g, b.logger)
	b.species = notes.NewSpecies(g, b.logger)
	b.history = history.NewBuilder(g, b.logger)
	return b
}

func (b *Builder) reset() {
	b.doc = sbml.NewDocument()
	b.model = nil
	b.metaids = ids.MetaIDs{}
	b.issued = ids.NewRegistry()
	b.visit = make(map[domain.DBID]bool)
	b.skipped = 0
}

// BuildPathway builds the document of a pathway. A nil pathway yields a
// document without a model.
func (b *Builder) BuildPathway(p *domain.Pathway) *sbml.Document {
	b.reset()
	if p == nil {
		return b.doc
	}

	b.newModel(ids.Model(p.DBID), p.DisplayName)
	b.addChildren(p)

	if b.annotations {
		b.addProvenance()
		b.annotatePathway(p)
	}
	return b.doc
}

// BuildEvents builds one document from a list of events. When the events
// share a unique parent pathway the model takes its identity and
// annotations; otherwise a sentinel identity and a disclaimer are used.
// In test mode no parent is inferred.
func (b *Builder) BuildEvents(events []domain.Event) *sbml.Document {
	b.reset()

	var p *domain.Pathway
	if !b.testMode {
		p = parent.Infer(b.graph, events)
	}
	if p != nil {
		b.newModel(ids.Model(p.DBID), p.DisplayName)
	} else {
		b.newModel(ids.NoParentModelID, ids.NoParentModelName)
	}

	for _, e := range events {
		b.addEvent(e)
	}

	if b.annotations {
		b.addProvenance()
		if p != nil {
			b.annotatePathway(p)
		} else {
			b.model.CVTerms = b.annot.Events(events)
			b.model.History = b.history.BuildEvents(events)
			b.model.Notes = notes.Events(events)
		}
	}
	return b.doc
}

// Stats reports the counts of the last build.
func (b *Builder) Stats() Stats {
	s := Stats{Skipped: b.skipped}
	if b.model == nil {
		return s
	}
	s.Reactions = len(b.model.Reactions)
	s.Species = len(b.model.Species)
	s.Compartments = len(b.model.Compartments)
	for _, r := range b.model.Reactions {
		s.RoleLinks += len(r.Reactants) + len(r.Products) + len(r.Modifiers)
	}
	return s
}

func (b *Builder) newModel(id, name string) {
	b.model = sbml.NewModel(id, name)
	b.model.MetaID = b.metaids.Next()
	b.doc.Model = b.model
}

func (b *Builder) addProvenance() {
	if b.testMode {
		return
	}
	b.doc.Annotation = append(b.doc.Annotation,
		annotation.Provenance(b.dbVersion, b.now(), b.toolVersion))
}

func (b *Builder) annotatePathway(p *domain.Pathway) {
	b.model.CVTerms = b.annot.Model(p)
	b.model.History = b.history.Build(p)
	b.model.Notes = notes.Event(p)
}

// addChildren visits the child events of p in order. A pathway that is
// already being expanded higher up the stack is not entered again.
func (b *Builder) addChildren(p *domain.Pathway) {
	if b.visit[p.DBID] {
		b.logger.Warn("pathway contains itself, not descending", "dbId", p.DBID)
		return
	}
	b.visit[p.DBID] = true
	defer delete(b.visit, p.DBID)

	for _, id := range p.HasEvent {
		e, ok := b.graph.Event(id)
		if !ok {
			b.logger.Warn("child event not in graph", "dbId", p.DBID, "child", id)
			b.skipped++
			continue
		}
		b.addEvent(e)
	}
}

func (b *Builder) addEvent(e domain.Event) {
	switch v := e.(type) {
	case *domain.ReactionLikeEvent:
		b.addReaction(v)
	case *domain.Pathway:
		b.addChildren(v)
	}
}

func (b *Builder) addReaction(r *domain.ReactionLikeEvent) {
	id := ids.Reaction(r.DBID)
	if !b.issued.Claim(id) {
		return
	}
	rn := &sbml.Reaction{SBase: sbml.SBase{
		ID:      id,
		MetaID:  b.metaids.Next(),
		Name:    r.DisplayName,
		SBOTerm: sbml.SBOUnset,
	}}
	b.model.AddReaction(rn)

	for _, pe := range r.Input {
		b.addParticipant(ids.RoleReactant, rn, r.DBID, pe, nil)
	}
	for _, pe := range r.Output {
		b.addParticipant(ids.RoleProduct, rn, r.DBID, pe, nil)
	}
	for _, cat := range r.CatalystActivities {
		if cat.PhysicalEntity == 0 {
			b.logger.Debug("catalyst activity without physical entity", "dbId", r.DBID, "catalystActivity", cat.DBID)
			continue
		}
		b.addParticipant(ids.RoleCatalyst, rn, r.DBID, cat.PhysicalEntity, nil)
	}
	b.addRegulations(ids.RolePositiveRegulator, rn, r.DBID, r.PositivelyRegulatedBy)
	b.addRegulations(ids.RoleNegativeRegulator, rn, r.DBID, r.NegativelyRegulatedBy)

	if b.annotations {
		rn.CVTerms = b.annot.Reaction(r)
		rn.Notes = notes.Event(r)
	}
}

// addRegulations links regulators that are physical entities. Regulators
// naming anything else are left out.
func (b *Builder) addRegulations(role ids.Role, rn *sbml.Reaction, event domain.DBID, regs []domain.Regulation) {
	for i := range regs {
		reg := &regs[i]
		if _, ok := b.graph.Entity(reg.Regulator); !ok {
			b.logger.Debug("regulator is not a physical entity", "dbId", event, "regulation", reg.DBID, "regulator", reg.Regulator)
			continue
		}
		b.addParticipant(role, rn, event, reg.Regulator, reg)
	}
}

func (b *Builder) addParticipant(role ids.Role, rn *sbml.Reaction, event, entity domain.DBID, reg *domain.Regulation) {
	pe, ok := b.graph.Entity(entity)
	if !ok {
		b.logger.Warn("participant not in graph", "dbId", event, "entity", entity, "role", role.String())
		b.skipped++
		return
	}
	speciesID, ok := b.addSpecies(pe)
	if !ok {
		return
	}

	linkID := ids.RoleLink(role, event, entity)
	if !b.issued.Claim(linkID) {
		return
	}
	base := sbml.SBase{ID: linkID, SBOTerm: sbo.Role(role)}

	switch role {
	case ids.RoleReactant:
		rn.Reactants = append(rn.Reactants, &sbml.SpeciesReference{SBase: base, Species: speciesID, Constant: true})
	case ids.RoleProduct:
		rn.Products = append(rn.Products, &sbml.SpeciesReference{SBase: base, Species: speciesID, Constant: true})
	default:
		if b.annotations && reg != nil {
			base.Notes = notes.Regulation(*reg)
		}
		rn.Modifiers = append(rn.Modifiers, &sbml.ModifierSpeciesReference{SBase: base, Species: speciesID})
	}
}

// addSpecies ensures a species exists for pe and returns its id. The first
// listed compartment places the species; an entity whose compartment cannot
// be resolved is skipped.
func (b *Builder) addSpecies(pe domain.PhysicalEntity) (string, bool) {
	base := pe.Base()
	id := ids.Species(base.DBID)
	if b.issued.Has(id) {
		return id, true
	}

	if len(base.Compartments) == 0 {
		b.logger.Warn("physical entity has no compartment, skipping", "dbId", base.DBID)
		b.skipped++
		return "", false
	}
	if len(base.Compartments) > 1 {
		b.logger.Debug("physical entity has several compartments, using the first", "dbId", base.DBID, "compartments", len(base.Compartments))
	}
	comp, ok := b.graph.Compartment(base.Compartments[0])
	if !ok {
		b.logger.Warn("compartment not in graph, skipping", "dbId", base.DBID, "compartment", base.Compartments[0])
		b.skipped++
		return "", false
	}

	term, known := sbo.Entity(pe)
	if !known {
		b.logger.Warn("unrecognised physical entity", "dbId", base.DBID, "class", base.SchemaClass)
	}

	b.issued.Claim(id)
	s := &sbml.Species{
		SBase: sbml.SBase{
			ID:      id,
			MetaID:  b.metaids.Next(),
			Name:    base.DisplayName,
			SBOTerm: term,
		},
		Compartment: ids.Compartment(comp.DBID),
	}
	if b.annotations {
		s.CVTerms = b.annot.Species(pe)
		s.Notes = b.species.Notes(pe)
	}
	b.model.AddSpecies(s)

	b.addCompartment(comp)
	return id, true
}

func (b *Builder) addCompartment(c *domain.Compartment) {
	id := ids.Compartment(c.DBID)
	if !b.issued.Claim(id) {
		return
	}
	comp := &sbml.Compartment{
		SBase: sbml.SBase{
			ID:      id,
			MetaID:  b.metaids.Next(),
			Name:    c.DisplayName,
			SBOTerm: sbo.Compartment(c),
		},
		Constant: true,
	}
	if b.annotations {
		comp.CVTerms = b.annot.Compartment(c)
	}
	b.model.AddCompartment(comp)
}
