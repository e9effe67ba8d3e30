package dsl

import "github.com/aretw0/sbmlexport/pkg/domain"

// eventFields holds the setters shared by pathways and reactions. T is the
// concrete builder so chains keep their type.
type eventFields[T any] struct {
	base *domain.EventBase
	self T
}

// StID overrides the stable identifier.
func (e eventFields[T]) StID(stID string) T {
	e.base.StID = stID
	return e.self
}

// Class overrides the schema class.
func (e eventFields[T]) Class(class string) T {
	e.base.SchemaClass = class
	return e.self
}

// Summary appends summation texts.
func (e eventFields[T]) Summary(texts ...string) T {
	e.base.Summations = append(e.base.Summations, texts...)
	return e.self
}

// Created sets the creation edit.
func (e eventFields[T]) Created(at string, authors ...domain.Person) T {
	e.base.Created = &domain.InstanceEdit{DateTime: at, Authors: authors}
	return e.self
}

// Modified sets the last modification edit.
func (e eventFields[T]) Modified(at string, authors ...domain.Person) T {
	e.base.Modified = &domain.InstanceEdit{DateTime: at, Authors: authors}
	return e.self
}

// Authored appends an authoring edit.
func (e eventFields[T]) Authored(at string, authors ...domain.Person) T {
	e.base.Authored = append(e.base.Authored, domain.InstanceEdit{DateTime: at, Authors: authors})
	return e.self
}

// Revised appends a revision edit.
func (e eventFields[T]) Revised(at string, authors ...domain.Person) T {
	e.base.Revised = append(e.base.Revised, domain.InstanceEdit{DateTime: at, Authors: authors})
	return e.self
}

// Cite appends PubMed literature references.
func (e eventFields[T]) Cite(pubmed ...int) T {
	for _, id := range pubmed {
		id := id
		e.base.LiteratureReferences = append(e.base.LiteratureReferences, domain.Publication{
			SchemaClass: domain.ClassLiteratureReference,
			PubMedID:    &id,
		})
	}
	return e.self
}

// InSpecies tags the event with taxa.
func (e eventFields[T]) InSpecies(ids ...domain.DBID) T {
	e.base.Species = append(e.base.Species, ids...)
	return e.self
}

// EventOf lists containers explicitly, in addition to those linked from
// pathways at Build time.
func (e eventFields[T]) EventOf(ids ...domain.DBID) T {
	e.base.EventOf = append(e.base.EventOf, ids...)
	return e.self
}

// PathwayBuilder configures a pathway.
type PathwayBuilder struct {
	eventFields[*PathwayBuilder]
	pathway *domain.Pathway
}

// Pathway adds a pathway.
func (b *Builder) Pathway(id domain.DBID, name string) *PathwayBuilder {
	b.claim(id)
	p := &domain.Pathway{EventBase: domain.EventBase{
		DBID:        id,
		StID:        defaultStID(id),
		DisplayName: name,
		SchemaClass: domain.ClassPathway,
	}}
	b.graph.AddEvent(p)
	pb := &PathwayBuilder{pathway: p}
	pb.eventFields = eventFields[*PathwayBuilder]{base: &p.EventBase, self: pb}
	return pb
}

// Events appends child events in order.
func (p *PathwayBuilder) Events(ids ...domain.DBID) *PathwayBuilder {
	p.pathway.HasEvent = append(p.pathway.HasEvent, ids...)
	return p
}

// Build returns the underlying pathway.
func (p *PathwayBuilder) Build() *domain.Pathway { return p.pathway }

// ReactionBuilder configures a reaction-like event.
type ReactionBuilder struct {
	eventFields[*ReactionBuilder]
	reaction *domain.ReactionLikeEvent
}

// Reaction adds a reaction-like event of class Reaction.
func (b *Builder) Reaction(id domain.DBID, name string) *ReactionBuilder {
	b.claim(id)
	r := &domain.ReactionLikeEvent{EventBase: domain.EventBase{
		DBID:        id,
		StID:        defaultStID(id),
		DisplayName: name,
		SchemaClass: domain.ClassReaction,
	}}
	b.graph.AddEvent(r)
	rb := &ReactionBuilder{reaction: r}
	rb.eventFields = eventFields[*ReactionBuilder]{base: &r.EventBase, self: rb}
	return rb
}

// Input appends input participants.
func (r *ReactionBuilder) Input(ids ...domain.DBID) *ReactionBuilder {
	r.reaction.Input = append(r.reaction.Input, ids...)
	return r
}

// Output appends output participants.
func (r *ReactionBuilder) Output(ids ...domain.DBID) *ReactionBuilder {
	r.reaction.Output = append(r.reaction.Output, ids...)
	return r
}

// Catalyst appends a catalyst activity. entity may be zero for an activity
// without a physical entity; activity may be nil.
func (r *ReactionBuilder) Catalyst(entity domain.DBID, activity *domain.GOTerm) *ReactionBuilder {
	r.reaction.CatalystActivities = append(r.reaction.CatalystActivities, domain.CatalystActivity{
		DBID:           domain.DBID(len(r.reaction.CatalystActivities) + 1),
		PhysicalEntity: entity,
		Activity:       activity,
	})
	return r
}

// Activates appends a positive regulation.
func (r *ReactionBuilder) Activates(regulator domain.DBID, explanation string) *ReactionBuilder {
	r.reaction.PositivelyRegulatedBy = append(r.reaction.PositivelyRegulatedBy, domain.Regulation{
		Regulator: regulator, Explanation: explanation,
	})
	return r
}

// Inhibits appends a negative regulation.
func (r *ReactionBuilder) Inhibits(regulator domain.DBID, explanation string) *ReactionBuilder {
	r.reaction.NegativelyRegulatedBy = append(r.reaction.NegativelyRegulatedBy, domain.Regulation{
		Regulator: regulator, Explanation: explanation,
	})
	return r
}

// Process sets the GO biological process accession.
func (r *ReactionBuilder) Process(accession string) *ReactionBuilder {
	r.reaction.GoBiologicalProcess = &domain.GOTerm{Accession: accession}
	return r
}

// Build returns the underlying event.
func (r *ReactionBuilder) Build() *domain.ReactionLikeEvent { return r.reaction }
