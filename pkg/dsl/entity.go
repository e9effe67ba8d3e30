package dsl

import "github.com/aretw0/sbmlexport/pkg/domain"

// EntityBuilder configures a physical entity.
type EntityBuilder struct {
	entity domain.PhysicalEntity
}

func (b *Builder) entity(pe domain.PhysicalEntity, id domain.DBID, name, class string) *EntityBuilder {
	b.claim(id)
	base := pe.Base()
	base.DBID = id
	base.StID = defaultStID(id)
	base.DisplayName = name
	base.SchemaClass = class
	b.graph.AddEntity(pe)
	return &EntityBuilder{entity: pe}
}

// Simple adds a small molecule.
func (b *Builder) Simple(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.SimpleEntity{}, id, name, domain.ClassSimpleEntity)
}

// Protein adds an entity with an accessioned sequence.
func (b *Builder) Protein(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.EntityWithAccessionedSequence{}, id, name, domain.ClassEWAS)
}

// Gene adds a genome encoded entity.
func (b *Builder) Gene(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.GenomeEncodedEntity{}, id, name, domain.ClassGenomeEncodedEntity)
}

// Complex adds a complex.
func (b *Builder) Complex(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.Complex{}, id, name, domain.ClassComplex)
}

// CandidateSet adds a candidate set.
func (b *Builder) CandidateSet(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.CandidateSet{}, id, name, domain.ClassCandidateSet)
}

// DefinedSet adds a defined set.
func (b *Builder) DefinedSet(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.DefinedSet{}, id, name, domain.ClassDefinedSet)
}

// OpenSet adds an open set.
func (b *Builder) OpenSet(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.OpenSet{}, id, name, domain.ClassOpenSet)
}

// Polymer adds a polymer.
func (b *Builder) Polymer(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.Polymer{}, id, name, domain.ClassPolymer)
}

// Other adds an entity of no specific variant.
func (b *Builder) Other(id domain.DBID, name string) *EntityBuilder {
	return b.entity(&domain.OtherEntity{}, id, name, domain.ClassOtherEntity)
}

// StID overrides the stable identifier.
func (e *EntityBuilder) StID(stID string) *EntityBuilder {
	e.entity.Base().StID = stID
	return e
}

// In appends compartments; the first one places the species.
func (e *EntityBuilder) In(compartments ...domain.DBID) *EntityBuilder {
	base := e.entity.Base()
	base.Compartments = append(base.Compartments, compartments...)
	return e
}

// Ref sets the reference entity of small molecules and sequences.
// It is ignored for other variants.
func (e *EntityBuilder) Ref(database, identifier string) *EntityBuilder {
	ref := &domain.ReferenceEntity{DatabaseName: database, Identifier: identifier}
	switch v := e.entity.(type) {
	case *domain.SimpleEntity:
		v.ReferenceEntity = ref
	case *domain.EntityWithAccessionedSequence:
		v.ReferenceEntity = ref
	}
	return e
}

// XRef appends a secondary cross-reference to a small molecule.
func (e *EntityBuilder) XRef(database, identifier string) *EntityBuilder {
	if v, ok := e.entity.(*domain.SimpleEntity); ok {
		v.CrossReferences = append(v.CrossReferences, domain.DatabaseIdentifier{DatabaseName: database, Identifier: identifier})
	}
	return e
}

// Parts appends components, members or repeated units, depending on the variant.
func (e *EntityBuilder) Parts(ids ...domain.DBID) *EntityBuilder {
	switch v := e.entity.(type) {
	case *domain.Complex:
		v.Components = append(v.Components, ids...)
	case *domain.CandidateSet:
		v.Members = append(v.Members, ids...)
	case *domain.DefinedSet:
		v.Members = append(v.Members, ids...)
	case *domain.OpenSet:
		v.Members = append(v.Members, ids...)
	case *domain.Polymer:
		v.RepeatedUnits = append(v.RepeatedUnits, ids...)
	}
	return e
}

// InferredTo appends entities this one was projected onto.
func (e *EntityBuilder) InferredTo(ids ...domain.DBID) *EntityBuilder {
	base := e.entity.Base()
	base.InferredTo = append(base.InferredTo, ids...)
	return e
}

// InferredFrom appends entities this one was projected from.
func (e *EntityBuilder) InferredFrom(ids ...domain.DBID) *EntityBuilder {
	base := e.entity.Base()
	base.InferredFrom = append(base.InferredFrom, ids...)
	return e
}

// Modification appends a translational modification residue with a PSI-MOD term.
func (e *EntityBuilder) Modification(psimod string) *EntityBuilder {
	return e.Residue(domain.ClassTranslationalModification, psimod)
}

// Residue appends a modified residue of any class. An empty psimod leaves
// the term unset.
func (e *EntityBuilder) Residue(class, psimod string) *EntityBuilder {
	v, ok := e.entity.(*domain.EntityWithAccessionedSequence)
	if !ok {
		return e
	}
	res := domain.ModifiedResidue{SchemaClass: class}
	if psimod != "" {
		res.PsiMod = &domain.DatabaseIdentifier{DatabaseName: "MOD", Identifier: psimod}
	}
	v.ModifiedResidues = append(v.ModifiedResidues, res)
	return e
}

// Build returns the underlying entity.
func (e *EntityBuilder) Build() domain.PhysicalEntity { return e.entity }
