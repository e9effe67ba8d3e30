package domain

// PhysicalEntity is a participant in a reaction. The set of implementations
// is closed; switch on the concrete type to dispatch per variant.
type PhysicalEntity interface {
	Base() *EntityBase
	isPhysicalEntity()
}

// EntityBase holds the attributes shared by every physical entity.
type EntityBase struct {
	DBID        DBID   `json:"dbId" yaml:"dbId"`
	StID        string `json:"stId" yaml:"stId"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	SchemaClass string `json:"schemaClass" yaml:"schemaClass"`

	// Compartments in source order. The first one places the species.
	Compartments []DBID `json:"compartment,omitempty" yaml:"compartment,omitempty"`

	InferredTo   []DBID `json:"inferredTo,omitempty" yaml:"inferredTo,omitempty"`
	InferredFrom []DBID `json:"inferredFrom,omitempty" yaml:"inferredFrom,omitempty"`
}

// ReferenceEntity is the external database record an entity stands for.
type ReferenceEntity struct {
	DatabaseName string `json:"databaseName" yaml:"databaseName"`
	Identifier   string `json:"identifier" yaml:"identifier"`
}

// DatabaseIdentifier is a secondary cross-reference.
type DatabaseIdentifier struct {
	DatabaseName string `json:"databaseName" yaml:"databaseName"`
	Identifier   string `json:"identifier" yaml:"identifier"`
}

// ModifiedResidue annotates a residue of a sequence entity. PsiMod is only
// meaningful on TranslationalModification residues.
type ModifiedResidue struct {
	SchemaClass string              `json:"schemaClass" yaml:"schemaClass"`
	PsiMod      *DatabaseIdentifier `json:"psiMod,omitempty" yaml:"psiMod,omitempty"`
}

// SimpleEntity is a small molecule.
type SimpleEntity struct {
	EntityBase
	ReferenceEntity *ReferenceEntity     `json:"referenceEntity,omitempty" yaml:"referenceEntity,omitempty"`
	CrossReferences []DatabaseIdentifier `json:"crossReference,omitempty" yaml:"crossReference,omitempty"`
}

// EntityWithAccessionedSequence is a protein or nucleic acid with a sequence accession.
type EntityWithAccessionedSequence struct {
	EntityBase
	ReferenceEntity  *ReferenceEntity  `json:"referenceEntity,omitempty" yaml:"referenceEntity,omitempty"`
	ModifiedResidues []ModifiedResidue `json:"hasModifiedResidue,omitempty" yaml:"hasModifiedResidue,omitempty"`
}

// GenomeEncodedEntity is a genome product without a known sequence reference.
type GenomeEncodedEntity struct {
	EntityBase
}

// Complex is a non-covalent assembly of components.
type Complex struct {
	EntityBase
	Components []DBID `json:"hasComponent,omitempty" yaml:"hasComponent,omitempty"`
}

// EntitySet holds the members shared by all set variants.
type EntitySet struct {
	EntityBase
	Members []DBID `json:"hasMember,omitempty" yaml:"hasMember,omitempty"`
}

// CandidateSet lists entities one or more of which might perform a function.
type CandidateSet struct{ EntitySet }

// DefinedSet lists alternative entities any of which can perform a function.
type DefinedSet struct{ EntitySet }

// OpenSet exemplifies a large set that is not explicitly enumerated.
type OpenSet struct{ EntitySet }

// OtherEntity is anything that fits no other variant.
type OtherEntity struct {
	EntityBase
}

// Polymer is built from repeated units.
type Polymer struct {
	EntityBase
	RepeatedUnits []DBID `json:"repeatedUnit,omitempty" yaml:"repeatedUnit,omitempty"`
}

func (e *SimpleEntity) Base() *EntityBase                  { return &e.EntityBase }
func (e *EntityWithAccessionedSequence) Base() *EntityBase { return &e.EntityBase }
func (e *GenomeEncodedEntity) Base() *EntityBase           { return &e.EntityBase }
func (e *Complex) Base() *EntityBase                       { return &e.EntityBase }
func (e *EntitySet) Base() *EntityBase                     { return &e.EntityBase }
func (e *OtherEntity) Base() *EntityBase                   { return &e.EntityBase }
func (e *Polymer) Base() *EntityBase                       { return &e.EntityBase }

func (*SimpleEntity) isPhysicalEntity()                  {}
func (*EntityWithAccessionedSequence) isPhysicalEntity() {}
func (*GenomeEncodedEntity) isPhysicalEntity()           {}
func (*Complex) isPhysicalEntity()                       {}
func (*CandidateSet) isPhysicalEntity()                  {}
func (*DefinedSet) isPhysicalEntity()                    {}
func (*OpenSet) isPhysicalEntity()                       {}
func (*OtherEntity) isPhysicalEntity()                   {}
func (*Polymer) isPhysicalEntity()                       {}

// Children returns the nested entities of composite variants, or nil.
func Children(pe PhysicalEntity) []DBID {
	switch v := pe.(type) {
	case *Complex:
		return v.Components
	case *CandidateSet:
		return v.Members
	case *DefinedSet:
		return v.Members
	case *OpenSet:
		return v.Members
	case *Polymer:
		return v.RepeatedUnits
	}
	return nil
}

// Compartment is a cellular location.
type Compartment struct {
	DBID        DBID   `json:"dbId" yaml:"dbId"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Accession   string `json:"accession" yaml:"accession"`
}

// Species is a taxon, used to select pathways in bulk.
type Species struct {
	DBID        DBID   `json:"dbId" yaml:"dbId"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	TaxID       string `json:"taxId,omitempty" yaml:"taxId,omitempty"`
}
