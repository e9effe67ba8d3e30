package sbml

// Target Level and Version of the produced documents.
const (
	Level   = 3
	Version = 1
)

// SBOUnset marks an element without a classification code.
const SBOUnset = -1

// Document is the root of one export. Model is nil when no root was supplied.
type Document struct {
	Level   int
	Version int
	Model   *Model

	// Annotation holds document-level provenance paragraphs.
	Annotation []string
}

// NewDocument returns an empty Level 3 Version 1 document.
func NewDocument() *Document {
	return &Document{Level: Level, Version: Version}
}

// ModelID returns the id of the model, or "" for a document without one.
func (d *Document) ModelID() string {
	if d == nil || d.Model == nil {
		return ""
	}
	return d.Model.ID
}

// SBase carries the attributes every annotated element shares.
type SBase struct {
	ID      string
	MetaID  string
	Name    string
	SBOTerm int
	Notes   string
	CVTerms []CVTerm
}

// HasNotes reports whether a notes block should be rendered.
func (s *SBase) HasNotes() bool { return s.Notes != "" }

// Model owns the compartments, species and reactions of a document.
// Collections keep creation order; the indexes provide id lookups.
type Model struct {
	SBase
	History *History

	Compartments []*Compartment
	Species      []*Species
	Reactions    []*Reaction

	compartmentIdx map[string]*Compartment
	speciesIdx     map[string]*Species
	reactionIdx    map[string]*Reaction
}

// NewModel creates a model with the given identity.
func NewModel(id, name string) *Model {
	return &Model{
		SBase:          SBase{ID: id, Name: name, SBOTerm: SBOUnset},
		compartmentIdx: make(map[string]*Compartment),
		speciesIdx:     make(map[string]*Species),
		reactionIdx:    make(map[string]*Reaction),
	}
}

// AddCompartment appends a compartment unless its id is already present.
// It returns the stored element and whether it was newly added.
func (m *Model) AddCompartment(c *Compartment) (*Compartment, bool) {
	if old, ok := m.compartmentIdx[c.ID]; ok {
		return old, false
	}
	m.compartmentIdx[c.ID] = c
	m.Compartments = append(m.Compartments, c)
	return c, true
}

// AddSpecies appends a species unless its id is already present.
func (m *Model) AddSpecies(s *Species) (*Species, bool) {
	if old, ok := m.speciesIdx[s.ID]; ok {
		return old, false
	}
	m.speciesIdx[s.ID] = s
	m.Species = append(m.Species, s)
	return s, true
}

// AddReaction appends a reaction unless its id is already present.
func (m *Model) AddReaction(r *Reaction) (*Reaction, bool) {
	if old, ok := m.reactionIdx[r.ID]; ok {
		return old, false
	}
	m.reactionIdx[r.ID] = r
	m.Reactions = append(m.Reactions, r)
	return r, true
}

// Compartment looks up a compartment by id.
func (m *Model) Compartment(id string) *Compartment { return m.compartmentIdx[id] }

// SpeciesByID looks up a species by id.
func (m *Model) SpeciesByID(id string) *Species { return m.speciesIdx[id] }

// Reaction looks up a reaction by id.
func (m *Model) Reaction(id string) *Reaction { return m.reactionIdx[id] }

// Compartment is a constant-size container for species.
type Compartment struct {
	SBase
	Constant bool
}

// Species is a pool of one physical entity in one compartment.
type Species struct {
	SBase
	Compartment           string
	BoundaryCondition     bool
	HasOnlySubstanceUnits bool
	Constant              bool
}

// Reaction is one transformation between species.
type Reaction struct {
	SBase
	Fast       bool
	Reversible bool

	Reactants []*SpeciesReference
	Products  []*SpeciesReference
	Modifiers []*ModifierSpeciesReference
}

// SpeciesReference connects a reactant or product to a reaction.
type SpeciesReference struct {
	SBase
	Species  string
	Constant bool
}

// ModifierSpeciesReference connects a catalyst or regulator to a reaction.
type ModifierSpeciesReference struct {
	SBase
	Species string
}
