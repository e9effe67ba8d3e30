package domain

// DBID is the numeric database identifier of a Reactome object.
type DBID int64

// Event is a unit of biological activity: either a Pathway or a ReactionLikeEvent.
// The set of implementations is closed.
type Event interface {
	Base() *EventBase
	isEvent()
}

// EventBase holds the attributes shared by every event.
type EventBase struct {
	DBID        DBID   `json:"dbId" yaml:"dbId"`
	StID        string `json:"stId" yaml:"stId"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	SchemaClass string `json:"schemaClass" yaml:"schemaClass"`

	// Summations holds the free-text summaries, in source order.
	Summations []string `json:"summation,omitempty" yaml:"summation,omitempty"`

	Created  *InstanceEdit  `json:"created,omitempty" yaml:"created,omitempty"`
	Modified *InstanceEdit  `json:"modified,omitempty" yaml:"modified,omitempty"`
	Authored []InstanceEdit `json:"authored,omitempty" yaml:"authored,omitempty"`
	Revised  []InstanceEdit `json:"revised,omitempty" yaml:"revised,omitempty"`
	Edited   []InstanceEdit `json:"edited,omitempty" yaml:"edited,omitempty"`
	Reviewed []InstanceEdit `json:"reviewed,omitempty" yaml:"reviewed,omitempty"`

	LiteratureReferences []Publication `json:"literatureReference,omitempty" yaml:"literatureReference,omitempty"`

	// EventOf lists the containers of this event. Nil means the containment
	// is unknown, which is distinct from "contained nowhere" only for callers
	// that care; parent inference treats both as no parent.
	EventOf []DBID `json:"eventOf,omitempty" yaml:"eventOf,omitempty"`

	// Species lists the taxa this event belongs to.
	Species []DBID `json:"species,omitempty" yaml:"species,omitempty"`
}

// Pathway groups child events, possibly other pathways.
type Pathway struct {
	EventBase
	HasEvent []DBID `json:"hasEvent,omitempty" yaml:"hasEvent,omitempty"`
}

func (p *Pathway) Base() *EventBase { return &p.EventBase }
func (*Pathway) isEvent()           {}

// ReactionLikeEvent has explicit participants, catalysts and regulators.
type ReactionLikeEvent struct {
	EventBase
	Input  []DBID `json:"input,omitempty" yaml:"input,omitempty"`
	Output []DBID `json:"output,omitempty" yaml:"output,omitempty"`

	CatalystActivities    []CatalystActivity `json:"catalystActivity,omitempty" yaml:"catalystActivity,omitempty"`
	PositivelyRegulatedBy []Regulation       `json:"positivelyRegulatedBy,omitempty" yaml:"positivelyRegulatedBy,omitempty"`
	NegativelyRegulatedBy []Regulation       `json:"negativelyRegulatedBy,omitempty" yaml:"negativelyRegulatedBy,omitempty"`

	GoBiologicalProcess *GOTerm `json:"goBiologicalProcess,omitempty" yaml:"goBiologicalProcess,omitempty"`
}

func (r *ReactionLikeEvent) Base() *EventBase { return &r.EventBase }
func (*ReactionLikeEvent) isEvent()           {}

// GOTerm is a Gene Ontology term reference. EcNumber is only set on
// molecular-function terms.
type GOTerm struct {
	Accession string `json:"accession" yaml:"accession"`
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	EcNumber  string `json:"ecNumber,omitempty" yaml:"ecNumber,omitempty"`
}

// CatalystActivity links a catalysing entity to the molecular function it performs.
// PhysicalEntity is zero when the source names no entity.
type CatalystActivity struct {
	DBID           DBID    `json:"dbId" yaml:"dbId"`
	PhysicalEntity DBID    `json:"physicalEntity,omitempty" yaml:"physicalEntity,omitempty"`
	Activity       *GOTerm `json:"activity,omitempty" yaml:"activity,omitempty"`
}

// Regulation names a regulator of an event. The regulator may resolve to a
// physical entity or to something else (older data uses events); only
// physical entities take part in the output model.
type Regulation struct {
	DBID        DBID   `json:"dbId" yaml:"dbId"`
	Regulator   DBID   `json:"regulator" yaml:"regulator"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}
