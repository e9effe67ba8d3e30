package domain

import (
	"fmt"
	"sort"
)

// Graph is an arena of source objects keyed by DBID.
// It is populated once by a loader and read without mutation afterwards.
type Graph struct {
	DBVersion int

	events       map[DBID]Event
	entities     map[DBID]PhysicalEntity
	compartments map[DBID]*Compartment
	species      map[DBID]*Species
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		events:       make(map[DBID]Event),
		entities:     make(map[DBID]PhysicalEntity),
		compartments: make(map[DBID]*Compartment),
		species:      make(map[DBID]*Species),
	}
}

// AddEvent stores an event, replacing any previous object with the same id.
func (g *Graph) AddEvent(e Event) {
	g.events[e.Base().DBID] = e
}

// AddEntity stores a physical entity.
func (g *Graph) AddEntity(pe PhysicalEntity) {
	g.entities[pe.Base().DBID] = pe
}

// AddCompartment stores a compartment.
func (g *Graph) AddCompartment(c *Compartment) {
	g.compartments[c.DBID] = c
}

// AddSpecies stores a taxon.
func (g *Graph) AddSpecies(s *Species) {
	g.species[s.DBID] = s
}

// Event looks up an event by id.
func (g *Graph) Event(id DBID) (Event, bool) {
	e, ok := g.events[id]
	return e, ok
}

// Pathway looks up an event by id and returns it only when it is a pathway.
func (g *Graph) Pathway(id DBID) (*Pathway, error) {
	e, ok := g.events[id]
	if !ok {
		return nil, fmt.Errorf("%d: %w", id, ErrPathwayNotFound)
	}
	p, ok := e.(*Pathway)
	if !ok {
		return nil, fmt.Errorf("%d is a %s: %w", id, e.Base().SchemaClass, ErrNotAPathway)
	}
	return p, nil
}

// Events resolves a list of ids in order. Unknown ids are an error.
func (g *Graph) Events(ids []DBID) ([]Event, error) {
	out := make([]Event, 0, len(ids))
	for _, id := range ids {
		e, ok := g.events[id]
		if !ok {
			return nil, fmt.Errorf("%d: %w", id, ErrEventNotFound)
		}
		out = append(out, e)
	}
	return out, nil
}

// Entity looks up a physical entity by id.
func (g *Graph) Entity(id DBID) (PhysicalEntity, bool) {
	pe, ok := g.entities[id]
	return pe, ok
}

// Compartment looks up a compartment by id.
func (g *Graph) Compartment(id DBID) (*Compartment, bool) {
	c, ok := g.compartments[id]
	return c, ok
}

// Species looks up a taxon by id.
func (g *Graph) Species(id DBID) (*Species, bool) {
	s, ok := g.species[id]
	return s, ok
}

// AllSpecies returns every taxon ordered by id.
func (g *Graph) AllSpecies() []*Species {
	out := make([]*Species, 0, len(g.species))
	for _, s := range g.species {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DBID < out[j].DBID })
	return out
}

// PathwaysForSpecies returns every pathway tagged with the taxon, ordered by id.
func (g *Graph) PathwaysForSpecies(speciesID DBID) []*Pathway {
	var out []*Pathway
	for _, e := range g.events {
		p, ok := e.(*Pathway)
		if !ok {
			continue
		}
		for _, s := range p.Species {
			if s == speciesID {
				out = append(out, p)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DBID < out[j].DBID })
	return out
}

// EventIDs returns every event id in ascending order.
func (g *Graph) EventIDs() []DBID {
	return sortedKeys(g.events)
}

// EntityIDs returns every physical entity id in ascending order.
func (g *Graph) EntityIDs() []DBID {
	return sortedKeys(g.entities)
}

// CompartmentIDs returns every compartment id in ascending order.
func (g *Graph) CompartmentIDs() []DBID {
	return sortedKeys(g.compartments)
}

// Len returns the number of stored objects of every kind.
func (g *Graph) Len() int {
	return len(g.events) + len(g.entities) + len(g.compartments) + len(g.species)
}

func sortedKeys[V any](m map[DBID]V) []DBID {
	keys := make([]DBID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Has reports whether any object of any kind is stored under id.
func (g *Graph) Has(id DBID) bool {
	if _, ok := g.events[id]; ok {
		return true
	}
	if _, ok := g.entities[id]; ok {
		return true
	}
	if _, ok := g.compartments[id]; ok {
		return true
	}
	_, ok := g.species[id]
	return ok
}

// LinkContainers records every pathway in the EventOf list of its children,
// keeping containers that are already listed. Loaders that only carry
// hasEvent call it once after populating the graph.
func (g *Graph) LinkContainers() {
	for _, id := range sortedKeys(g.events) {
		p, ok := g.events[id].(*Pathway)
		if !ok {
			continue
		}
		for _, child := range p.HasEvent {
			e, ok := g.events[child]
			if !ok {
				continue
			}
			base := e.Base()
			if !containsID(base.EventOf, p.DBID) {
				base.EventOf = append(base.EventOf, p.DBID)
			}
		}
	}
}

func containsID(ids []DBID, id DBID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
