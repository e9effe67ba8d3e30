package dsl

import (
	"fmt"

	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Builder manages the graph construction.
type Builder struct {
	graph *domain.Graph
	order []domain.DBID
	dups  []domain.DBID
}

// New creates a new graph builder.
func New() *Builder {
	return &Builder{graph: domain.NewGraph()}
}

// DBVersion sets the database release of the graph.
func (b *Builder) DBVersion(v int) *Builder {
	b.graph.DBVersion = v
	return b
}

func (b *Builder) claim(id domain.DBID) {
	for _, seen := range b.order {
		if seen == id {
			b.dups = append(b.dups, id)
			return
		}
	}
	b.order = append(b.order, id)
}

// Compartment adds a compartment with its GO cellular component accession.
func (b *Builder) Compartment(id domain.DBID, name, accession string) *Builder {
	b.claim(id)
	b.graph.AddCompartment(&domain.Compartment{DBID: id, DisplayName: name, Accession: accession})
	return b
}

// Species adds a taxon.
func (b *Builder) Species(id domain.DBID, name string) *Builder {
	b.claim(id)
	b.graph.AddSpecies(&domain.Species{DBID: id, DisplayName: name})
	return b
}

// Build links pathway containment and returns the graph. Reusing an id for
// two objects is an error.
func (b *Builder) Build() (*domain.Graph, error) {
	if len(b.dups) > 0 {
		return nil, fmt.Errorf("duplicate ids %v", b.dups)
	}
	b.graph.LinkContainers()
	return b.graph, nil
}

// MustBuild is Build for fixtures; it panics on error.
func (b *Builder) MustBuild() *domain.Graph {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

func defaultStID(id domain.DBID) string {
	return fmt.Sprintf("R-HSA-%d", id)
}
