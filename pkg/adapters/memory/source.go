package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Source implements ports.GraphSource over a materialised graph.
// The graph is shared with callers and must not be mutated after construction.
type Source struct {
	graph *domain.Graph
}

// NewSource wraps an already populated graph.
func NewSource(g *domain.Graph) *Source {
	return &Source{graph: g}
}

// Graph returns the whole graph once every root is known.
func (s *Source) Graph(ctx context.Context, roots ...domain.DBID) (*domain.Graph, error) {
	for _, id := range roots {
		if _, ok := s.graph.Event(id); !ok {
			return nil, fmt.Errorf("%d: %w", id, domain.ErrEventNotFound)
		}
	}
	return s.graph, nil
}

// Species lists every taxon.
func (s *Source) Species(ctx context.Context) ([]*domain.Species, error) {
	return s.graph.AllSpecies(), nil
}

// PathwaysForSpecies lists the pathways tagged with a taxon.
func (s *Source) PathwaysForSpecies(ctx context.Context, species domain.DBID) ([]domain.DBID, error) {
	if _, ok := s.graph.Species(species); !ok {
		return nil, fmt.Errorf("%d: %w", species, domain.ErrSpeciesNotFound)
	}
	pathways := s.graph.PathwaysForSpecies(species)
	ids := make([]domain.DBID, 0, len(pathways))
	for _, p := range pathways {
		ids = append(ids, p.DBID)
	}
	return ids, nil
}

// DBVersion returns the version recorded on the graph.
func (s *Source) DBVersion(ctx context.Context) (int, error) {
	return s.graph.DBVersion, nil
}
