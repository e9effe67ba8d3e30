package ports

import (
	"context"

	"github.com/aretw0/sbmlexport/pkg/domain"
)

// GraphSource resolves the Reactome objects an export needs.
// Implementations may return a larger graph than requested; callers only
// rely on the roots and everything reachable from them being present.
type GraphSource interface {
	// Graph returns a graph containing the given events and everything
	// reachable from them. An unknown root returns domain.ErrEventNotFound.
	Graph(ctx context.Context, roots ...domain.DBID) (*domain.Graph, error)

	// Species lists every taxon, ordered by id.
	Species(ctx context.Context) ([]*domain.Species, error)

	// PathwaysForSpecies lists the pathway ids of a taxon, ordered by id.
	// An unknown taxon returns domain.ErrSpeciesNotFound.
	PathwaysForSpecies(ctx context.Context, species domain.DBID) ([]domain.DBID, error)

	// DBVersion returns the release number of the source, or 0 when unknown.
	DBVersion(ctx context.Context) (int, error)
}
