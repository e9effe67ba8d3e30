package ports

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SourceFixture describes what a GraphSource under contract test holds.
type SourceFixture struct {
	// Pathway has at least one child event.
	Pathway domain.DBID
	// Species is a taxon Pathway is tagged with.
	Species domain.DBID
	// DBVersion is the release the source reports.
	DBVersion int
}

// Unknown is an id no contract fixture may use.
const Unknown domain.DBID = 987654321

// RunGraphSourceContract runs a suite of tests to verify that a GraphSource implementation
// adheres to the defined interface contract.
func RunGraphSourceContract(t *testing.T, src GraphSource, fx SourceFixture) {
	ctx := context.Background()

	t.Run("Graph contains root and children", func(t *testing.T) {
		g, err := src.Graph(ctx, fx.Pathway)
		require.NoError(t, err)

		p, err := g.Pathway(fx.Pathway)
		require.NoError(t, err)
		require.NotEmpty(t, p.HasEvent, "fixture pathway needs children")

		for _, id := range p.HasEvent {
			child, ok := g.Event(id)
			require.True(t, ok, "child %d missing", id)
			assert.Contains(t, child.Base().EventOf, fx.Pathway, "child %d should list its container", id)
		}
	})

	t.Run("Graph unknown root", func(t *testing.T) {
		_, err := src.Graph(ctx, Unknown)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("Species", func(t *testing.T) {
		species, err := src.Species(ctx)
		require.NoError(t, err)
		var ids []domain.DBID
		for _, s := range species {
			ids = append(ids, s.DBID)
		}
		assert.Contains(t, ids, fx.Species)
		assert.True(t, sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }), "species should be ordered by id")
	})

	t.Run("PathwaysForSpecies", func(t *testing.T) {
		ids, err := src.PathwaysForSpecies(ctx, fx.Species)
		require.NoError(t, err)
		assert.Contains(t, ids, fx.Pathway)

		_, err = src.PathwaysForSpecies(ctx, Unknown)
		assert.ErrorIs(t, err, domain.ErrSpeciesNotFound)
	})

	t.Run("DBVersion", func(t *testing.T) {
		v, err := src.DBVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, fx.DBVersion, v)
	})
}

// RunExportCacheContract runs a suite of tests to verify that an ExportCache implementation
// adheres to the defined interface contract.
func RunExportCacheContract(t *testing.T, cache ExportCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405")

	t.Run("Put and Get", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, []byte("<sbml/>")))

		data, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("<sbml/>"), data)
	})

	t.Run("Put replaces", func(t *testing.T) {
		require.NoError(t, cache.Put(ctx, key, []byte("v2")))
		data, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Delete(ctx, key))
		_, err := cache.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss, "Get after Delete should miss")
	})
}

// RunOutputSinkContract runs a suite of tests to verify that an OutputSink implementation
// adheres to the defined interface contract. read fetches what the sink stored.
func RunOutputSinkContract(t *testing.T, sink OutputSink, read func(name string) ([]byte, error)) {
	ctx := context.Background()

	t.Run("Write", func(t *testing.T) {
		require.NoError(t, sink.Write(ctx, "109581.xml", []byte("<sbml/>")))
		data, err := read("109581.xml")
		require.NoError(t, err)
		assert.Equal(t, []byte("<sbml/>"), data)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, sink.Write(ctx, "109581.xml", []byte("<sbml level=\"3\"/>")))
		data, err := read("109581.xml")
		require.NoError(t, err)
		assert.Equal(t, []byte("<sbml level=\"3\"/>"), data)
	})
}
