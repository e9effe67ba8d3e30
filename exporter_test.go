package sbmlexport_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aretw0/sbmlexport"
	"github.com/aretw0/sbmlexport/pkg/adapters/memory"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/dsl"
	"github.com/aretw0/sbmlexport/pkg/observability"
	"github.com/aretw0/sbmlexport/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apoptosis() *domain.Graph {
	b := dsl.New().DBVersion(59)
	b.Species(48887, "Homo sapiens")
	b.Compartment(70101, "cytosol", "0005829")
	b.Simple(113592, "ATP").In(70101).Ref("ChEBI", "15422")
	b.Simple(29356, "ADP").In(70101).Ref("ChEBI", "16761")
	b.Protein(58283, "CASP3").In(70101).Ref("UniProt", "P42574")
	b.Reaction(5672965, "ATP hydrolysis").
		Input(113592).
		Output(29356).
		Catalyst(58283, &domain.GOTerm{Accession: "0016887"}).
		InSpecies(48887)
	b.Reaction(5672966, "ADP release").Input(29356).InSpecies(48887)
	b.Pathway(109581, "Apoptosis").Events(5672965, 5672966).InSpecies(48887)
	b.Pathway(200, "Caspase activation").Events(5672966).InSpecies(48887)
	return b.MustBuild()
}

type fixture struct {
	exp   *sbmlexport.Exporter
	store *memory.Store
}

func setup(t *testing.T, opts ...sbmlexport.Option) fixture {
	t.Helper()
	store := memory.NewStore()
	opts = append([]sbmlexport.Option{
		sbmlexport.WithSource(memory.NewSource(apoptosis())),
		sbmlexport.WithSink(store),
		sbmlexport.WithTestMode(true),
	}, opts...)
	exp, err := sbmlexport.New("", opts...)
	require.NoError(t, err)
	return fixture{exp: exp, store: store}
}

func (f fixture) read(t *testing.T, name string) string {
	t.Helper()
	data, err := f.store.Get(context.Background(), name)
	require.NoError(t, err)
	return string(data)
}

func TestNew_RequiresPath(t *testing.T) {
	_, err := sbmlexport.New("")
	assert.ErrorContains(t, err, "repoPath is required")
}

func TestNew_LoamDirectory(t *testing.T) {
	store := memory.NewStore()
	exp, err := sbmlexport.New("testdata/reactome",
		sbmlexport.WithSink(store),
		sbmlexport.WithClock(func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }),
	)
	require.NoError(t, err)
	assert.Equal(t, "reactome", exp.Name)

	name, err := exp.ExportPathway(context.Background(), sbmlexport.FormatSBML, 109581)
	require.NoError(t, err)
	assert.Equal(t, "109581.xml", name)

	data, err := store.Get(context.Background(), name)
	require.NoError(t, err)
	assert.Contains(t, string(data), `id="pathway_109581"`)
	assert.Contains(t, string(data), "SBML generated from Reactome version 59 on")
	assert.Contains(t, string(data), "ATP is hydrolysed to ADP in the cytosol.")
	assert.Contains(t, string(data), "http://identifiers.org/reactome/REACTOME:R-ALL-113592")
	assert.NotContains(t, string(data), `REACTOME:"`)
}

func TestExportPathway(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	name, err := f.exp.ExportPathway(ctx, sbmlexport.FormatSBML, 109581)
	require.NoError(t, err)
	assert.Equal(t, "109581.xml", name)

	out := f.read(t, name)
	assert.True(t, strings.HasPrefix(out, "<?xml version='1.0' encoding='utf-8' standalone='no'?>\n"))
	assert.Contains(t, out, `id="pathway_109581"`)
	assert.Contains(t, out, `id="reaction_5672965"`)
	assert.Contains(t, out, `id="species_113592"`)

	tests := []struct {
		name string
		id   domain.DBID
		want error
	}{
		{"reaction is not a pathway", 5672965, domain.ErrNotAPathway},
		{"unknown id", 404, domain.ErrEventNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.exp.ExportPathway(ctx, sbmlexport.FormatSBML, tt.id)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, sbmlexport.Skippable(err))
		})
	}
}

func TestExportPathway_FormatAlias(t *testing.T) {
	f := setup(t)
	name, err := f.exp.ExportPathway(context.Background(), "0", 200)
	require.NoError(t, err)
	assert.Equal(t, "200.xml", name)

	_, err = f.exp.ExportPathway(context.Background(), "json", 200)
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestExportPathway_BioPAX(t *testing.T) {
	f := setup(t)
	name, err := f.exp.ExportPathway(context.Background(), sbmlexport.FormatBioPAX3, 109581)
	require.NoError(t, err)
	assert.Equal(t, "109581.owl", name)

	out := f.read(t, name)
	assert.Contains(t, out, `rdf:ID="r0"`)
	assert.Contains(t, out, `rdf:ID="r1"`)
	assert.NotContains(t, out, `rdf:ID="r2"`)
}

func TestExportEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("inferred parent", func(t *testing.T) {
		f := setup(t, sbmlexport.WithTestMode(false), sbmlexport.WithClock(func() time.Time {
			return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		}))
		name, err := f.exp.ExportEvents(ctx, sbmlexport.FormatSBML, []domain.DBID{5672965, 5672966})
		require.NoError(t, err)
		assert.Equal(t, "pathway_109581.xml", name)
	})

	t.Run("test mode has no parent", func(t *testing.T) {
		f := setup(t)
		name, err := f.exp.ExportEvents(ctx, sbmlexport.FormatSBML, []domain.DBID{5672965})
		require.NoError(t, err)
		assert.Equal(t, "no_parent_pathway.xml", name)
	})

	t.Run("one unknown id aborts", func(t *testing.T) {
		f := setup(t)
		_, err := f.exp.ExportEvents(ctx, sbmlexport.FormatSBML, []domain.DBID{5672965, 404})
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
		assert.Empty(t, f.store.Keys())
	})

	t.Run("empty list", func(t *testing.T) {
		f := setup(t)
		_, err := f.exp.ExportEvents(ctx, sbmlexport.FormatSBML, nil)
		assert.Error(t, err)
	})

	t.Run("biopax rejects event lists", func(t *testing.T) {
		f := setup(t)
		_, err := f.exp.ExportEvents(ctx, sbmlexport.FormatBioPAX3, []domain.DBID{5672965})
		assert.ErrorContains(t, err, "pathways only")
	})
}

func TestExportPathways_SkipsInvalidIDs(t *testing.T) {
	f := setup(t, sbmlexport.WithConcurrency(2))
	report, err := f.exp.ExportPathways(context.Background(), sbmlexport.FormatSBML, []domain.DBID{109581, 5672965, 200, 404})
	require.NoError(t, err)
	assert.Equal(t, []string{"109581.xml", "200.xml"}, report.Written)
	assert.Equal(t, []domain.DBID{404, 5672965}, report.Skipped)
	assert.Equal(t, []string{"109581.xml", "200.xml"}, f.store.Keys())
}

func TestExportSpecies(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	report, err := f.exp.ExportSpecies(ctx, sbmlexport.FormatSBML, 48887)
	require.NoError(t, err)
	assert.Equal(t, []string{"109581.xml", "200.xml"}, report.Written)

	_, err = f.exp.ExportSpecies(ctx, sbmlexport.FormatSBML, 9999)
	assert.ErrorIs(t, err, domain.ErrSpeciesNotFound)
}

func TestExportAll(t *testing.T) {
	f := setup(t)
	report, err := f.exp.ExportAll(context.Background(), sbmlexport.FormatSBML)
	require.NoError(t, err)
	assert.Equal(t, []string{"109581.xml", "200.xml"}, report.Written)
	assert.Empty(t, report.Skipped)
}

func TestRender_Deterministic(t *testing.T) {
	ctx := context.Background()
	a, err := setup(t).exp.Render(ctx, sbmlexport.FormatSBML, 109581)
	require.NoError(t, err)
	b, err := setup(t).exp.Render(ctx, sbmlexport.FormatSBML, 109581)
	require.NoError(t, err)
	assert.Equal(t, string(a.Data), string(b.Data))
	assert.Equal(t, "109581", a.ID)
}

func TestRender_Cache(t *testing.T) {
	cache := memory.NewStore()
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	f := setup(t, sbmlexport.WithCache(cache), sbmlexport.WithMetrics(metrics))
	ctx := context.Background()

	first, err := f.exp.Render(ctx, sbmlexport.FormatSBML, 109581)
	require.NoError(t, err)
	second, err := f.exp.Render(ctx, sbmlexport.FormatSBML, 109581)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	key := f.exp.CacheKey(sbmlexport.FormatSBML, 59, true, 109581)
	assert.Equal(t, "sbml/pathway/109581/v59/atrue/ttrue", key)
	assert.Equal(t, []string{key}, cache.Keys())

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Exports.WithLabelValues("sbml", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Elements.WithLabelValues("reaction")))
}

func TestCacheKey_EventOrder(t *testing.T) {
	exp := setup(t).exp
	assert.NotEqual(t,
		exp.CacheKey(sbmlexport.FormatSBML, 59, false, 1, 2),
		exp.CacheKey(sbmlexport.FormatSBML, 59, false, 2, 1))
}

func TestCacheKey_PathwayAndEventsDiffer(t *testing.T) {
	exp := setup(t).exp
	assert.NotEqual(t,
		exp.CacheKey(sbmlexport.FormatSBML, 59, true, 109581),
		exp.CacheKey(sbmlexport.FormatSBML, 59, false, 109581))
}

// gatedSource holds every Graph call until release is closed.
type gatedSource struct {
	*memory.Source
	entered chan struct{}
	release chan struct{}
}

func (s *gatedSource) Graph(ctx context.Context, roots ...domain.DBID) (*domain.Graph, error) {
	s.entered <- struct{}{}
	<-s.release
	return s.Source.Graph(ctx, roots...)
}

func TestRender_ConcurrentPathwayAndEvents(t *testing.T) {
	src := &gatedSource{
		Source:  memory.NewSource(apoptosis()),
		entered: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	exp, err := sbmlexport.New("", sbmlexport.WithSource(src), sbmlexport.WithSink(memory.NewStore()), sbmlexport.WithTestMode(true))
	require.NoError(t, err)
	ctx := context.Background()

	var (
		wg                sync.WaitGroup
		pathway, events   string
		pathErr, eventErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		out, err := exp.Render(ctx, sbmlexport.FormatSBML, 109581)
		pathway, pathErr = out.ID, err
	}()
	go func() {
		defer wg.Done()
		out, err := exp.RenderEvents(ctx, sbmlexport.FormatSBML, []domain.DBID{109581})
		events, eventErr = out.ID, err
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-src.entered:
		case <-time.After(2 * time.Second):
			close(src.release)
			wg.Wait()
			t.Fatal("renders of a pathway and an event list were merged")
		}
	}
	close(src.release)
	wg.Wait()

	require.NoError(t, pathErr)
	require.NoError(t, eventErr)
	assert.Equal(t, "109581", pathway)
	assert.Equal(t, "no_parent_pathway", events)
}

type countingLocker struct {
	mu               sync.Mutex
	locked, unlocked []string
}

func (l *countingLocker) Lock(ctx context.Context, key string, ttl time.Duration) (ports.UnlockFunc, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locked = append(l.locked, key)
	return func(ctx context.Context) error {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.unlocked = append(l.unlocked, key)
		return nil
	}, nil
}

func TestRender_Locks(t *testing.T) {
	l := &countingLocker{}
	f := setup(t, sbmlexport.WithLocker(l, time.Second))
	_, err := f.exp.Render(context.Background(), sbmlexport.FormatSBML, 200)
	require.NoError(t, err)
	assert.Equal(t, []string{"sbml/pathway/200/v59/atrue/ttrue"}, l.locked)
	assert.Equal(t, l.locked, l.unlocked)
}

func TestDocument(t *testing.T) {
	doc, g, stats, err := setup(t).exp.Document(context.Background(), 109581)
	require.NoError(t, err)
	assert.Equal(t, "pathway_109581", doc.ModelID())
	assert.Equal(t, 59, g.DBVersion)
	assert.Equal(t, 2, stats.Reactions)
	assert.Equal(t, 3, stats.Species)
}

func TestInferParent(t *testing.T) {
	exp := setup(t).exp
	ctx := context.Background()

	p, err := exp.InferParent(ctx, []domain.DBID{5672965, 5672966})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, domain.DBID(109581), p.DBID)

	p, err = exp.InferParent(ctx, []domain.DBID{5672966})
	require.NoError(t, err)
	assert.Nil(t, p, "two containers means no unique parent")
}
