package sbmlexport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/sbmlexport/internal/builder"
	"github.com/aretw0/sbmlexport/pkg/adapters/biopax"
	"github.com/aretw0/sbmlexport/pkg/adapters/file"
	loamAdapter "github.com/aretw0/sbmlexport/pkg/adapters/loam"
	"github.com/aretw0/sbmlexport/pkg/adapters/sbmlxml"
	"github.com/aretw0/sbmlexport/pkg/observability"
	"github.com/aretw0/sbmlexport/pkg/ports"
	"github.com/aretw0/sbmlexport/pkg/registry"
	"golang.org/x/sync/singleflight"
)

// Format names registered by default.
const (
	FormatSBML    = "sbml"
	FormatBioPAX3 = "biopax3"
)

// DefaultConcurrency bounds parallel pathway exports.
const DefaultConcurrency = 4

// DefaultLockTTL is how long an export lock is held at most.
const DefaultLockTTL = 2 * time.Minute

// Exporter is the high-level entry point of the library. It reads a
// GraphSource, renders models through the format registry and writes them
// to an OutputSink.
type Exporter struct {
	source  ports.GraphSource
	sink    ports.OutputSink
	cache   ports.ExportCache
	locker  ports.DistributedLocker
	metrics *observability.Metrics
	formats *registry.Registry
	logger  *slog.Logger

	annotations bool
	testMode    bool
	concurrency int
	lockTTL     time.Duration
	now         func() time.Time

	flights singleflight.Group
	Name    string
}

// Option defines a functional option for configuring the Exporter.
type Option func(*Exporter)

// WithSource injects a GraphSource, bypassing the default Loam initialization.
func WithSource(s ports.GraphSource) Option {
	return func(e *Exporter) {
		e.source = s
	}
}

// WithSink sets where exported files go. The default is the current directory.
func WithSink(s ports.OutputSink) Option {
	return func(e *Exporter) {
		e.sink = s
	}
}

// WithCache enables caching of rendered models.
func WithCache(c ports.ExportCache) Option {
	return func(e *Exporter) {
		e.cache = c
	}
}

// WithLocker serialises renders of the same model across processes.
func WithLocker(l ports.DistributedLocker, ttl time.Duration) Option {
	return func(e *Exporter) {
		e.locker = l
		if ttl > 0 {
			e.lockTTL = ttl
		}
	}
}

// WithMetrics records export metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(e *Exporter) {
		e.metrics = m
	}
}

// WithFormats replaces the default format registry.
func WithFormats(r *registry.Registry) Option {
	return func(e *Exporter) {
		e.formats = r
	}
}

// WithLogger sets a custom structured logger for the exporter.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithAnnotations toggles model annotations. They are on by default.
func WithAnnotations(on bool) Option {
	return func(e *Exporter) {
		e.annotations = on
	}
}

// WithTestMode makes output reproducible: no generation timestamp and no
// parent inference for event lists.
func WithTestMode(on bool) Option {
	return func(e *Exporter) {
		e.testMode = on
	}
}

// WithConcurrency bounds parallel pathway exports.
func WithConcurrency(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithClock overrides the provenance timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

// New initializes an Exporter.
// By default, it reads a Loam fixture directory at repoPath.
// If WithSource is provided, repoPath can be empty and Loam is skipped.
func New(repoPath string, opts ...Option) (*Exporter, error) {
	e := &Exporter{
		annotations: true,
		concurrency: DefaultConcurrency,
		lockTTL:     DefaultLockTTL,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if e.source == nil {
		if repoPath == "" {
			return nil, fmt.Errorf("repoPath is required when no custom source is provided")
		}
		absPath, err := filepath.Abs(repoPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		e.Name = filepath.Base(absPath)

		src, err := loamAdapter.Open(absPath, loamAdapter.WithLogger(e.logger))
		if err != nil {
			return nil, err
		}
		e.source = src
	} else if repoPath != "" {
		e.Name = filepath.Base(repoPath)
	}

	if e.Name != "" {
		e.logger = e.logger.With("source", e.Name)
	}
	if e.sink == nil {
		e.sink = file.NewSink(".")
	}
	if e.formats == nil {
		e.formats = registry.NewRegistry()
		e.RegisterDefaultFormats(e.formats)
	}
	return e, nil
}

// RegisterDefaultFormats adds sbml (alias "0") and biopax3 to r, rendering
// with this exporter's build settings.
func (e *Exporter) RegisterDefaultFormats(r *registry.Registry) {
	r.Register(registry.Format{
		Name:        FormatSBML,
		Aliases:     []string{"0"},
		Extension:   ".xml",
		ContentType: "application/sbml+xml",
		Render:      e.renderSBML,
	})
	r.Register(registry.Format{
		Name:         FormatBioPAX3,
		Extension:    ".owl",
		ContentType:  "application/rdf+xml",
		PathwaysOnly: true,
		Render:       e.renderBioPAX,
	})
}

func (e *Exporter) builderOptions(dbVersion int) []builder.Option {
	opts := []builder.Option{
		builder.WithAnnotations(e.annotations),
		builder.WithTestMode(e.testMode),
		builder.WithDBVersion(dbVersion),
		builder.WithLogger(e.logger),
		builder.WithToolVersion(Version),
	}
	if e.now != nil {
		opts = append(opts, builder.WithClock(e.now))
	}
	return opts
}

func (e *Exporter) renderSBML(ctx context.Context, t registry.Target) (registry.Rendered, error) {
	b := builder.New(t.Graph, e.builderOptions(t.Graph.DBVersion)...)

	var out registry.Rendered
	if t.Pathway != nil {
		doc := b.BuildPathway(t.Pathway)
		data, err := sbmlxml.Marshal(doc)
		if err != nil {
			return out, err
		}
		out = registry.Rendered{ID: fmt.Sprint(t.Pathway.DBID), Data: data}
	} else {
		doc := b.BuildEvents(t.Events)
		data, err := sbmlxml.Marshal(doc)
		if err != nil {
			return out, err
		}
		out = registry.Rendered{ID: doc.ModelID(), Data: data}
	}

	stats := b.Stats()
	e.metrics.ObserveBuild(stats)
	if stats.Skipped > 0 {
		e.logger.Warn("incomplete source graph", "id", out.ID, "skipped", stats.Skipped)
	}
	return out, nil
}

func (e *Exporter) renderBioPAX(ctx context.Context, t registry.Target) (registry.Rendered, error) {
	data, err := biopax.Marshal(biopax.Build(t.Graph, t.Pathway))
	if err != nil {
		return registry.Rendered{}, err
	}
	return registry.Rendered{ID: fmt.Sprint(t.Pathway.DBID), Data: data}, nil
}

// Source returns the GraphSource the exporter reads.
func (e *Exporter) Source() ports.GraphSource {
	return e.source
}

// Formats returns the format registry.
func (e *Exporter) Formats() *registry.Registry {
	return e.formats
}
