package loam

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/aretw0/loam"
	"github.com/aretw0/sbmlexport/internal/compiler"
	"github.com/aretw0/sbmlexport/internal/dto"
	"github.com/aretw0/sbmlexport/pkg/adapters/memory"
	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Source adapts a Loam repository of Reactome records to ports.GraphSource.
// Each document holds one object in its frontmatter. A non-empty markdown
// body becomes the first summation of an event.
type Source struct {
	Repo   *loam.TypedRepository[dto.Record]
	logger *slog.Logger

	mu  sync.Mutex
	mem *memory.Source
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used while loading documents.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a new Loam source. Documents are read on first use.
func New(repo *loam.TypedRepository[dto.Record], opts ...Option) *Source {
	s := &Source{
		Repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open initializes a read-only Loam repository at dir and wraps it.
func Open(dir string, opts ...Option) (*Source, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	repo, err := loam.Init(absPath, loam.WithReadOnly(true))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[dto.Record](repo), opts...), nil
}

// Load reads every document and compiles the graph. The result is kept;
// a failed load is retried on the next call.
func (s *Source) Load(ctx context.Context) (*domain.Graph, error) {
	src, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	return src.Graph(ctx)
}

func (s *Source) source(ctx context.Context) (*memory.Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mem != nil {
		return s.mem, nil
	}

	docs, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	// List returns metadata only; the body needs a Get per document.
	records := make([]dto.Record, 0, len(docs))
	for _, listed := range docs {
		doc, err := s.Repo.Get(ctx, listed.ID)
		if err != nil {
			return nil, fmt.Errorf("loam get failed for %s: %w", listed.ID, err)
		}
		rec := doc.Data
		if rec.DBID == 0 && rec.SchemaClass != domain.ClassDBInfo {
			id, err := idFromName(doc.ID)
			if err != nil {
				return nil, fmt.Errorf("document %s: %w", doc.ID, err)
			}
			rec.DBID = id
		}
		if body := strings.TrimSpace(doc.Content); body != "" {
			rec.Summation = append([]string{body}, rec.Summation...)
		}
		records = append(records, rec)
	}

	g, err := compiler.Compile(0, records)
	if err != nil {
		return nil, fmt.Errorf("loam compile failed: %w", err)
	}
	s.logger.Debug("loaded loam records", "documents", len(docs), "objects", g.Len())

	s.mem = memory.NewSource(g)
	return s.mem, nil
}

// idFromName derives a dbId from a document name such as "events/109581.md".
func idFromName(name string) (int64, error) {
	base := filepath.Base(filepath.ToSlash(name))
	base = strings.TrimSuffix(base, filepath.Ext(base))
	id, err := strconv.ParseInt(base, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("no dbId in frontmatter and name %q is not numeric", name)
	}
	return id, nil
}

// Graph returns the compiled graph once every root is known.
func (s *Source) Graph(ctx context.Context, roots ...domain.DBID) (*domain.Graph, error) {
	src, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	return src.Graph(ctx, roots...)
}

// Species lists every taxon.
func (s *Source) Species(ctx context.Context) ([]*domain.Species, error) {
	src, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	return src.Species(ctx)
}

// PathwaysForSpecies lists the pathways tagged with a taxon.
func (s *Source) PathwaysForSpecies(ctx context.Context, species domain.DBID) ([]domain.DBID, error) {
	src, err := s.source(ctx)
	if err != nil {
		return nil, err
	}
	return src.PathwaysForSpecies(ctx, species)
}

// DBVersion returns the version of the DBInfo document, or 0.
func (s *Source) DBVersion(ctx context.Context) (int, error) {
	src, err := s.source(ctx)
	if err != nil {
		return 0, err
	}
	return src.DBVersion(ctx)
}
