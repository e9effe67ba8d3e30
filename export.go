package sbmlexport

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/sbmlexport/internal/builder"
	"github.com/aretw0/sbmlexport/internal/parent"
	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/observability"
	"github.com/aretw0/sbmlexport/pkg/registry"
	"github.com/aretw0/sbmlexport/pkg/sbml"
	"golang.org/x/sync/errgroup"
)

// Report lists the outcome of a batch export.
type Report struct {
	// Written holds the file names written, in id order.
	Written []string
	// Skipped holds ids that were not pathways or not found.
	Skipped []domain.DBID
}

func (r *Report) merge(o Report) {
	r.Written = append(r.Written, o.Written...)
	r.Skipped = append(r.Skipped, o.Skipped...)
}

// Skippable reports whether err means the id should be logged and skipped
// rather than abort a batch.
func Skippable(err error) bool {
	return errors.Is(err, domain.ErrPathwayNotFound) ||
		errors.Is(err, domain.ErrNotAPathway) ||
		errors.Is(err, domain.ErrEventNotFound)
}

// CacheKey identifies a rendered model. pathway separates a pathway render
// from an event list holding the same ids. Event lists keep their order.
func (e *Exporter) CacheKey(format string, dbVersion int, pathway bool, ids ...domain.DBID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}
	kind := "events"
	if pathway {
		kind = "pathway"
	}
	return fmt.Sprintf("%s/%s/%s/v%d/a%t/t%t",
		format, kind, strings.Join(parts, ","), dbVersion, e.annotations, e.testMode)
}

// Render exports one pathway in the named format. It returns the rendering
// without writing it.
func (e *Exporter) Render(ctx context.Context, format string, pathway domain.DBID) (registry.Rendered, error) {
	return e.render(ctx, format, []domain.DBID{pathway}, true)
}

// RenderEvents folds a list of events into one model. Every id must be a
// known event. The model id names the output file.
func (e *Exporter) RenderEvents(ctx context.Context, format string, events []domain.DBID) (registry.Rendered, error) {
	if len(events) == 0 {
		return registry.Rendered{}, fmt.Errorf("no events to export")
	}
	return e.render(ctx, format, events, false)
}

func (e *Exporter) render(ctx context.Context, format string, ids []domain.DBID, pathway bool) (registry.Rendered, error) {
	start := time.Now()
	f, err := e.formats.Lookup(format)
	if err != nil {
		return registry.Rendered{}, err
	}

	out, err := e.cachedRender(ctx, f, ids, pathway)
	result := observability.ResultOK
	switch {
	case err == nil:
	case Skippable(err):
		result = observability.ResultSkipped
	default:
		result = observability.ResultError
	}
	e.metrics.ObserveExport(f.Name, result, time.Since(start))
	return out, err
}

func (e *Exporter) cachedRender(ctx context.Context, f registry.Format, ids []domain.DBID, pathway bool) (registry.Rendered, error) {
	version, err := e.source.DBVersion(ctx)
	if err != nil {
		return registry.Rendered{}, fmt.Errorf("failed to read db version: %w", err)
	}
	key := e.CacheKey(f.Name, version, pathway, ids...)

	if pathway && e.cache != nil {
		data, err := e.cache.Get(ctx, key)
		switch {
		case err == nil:
			e.metrics.ObserveCache(true)
			return registry.Rendered{ID: strconv.FormatInt(int64(ids[0]), 10), Data: data}, nil
		case errors.Is(err, domain.ErrCacheMiss):
			e.metrics.ObserveCache(false)
		default:
			e.logger.Warn("export cache unavailable", "key", key, "err", err)
		}
	}

	v, err, _ := e.flights.Do(key, func() (any, error) {
		if e.locker != nil {
			unlock, err := e.locker.Lock(ctx, key, e.lockTTL)
			if err != nil {
				return nil, fmt.Errorf("failed to lock %s: %w", key, err)
			}
			defer func() {
				if err := unlock(context.WithoutCancel(ctx)); err != nil {
					e.logger.Warn("failed to release export lock", "key", key, "err", err)
				}
			}()
		}

		out, err := e.renderFresh(ctx, f, ids, pathway)
		if err != nil {
			return nil, err
		}
		if pathway && e.cache != nil {
			if err := e.cache.Put(ctx, key, out.Data); err != nil {
				e.logger.Warn("failed to cache export", "key", key, "err", err)
			}
		}
		return out, nil
	})
	if err != nil {
		return registry.Rendered{}, err
	}
	return v.(registry.Rendered), nil
}

func (e *Exporter) renderFresh(ctx context.Context, f registry.Format, ids []domain.DBID, pathway bool) (registry.Rendered, error) {
	g, err := e.source.Graph(ctx, ids...)
	if err != nil {
		return registry.Rendered{}, err
	}

	t := registry.Target{Graph: g}
	if pathway {
		p, err := g.Pathway(ids[0])
		if err != nil {
			return registry.Rendered{}, err
		}
		t.Pathway = p
	} else {
		events, err := g.Events(ids)
		if err != nil {
			return registry.Rendered{}, err
		}
		t.Events = events
	}
	return e.formats.Render(ctx, f.Name, t)
}

// ExportPathway renders a pathway and writes it to the sink as
// <dbId><extension>. It returns the file name.
func (e *Exporter) ExportPathway(ctx context.Context, format string, pathway domain.DBID) (string, error) {
	out, err := e.Render(ctx, format, pathway)
	if err != nil {
		return "", err
	}
	return e.write(ctx, format, out)
}

// ExportEvents renders a list of events as one model and writes it as
// <modelId><extension>. One unknown id aborts the export.
func (e *Exporter) ExportEvents(ctx context.Context, format string, events []domain.DBID) (string, error) {
	out, err := e.RenderEvents(ctx, format, events)
	if err != nil {
		return "", err
	}
	return e.write(ctx, format, out)
}

func (e *Exporter) write(ctx context.Context, format string, out registry.Rendered) (string, error) {
	f, err := e.formats.Lookup(format)
	if err != nil {
		return "", err
	}
	name := f.FileName(out.ID)
	if err := e.sink.Write(ctx, name, out.Data); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	e.logger.Info("exported", "file", name, "bytes", len(out.Data))
	return name, nil
}

// ExportPathways exports each pathway, up to the configured concurrency at
// a time. Ids that are not pathways are logged and skipped; any other error
// stops the batch.
func (e *Exporter) ExportPathways(ctx context.Context, format string, pathways []domain.DBID) (Report, error) {
	if _, err := e.formats.Lookup(format); err != nil {
		return Report{}, err
	}

	var (
		mu     sync.Mutex
		report Report
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for _, id := range pathways {
		g.Go(func() error {
			name, err := e.ExportPathway(ctx, format, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				report.Written = append(report.Written, name)
			case Skippable(err):
				e.logger.Error("skipping id", "dbId", id, "err", err)
				report.Skipped = append(report.Skipped, id)
			default:
				return fmt.Errorf("pathway %d: %w", id, err)
			}
			return nil
		})
	}
	err := g.Wait()
	sort.Strings(report.Written)
	sort.Slice(report.Skipped, func(i, j int) bool { return report.Skipped[i] < report.Skipped[j] })
	return report, err
}

// ExportSpecies exports every pathway of a species.
func (e *Exporter) ExportSpecies(ctx context.Context, format string, species domain.DBID) (Report, error) {
	ids, err := e.source.PathwaysForSpecies(ctx, species)
	if err != nil {
		return Report{}, err
	}
	e.logger.Info("exporting species", "species", species, "pathways", len(ids))
	return e.ExportPathways(ctx, format, ids)
}

// ExportAll exports the pathways of every species, one species after another.
func (e *Exporter) ExportAll(ctx context.Context, format string) (Report, error) {
	species, err := e.source.Species(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to list species: %w", err)
	}
	var all Report
	for _, s := range species {
		r, err := e.ExportSpecies(ctx, format, s.DBID)
		all.merge(r)
		if err != nil {
			return all, fmt.Errorf("species %d: %w", s.DBID, err)
		}
	}
	return all, nil
}

// Document builds the SBML document of a pathway together with the graph
// it was built from and the build counts.
func (e *Exporter) Document(ctx context.Context, pathway domain.DBID) (*sbml.Document, *domain.Graph, builder.Stats, error) {
	g, err := e.source.Graph(ctx, pathway)
	if err != nil {
		return nil, nil, builder.Stats{}, err
	}
	p, err := g.Pathway(pathway)
	if err != nil {
		return nil, nil, builder.Stats{}, err
	}
	b := builder.New(g, e.builderOptions(g.DBVersion)...)
	doc := b.BuildPathway(p)
	return doc, g, b.Stats(), nil
}

// InferParent returns the single pathway the events share, or nil when
// there is none.
func (e *Exporter) InferParent(ctx context.Context, events []domain.DBID) (*domain.Pathway, error) {
	g, err := e.source.Graph(ctx, events...)
	if err != nil {
		return nil, err
	}
	evs, err := g.Events(events)
	if err != nil {
		return nil, err
	}
	return parent.Infer(g, evs), nil
}

// PathwaysForSpecies lists the pathway ids of a species.
func (e *Exporter) PathwaysForSpecies(ctx context.Context, species domain.DBID) ([]domain.DBID, error) {
	return e.source.PathwaysForSpecies(ctx, species)
}
