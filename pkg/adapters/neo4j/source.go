package neo4j

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/aretw0/sbmlexport/internal/compiler"
	"github.com/aretw0/sbmlexport/internal/dto"
	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Source implements ports.GraphSource over the Reactome graph database.
// Every Graph call fetches the closure of its roots afresh.
type Source struct {
	driver Driver
	logger *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger for query diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New wraps a driver.
func New(driver Driver, opts ...Option) *Source {
	s := &Source{
		driver: driver,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the underlying driver.
func (s *Source) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Graph fetches the events below roots, their participants and compartments.
func (s *Source) Graph(ctx context.Context, roots ...domain.DBID) (*domain.Graph, error) {
	rootIDs := make([]int64, len(roots))
	for i, id := range roots {
		rootIDs[i] = int64(id)
	}

	events, err := s.records(ctx, eventsQuery, map[string]any{"roots": rootIDs})
	if err != nil {
		return nil, fmt.Errorf("events: %w", err)
	}
	entities, err := s.records(ctx, entitiesQuery, map[string]any{"roots": rootIDs})
	if err != nil {
		return nil, fmt.Errorf("entities: %w", err)
	}

	compartmentIDs := compartmentsOf(entities)
	var compartments []dto.Record
	if len(compartmentIDs) > 0 {
		compartments, err = s.records(ctx, compartmentsQuery, map[string]any{"ids": compartmentIDs})
		if err != nil {
			return nil, fmt.Errorf("compartments: %w", err)
		}
	}

	version, err := s.DBVersion(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]dto.Record, 0, len(events)+len(entities)+len(compartments))
	all = append(all, events...)
	all = append(all, entities...)
	all = append(all, compartments...)

	g, err := compiler.Compile(version, all)
	if err != nil {
		return nil, err
	}
	for _, id := range roots {
		if _, ok := g.Event(id); !ok {
			return nil, fmt.Errorf("%d: %w", id, domain.ErrEventNotFound)
		}
	}

	s.logger.Debug("fetched graph", "roots", roots, "events", len(events), "entities", len(entities), "compartments", len(compartments))
	return g, nil
}

// Species lists every taxon in the database, ordered by id.
func (s *Source) Species(ctx context.Context) ([]*domain.Species, error) {
	recs, err := s.records(ctx, speciesQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("species: %w", err)
	}
	out := make([]*domain.Species, 0, len(recs))
	for _, r := range recs {
		out = append(out, &domain.Species{DBID: domain.DBID(r.DBID), DisplayName: r.DisplayName, TaxID: r.TaxID})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DBID < out[j].DBID })
	return out, nil
}

// PathwaysForSpecies lists the pathways tagged with a taxon.
func (s *Source) PathwaysForSpecies(ctx context.Context, species domain.DBID) ([]domain.DBID, error) {
	res, err := s.driver.ExecuteQuery(ctx, pathwaysForSpeciesQuery, map[string]any{"species": int64(species)})
	if err != nil {
		return nil, fmt.Errorf("pathways for species %d: %w", species, err)
	}
	if len(res.Records) == 0 {
		return nil, fmt.Errorf("%d: %w", species, domain.ErrSpeciesNotFound)
	}
	raw, _ := res.Records[0].Get("pathways")
	list, _ := raw.([]any)
	ids := make([]domain.DBID, 0, len(list))
	for _, v := range list {
		if id, ok := toInt64(v); ok {
			ids = append(ids, domain.DBID(id))
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// DBVersion reads the release number from the DBInfo node, or 0 when absent.
func (s *Source) DBVersion(ctx context.Context) (int, error) {
	res, err := s.driver.ExecuteQuery(ctx, dbVersionQuery, nil)
	if err != nil {
		return 0, fmt.Errorf("db version: %w", err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	raw, _ := res.Records[0].Get("version")
	v, _ := toInt64(raw)
	return int(v), nil
}

func (s *Source) records(ctx context.Context, query string, params map[string]any) ([]dto.Record, error) {
	res, err := s.driver.ExecuteQuery(ctx, query, params)
	if err != nil {
		return nil, err
	}
	out := make([]dto.Record, 0, len(res.Records))
	for _, row := range res.Records {
		raw, ok := row.Get("record")
		if !ok {
			return nil, fmt.Errorf("row without record column")
		}
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record column is %T", raw)
		}
		rec, err := compiler.Decode(flattenOrdered(m))
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

// flattenOrdered replaces every list of {id, order} pairs with the ids
// sorted by order. Pairs without an order keep their position after the
// ordered ones.
func flattenOrdered(m map[string]any) map[string]any {
	for key, v := range m {
		list, ok := v.([]any)
		if !ok || len(list) == 0 || !isOrderedPair(list[0]) {
			continue
		}
		type pair struct {
			id    any
			order int64
			has   bool
		}
		pairs := make([]pair, 0, len(list))
		for _, item := range list {
			p, ok := item.(map[string]any)
			if !ok {
				continue
			}
			o, has := toInt64(p["order"])
			pairs = append(pairs, pair{id: p["id"], order: o, has: has})
		}
		sort.SliceStable(pairs, func(i, j int) bool {
			if pairs[i].has != pairs[j].has {
				return pairs[i].has
			}
			return pairs[i].order < pairs[j].order
		})
		ids := make([]any, len(pairs))
		for i, p := range pairs {
			ids[i] = p.id
		}
		m[key] = ids
	}
	return m
}

func isOrderedPair(v any) bool {
	p, ok := v.(map[string]any)
	if !ok || len(p) != 2 {
		return false
	}
	_, hasID := p["id"]
	_, hasOrder := p["order"]
	return hasID && hasOrder
}

func compartmentsOf(entities []dto.Record) []int64 {
	seen := make(map[int64]bool)
	var ids []int64
	for _, e := range entities {
		for _, c := range e.Compartment {
			if !seen[c] {
				seen[c] = true
				ids = append(ids, c)
			}
		}
	}
	return ids
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
