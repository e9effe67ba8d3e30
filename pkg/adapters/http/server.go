// Package http serves exports over HTTP with chi.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RequestIDHeader carries the request id in and out.
const RequestIDHeader = "X-Request-ID"

// ModelIDHeader names the model of an event-list export.
const ModelIDHeader = "X-Model-ID"

// Exporter defines what the server needs from the export core.
type Exporter interface {
	Render(ctx context.Context, format string, pathway domain.DBID) (registry.Rendered, error)
	RenderEvents(ctx context.Context, format string, events []domain.DBID) (registry.Rendered, error)
	InferParent(ctx context.Context, events []domain.DBID) (*domain.Pathway, error)
	PathwaysForSpecies(ctx context.Context, species domain.DBID) ([]domain.DBID, error)
	Formats() *registry.Registry
}

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Server implements the generated ServerInterface.
type Server struct {
	Exporter Exporter
	Version  string
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

var _ ServerInterface = (*Server)(nil)

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGatherer sets what /metrics exposes. The default is the global registry.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithVersion sets the version reported by /info.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.Version = v
	}
}

// NewHandler creates a new HTTP handler for the exporter.
func NewHandler(exp Exporter, opts ...Option) http.Handler {
	s := &Server{
		Exporter: exp,
		Version:  "dev",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(validationMiddleware(s.logger))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.log(r).Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	return enableCORS(HandlerFromMux(s, r))
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>sbmlexport API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, "+RequestIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader+", "+ModelIDHeader)
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type loggerKey struct{}

// requestID tags each request with an id, generated unless the client sent one.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		logger := s.logger.With("request_id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), loggerKey{}, logger)))
	})
}

func (s *Server) log(r *http.Request) *slog.Logger {
	if l, ok := r.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return s.logger
}

// GetPathway handles GET /pathways/{id}?format=.
func (s *Server) GetPathway(w http.ResponseWriter, r *http.Request, id ID, params GetPathwayParams) {
	format := formatOf(params.Format)
	out, err := s.Exporter.Render(r.Context(), format, id)
	if err != nil {
		s.fail(w, r, "Render", err)
		return
	}
	s.writeModel(w, r, format, out)
}

// PostEvents handles POST /events, folding the events into one model.
func (s *Server) PostEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeEvents(w, r)
	if !ok {
		return
	}
	format := formatOf(body.Format)
	out, err := s.Exporter.RenderEvents(r.Context(), format, body.Events)
	if err != nil {
		s.fail(w, r, "RenderEvents", err)
		return
	}
	w.Header().Set(ModelIDHeader, out.ID)
	s.writeModel(w, r, format, out)
}

// PostParent handles POST /events/parent. Parent is null when the events
// share no unique pathway.
func (s *Server) PostParent(w http.ResponseWriter, r *http.Request) {
	body, ok := s.decodeEvents(w, r)
	if !ok {
		return
	}
	p, err := s.Exporter.InferParent(r.Context(), body.Events)
	if err != nil {
		s.fail(w, r, "InferParent", err)
		return
	}
	var resp ParentResponse
	if p != nil {
		ref := PathwayRef{DbId: p.DBID, DisplayName: p.DisplayName}
		if p.StID != "" {
			ref.StId = &p.StID
		}
		resp.Parent = &ref
	}
	s.writeJSON(w, r, resp)
}

// GetSpeciesPathways handles GET /species/{id}/pathways.
func (s *Server) GetSpeciesPathways(w http.ResponseWriter, r *http.Request, id ID) {
	ids, err := s.Exporter.PathwaysForSpecies(r.Context(), id)
	if err != nil {
		s.fail(w, r, "PathwaysForSpecies", err)
		return
	}
	if ids == nil {
		ids = []DBID{}
	}
	s.writeJSON(w, r, SpeciesPathways{Species: id, Pathways: ids})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, Info{
		App:     "sbmlexport-http",
		Version: s.Version,
		Formats: s.Exporter.Formats().Names(),
	})
}

func (s *Server) decodeEvents(w http.ResponseWriter, r *http.Request) (PostEventsJSONRequestBody, bool) {
	var body PostEventsJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.log(r).Warn("Invalid request body", "error", err)
		return body, false
	}
	if len(body.Events) == 0 {
		http.Error(w, "No events given", http.StatusBadRequest)
		return body, false
	}
	return body, true
}

func formatOf(s *string) string {
	if s == nil || *s == "" {
		return "sbml"
	}
	return *s
}

// fail maps export errors to status codes.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnknownFormat):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrPathwayNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrSpeciesNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrNotAPathway):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.log(r).Error(op+" failed", "error", err)
	} else {
		s.log(r).Warn(op+" rejected", "error", err, "status", status)
	}
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
}

func (s *Server) writeModel(w http.ResponseWriter, r *http.Request, format string, out registry.Rendered) {
	contentType := "application/xml"
	if f, err := s.Exporter.Formats().Lookup(format); err == nil && f.ContentType != "" {
		contentType = f.ContentType
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(out.Data); err != nil {
		s.log(r).Error("model write failed", "error", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log(r).Error("response encode failed", "error", err)
	}
}
