// Package mcp exposes the exporter as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/sbmlexport/pkg/domain"
	"github.com/aretw0/sbmlexport/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// FormatsURI is the resource listing the registered formats.
const FormatsURI = "sbmlexport://formats"

// ExportResponse is the structured result of the export tools.
type ExportResponse struct {
	ID     string `json:"id" jsonschema_description:"Pathway dbId or model id naming the output"`
	Format string `json:"format" jsonschema_description:"Export format used"`
	Model  string `json:"model" jsonschema_description:"The rendered model document"`
}

// ParentResponse is the structured result of infer_parent.
type ParentResponse struct {
	Found       bool   `json:"found" jsonschema_description:"Whether the events share exactly one pathway"`
	DBID        int64  `json:"dbId,omitempty" jsonschema_description:"Database id of the parent pathway"`
	StID        string `json:"stId,omitempty" jsonschema_description:"Stable id of the parent pathway"`
	DisplayName string `json:"displayName,omitempty" jsonschema_description:"Name of the parent pathway"`
}

// Exporter defines what the MCP server needs from the export core.
type Exporter interface {
	Render(ctx context.Context, format string, pathway domain.DBID) (registry.Rendered, error)
	RenderEvents(ctx context.Context, format string, events []domain.DBID) (registry.Rendered, error)
	InferParent(ctx context.Context, events []domain.DBID) (*domain.Pathway, error)
	Formats() *registry.Registry
}

// Server wraps the Exporter and exposes it as an MCP Server.
type Server struct {
	exporter  Exporter
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(exp Exporter, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		exporter:  exp,
		logger:    logger,
		mcpServer: server.NewMCPServer("sbmlexport-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: export_pathway
	pathwayTool := mcp.NewTool("export_pathway",
		mcp.WithDescription("Export a Reactome pathway as an SBML (or BioPAX3) model."),
		mcp.WithString("pathway_id", mcp.Required(), mcp.Description("Database id (dbId) of the pathway")),
		mcp.WithString("format", mcp.Description("sbml (default) or biopax3")),
		mcp.WithOutputSchema[ExportResponse](),
	)
	s.mcpServer.AddTool(pathwayTool, mcp.NewStructuredToolHandler(s.handleExportPathway))

	// TOOL: export_events
	eventsTool := mcp.NewTool("export_events",
		mcp.WithDescription("Fold a list of Reactome events into one SBML model. The model takes the identity of their unique parent pathway when there is one."),
		mcp.WithString("events", mcp.Required(), mcp.Description("Comma separated event dbIds, in model order")),
		mcp.WithString("format", mcp.Description("Export format (default sbml)")),
		mcp.WithOutputSchema[ExportResponse](),
	)
	s.mcpServer.AddTool(eventsTool, mcp.NewStructuredToolHandler(s.handleExportEvents))

	// TOOL: infer_parent
	parentTool := mcp.NewTool("infer_parent",
		mcp.WithDescription("Find the single pathway that directly contains every given event."),
		mcp.WithString("events", mcp.Required(), mcp.Description("Comma separated event dbIds")),
		mcp.WithOutputSchema[ParentResponse](),
	)
	s.mcpServer.AddTool(parentTool, mcp.NewStructuredToolHandler(s.handleInferParent))
}

func (s *Server) handleExportPathway(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ExportResponse, error) {
	ids, err := idsArg(args, "pathway_id")
	if err != nil {
		return ExportResponse{}, err
	}
	if len(ids) != 1 {
		return ExportResponse{}, fmt.Errorf("pathway_id takes one id, got %d", len(ids))
	}
	format := formatArg(args)
	out, err := s.exporter.Render(ctx, format, ids[0])
	if err != nil {
		s.logger.Warn("MCP export_pathway failed", "error", err, "pathway", ids[0])
		return ExportResponse{}, fmt.Errorf("export failed: %w", err)
	}
	return ExportResponse{ID: out.ID, Format: format, Model: string(out.Data)}, nil
}

func (s *Server) handleExportEvents(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ExportResponse, error) {
	ids, err := idsArg(args, "events")
	if err != nil {
		return ExportResponse{}, err
	}
	format := formatArg(args)
	out, err := s.exporter.RenderEvents(ctx, format, ids)
	if err != nil {
		s.logger.Warn("MCP export_events failed", "error", err)
		return ExportResponse{}, fmt.Errorf("export failed: %w", err)
	}
	return ExportResponse{ID: out.ID, Format: format, Model: string(out.Data)}, nil
}

func (s *Server) handleInferParent(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ParentResponse, error) {
	ids, err := idsArg(args, "events")
	if err != nil {
		return ParentResponse{}, err
	}
	p, err := s.exporter.InferParent(ctx, ids)
	if err != nil {
		return ParentResponse{}, fmt.Errorf("inference failed: %w", err)
	}
	if p == nil {
		return ParentResponse{}, nil
	}
	return ParentResponse{Found: true, DBID: int64(p.DBID), StID: p.StID, DisplayName: p.DisplayName}, nil
}

func formatArg(args map[string]interface{}) string {
	if f, ok := args["format"].(string); ok && strings.TrimSpace(f) != "" {
		return strings.TrimSpace(f)
	}
	return "sbml"
}

// idsArg reads a comma separated list, a JSON array or a single number.
func idsArg(args map[string]interface{}, key string) ([]domain.DBID, error) {
	raw, ok := args[key]
	if !ok {
		return nil, fmt.Errorf("missing %s", key)
	}

	var parts []string
	switch v := raw.(type) {
	case string:
		if strings.HasPrefix(strings.TrimSpace(v), "[") {
			var nums []int64
			if err := json.Unmarshal([]byte(v), &nums); err != nil {
				return nil, fmt.Errorf("invalid %s: %w", key, err)
			}
			ids := make([]domain.DBID, len(nums))
			for i, n := range nums {
				ids[i] = domain.DBID(n)
			}
			return ids, nil
		}
		parts = strings.Split(v, ",")
	case float64:
		return []domain.DBID{domain.DBID(v)}, nil
	case []interface{}:
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
	default:
		return nil, fmt.Errorf("invalid %s: %T", key, raw)
	}

	ids := make([]domain.DBID, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %q is not a dbId", key, p)
		}
		ids = append(ids, domain.DBID(n))
	}
	if len(ids) == 0 {
		return nil, errors.New("no ids given in " + key)
	}
	return ids, nil
}

func (s *Server) registerResources() {
	// EXPOSE: sbmlexport://formats
	s.mcpServer.AddResource(mcp.NewResource(FormatsURI, "Export formats",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(s.exporter.Formats().Names())
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      FormatsURI,
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
