package application

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gorgias-oss/gorgias-mcp-server/internal/domain"
	"github.com/gorgias-oss/gorgias-mcp-server/internal/gorgias"
)

// Config carries the process-level settings the router applies to every
// request.
type Config struct {
	ServerName      string
	Version         string
	CharLimit       int
	DefaultPageSize int
	MaxPageSize     int

	// UpstreamBaseURL overrides the derived Gorgias base URL, for tests.
	UpstreamBaseURL string
}

// Router is the HTTP front of the service. Everything behind /mcp is built
// fresh per request from that request's credential headers; the router itself
// holds no tenant state.
type Router struct {
	cfg    Config
	logger *slog.Logger
	mux    *http.ServeMux
}

// NewRouter wires the four routes of the service.
func NewRouter(cfg Config, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Router{cfg: cfg, logger: logger, mux: http.NewServeMux()}
	r.mux.HandleFunc("/health", r.handleHealth)
	r.mux.HandleFunc("/mcp", r.handleMCP)
	r.mux.HandleFunc("/sse", r.handleSSE)
	r.mux.HandleFunc("/", r.handleInfo)
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"server": r.cfg.ServerName,
	})
}

// handleMCP is the protocol endpoint. Credential validation is the only
// failure that surfaces as a top-level HTTP error; everything past it flows
// through the protocol runtime as tool envelopes.
func (r *Router) handleMCP(w http.ResponseWriter, req *http.Request) {
	creds := domain.ExtractCredentials(req.Header)
	if err := creds.Validate(); err != nil {
		var credErr *domain.CredentialsError
		errors.As(err, &credErr)
		r.logger.Warn("rejected unauthenticated request",
			"method", req.Method,
			"path", req.URL.Path,
			"missing_headers", credErr.MissingHeaders,
		)
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"error":            "unauthorized",
			"message":          credErr.Error(),
			"required_headers": domain.RequiredHeaders(),
		})
		return
	}

	client := gorgias.NewClient(creds, gorgias.Config{
		DefaultPageSize: r.cfg.DefaultPageSize,
		MaxPageSize:     r.cfg.MaxPageSize,
		BaseURL:         r.cfg.UpstreamBaseURL,
	})
	formatter := domain.Formatter{CharLimit: r.cfg.CharLimit}

	srv := server.NewMCPServer(r.cfg.ServerName, r.cfg.Version,
		server.WithToolCapabilities(true),
	)
	srv.AddTools(AssembleCatalog(client, formatter)...)

	r.logger.Info("handling protocol request",
		"method", req.Method,
		"path", req.URL.Path,
		"tenant", creds.Domain,
	)
	server.NewStreamableHTTPServer(srv, server.WithStateLess(true)).ServeHTTP(w, req)
}

func (r *Router) handleSSE(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotImplemented, map[string]string{
		"error":   "not_implemented",
		"message": "the SSE transport is not supported; use the streamable HTTP endpoint at /mcp",
	})
}

// handleInfo serves service metadata on the default path. The tool list comes
// from assembling a definitions-only catalog.
func (r *Router) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":        r.cfg.ServerName,
		"version":     r.cfg.Version,
		"description": "MCP server exposing the Gorgias helpdesk API as assistant tools",
		"endpoints": map[string]string{
			"mcp":    "/mcp",
			"health": "/health",
		},
		"required_headers": domain.RequiredHeaders(),
		"tools":            ToolNames(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
