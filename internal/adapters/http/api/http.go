// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/etlab/etlab/internal/app"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyze runs one full scoring/classification pass.
	Analyze(ctx context.Context, req service.Request) (*service.Report, error)
}

// Server wires HTTP routes for the analysis API.
type Server struct {
	healthHandler  *HealthHandler
	analyzeHandler *AnalyzeHandler
	versionHandler *VersionHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, version string) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		analyzeHandler: NewAnalyzeHandler(deps),
		versionHandler: NewVersionHandler(version),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/version", MetricsMiddleware(s.versionHandler.HandleVersion, "version"))
	mux.HandleFunc("/analyze", MetricsMiddleware(s.analyzeHandler.HandleAnalyze, "analyze"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
