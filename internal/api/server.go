// File path: internal/api/server.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/engine"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/history"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/suggest"
)

type Server struct {
	router     chi.Router
	engine     *engine.Engine
	store      *history.Store
	suggester  *suggest.Suggester
	uploadRoot string
	project    string
}

// Config controls how the API server stores uploads and attributes reports.
type Config struct {
	UploadRoot string
	Project    string
}

// DefaultConfig returns the standard configuration used when no overrides are
// provided.
func DefaultConfig() Config {
	return Config{
		UploadRoot: filepath.Join(os.TempDir(), "dca_uploads"),
		Project:    "default",
	}
}

// Merge overlays non-empty fields from the override onto the base
// configuration.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.UploadRoot) != "" {
		result.UploadRoot = strings.TrimSpace(override.UploadRoot)
	}
	if strings.TrimSpace(override.Project) != "" {
		result.Project = strings.TrimSpace(override.Project)
	}
	return result
}

// NewServer builds the HTTP surface over the consistency engine. The history
// store and suggester are optional; endpoints that need them degrade when
// they are absent.
func NewServer(eng *engine.Engine, store *history.Store, suggester *suggest.Suggester, cfg *Config) (*Server, error) {
	logger := common.Logger()
	if eng == nil {
		eng = engine.Default()
	}
	configuration := DefaultConfig()
	if cfg != nil {
		configuration = configuration.Merge(*cfg)
	}
	if err := os.MkdirAll(configuration.UploadRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	logger.Info(
		"api: building server",
		"history_available", store != nil,
		"suggester_available", suggester != nil && suggester.Enabled(),
		"project", configuration.Project,
	)
	srv := &Server{
		router:     chi.NewRouter(),
		engine:     eng,
		store:      store,
		suggester:  suggester,
		uploadRoot: configuration.UploadRoot,
		project:    configuration.Project,
	}
	srv.routes()
	logger.Info("api: server ready", "routes", true)
	return srv, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	logger := common.Logger()
	logger.Info("api: configuring routes")
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			logger.Debug("request", "method", r.Method, "path", r.URL.Path, "dur", time.Since(start), "remote", r.RemoteAddr)
		})
	})

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.Post("/v1/analyze", s.handleAnalyze)
	s.router.Post("/v1/audit", s.handleAudit)
	s.router.Post("/v1/scan", s.handleScan)
	s.router.Post("/v1/docstring", s.handleDocstring)
	s.router.Get("/v1/reports", s.handleReports)
	s.router.Get("/v1/logs", s.handleLogs)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	logger := common.Logger()
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
