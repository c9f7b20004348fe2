// File path: internal/api/scan_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/gitops"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/pipeline"
)

// handleScan runs the full audit pipeline over directories on the server's
// filesystem, including documentation generation and optional git automation.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: scan decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req.CodeDir = strings.TrimSpace(req.CodeDir)
	req.DocDir = strings.TrimSpace(req.DocDir)
	if req.CodeDir == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("code_dir is required"))
		return
	}
	if req.DocDir == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("doc_dir is required"))
		return
	}
	project := strings.TrimSpace(req.Project)
	if project == "" {
		project = s.project
	}
	var git *gitops.Manager
	if req.Git {
		git = gitops.NewManager(req.CodeDir)
	}
	runner := pipeline.NewRunner(s.engine, s.suggester, git, s.store, pipeline.Config{
		CodeDir:    req.CodeDir,
		DocDir:     req.DocDir,
		OutputDir:  req.OutputDir,
		Project:    project,
		GitEnabled: req.Git,
		GitBranch:  req.GitBranch,
	})
	logger.Info("api: scan requested", "code_dir", req.CodeDir, "doc_dir", req.DocDir, "git", req.Git)
	result, err := runner.Run(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	logger.Info("api: scan succeeded", "score", result.Report.Score, "generated", len(result.Generated))
	writeJSON(w, http.StatusOK, scanResponse{Result: result})
}
