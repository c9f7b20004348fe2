// File path: internal/api/analyze_handler.go
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: analyze decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	logger.Info("api: analyze requested",
		"code_bytes", len(req.Code), "doc_bytes", len(req.Documentation))
	report := s.engine.Analyze(req.Code, req.Documentation)
	resp := analyzeResponse{Report: report}
	if s.store != nil {
		project := strings.TrimSpace(req.Project)
		if project == "" {
			project = s.project
		}
		id, err := s.store.Insert(ctx, project, report)
		if err != nil {
			logger.Warn("api: analyze history insert failed", "error", err)
		} else {
			resp.HistoryID = id
		}
	}
	logger.Info("api: analyze succeeded", "score", report.Score, "label", report.Label)
	writeJSON(w, http.StatusOK, resp)
}
