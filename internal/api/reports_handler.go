// File path: internal/api/reports_handler.go
package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
)

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("history store not configured"))
		return
	}
	project := strings.TrimSpace(r.URL.Query().Get("project"))
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid limit: %s", raw))
			return
		}
		limit = parsed
	}
	records, err := s.store.List(r.Context(), project, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]reportRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, reportRecord{Record: rec, Suggestions: rec.SuggestionList()})
	}
	writeJSON(w, http.StatusOK, reportsResponse{Reports: out})
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"logs": common.LogEntries()})
}
