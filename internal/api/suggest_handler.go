// File path: internal/api/suggest_handler.go
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
)

// handleDocstring drafts a docstring for one function. Falls back to a
// template when no AI provider is configured.
func (s *Server) handleDocstring(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	if s.suggester == nil {
		writeError(w, http.StatusServiceUnavailable, fmt.Errorf("suggester not configured"))
		return
	}
	var req docstringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("api: docstring decode failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("name is required"))
		return
	}
	text := s.suggester.Docstring(r.Context(), req.Name, req.Code)
	logger.Info("api: docstring drafted", "name", req.Name, "ai", s.suggester.Enabled())
	writeJSON(w, http.StatusOK, docstringResponse{Docstring: text})
}
