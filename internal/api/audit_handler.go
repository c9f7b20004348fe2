// File path: internal/api/audit_handler.go
package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/ingest"
)

// handleAudit analyzes uploaded files. The multipart form carries source
// files under "code" and documentation files under "docs"; ZIP archives are
// expanded on the fly.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	logger := common.Logger()
	ctx := r.Context()
	const maxMemory = 64 << 20 // 64 MiB of in-memory file parts
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		logger.Warn("api: audit form parse failed", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("failed to parse upload form: %w", err))
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	codeFiles := r.MultipartForm.File["code"]
	if len(codeFiles) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("no code files provided"))
		return
	}
	docFiles := r.MultipartForm.File["docs"]

	codeText, codeCount, err := collectUploads(codeFiles, ingest.CodeExtensions, "#FILE")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	docText, docCount, err := collectUploads(docFiles, ingest.DocExtensions, "#DOC")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report := s.engine.Analyze(codeText, docText)
	resp := auditResponse{Report: report, CodeFiles: codeCount, DocFiles: docCount}
	if s.store != nil {
		project := strings.TrimSpace(r.FormValue("project"))
		if project == "" {
			project = s.project
		}
		id, err := s.store.Insert(ctx, project, report)
		if err != nil {
			logger.Warn("api: audit history insert failed", "error", err)
		} else {
			resp.HistoryID = id
		}
	}
	logger.Info("api: audit succeeded",
		"code_files", codeCount, "doc_files", docCount,
		"score", report.Score, "label", report.Label)
	writeJSON(w, http.StatusOK, resp)
}

// collectUploads concatenates the uploaded parts into one marked-up corpus.
// ZIP members that do not match exts are skipped; plain files are accepted
// as-is so that uncommon suffixes can still be audited explicitly.
func collectUploads(headers []*multipart.FileHeader, exts map[string]struct{}, marker string) (string, int, error) {
	var builder strings.Builder
	count := 0
	for _, header := range headers {
		name := strings.TrimSpace(header.Filename)
		if name == "" {
			return "", 0, fmt.Errorf("file name required")
		}
		src, err := header.Open()
		if err != nil {
			return "", 0, fmt.Errorf("open uploaded file %s: %w", name, err)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return "", 0, fmt.Errorf("read uploaded file %s: %w", name, err)
		}
		text, err := ingest.ReadUpload(name, data, exts, marker)
		if err != nil {
			return "", 0, fmt.Errorf("expand uploaded file %s: %w", name, err)
		}
		builder.WriteString(text)
		count++
	}
	return builder.String(), count, nil
}
