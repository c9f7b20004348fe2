// File path: internal/api/types.go
package api

import (
	"github.com/Mahek-makwana/doc-consistency-agent/internal/engine"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/history"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/pipeline"
)

type analyzeRequest struct {
	Code          string `json:"code"`
	Documentation string `json:"documentation"`
	Project       string `json:"project,omitempty"`
}

type analyzeResponse struct {
	Report    engine.Report `json:"report"`
	HistoryID int64         `json:"history_id,omitempty"`
}

type auditResponse struct {
	Report    engine.Report `json:"report"`
	CodeFiles int           `json:"code_files"`
	DocFiles  int           `json:"doc_files"`
	HistoryID int64         `json:"history_id,omitempty"`
}

type scanRequest struct {
	CodeDir   string `json:"code_dir"`
	DocDir    string `json:"doc_dir"`
	OutputDir string `json:"output_dir,omitempty"`
	Project   string `json:"project,omitempty"`
	Git       bool   `json:"git,omitempty"`
	GitBranch string `json:"git_branch,omitempty"`
}

type scanResponse struct {
	Result *pipeline.Result `json:"result"`
}

// reportRecord augments a stored row with its decoded suggestion lines.
type reportRecord struct {
	history.Record
	Suggestions []string `json:"suggestions"`
}

type reportsResponse struct {
	Reports []reportRecord `json:"reports"`
}

type docstringRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type docstringResponse struct {
	Docstring string `json:"docstring"`
}
