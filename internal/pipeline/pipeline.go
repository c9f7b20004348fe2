// File path: internal/pipeline/pipeline.go

// Package pipeline chains the full audit flow: aggregate code and docs from
// disk, run the consistency engine, draft documentation for the gaps it
// found, and optionally hand the generated files to git automation.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/engine"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/gitops"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/history"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/ingest"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/suggest"
)

// Config controls one pipeline run.
type Config struct {
	CodeDir   string
	DocDir    string
	OutputDir string
	Project   string
	// LowScore is the cosine score under which an update suggestion is
	// drafted even when entities are individually documented.
	LowScore float64
	// MaxGenerated bounds how many markdown stubs one run may write.
	MaxGenerated int
	GitEnabled   bool
	GitBranch    string
}

// DefaultConfig returns the standard pipeline policy.
func DefaultConfig() Config {
	return Config{
		CodeDir:      "src",
		DocDir:       "docs",
		OutputDir:    filepath.Join("docs", "auto_generated"),
		LowScore:     0.40,
		MaxGenerated: 10,
		GitBranch:    "docsync-auto",
	}
}

// Result reports what one run produced.
type Result struct {
	Report        engine.Report `json:"report"`
	CodeFiles     int           `json:"code_files"`
	DocFiles      int           `json:"doc_files"`
	Generated     []string      `json:"generated,omitempty"`
	Updated       []string      `json:"updated,omitempty"`
	Branch        string        `json:"branch,omitempty"`
	Pushed        bool          `json:"pushed"`
	PRDescription string        `json:"pr_description,omitempty"`
	HistoryID     int64         `json:"history_id,omitempty"`
}

// Runner wires the engine to its collaborators.
type Runner struct {
	engine    *engine.Engine
	suggester *suggest.Suggester
	git       *gitops.Manager
	store     *history.Store
	cfg       Config
}

// NewRunner builds a runner; suggester, git manager and history store are all
// optional.
func NewRunner(eng *engine.Engine, suggester *suggest.Suggester, git *gitops.Manager, store *history.Store, cfg Config) *Runner {
	if eng == nil {
		eng = engine.Default()
	}
	def := DefaultConfig()
	if strings.TrimSpace(cfg.CodeDir) == "" {
		cfg.CodeDir = def.CodeDir
	}
	if strings.TrimSpace(cfg.DocDir) == "" {
		cfg.DocDir = def.DocDir
	}
	if strings.TrimSpace(cfg.OutputDir) == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.LowScore <= 0 {
		cfg.LowScore = def.LowScore
	}
	if cfg.MaxGenerated <= 0 {
		cfg.MaxGenerated = def.MaxGenerated
	}
	if strings.TrimSpace(cfg.GitBranch) == "" {
		cfg.GitBranch = def.GitBranch
	}
	return &Runner{engine: eng, suggester: suggester, git: git, store: store, cfg: cfg}
}

// Run executes one audit cycle.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	logger := common.Logger()
	logger.Info("pipeline: starting audit", "code_dir", r.cfg.CodeDir, "doc_dir", r.cfg.DocDir)

	codeText, codeFiles, err := ingest.AggregateCode(r.cfg.CodeDir)
	if err != nil {
		return nil, fmt.Errorf("aggregate code: %w", err)
	}
	docText, docFiles, err := ingest.AggregateDocs(r.cfg.DocDir)
	if err != nil {
		return nil, fmt.Errorf("aggregate docs: %w", err)
	}
	logger.Info("pipeline: corpora loaded", "code_files", codeFiles, "doc_files", docFiles)

	report := r.engine.Analyze(codeText, docText)
	result := &Result{Report: report, CodeFiles: codeFiles, DocFiles: docFiles}

	if err := r.generateDocs(ctx, report, result); err != nil {
		return nil, err
	}
	if r.cfg.GitEnabled && r.git != nil && (len(result.Generated) > 0 || len(result.Updated) > 0) {
		r.automate(ctx, result)
	}
	if r.store != nil {
		id, err := r.store.Insert(ctx, r.cfg.Project, report)
		if err != nil {
			logger.Warn("pipeline: history insert failed", "error", err)
		} else {
			result.HistoryID = id
		}
	}
	logger.Info("pipeline: audit complete",
		"score", report.Score, "label", report.Label,
		"generated", len(result.Generated), "updated", len(result.Updated))
	return result, nil
}

// generateDocs writes markdown stubs for undocumented entities plus one
// update suggestion when overall alignment falls under the low-score bar.
// The report's Undocumented list is authoritative; Suggestions are display
// strings and may be truncated.
func (r *Runner) generateDocs(ctx context.Context, report engine.Report, result *Result) error {
	undocumented := report.Undocumented
	if len(undocumented) == 0 && report.Score >= r.cfg.LowScore {
		return nil
	}
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	logger := common.Logger()
	written := 0
	seen := make(map[string]struct{}, len(undocumented))
	for _, ent := range undocumented {
		if _, ok := seen[ent.Name]; ok {
			continue
		}
		seen[ent.Name] = struct{}{}
		if written >= r.cfg.MaxGenerated {
			logger.Warn("pipeline: generation limit reached", "limit", r.cfg.MaxGenerated, "remaining", len(undocumented)-written)
			break
		}
		title := fmt.Sprintf("Documentation for %s", ent.Name)
		summary := fmt.Sprintf("Auto-generated documentation for %s %s detected in source code.", ent.Kind, ent.Name)
		if ent.Origin != "" {
			summary += fmt.Sprintf(" Origin: %s.", ent.Origin)
		}
		content := r.markdown(ctx, title, summary)
		path := filepath.Join(r.cfg.OutputDir, ent.Name+".md")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		result.Generated = append(result.Generated, ent.Name)
		written++
	}
	if report.Score < r.cfg.LowScore && report.Score > 0 {
		title := "Documentation update suggestion"
		summary := fmt.Sprintf("Overall consistency score is low (%.2f). %s", report.Score, report.Summary)
		content := r.markdown(ctx, title, summary)
		path := filepath.Join(r.cfg.OutputDir, "update_suggestion.md")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		result.Updated = append(result.Updated, "update_suggestion")
	}
	return nil
}

func (r *Runner) markdown(ctx context.Context, title, summary string) string {
	if r.suggester != nil {
		return r.suggester.MarkdownDoc(ctx, title, summary)
	}
	return fmt.Sprintf("# %s\n\n%s\n", title, summary)
}

func (r *Runner) automate(ctx context.Context, result *Result) {
	logger := common.Logger()
	branch, err := r.git.CreateBranch(ctx, r.cfg.GitBranch)
	if err != nil {
		logger.Error("pipeline: branch creation failed", "error", err)
		return
	}
	result.Branch = branch
	message := commitMessage(result)
	if err := r.git.CommitAll(ctx, message); err != nil {
		logger.Error("pipeline: commit failed", "error", err)
		return
	}
	if err := r.git.Push(ctx, branch); err != nil {
		logger.Warn("pipeline: push failed; changes remain on local branch", "branch", branch, "error", err)
	} else {
		result.Pushed = true
	}
	result.PRDescription = prDescription(result)
}

func commitMessage(result *Result) string {
	var b strings.Builder
	b.WriteString("Auto-generated documentation updates\n\n")
	if len(result.Generated) > 0 {
		fmt.Fprintf(&b, "Created docs for: %s\n", joinCapped(result.Generated, 3))
	}
	if len(result.Updated) > 0 {
		fmt.Fprintf(&b, "Update suggestions: %s\n", joinCapped(result.Updated, 3))
	}
	return strings.TrimSpace(b.String())
}

func joinCapped(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s and %d others", strings.Join(items[:limit], ", "), len(items)-limit)
}

func prDescription(result *Result) string {
	var b strings.Builder
	b.WriteString("## Documentation Consistency Report\n\n")
	fmt.Fprintf(&b, "**Consistency Score:** %d%% (%s)\n\n", result.Report.Percent, result.Report.Label)
	b.WriteString("### Changes\n")
	if len(result.Generated) > 0 {
		fmt.Fprintf(&b, "- New documentation: %s\n", strings.Join(result.Generated, ", "))
	}
	if len(result.Updated) > 0 {
		fmt.Fprintf(&b, "- Updates suggested: %s\n", strings.Join(result.Updated, ", "))
	}
	return b.String()
}
