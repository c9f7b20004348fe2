// File path: internal/engine/engine.go

// Package engine scores how consistently a body of source code and a body of
// prose documentation describe the same concepts. The engine is a pure,
// synchronous computation over two in-memory strings: it performs no I/O,
// holds no mutable state between calls, and identical inputs always produce
// identical reports, so one instance may serve concurrent callers.
package engine

import "fmt"

// Engine bundles the read-only analysis configuration. Instances are cheap
// and freely shareable; there is no package-level default instance.
type Engine struct {
	cfg Config
}

// New builds an engine from the supplied configuration, backfilling any zero
// fields from the canonical defaults.
func New(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Stopwords == nil {
		cfg.Stopwords = def.Stopwords
	}
	if cfg.Punctuation == "" {
		cfg.Punctuation = def.Punctuation
	}
	if cfg.MinTokenLen <= 0 {
		cfg.MinTokenLen = def.MinTokenLen
	}
	if cfg.MinEntityLen <= 0 {
		cfg.MinEntityLen = def.MinEntityLen
	}
	if len(cfg.Extractors) == 0 {
		cfg.Extractors = def.Extractors
	}
	if cfg.Triggers == nil {
		cfg.Triggers = def.Triggers
	}
	if cfg.Thresholds == (Thresholds{}) {
		cfg.Thresholds = def.Thresholds
	}
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = def.SuggestionLimit
	}
	return &Engine{cfg: cfg}
}

// Default returns an engine with the canonical configuration.
func Default() *Engine {
	return New(DefaultConfig())
}

// Analyze runs the full consistency audit over already-decoded code and
// documentation text and always returns a report: malformed or empty input
// degrades to a sentinel report instead of an error.
func (e *Engine) Analyze(codeText, docText string) (report Report) {
	defer func() {
		if r := recover(); r != nil {
			report = e.errorReport(fmt.Errorf("%v", r))
		}
	}()

	if isBlank(codeText) {
		return e.emptyInputReport("No source code provided; nothing to audit.")
	}
	if isBlank(docText) {
		rep := e.emptyInputReport("No documentation content found.")
		if entities := e.ExtractEntities(codeText); len(entities) > 0 {
			rep.Entities = entities
			rep.Undocumented = entities
			// Entities are distinct by (name, kind); the gap vocabulary is a
			// set of names, so collapse duplicates here.
			seen := make(map[string]struct{}, len(entities))
			for _, ent := range entities {
				if _, ok := seen[ent.Name]; ok {
					continue
				}
				seen[ent.Name] = struct{}{}
				rep.Gaps.MissingInDoc = append(rep.Gaps.MissingInDoc, ent.Name)
			}
			rep.Stats.Issues = len(rep.Gaps.MissingInDoc)
			rep.Visual = [3]int{0, len(rep.Gaps.MissingInDoc), 0}
		}
		return rep
	}

	entities := e.ExtractEntities(codeText)
	if len(entities) == 0 {
		return e.noLogicReport()
	}

	codeVec := Vectorize(e.Normalize(codeText))
	docVec := Vectorize(e.Normalize(docText))
	score := Cosine(codeVec, docVec)
	gaps := AnalyzeGaps(codeVec, docVec)
	operational := e.CheckOperationalAlignment(codeVec, docVec)

	pool := ReferencePool(docText, codeText)
	var undocumented []CodeEntity
	for _, ent := range entities {
		if !Referenced(ent.Name, pool) {
			undocumented = append(undocumented, ent)
		}
	}

	return e.buildReport(score, gaps, operational, entities, undocumented)
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
