// File path: internal/engine/report.go
package engine

import (
	"fmt"
	"strings"
)

func (e *Engine) label(score float64) (Label, string) {
	t := e.cfg.Thresholds
	switch {
	case score > t.Production:
		return LabelProduction, "🚀"
	case score > t.High:
		return LabelHigh, "✅"
	case score > t.Partial:
		return LabelPartial, "⚠️"
	default:
		return LabelPoor, "❌"
	}
}

// buildReport assembles the final immutable result. Suggestions list
// operational gaps first, then per-entity documentation lines bounded by the
// configured limit, then one line for zombie documentation terms.
func (e *Engine) buildReport(score float64, gaps GapSet, operational []OperationalGap, entities []CodeEntity, undocumented []CodeEntity) Report {
	label, icon := e.label(score)

	var suggestions []string
	for _, op := range operational {
		suggestions = append(suggestions, fmt.Sprintf(
			"Operation %q appears in code but is never described; mention one of: %s.",
			op.Trigger, strings.Join(op.MissingSynonyms, ", ")))
	}
	limit := e.cfg.SuggestionLimit
	for i, ent := range undocumented {
		if limit > 0 && i >= limit {
			suggestions = append(suggestions, fmt.Sprintf("...and %d more undocumented entities.", len(undocumented)-limit))
			break
		}
		suggestions = append(suggestions, fmt.Sprintf("Document %s %q in the project documentation.", ent.Kind, ent.Name))
	}
	if len(gaps.MissingInCode) > 0 {
		top := gaps.MissingInCode
		if limit > 0 && len(top) > limit {
			top = top[:limit]
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"Documentation mentions terms absent from code (possible stale docs): %s.", strings.Join(top, ", ")))
	}

	breakdown := make(map[Kind]int)
	for _, ent := range undocumented {
		breakdown[ent.Kind]++
	}
	if len(breakdown) == 0 {
		breakdown = nil
	}

	return Report{
		Score:   score,
		Percent: int(score*100 + 0.5),
		Label:   label,
		Icon:    icon,
		Summary: e.summary(score, gaps, entities, undocumented),
		Stats: Stats{
			Issues:    len(gaps.MissingInDoc),
			Synced:    len(gaps.Common),
			Breakdown: breakdown,
		},
		Suggestions:  suggestions,
		Gaps:         gaps,
		Operational:  operational,
		Entities:     entities,
		Undocumented: undocumented,
		Visual:       [3]int{len(gaps.Common), len(gaps.MissingInDoc), len(gaps.MissingInCode)},
	}
}

func (e *Engine) summary(score float64, gaps GapSet, entities []CodeEntity, undocumented []CodeEntity) string {
	switch {
	case len(gaps.Common) == 0:
		return fmt.Sprintf("Critical mismatch: code and documentation share no vocabulary across %d detected entities.", len(entities))
	case len(undocumented) == 0 && len(gaps.MissingInDoc) == 0:
		return fmt.Sprintf("Every one of the %d detected entities is described in the documentation context.", len(entities))
	default:
		return fmt.Sprintf("Audit covered %d entities; %d undocumented, %d vocabulary gaps, %d terms in sync.",
			len(entities), len(undocumented), len(gaps.MissingInDoc), len(gaps.Common))
	}
}

// emptyInputReport is the sentinel for blank code or documentation text.
func (e *Engine) emptyInputReport(reason string) Report {
	return Report{
		Label:       LabelPoor,
		Icon:        "❌",
		Summary:     "No input to analyze.",
		Suggestions: []string{reason},
		Gaps:        GapSet{},
		Visual:      [3]int{0, 1, 0},
	}
}

// noLogicReport is the sentinel for code in which no extractor found any
// entity; ratios are never computed against a zero denominator.
func (e *Engine) noLogicReport() Report {
	return Report{
		Label:       LabelPoor,
		Icon:        "❌",
		Summary:     "No logic detected in the supplied source.",
		Suggestions: []string{"Supply source code containing function, class or configuration declarations."},
		Gaps:        GapSet{},
		Visual:      [3]int{0, 1, 0},
	}
}

// errorReport converts an internal failure into a degraded report; Analyze
// always returns a report rather than propagating a panic.
func (e *Engine) errorReport(err error) Report {
	return Report{
		Label:       LabelPoor,
		Icon:        "❌",
		Summary:     "Analysis failed.",
		Suggestions: []string{fmt.Sprintf("analysis error: %v", err)},
		Gaps:        GapSet{},
		Visual:      [3]int{0, 1, 0},
	}
}
