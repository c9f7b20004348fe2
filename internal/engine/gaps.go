// File path: internal/engine/gaps.go
package engine

import "sort"

// AnalyzeGaps partitions the union of both vocabularies into the terms shared
// by code and documentation, the terms only code knows (undocumented logic)
// and the terms only documentation knows (zombie docs). Each slice is sorted
// and the three are pairwise disjoint.
func AnalyzeGaps(codeVec, docVec TermVector) GapSet {
	var gaps GapSet
	for term := range codeVec {
		if _, ok := docVec[term]; ok {
			gaps.Common = append(gaps.Common, term)
		} else {
			gaps.MissingInDoc = append(gaps.MissingInDoc, term)
		}
	}
	for term := range docVec {
		if _, ok := codeVec[term]; !ok {
			gaps.MissingInCode = append(gaps.MissingInCode, term)
		}
	}
	sort.Strings(gaps.Common)
	sort.Strings(gaps.MissingInDoc)
	sort.Strings(gaps.MissingInCode)
	return gaps
}

// CheckOperationalAlignment walks the curated trigger table: for every
// trigger token literally present in the code vocabulary, at least one of its
// synonyms (or the trigger itself) must appear in the documentation
// vocabulary. The check is independent of the cosine score; it bridges pairs
// like code "dist" and doc "distance" that share no literal token.
func (e *Engine) CheckOperationalAlignment(codeVec, docVec TermVector) []OperationalGap {
	var gaps []OperationalGap
	for _, trig := range e.cfg.Triggers {
		if _, present := codeVec[trig.Trigger]; !present {
			continue
		}
		if _, described := docVec[trig.Trigger]; described {
			continue
		}
		covered := false
		for _, syn := range trig.Synonyms {
			if _, ok := docVec[syn]; ok {
				covered = true
				break
			}
		}
		if !covered {
			missing := make([]string, len(trig.Synonyms))
			copy(missing, trig.Synonyms)
			gaps = append(gaps, OperationalGap{Trigger: trig.Trigger, MissingSynonyms: missing})
		}
	}
	return gaps
}
