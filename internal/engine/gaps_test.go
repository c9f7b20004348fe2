// File path: internal/engine/gaps_test.go
package engine

import "testing"

func TestAnalyzeGapsPartition(t *testing.T) {
	e := Default()
	codeVec := Vectorize(e.Normalize("charge refund ledger balance"))
	docVec := Vectorize(e.Normalize("charge refund invoice receipt"))
	gaps := AnalyzeGaps(codeVec, docVec)

	seen := make(map[string]int)
	for _, term := range gaps.Common {
		seen[term]++
	}
	for _, term := range gaps.MissingInDoc {
		seen[term]++
	}
	for _, term := range gaps.MissingInCode {
		seen[term]++
	}
	// Every vocabulary term appears exactly once across the three sets.
	union := make(map[string]struct{})
	for term := range codeVec {
		union[term] = struct{}{}
	}
	for term := range docVec {
		union[term] = struct{}{}
	}
	if len(seen) != len(union) {
		t.Fatalf("partition covers %d terms, union has %d", len(seen), len(union))
	}
	for term, n := range seen {
		if n != 1 {
			t.Fatalf("term %q appears %d times across the partition", term, n)
		}
	}
}

func TestAnalyzeGapsContents(t *testing.T) {
	e := Default()
	codeVec := Vectorize(e.Normalize("charge ledger"))
	docVec := Vectorize(e.Normalize("charge invoice"))
	gaps := AnalyzeGaps(codeVec, docVec)
	if len(gaps.Common) != 1 || gaps.Common[0] != "charge" {
		t.Fatalf("common = %v, want [charge]", gaps.Common)
	}
	if len(gaps.MissingInDoc) != 1 || gaps.MissingInDoc[0] != "ledger" {
		t.Fatalf("missing_in_doc = %v, want [ledger]", gaps.MissingInDoc)
	}
	if len(gaps.MissingInCode) != 1 || gaps.MissingInCode[0] != "invoice" {
		t.Fatalf("missing_in_code = %v, want [invoice]", gaps.MissingInCode)
	}
}

func TestOperationalGapForDistance(t *testing.T) {
	e := Default()
	codeVec := Vectorize(e.Normalize("dist nearest cluster"))
	docVec := Vectorize(e.Normalize("groups points into clusters"))
	gaps := e.CheckOperationalAlignment(codeVec, docVec)
	if len(gaps) != 1 || gaps[0].Trigger != "dist" {
		t.Fatalf("operational gaps = %v, want single dist gap", gaps)
	}
	if len(gaps[0].MissingSynonyms) == 0 {
		t.Fatalf("dist gap carries no synonym hints")
	}
}

func TestOperationalGapCoveredBySynonym(t *testing.T) {
	e := Default()
	codeVec := Vectorize(e.Normalize("dist nearest cluster"))
	docVec := Vectorize(e.Normalize("computes the euclidean distance between points"))
	if gaps := e.CheckOperationalAlignment(codeVec, docVec); len(gaps) != 0 {
		t.Fatalf("synonym coverage not honored: %v", gaps)
	}
}

func TestOperationalGapCoveredByTriggerItself(t *testing.T) {
	e := Default()
	codeVec := Vectorize(e.Normalize("dist matrix"))
	docVec := Vectorize(e.Normalize("the dist matrix is symmetric"))
	if gaps := e.CheckOperationalAlignment(codeVec, docVec); len(gaps) != 0 {
		t.Fatalf("literal trigger mention not honored: %v", gaps)
	}
}

func TestOperationalGapAbsentTrigger(t *testing.T) {
	e := Default()
	codeVec := Vectorize(e.Normalize("render template html"))
	docVec := Vectorize(e.Normalize("renders the page"))
	if gaps := e.CheckOperationalAlignment(codeVec, docVec); len(gaps) != 0 {
		t.Fatalf("triggers absent from code must not fire: %v", gaps)
	}
}
