// File path: internal/engine/report_test.go
package engine

import "testing"

func labelRank(l Label) int {
	switch l {
	case LabelPoor:
		return 0
	case LabelPartial:
		return 1
	case LabelHigh:
		return 2
	case LabelProduction:
		return 3
	}
	return -1
}

func TestLabelBandsMonotonic(t *testing.T) {
	e := Default()
	prev := -1
	for s := 0.0; s <= 1.0; s += 0.01 {
		label, icon := e.label(s)
		rank := labelRank(label)
		if rank < 0 {
			t.Fatalf("score %v produced unknown label %q", s, label)
		}
		if rank < prev {
			t.Fatalf("label rank regressed at score %v", s)
		}
		if icon == "" {
			t.Fatalf("score %v produced no icon", s)
		}
		prev = rank
	}
}

func TestLabelBandsExhaustive(t *testing.T) {
	e := Default()
	cases := map[float64]Label{
		0.0:  LabelPoor,
		0.40: LabelPoor,
		0.41: LabelPartial,
		0.65: LabelPartial,
		0.66: LabelHigh,
		0.85: LabelHigh,
		0.86: LabelProduction,
		1.0:  LabelProduction,
	}
	for score, want := range cases {
		if got, _ := e.label(score); got != want {
			t.Fatalf("label(%v) = %q, want %q", score, got, want)
		}
	}
}

func TestSuggestionOrderOperationalFirst(t *testing.T) {
	e := Default()
	code := "def dist_to(point):\n    return 0\n"
	doc := "Utility helpers for points."
	rep := e.Analyze(code, doc)
	if len(rep.Operational) == 0 {
		t.Fatalf("expected an operational gap, got none: %+v", rep)
	}
	if len(rep.Suggestions) == 0 {
		t.Fatalf("expected suggestions")
	}
	// Operational gap lines come before vocabulary lines.
	first := rep.Suggestions[0]
	if want := "Operation \"dist\""; len(first) < len(want) || first[:len(want)] != want {
		t.Fatalf("first suggestion = %q, want operational gap line", first)
	}
}

func TestSuggestionLimitBoundsEntityLines(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SuggestionLimit = 2
	e := New(cfg)
	code := "def alpha_fn(): pass\ndef beta_fn(): pass\ndef gamma_fn(): pass\ndef delta_fn(): pass\n"
	rep := e.Analyze(code, "Completely unrelated documentation prose.")
	entityLines := 0
	for _, s := range rep.Suggestions {
		if len(s) > 8 && s[:8] == "Document" {
			entityLines++
		}
	}
	if entityLines > 3 {
		t.Fatalf("entity suggestion lines = %d, want at most limit plus overflow note", entityLines)
	}
}

func TestReportPercentRounding(t *testing.T) {
	e := Default()
	rep := e.buildReport(0.856, GapSet{}, nil, nil, nil)
	if rep.Percent != 86 {
		t.Fatalf("percent = %d, want 86", rep.Percent)
	}
}
