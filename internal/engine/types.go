// File path: internal/engine/types.go
package engine

// Kind classifies an extracted code entity.
type Kind string

const (
	KindFunction  Kind = "function"
	KindClass     Kind = "class"
	KindMethod    Kind = "method"
	KindConfigKey Kind = "config_key"
)

// CodeEntity is a named construct found by lexical scanning of source text.
// Entities are identified by (name, kind, origin) but de-duplicated by name
// alone when scoring.
type CodeEntity struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Origin string `json:"origin,omitempty"`
}

// TermVector maps a normalized token to its weight within one corpus. Vectors
// are built once per analysis and never mutated afterwards.
type TermVector map[string]float64

// GapSet partitions the union of the code and documentation vocabularies.
// Common, MissingInDoc and MissingInCode are pairwise disjoint and together
// cover every term exactly once.
type GapSet struct {
	Common        []string `json:"common"`
	MissingInDoc  []string `json:"missing_in_doc"`
	MissingInCode []string `json:"missing_in_code"`
}

// OperationTrigger maps a short code-operation token to the documentation
// words that count as describing it.
type OperationTrigger struct {
	Trigger  string   `json:"trigger"`
	Synonyms []string `json:"synonyms"`
}

// OperationalGap reports a trigger present in code with no synonym (nor the
// trigger itself) present in documentation.
type OperationalGap struct {
	Trigger         string   `json:"trigger"`
	MissingSynonyms []string `json:"missing_synonyms"`
}

// Label buckets a consistency score into a human-facing band.
type Label string

const (
	LabelPoor       Label = "poor_alignment"
	LabelPartial    Label = "partial_alignment"
	LabelHigh       Label = "high_alignment"
	LabelProduction Label = "production_quality"
)

// Stats summarizes gap counts for a report.
type Stats struct {
	Issues    int          `json:"issues"`
	Synced    int          `json:"synced"`
	Breakdown map[Kind]int `json:"breakdown,omitempty"`
}

// Report is the immutable result of one analysis call. Visual carries the
// counts [common, missing-in-doc, missing-in-code] used by rendering layers.
type Report struct {
	Score       float64          `json:"score"`
	Percent     int              `json:"percent"`
	Label       Label            `json:"label"`
	Icon        string           `json:"icon"`
	Summary     string           `json:"summary"`
	Stats       Stats            `json:"stats"`
	Suggestions []string         `json:"suggestions"`
	Gaps        GapSet           `json:"gaps"`
	Operational []OperationalGap `json:"operational_gaps,omitempty"`
	Entities    []CodeEntity     `json:"entities,omitempty"`
	// Undocumented lists every entity with no reference in the documentation
	// pool. Unlike Suggestions, it is never truncated.
	Undocumented []CodeEntity `json:"undocumented,omitempty"`
	Visual       [3]int       `json:"visual"`
}
