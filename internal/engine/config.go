// File path: internal/engine/config.go
package engine

// Config carries the read-only tables the engine consults during analysis.
// A Config is safe to share across concurrent Analyze calls.
type Config struct {
	// Stopwords are dropped during normalization. Covers generic English
	// function words plus software-generic nouns that describe code without
	// naming it.
	Stopwords map[string]struct{}
	// Punctuation lists structural characters replaced with spaces so that
	// tokens never fuse across stripped syntax.
	Punctuation string
	// MinTokenLen is the inclusive minimum length of a surviving token.
	MinTokenLen int
	// MinEntityLen is the inclusive minimum length of an extracted entity
	// name. Shorter matches are treated as pattern noise.
	MinEntityLen int
	// Extractors are consulted in order; every extractor whose Match reports
	// true contributes entities, with a generic fallback always applied.
	Extractors []Extractor
	// Triggers is the curated operation-to-synonym table for the
	// operational-alignment check.
	Triggers []OperationTrigger
	// Thresholds are the ordered label cutoffs on the 0-1 score.
	Thresholds Thresholds
	// SuggestionLimit bounds how many per-entity suggestion lines a report
	// carries.
	SuggestionLimit int
}

// Thresholds define the lower exclusive bound of each label band. Bands must
// stay monotonic: Production >= High >= Partial.
type Thresholds struct {
	Production float64
	High       float64
	Partial    float64
}

// DefaultConfig returns the canonical engine policy.
func DefaultConfig() Config {
	return Config{
		Stopwords:       defaultStopwords(),
		Punctuation:     "()[]{}:;.,=\"'",
		MinTokenLen:     2,
		MinEntityLen:    3,
		Extractors:      defaultExtractors(),
		Triggers:        defaultTriggers(),
		Thresholds:      Thresholds{Production: 0.85, High: 0.65, Partial: 0.40},
		SuggestionLimit: 5,
	}
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "is", "it", "as", "be", "was", "are",
		"been", "being", "have", "has", "had", "do", "does", "did", "will",
		"would", "could", "should", "may", "might", "can", "this", "that",
		"these", "those", "we", "our", "you", "your", "they", "them", "their",
		"its", "if", "then", "else", "not", "no", "so", "all", "any", "each",
		"into", "about", "also", "when", "where", "which", "while", "between",
		"during", "before", "after", "used", "uses", "using",
		// software-generic nouns that describe code without naming it
		"function", "functions", "method", "methods", "class", "classes",
		"module", "modules", "return", "returns", "value", "values", "object",
		"objects", "code", "file", "files",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func defaultTriggers() []OperationTrigger {
	return []OperationTrigger{
		{Trigger: "dist", Synonyms: []string{"distance", "euclidean", "metric", "similarity"}},
		{Trigger: "save", Synonyms: []string{"persist", "store", "stores", "write", "writes", "saving"}},
		{Trigger: "load", Synonyms: []string{"read", "reads", "loading", "loads", "open"}},
		{Trigger: "train", Synonyms: []string{"fit", "fitting", "learn", "learning", "training"}},
		{Trigger: "predict", Synonyms: []string{"prediction", "inference", "forecast", "classify"}},
		{Trigger: "fetch", Synonyms: []string{"download", "retrieve", "retrieves", "request", "requests"}},
		{Trigger: "parse", Synonyms: []string{"parses", "parsing", "extract", "extracts", "tokenize"}},
		{Trigger: "auth", Synonyms: []string{"authentication", "authorize", "login", "credential", "credentials"}},
	}
}
