// File path: internal/engine/normalize.go
package engine

import "strings"

// Normalize converts raw text into the token stream shared by the vector
// model and the gap analyzer. It lowercases, splits snake_case identifiers,
// replaces structural punctuation with spaces, and drops stopwords, bare
// numbers and tokens below the configured minimum length. Empty input yields
// an empty stream; the function never fails.
func (e *Engine) Normalize(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	replaced := strings.Map(func(r rune) rune {
		if r == '_' || strings.ContainsRune(e.cfg.Punctuation, r) {
			return ' '
		}
		return r
	}, lower)

	fields := strings.Fields(replaced)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < e.cfg.MinTokenLen {
			continue
		}
		if _, stop := e.cfg.Stopwords[tok]; stop {
			continue
		}
		if isNumeric(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
