// File path: internal/engine/references.go
package engine

import (
	"regexp"
	"strings"
)

// Comments and docstrings count as documentation for gap purposes, so the
// reference pool is the documentation text plus everything harvested from the
// code's comment syntax.
var commentPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"""([\s\S]*?)"""`),
	regexp.MustCompile(`'''([\s\S]*?)'''`),
	regexp.MustCompile(`/\*([\s\S]*?)\*/`),
	regexp.MustCompile(`(?m)//(.*)$`),
	regexp.MustCompile(`(?m)#(.*)$`),
}

// ExtractComments pulls inline comments, block comments and docstrings out of
// code text as one flat string.
func ExtractComments(codeText string) string {
	if codeText == "" {
		return ""
	}
	var parts []string
	for _, pattern := range commentPatterns {
		for _, m := range pattern.FindAllStringSubmatch(codeText, -1) {
			if trimmed := strings.TrimSpace(m[1]); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
	}
	return strings.Join(parts, " ")
}

// ReferencePool builds the lowercased substring-search corpus used to decide
// whether an entity is documented.
func ReferencePool(docText, codeText string) string {
	return strings.ToLower(docText + " " + ExtractComments(codeText))
}

// Referenced reports whether the entity name appears anywhere in the pool.
// The check is plain substring containment: short names can match inside
// unrelated words (entity "get" inside "target"), a known heuristic
// limitation of the lexical design.
func Referenced(name, pool string) bool {
	if name == "" || pool == "" {
		return false
	}
	return strings.Contains(pool, strings.ToLower(name))
}
