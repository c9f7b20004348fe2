// File path: internal/engine/extract.go
package engine

import (
	"regexp"
	"sort"
	"strings"
)

// Extractor recognizes one language family. Match sniffs whether a body of
// code looks like the family; Extract performs the lexical scan. Extractors
// are best-effort scanners, not parsers: over-inclusion is acceptable because
// a false entity only lowers the score, while a missed one hides a real gap.
type Extractor interface {
	Name() string
	Match(code string) bool
	Extract(code string) []CodeEntity
}

func defaultExtractors() []Extractor {
	return []Extractor{
		&pythonExtractor{},
		&scriptExtractor{},
		&goExtractor{},
		&configKeyExtractor{},
	}
}

// fileMarker matches the per-file prefix the ingest aggregator inserts when
// concatenating sources, letting entities keep an origin for reporting.
var fileMarker = regexp.MustCompile(`(?m)^#(?:FILE|DOC):\s*(\S+)\s*$`)

// ExtractEntities runs every matching extractor over the code text and unions
// the results. Names are trimmed of quote characters and dropped when shorter
// than the configured minimum; duplicates collapse on (name, kind), keeping
// the first origin seen.
func (e *Engine) ExtractEntities(codeText string) []CodeEntity {
	type key struct {
		name string
		kind Kind
	}
	seen := make(map[key]struct{})
	var out []CodeEntity

	for _, seg := range splitByOrigin(codeText) {
		for _, ex := range e.cfg.Extractors {
			if !ex.Match(seg.text) {
				continue
			}
			for _, ent := range ex.Extract(seg.text) {
				name := strings.Trim(ent.Name, "'\"")
				if len(name) < e.cfg.MinEntityLen {
					continue
				}
				k := key{name: name, kind: ent.Kind}
				if _, dup := seen[k]; dup {
					continue
				}
				seen[k] = struct{}{}
				out = append(out, CodeEntity{Name: name, Kind: ent.Kind, Origin: seg.origin})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

type originSegment struct {
	origin string
	text   string
}

func splitByOrigin(code string) []originSegment {
	matches := fileMarker.FindAllStringSubmatchIndex(code, -1)
	if len(matches) == 0 {
		return []originSegment{{text: code}}
	}
	var segs []originSegment
	if head := code[:matches[0][0]]; strings.TrimSpace(head) != "" {
		segs = append(segs, originSegment{text: head})
	}
	for i, m := range matches {
		end := len(code)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		segs = append(segs, originSegment{
			origin: code[m[2]:m[3]],
			text:   code[m[1]:end],
		})
	}
	return segs
}

// pythonExtractor covers def/class declarations, tagging indented defs as
// methods.
type pythonExtractor struct{}

var (
	pyTopFunc = regexp.MustCompile(`(?m)^def\s+([A-Za-z_]\w*)`)
	pyMethod  = regexp.MustCompile(`(?m)^[ \t]+def\s+([A-Za-z_]\w*)`)
	pyClass   = regexp.MustCompile(`\bclass\s+([A-Za-z_]\w*)`)
)

func (p *pythonExtractor) Name() string { return "python" }

func (p *pythonExtractor) Match(code string) bool {
	return strings.Contains(code, "def ") || pyClass.MatchString(code)
}

func (p *pythonExtractor) Extract(code string) []CodeEntity {
	var out []CodeEntity
	for _, m := range pyTopFunc.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindFunction})
	}
	for _, m := range pyMethod.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindMethod})
	}
	for _, m := range pyClass.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindClass})
	}
	return out
}

// scriptExtractor covers the C-family surface syntaxes: function keywords,
// arrow-function assignments and class declarations as seen in JS/TS and
// close relatives.
type scriptExtractor struct{}

var (
	jsFunc  = regexp.MustCompile(`\bfunction\s+([A-Za-z_$][\w$]*)`)
	jsArrow = regexp.MustCompile(`\b(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s+)?(?:function\b|\([^)]*\)\s*=>)`)
	jsClass = regexp.MustCompile(`\bclass\s+([A-Za-z_$][\w$]*)`)
)

func (s *scriptExtractor) Name() string { return "script" }

func (s *scriptExtractor) Match(code string) bool {
	return jsFunc.MatchString(code) || jsArrow.MatchString(code) || strings.Contains(code, "=>")
}

func (s *scriptExtractor) Extract(code string) []CodeEntity {
	var out []CodeEntity
	for _, m := range jsFunc.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindFunction})
	}
	for _, m := range jsArrow.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindFunction})
	}
	for _, m := range jsClass.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindClass})
	}
	return out
}

// goExtractor covers func and method declarations plus struct types.
type goExtractor struct{}

var (
	goMethod = regexp.MustCompile(`\bfunc\s+\([^)]+\)\s*([A-Za-z_]\w*)\s*\(`)
	goFunc   = regexp.MustCompile(`\bfunc\s+([A-Za-z_]\w*)\s*\(`)
	goStruct = regexp.MustCompile(`\btype\s+([A-Za-z_]\w*)\s+struct\b`)
)

func (g *goExtractor) Name() string { return "go" }

func (g *goExtractor) Match(code string) bool {
	return strings.Contains(code, "func ") || goStruct.MatchString(code)
}

func (g *goExtractor) Extract(code string) []CodeEntity {
	var out []CodeEntity
	for _, m := range goMethod.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindMethod})
	}
	for _, m := range goFunc.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindFunction})
	}
	for _, m := range goStruct.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindClass})
	}
	return out
}

// configKeyExtractor is the permissive fallback: any identifier followed by a
// colon is treated as a configuration-style key. It always matches.
type configKeyExtractor struct{}

var configKey = regexp.MustCompile(`(['"]?[A-Za-z_][\w-]*['"]?)\s*:`)

func (c *configKeyExtractor) Name() string { return "config" }

func (c *configKeyExtractor) Match(code string) bool { return true }

func (c *configKeyExtractor) Extract(code string) []CodeEntity {
	var out []CodeEntity
	for _, m := range configKey.FindAllStringSubmatch(code, -1) {
		out = append(out, CodeEntity{Name: m[1], Kind: KindConfigKey})
	}
	return out
}
