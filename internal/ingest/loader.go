// File path: internal/ingest/loader.go
package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
)

// LoadText reads a file as analysis text. Structured formats (JSON, YAML) are
// decoded and re-rendered as flat YAML so that their keys tokenize the same
// way regardless of the original formatting; everything else is returned
// verbatim.
func LoadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return flattenJSON(data)
	case ".yaml", ".yml":
		return flattenYAML(data)
	default:
		return string(data), nil
	}
}

func flattenJSON(data []byte) (string, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		// Malformed structured files still contribute their raw text; the
		// lexical scanners tolerate noise.
		return string(data), nil
	}
	return renderYAML(doc, data)
}

func flattenYAML(data []byte) (string, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return string(data), nil
	}
	return renderYAML(doc, data)
}

func renderYAML(doc interface{}, fallback []byte) (string, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return string(fallback), nil
	}
	return string(out), nil
}

// AggregateCode concatenates every code file under root with a #FILE marker
// per file so the extractor can attribute entities to their origin. Returns
// the combined text and the number of files read.
func AggregateCode(root string) (string, int, error) {
	return aggregate(root, CodeExtensions, "#FILE")
}

// AggregateDocs concatenates every documentation file under root with #DOC
// markers.
func AggregateDocs(root string) (string, int, error) {
	return aggregate(root, DocExtensions, "#DOC")
}

func aggregate(root string, exts map[string]struct{}, marker string) (string, int, error) {
	files, err := ListFiles(root, exts)
	if err != nil {
		return "", 0, err
	}
	logger := common.Logger()
	var builder strings.Builder
	loaded := 0
	for _, path := range files {
		text, err := LoadText(path)
		if err != nil {
			logger.Warn("ingest: skipping unreadable file", "path", path, "error", err)
			continue
		}
		fmt.Fprintf(&builder, "%s: %s\n%s\n", marker, filepath.Base(path), text)
		loaded++
	}
	return builder.String(), loaded, nil
}
