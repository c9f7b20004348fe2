// File path: internal/ingest/archive.go
package ingest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
)

// maxArchiveFileSize bounds how much a single archived file may contribute,
// keeping a hostile upload from exhausting memory.
const maxArchiveFileSize = 8 << 20

// ReadUpload turns an uploaded file into analysis text. ZIP archives are
// expanded and every member matching exts is concatenated with origin
// markers; plain files are returned as-is.
func ReadUpload(filename string, data []byte, exts map[string]struct{}, marker string) (string, error) {
	if strings.EqualFold(filepath.Ext(filename), ".zip") {
		return ExpandArchive(data, exts, marker)
	}
	return fmt.Sprintf("%s: %s\n%s\n", marker, filepath.Base(filename), string(data)), nil
}

// ExpandArchive concatenates the matching members of a ZIP archive.
func ExpandArchive(data []byte, exts map[string]struct{}, marker string) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open archive: %w", err)
	}
	logger := common.Logger()
	var builder strings.Builder
	for _, member := range reader.File {
		if member.FileInfo().IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(member.Name))
		if _, ok := exts[ext]; !ok {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			logger.Warn("ingest: skipping archive member", "member", member.Name, "error", err)
			continue
		}
		content, err := io.ReadAll(io.LimitReader(rc, maxArchiveFileSize))
		rc.Close()
		if err != nil {
			logger.Warn("ingest: failed to read archive member", "member", member.Name, "error", err)
			continue
		}
		fmt.Fprintf(&builder, "%s: %s\n%s\n", marker, filepath.Base(member.Name), string(content))
	}
	return builder.String(), nil
}
