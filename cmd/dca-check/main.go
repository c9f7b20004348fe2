// File path: cmd/dca-check/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/engine"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/ingest"
)

// defaultThreshold is deliberately forgiving; the gate exists to catch docs
// that have drifted completely, not to enforce perfect alignment.
const defaultThreshold = 0.15

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug("dca-check: .env file not loaded", "error", err)
	}

	codeDir := flag.String("code", "src", "directory containing source code")
	docDir := flag.String("docs", "docs", "directory containing documentation")
	threshold := flag.Float64("threshold", defaultThreshold, "minimum consistency score required to pass")
	jsonOut := flag.Bool("json", false, "emit the full report as JSON instead of text")
	flag.Parse()

	logger.Info("dca-check: gate starting", "code", *codeDir, "docs", *docDir, "threshold", *threshold)

	codeText, codeFiles, err := ingest.AggregateCode(*codeDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: aggregate code:", err)
		os.Exit(2)
	}
	if codeFiles == 0 {
		fmt.Println("WARNING: no code files found; skipping consistency check")
		os.Exit(0)
	}
	docText, docFiles, err := ingest.AggregateDocs(*docDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error: aggregate docs:", err)
		os.Exit(2)
	}

	report := engine.Default().Analyze(codeText, docText)

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintln(os.Stderr, "error: encode report:", err)
			os.Exit(2)
		}
	} else {
		printReport(report, codeFiles, docFiles)
	}

	if report.Score < *threshold {
		fmt.Printf("\nFAIL: consistency score %.2f is below threshold %.2f\n", report.Score, *threshold)
		os.Exit(1)
	}
	fmt.Printf("\nPASS: consistency score %.2f meets threshold %.2f\n", report.Score, *threshold)
}

func printReport(report engine.Report, codeFiles, docFiles int) {
	fmt.Println("Documentation Consistency Check")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Code files:   %d\n", codeFiles)
	fmt.Printf("Doc files:    %d\n", docFiles)
	fmt.Printf("Score:        %d%% %s (%s)\n", report.Percent, report.Icon, report.Label)
	fmt.Printf("Summary:      %s\n", report.Summary)
	fmt.Printf("Synced terms: %d  Issues: %d\n", report.Stats.Synced, report.Stats.Issues)
	if len(report.Gaps.MissingInDoc) > 0 {
		fmt.Printf("Missing in docs: %s\n", joinCapped(report.Gaps.MissingInDoc, 10))
	}
	if len(report.Gaps.MissingInCode) > 0 {
		fmt.Printf("Stale doc terms: %s\n", joinCapped(report.Gaps.MissingInCode, 10))
	}
	if len(report.Suggestions) > 0 {
		fmt.Println("Suggestions:")
		for _, s := range report.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}
}

func joinCapped(items []string, limit int) string {
	if len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s ... (%d more)", strings.Join(items[:limit], ", "), len(items)-limit)
}
