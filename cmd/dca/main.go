// File path: cmd/dca/main.go
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/api"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/engine"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/history"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/suggest"
)

func main() {
	logger := common.Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn("dca: .env file not loaded", "error", err)
	} else {
		logger.Info("dca: environment loaded from .env")
	}

	addr := flag.String("addr", ":8084", "listen address")
	historyPath := flag.String("history", defaultHistoryPath(), "path to the SQLite audit history database (empty disables history)")
	uploadRoot := flag.String("upload-root", "", "directory for temporary upload workspaces")
	project := flag.String("project", "", "default project name attached to reports")
	flag.Parse()

	logger.Info("dca: startup initiated", "addr", *addr, "history", *historyPath)

	var store *history.Store
	if trimmed := strings.TrimSpace(*historyPath); trimmed != "" {
		opened, err := history.Open(trimmed)
		if err != nil {
			logger.Warn("dca: history store unavailable; continuing without it", "path", trimmed, "error", err)
		} else {
			store = opened
			defer store.Close()
			logger.Info("dca: history store ready", "path", trimmed)
		}
	}

	suggester := suggest.New()
	if suggester.Enabled() {
		logger.Info("dca: ai suggester enabled")
	} else {
		logger.Info("dca: ai suggester disabled; using template fallbacks")
	}

	cfg := api.DefaultConfig()
	if trimmed := strings.TrimSpace(*uploadRoot); trimmed != "" {
		cfg.UploadRoot = trimmed
	}
	if trimmed := strings.TrimSpace(*project); trimmed != "" {
		cfg.Project = trimmed
	}

	server, err := api.NewServer(engine.Default(), store, suggester, &cfg)
	if err != nil {
		logger.Error("dca: server construction failed", "error", err)
		fmt.Println("server error:", err)
		os.Exit(1)
	}

	logger.Info("dca: server listening", "addr", *addr, "health", "/healthz")
	fmt.Printf("Serving on %s\n", *addr)
	reachable := *addr
	if strings.HasPrefix(reachable, ":") {
		reachable = "localhost" + reachable
	}
	logger.Info("dca: verify reachability", "suggestion", fmt.Sprintf("curl http://%s/healthz", reachable))
	if err := http.ListenAndServe(*addr, server); err != nil {
		logger.Error("dca: server stopped", "error", err)
		fmt.Println("server stopped:", err)
	}
}

func defaultHistoryPath() string {
	return filepath.Join("data", "history.db")
}
