// File path: internal/api/server_test.go
package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/engine"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/history"
	"github.com/Mahek-makwana/doc-consistency-agent/internal/suggest"
)

func newTestServer(t *testing.T, store *history.Store) *Server {
	t.Helper()
	cfg := Config{UploadRoot: t.TempDir(), Project: "test-project"}
	srv, err := NewServer(engine.Default(), store, nil, &cfg)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return srv
}

func openTestStore(t *testing.T) *history.Store {
	t.Helper()
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("history.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	store := openTestStore(t)
	srv := newTestServer(t, store)

	payload := analyzeRequest{
		Code:          "def process_payment(amount):\n    return amount\n",
		Documentation: "process_payment charges the given amount.",
	}
	body, _ := json.Marshal(payload)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Report.Score < 0 || resp.Report.Score > 1 {
		t.Fatalf("score = %v, want within [0, 1]", resp.Report.Score)
	}
	if resp.Report.Label == "" {
		t.Fatal("response is missing a label")
	}
	if resp.HistoryID <= 0 {
		t.Fatalf("history id = %d, want positive", resp.HistoryID)
	}

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports?project=test-project", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("reports status = %d", rec.Code)
	}
	var reports reportsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
		t.Fatalf("decode reports: %v", err)
	}
	if len(reports.Reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(reports.Reports))
	}
	if reports.Reports[0].Project != "test-project" {
		t.Fatalf("project = %q, want %q", reports.Reports[0].Project, "test-project")
	}
}

func TestAnalyzeRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader("{not json"))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAuditAcceptsZipAndPlainUploads(t *testing.T) {
	srv := newTestServer(t, nil)

	var archive bytes.Buffer
	zw := zip.NewWriter(&archive)
	member, err := zw.Create("src/billing.py")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := member.Write([]byte("def refund_order(order):\n    return order\n")); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	// Non-code members are filtered out of the corpus.
	noise, err := zw.Create("assets/logo.png")
	if err != nil {
		t.Fatalf("zip create: %v", err)
	}
	if _, err := noise.Write([]byte{0x89, 0x50}); err != nil {
		t.Fatalf("zip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	codePart, err := form.CreateFormFile("code", "project.zip")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := codePart.Write(archive.Bytes()); err != nil {
		t.Fatalf("form write: %v", err)
	}
	docPart, err := form.CreateFormFile("docs", "README.md")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := docPart.Write([]byte("refund_order reverses a captured order.\n")); err != nil {
		t.Fatalf("form write: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("form close: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/audit", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp auditResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.CodeFiles != 1 || resp.DocFiles != 1 {
		t.Fatalf("file counts = (%d, %d), want (1, 1)", resp.CodeFiles, resp.DocFiles)
	}
	found := false
	for _, ent := range resp.Report.Entities {
		if ent.Name == "refund_order" {
			found = true
		}
	}
	if !found {
		t.Fatalf("entities = %v, want refund_order extracted from the archive", resp.Report.Entities)
	}
}

func TestAuditRequiresCodeFiles(t *testing.T) {
	srv := newTestServer(t, nil)
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	docPart, err := form.CreateFormFile("docs", "README.md")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := docPart.Write([]byte("docs only\n")); err != nil {
		t.Fatalf("form write: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("form close: %v", err)
	}
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/audit", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestScanEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	root := t.TempDir()
	codeDir := filepath.Join(root, "src")
	docDir := filepath.Join(root, "docs")
	if err := os.MkdirAll(codeDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(docDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(codeDir, "main.py"), []byte("def ship_package(box):\n    return box\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(docDir, "guide.md"), []byte("ship_package dispatches a box to the courier.\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	payload := scanRequest{
		CodeDir:   codeDir,
		DocDir:    docDir,
		OutputDir: filepath.Join(root, "generated"),
	}
	body, _ := json.Marshal(payload)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp scanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Result == nil {
		t.Fatal("scan returned no result")
	}
	if resp.Result.CodeFiles != 1 || resp.Result.DocFiles != 1 {
		t.Fatalf("file counts = (%d, %d), want (1, 1)", resp.Result.CodeFiles, resp.Result.DocFiles)
	}
}

func TestScanRequiresDirectories(t *testing.T) {
	srv := newTestServer(t, nil)
	body, _ := json.Marshal(scanRequest{DocDir: "docs"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/scan", bytes.NewReader(body))
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDocstringEndpointFallsBackWithoutProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg := Config{UploadRoot: t.TempDir(), Project: "test-project"}
	srv, err := NewServer(engine.Default(), nil, suggest.New(), &cfg)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	body, _ := json.Marshal(docstringRequest{
		Name: "process_payment",
		Code: "def process_payment(amount):\n    return amount\n",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/docstring", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp docstringResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(resp.Docstring, "process_payment") {
		t.Fatalf("docstring %q does not mention the function", resp.Docstring)
	}
}

func TestDocstringRequiresSuggester(t *testing.T) {
	srv := newTestServer(t, nil)
	body, _ := json.Marshal(docstringRequest{Name: "anything"})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/docstring", bytes.NewReader(body)))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestReportsRequireStore(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/reports", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestLogsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/logs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := payload["logs"]; !ok {
		t.Fatal("response is missing the logs field")
	}
}
