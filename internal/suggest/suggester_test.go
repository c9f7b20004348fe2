// File path: internal/suggest/suggester_test.go
package suggest

import (
	"context"
	"strings"
	"testing"
)

func TestOfflineMarkdownFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	s := New()
	if s.Enabled() {
		t.Fatal("suggester enabled without an API key")
	}
	doc := s.MarkdownDoc(context.Background(), "Documentation for charge_card", "Detected in billing.py")
	if !strings.HasPrefix(doc, "# Documentation for charge_card") {
		t.Fatalf("fallback doc = %q", doc)
	}
	if !strings.Contains(doc, "billing.py") {
		t.Fatalf("fallback doc lost context: %q", doc)
	}
}

func TestOfflineDocstringFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	s := New()
	out := s.Docstring(context.Background(), "charge_card", "def charge_card(token): ...")
	if !strings.Contains(out, "charge_card") {
		t.Fatalf("fallback docstring = %q", out)
	}
}
