// File path: internal/suggest/suggester.go

// Package suggest drafts documentation stubs for entities the audit found
// undocumented. With no API key configured it degrades to deterministic
// offline templates, so the pipeline never depends on network access.
package suggest

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"

	"github.com/Mahek-makwana/doc-consistency-agent/internal/common"
)

// Suggester generates markdown documentation and docstring proposals.
type Suggester struct {
	client  *openai.Client
	model   openai.ChatModel
	enabled bool
}

// New builds a suggester from the environment: OPENAI_API_KEY enables the
// remote path, OPENAI_CHAT_MODEL overrides the default model.
func New() *Suggester {
	logger := common.Logger()
	model := openai.ChatModelGPT4oMini
	if override := strings.TrimSpace(os.Getenv("OPENAI_CHAT_MODEL")); override != "" {
		model = openai.ChatModel(override)
	}
	apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if apiKey == "" {
		logger.Warn("suggest: OPENAI_API_KEY not set; using offline templates")
		return &Suggester{model: model}
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
		logger.Info("suggest: using custom endpoint", "endpoint", endpoint)
		opts = append(opts, option.WithBaseURL(endpoint))
	}
	client := openai.NewClient(opts...)
	logger.Info("suggest: OpenAI suggester configured", "model", model)
	return &Suggester{client: &client, model: model, enabled: true}
}

// Enabled reports whether remote generation is configured.
func (s *Suggester) Enabled() bool {
	return s != nil && s.enabled
}

// MarkdownDoc drafts a markdown documentation page for the given title.
func (s *Suggester) MarkdownDoc(ctx context.Context, title, summary string) string {
	fallback := fmt.Sprintf("# %s\n\nTODO: Add detailed documentation.\n\nContext: %s\n", title, summary)
	if !s.Enabled() {
		return fallback
	}
	prompt := fmt.Sprintf(
		"You are a technical writer. Create a concise Markdown documentation page for: %s\n\nContext:\n%s\n\nInclude an overview, usage notes and technical details.",
		title, summary)
	out, err := s.complete(ctx, prompt)
	if err != nil {
		common.Logger().Warn("suggest: markdown generation failed", "title", title, "error", err)
		return fallback
	}
	return out
}

// Docstring drafts a docstring for the named function's source.
func (s *Suggester) Docstring(ctx context.Context, name, code string) string {
	fallback := fmt.Sprintf("\"\"\"\nTODO: Add documentation for %s\n\"\"\"", name)
	if !s.Enabled() {
		return fallback
	}
	prompt := fmt.Sprintf(
		"You are an expert developer. Generate a docstring for the following function. Return only the docstring.\n\nFunction code:\n%s",
		code)
	out, err := s.complete(ctx, prompt)
	if err != nil {
		common.Logger().Warn("suggest: docstring generation failed", "name", name, "error", err)
		return fallback
	}
	return out
}

func (s *Suggester) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: s.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
