package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/lazyresident/lazyresident/internal/note"
	"github.com/lazyresident/lazyresident/types"
)

// RunRecord captures diagnostics for a single generation call. It carries
// sizes and timing only, never prompt or response content.
type RunRecord struct {
	Section       string
	Provider      string
	Model         string
	Duration      time.Duration
	PromptBytes   int
	ResponseBytes int
	Err           error
}

// Client wraps a provider chat model and handles structured generation for
// note sections. The underlying chat model is created lazily and cached
// until the model name changes.
type Client struct {
	cfg  types.LLMConfig
	chat model.BaseChatModel

	// newChat is swapped in tests to avoid real provider construction.
	newChat func(ctx context.Context, cfg Config) (model.BaseChatModel, error)

	// OnRun, when set, receives diagnostics after every generation call.
	OnRun func(rec RunRecord)
}

// NewClient creates a client for the given configuration. Empty provider
// and model fall back to the Gemini defaults.
func NewClient(cfg types.LLMConfig) *Client {
	if cfg.Provider == "" {
		cfg.Provider = DefaultProvider
	}
	cfg.ModelName = strings.TrimSpace(cfg.ModelName)
	if cfg.ModelName == "" {
		cfg.ModelName = GetDefaultModelID(cfg.Provider)
	}
	return &Client{cfg: cfg, newChat: NewChatModel}
}

// NewClientWithChatModel creates a client bound to an existing chat model,
// bypassing provider construction. Useful for tests.
func NewClientWithChatModel(cfg types.LLMConfig, chat model.BaseChatModel) *Client {
	c := NewClient(cfg)
	c.chat = chat
	return c
}

// IsConfigured reports whether the client has the credentials it needs to
// reach its provider. Ollama runs locally and needs no key.
func (c *Client) IsConfigured() bool {
	if c.cfg.Provider == ProviderOllama {
		return true
	}
	return c.cfg.APIKey != ""
}

// Provider returns the active provider ID.
func (c *Client) Provider() string { return c.cfg.Provider }

// Model returns the active model name.
func (c *Client) Model() string { return c.cfg.ModelName }

// SetModel switches the active model. Changing the model drops the cached
// chat handle so the next call rebuilds it.
func (c *Client) SetModel(name string) {
	target := strings.TrimSpace(name)
	if target == "" {
		target = GetDefaultModelID(c.cfg.Provider)
	}
	if target != c.cfg.ModelName {
		c.cfg.ModelName = target
		c.chat = nil
	}
}

func (c *Client) chatModel(ctx context.Context) (model.BaseChatModel, error) {
	if c.chat != nil {
		return c.chat, nil
	}
	chat, err := c.newChat(ctx, Config{
		Provider: Provider(c.cfg.Provider),
		Model:    c.cfg.ModelName,
		APIKey:   c.cfg.APIKey,
		BaseURL:  c.cfg.BaseURL,
	})
	if err != nil {
		return nil, err
	}
	c.chat = chat
	return chat, nil
}

func (c *Client) timeout() time.Duration {
	secs := c.cfg.RequestTimeoutSeconds
	if secs <= 0 {
		secs = DefaultRequestTimeoutSeconds
	}
	return time.Duration(secs) * time.Second
}

// generate sends a single-turn prompt and returns the cleaned response
// text. Provider faults come back wrapped as types.ProviderError.
func (c *Client) generate(ctx context.Context, section note.Section, prompt string) (string, error) {
	if !c.IsConfigured() {
		return "", types.ErrNotConfigured
	}

	chat, err := c.chatModel(ctx)
	if err != nil {
		return "", &types.ProviderError{Section: section.DisplayName(), Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout())
	defer cancel()

	start := time.Now()
	resp, err := chat.Generate(ctx, []*schema.Message{
		schema.UserMessage(prompt),
	})
	elapsed := time.Since(start)

	var content string
	if err == nil {
		content = cleanResponse(resp.Content)
	}

	c.report(RunRecord{
		Section:       string(section),
		Provider:      c.cfg.Provider,
		Model:         c.cfg.ModelName,
		Duration:      elapsed,
		PromptBytes:   len(prompt),
		ResponseBytes: len(content),
		Err:           err,
	})

	if err != nil {
		return "", &types.ProviderError{Section: section.DisplayName(), Err: err}
	}
	if content == "" {
		return "", &types.ProviderError{Section: section.DisplayName(), Err: fmt.Errorf("empty response from %s", c.cfg.ModelName)}
	}
	return content, nil
}

func (c *Client) report(rec RunRecord) {
	if c.cfg.Debug {
		status := "ok"
		if rec.Err != nil {
			status = "error"
		}
		fmt.Fprintf(os.Stderr, "llm: %s via %s/%s in %s (%dB prompt, %dB response, %s)\n",
			rec.Section, rec.Provider, rec.Model, rec.Duration.Round(time.Millisecond),
			rec.PromptBytes, rec.ResponseBytes, status)
	}
	if c.OnRun != nil {
		c.OnRun(rec)
	}
}

// cleanResponse strips markdown code fences that models wrap around JSON.
func cleanResponse(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	return strings.TrimSpace(response)
}

// GenerateStructured runs a prompt and decodes the response through the
// section's strict decoder. Decode failures are returned as
// types.ValidationError; the call either yields a fully valid value or an
// error, never a partial one.
func GenerateStructured[T any](ctx context.Context, c *Client, section note.Section, prompt string, decode func([]byte) (*T, error)) (*T, error) {
	raw, err := c.generate(ctx, section, prompt)
	if err != nil {
		return nil, err
	}
	v, err := decode([]byte(raw))
	if err != nil {
		return nil, &types.ValidationError{Section: section.DisplayName(), Err: err}
	}
	return v, nil
}
