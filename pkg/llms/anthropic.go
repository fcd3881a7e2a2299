package llms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"context"

	"github.com/qaforge/datagen/pkg/httpclient"
)

const (
	anthropicDefaultHost = "https://api.anthropic.com"
	anthropicVersion     = "2023-06-01"
)

// AnthropicConfig configures the Claude provider.
type AnthropicConfig struct {
	APIKey      string
	Model       string
	Host        string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

type AnthropicProvider struct {
	config     AnthropicConfig
	httpClient *httpclient.Client
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
	System      string             `json:"system,omitempty"`
}

type anthropicContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type anthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type anthropicResponse struct {
	ID         string             `json:"id"`
	Content    []anthropicContent `json:"content"`
	Model      string             `json:"model"`
	StopReason string             `json:"stop_reason"`
	Usage      anthropicUsage     `json:"usage"`
	Error      *anthropicError    `json:"error,omitempty"`
}

func NewAnthropicProvider(cfg AnthropicConfig) (*AnthropicProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required for Anthropic")
	}
	if cfg.Host == "" {
		cfg.Host = anthropicDefaultHost
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}

	return &AnthropicProvider{
		config: cfg,
		httpClient: httpclient.New(
			httpclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			httpclient.WithMaxRetries(cfg.MaxRetries),
			httpclient.WithHeaderParser(httpclient.ParseAnthropicHeaders),
		),
	}, nil
}

func (p *AnthropicProvider) Name() string {
	return "claude"
}

func (p *AnthropicProvider) Close() error {
	return nil
}

// Generate sends a single-turn messages request and returns the
// concatenated text content plus total tokens used.
func (p *AnthropicProvider) Generate(ctx context.Context, system, user string) (string, int, error) {
	body := anthropicRequest{
		Model:       p.config.Model,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
		System:      system,
		Messages: []anthropicMessage{
			{Role: "user", Content: user},
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.Host+"/v1/messages", bytes.NewReader(jsonData))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.config.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		kind := ErrOther
		if resp != nil {
			kind = kindForStatus(resp.StatusCode)
			resp.Body.Close()
		}
		if ctx.Err() != nil {
			kind = ErrTimeout
		}
		return "", 0, &BackendError{Provider: p.Name(), Kind: kind, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, &BackendError{Provider: p.Name(), Kind: ErrOther, Message: "failed to read response", Err: err}
	}

	var response anthropicResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return "", 0, &BackendError{Provider: p.Name(), Kind: ErrParse, Message: "failed to decode response", Err: err}
	}
	if response.Error != nil {
		return "", 0, &BackendError{
			Provider: p.Name(),
			Kind:     kindForStatus(resp.StatusCode),
			Message:  fmt.Sprintf("API error: %s", response.Error.Message),
		}
	}

	var text string
	for _, content := range response.Content {
		if content.Type == "text" {
			text += content.Text
		}
	}

	tokens := response.Usage.InputTokens + response.Usage.OutputTokens
	return text, tokens, nil
}
