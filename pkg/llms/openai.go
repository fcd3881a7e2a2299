package llms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/qaforge/datagen/pkg/httpclient"
)

// OpenAIConfig configures an OpenAI-compatible chat provider. vLLM serves
// this API, so BaseURL usually points at the local deployment.
type OpenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	MaxRetries  int
}

type OpenAIProvider struct {
	config     OpenAIConfig
	httpClient *httpclient.Client
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Temperature float64         `json:"temperature,omitempty"`
}

type openAIChoice struct {
	Message      openAIMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type openAIUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type openAIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

type openAIResponse struct {
	ID      string         `json:"id"`
	Choices []openAIChoice `json:"choices"`
	Usage   openAIUsage    `json:"usage"`
	Error   *openAIError   `json:"error,omitempty"`
}

func NewOpenAIProvider(cfg OpenAIConfig) (*OpenAIProvider, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}

	return &OpenAIProvider{
		config: cfg,
		httpClient: httpclient.New(
			httpclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			httpclient.WithMaxRetries(cfg.MaxRetries),
			httpclient.WithHeaderParser(httpclient.ParseOpenAIHeaders),
		),
	}, nil
}

func (p *OpenAIProvider) Name() string {
	return "vllm"
}

func (p *OpenAIProvider) Close() error {
	return nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, system, user string) (string, int, error) {
	body := openAIRequest{
		Model:       p.config.Model,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
		Messages: []openAIMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimSuffix(p.config.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	}

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

	var response openAIResponse
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
	if len(response.Choices) == 0 {
		return "", 0, &BackendError{Provider: p.Name(), Kind: ErrParse, Message: "response contained no choices"}
	}

	return response.Choices[0].Message.Content, response.Usage.TotalTokens, nil
}
