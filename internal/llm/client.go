// Package llm provides the chat-completion client used to turn feature
// attributions into a patient-readable narrative.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNarrativeService is returned when the completion backend is
// unreachable, rejects the request, or returns an unusable payload.
var ErrNarrativeService = errors.New("narrative service unavailable")

// ChatCompleter produces one completion for a system/user prompt pair.
type ChatCompleter interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ClientConfig configures the chat-completion HTTP client.
type ClientConfig struct {
	BaseURL   string
	APIKey    string
	ModelName string
	Timeout   time.Duration
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Client is a ChatCompleter over the OpenAI-compatible
// /v1/chat/completions endpoint.
type Client struct {
	client    *resty.Client
	modelName string
}

// NewClient builds a chat-completion client for the given backend.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &Client{client: cli, modelName: cfg.ModelName}
}

// Complete sends the prompt pair and returns the first choice's content.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var out completionResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(completionRequest{
			Model: c.modelName,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userPrompt},
			},
			Temperature: 0.3,
		}).
		SetResult(&out).
		SetError(&out).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNarrativeService, err)
	}

	if resp.StatusCode() != http.StatusOK {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrNarrativeService, out.Error.Message)
		}
		return "", fmt.Errorf("%w: unexpected status %d", ErrNarrativeService, resp.StatusCode())
	}

	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", ErrNarrativeService)
	}

	return out.Choices[0].Message.Content, nil
}
