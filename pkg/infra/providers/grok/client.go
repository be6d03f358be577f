package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/meplus/tasks-api/pkg/infra/providers"
)

const (
	displayName       = "Grok"
	systemPersona     = "You are Grok, a chatbot inspired by the Hitchhiker's Guide to the Galaxy."
	httpClientTimeout = 30 * time.Second
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

// chatResponse mirrors the OpenAI-compatible completion shape served by the
// x.ai endpoint.
type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type client struct {
	cfg        providers.Config
	httpClient *http.Client
}

func NewGrokClient(cfg providers.Config) providers.Client {
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

func (c *client) Generate(ctx context.Context, prompt string) (*providers.Completion, error) {
	if c.cfg.APIKey == "" {
		return nil, providers.ErrNotConfigured(displayName)
	}

	reqBody, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPersona},
			{Role: "user", Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	url := c.cfg.BaseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("Grok request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("Grok API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, fmt.Errorf("invalid Grok response body: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return nil, providers.ErrNoContent(displayName)
	}

	model := chatResp.Model
	if model == "" {
		model = c.cfg.Model
	}

	return &providers.Completion{
		Provider: "grok",
		Model:    model,
		Text:     chatResp.Choices[0].Message.Content,
	}, nil
}
