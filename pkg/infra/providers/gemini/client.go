package gemini

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/meplus/tasks-api/pkg/infra/providers"
	"google.golang.org/genai"
)

const displayName = "Gemini"

type client struct {
	cfg     providers.Config
	once    sync.Once
	sdk     *genai.Client
	initErr error
}

func NewGeminiClient(cfg providers.Config) providers.Client {
	return &client{cfg: cfg}
}

func (c *client) Generate(ctx context.Context, prompt string) (*providers.Completion, error) {
	if c.cfg.APIKey == "" {
		return nil, providers.ErrNotConfigured(displayName)
	}

	sdk, err := c.getOrCreateClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("Gemini client initialization failed: %w", err)
	}

	result, err := sdk.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("Gemini request failed: %w", err)
	}

	// Gemini tends to fence structured answers in markdown blocks.
	responseText := result.Text()
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	if responseText == "" {
		return nil, providers.ErrNoContent(displayName)
	}

	return &providers.Completion{
		Provider: "gemini",
		Model:    c.cfg.Model,
		Text:     responseText,
	}, nil
}

func (c *client) getOrCreateClient(ctx context.Context) (*genai.Client, error) {
	c.once.Do(func() {
		c.sdk, c.initErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  c.cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return c.sdk, c.initErr
}
