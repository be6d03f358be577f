package claude

import (
	"context"
	"fmt"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/meplus/tasks-api/pkg/infra/providers"
)

const (
	displayName   = "Claude"
	systemPersona = "You are a MePlus agent that helps professionals create actionable tasks."
	maxTokens     = 1024
)

type client struct {
	cfg  providers.Config
	once sync.Once
	sdk  anthropic.Client
}

func NewClaudeClient(cfg providers.Config) providers.Client {
	return &client{cfg: cfg}
}

func (c *client) Generate(ctx context.Context, prompt string) (*providers.Completion, error) {
	if c.cfg.APIKey == "" {
		return nil, providers.ErrNotConfigured(displayName)
	}

	sdk := c.getOrCreateClient()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.cfg.Model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		System: []anthropic.TextBlockParam{
			{Text: systemPersona, Type: "text"},
		},
	}

	message, err := sdk.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("Claude request failed: %w", err)
	}

	var responseText string
	for _, content := range message.Content {
		if content.Type == "text" {
			responseText = content.Text
			break
		}
	}
	if responseText == "" {
		return nil, providers.ErrNoContent(displayName)
	}

	return &providers.Completion{
		Provider: "claude",
		Model:    c.cfg.Model,
		Text:     responseText,
	}, nil
}

func (c *client) getOrCreateClient() anthropic.Client {
	c.once.Do(func() {
		c.sdk = anthropic.NewClient(option.WithAPIKey(c.cfg.APIKey))
	})
	return c.sdk
}
