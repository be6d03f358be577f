package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/meplus/tasks-api/pkg/infra/providers"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	displayName   = "OpenAI"
	systemPersona = "You are a MePlus agent that helps professionals create actionable tasks."
)

type client struct {
	cfg  providers.Config
	once sync.Once
	sdk  *openai.Client
}

func NewOpenAIClient(cfg providers.Config) providers.Client {
	return &client{cfg: cfg}
}

func (c *client) Generate(ctx context.Context, prompt string) (*providers.Completion, error) {
	if c.cfg.APIKey == "" {
		return nil, providers.ErrNotConfigured(displayName)
	}

	sdk := c.getOrCreateClient()

	params := openai.ChatCompletionNewParams{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPersona),
			openai.UserMessage(prompt),
		},
	}

	resp, err := sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, providers.ErrNoContent(displayName)
	}

	return &providers.Completion{
		Provider: "openai",
		Model:    resp.Model,
		Text:     resp.Choices[0].Message.Content,
	}, nil
}

// The SDK client is built once and reused; credentials never change within
// a process lifetime.
func (c *client) getOrCreateClient() *openai.Client {
	c.once.Do(func() {
		sdk := openai.NewClient(option.WithAPIKey(c.cfg.APIKey))
		c.sdk = &sdk
	})
	return c.sdk
}
