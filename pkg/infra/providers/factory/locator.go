package factory

import (
	"fmt"

	"github.com/meplus/tasks-api/pkg/config"
	"github.com/meplus/tasks-api/pkg/infra/providers"
	"github.com/meplus/tasks-api/pkg/infra/providers/claude"
	"github.com/meplus/tasks-api/pkg/infra/providers/gemini"
	"github.com/meplus/tasks-api/pkg/infra/providers/grok"
	"github.com/meplus/tasks-api/pkg/infra/providers/openai"
)

const (
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
	ProviderGemini = "gemini"
	ProviderGrok   = "grok"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

// ProviderLocator resolves a provider identifier to its adapter. The set of
// providers is closed; adding one is a compile-time extension.
type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	clients map[string]providers.Client
}

// NewProviderLocator builds every adapter once; clients and credentials are
// reused across calls for the process lifetime.
func NewProviderLocator(cfg config.ProvidersConfig) ProviderLocator {
	return &providerLocator{
		clients: map[string]providers.Client{
			ProviderOpenAI: openai.NewOpenAIClient(toProviderConfig(cfg.OpenAI)),
			ProviderClaude: claude.NewClaudeClient(toProviderConfig(cfg.Claude)),
			ProviderGemini: gemini.NewGeminiClient(toProviderConfig(cfg.Gemini)),
			ProviderGrok:   grok.NewGrokClient(toProviderConfig(cfg.Grok)),
		},
	}
}

func (f *providerLocator) Get(provider string) (providers.Client, error) {
	client, ok := f.clients[provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	return client, nil
}

func toProviderConfig(cfg config.ProviderConfig) providers.Config {
	return providers.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	}
}
