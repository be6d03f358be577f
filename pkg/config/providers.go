package config

import "github.com/spf13/viper"

// ProviderConfig is the static binding for a single AI provider. Credentials
// are sourced from the environment at startup; an empty APIKey means the
// provider stays unavailable for the process lifetime.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type ProvidersConfig struct {
	OpenAI ProviderConfig `mapstructure:"openai"`
	Claude ProviderConfig `mapstructure:"claude"`
	Gemini ProviderConfig `mapstructure:"gemini"`
	Grok   ProviderConfig `mapstructure:"grok"`
}

// One canonical environment key per provider.
func bindProviderEnvKeys() {
	_ = viper.BindEnv("providers.openai.api_key", "OPENAI_API_KEY")
	_ = viper.BindEnv("providers.claude.api_key", "CLAUDE_API_KEY")
	_ = viper.BindEnv("providers.gemini.api_key", "GEMINI_API_KEY")
	_ = viper.BindEnv("providers.grok.api_key", "GROK_API_KEY")
}

func (p *ProvidersConfig) applyDefaults() {
	if p.OpenAI.Model == "" {
		p.OpenAI.Model = "gpt-4o"
	}
	if p.Claude.Model == "" {
		p.Claude.Model = "claude-sonnet-4-5"
	}
	if p.Gemini.Model == "" {
		p.Gemini.Model = "gemini-2.5-flash"
	}
	if p.Grok.Model == "" {
		p.Grok.Model = "grok-4-0709"
	}
	if p.Grok.BaseURL == "" {
		p.Grok.BaseURL = "https://api.x.ai/v1"
	}
}
