package generation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/meplus/tasks-api/pkg/app/generation"
	"github.com/meplus/tasks-api/pkg/infra/providers"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	lastPrompt string
	completion *providers.Completion
	err        error
}

func (s *stubClient) Generate(_ context.Context, prompt string) (*providers.Completion, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return nil, s.err
	}
	return s.completion, nil
}

type stubLocator struct {
	client providers.Client
	err    error
	calls  int
}

func (s *stubLocator) Get(_ string) (providers.Client, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.client, nil
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestGenerate_Success(t *testing.T) {
	client := &stubClient{
		completion: &providers.Completion{Provider: "openai", Model: "gpt-4o", Text: "Draft the Q3 budget review"},
	}
	locator := &stubLocator{client: client}
	gen := generation.NewGenerator(locator, newLogger())

	outcome := gen.Generate(context.Background(), "openai", "plan my quarter",
		map[string]interface{}{"industry": "finance"},
		map[string]interface{}{"category": "work"})

	require.True(t, outcome.Success)
	assert.Equal(t, "Draft the Q3 budget review", outcome.Data)
	assert.Empty(t, outcome.Error)
	assert.Contains(t, client.lastPrompt, "Prompt: plan my quarter")
	assert.Contains(t, client.lastPrompt, "User context:")
	assert.Contains(t, client.lastPrompt, "Metadata: keep in mind the following metadata:")
}

func TestGenerate_EmptyPromptSkipsProvider(t *testing.T) {
	locator := &stubLocator{client: &stubClient{}}
	gen := generation.NewGenerator(locator, newLogger())

	outcome := gen.Generate(context.Background(), "openai", "", nil, nil)

	assert.False(t, outcome.Success)
	assert.Equal(t, "prompt is required", outcome.Error)
	assert.Zero(t, locator.calls, "provider must not be consulted for an empty prompt")
}

func TestGenerate_UnsupportedProvider(t *testing.T) {
	locator := &stubLocator{err: errors.New("unsupported provider: mistral")}
	gen := generation.NewGenerator(locator, newLogger())

	outcome := gen.Generate(context.Background(), "mistral", "x", nil, nil)

	assert.False(t, outcome.Success)
	assert.Empty(t, outcome.Data)
	assert.Equal(t, "unsupported provider: mistral", outcome.Error)
}

func TestGenerate_MissingCredentialOutcome(t *testing.T) {
	client := &stubClient{err: providers.ErrNotConfigured("Claude")}
	gen := generation.NewGenerator(&stubLocator{client: client}, newLogger())

	outcome := gen.Generate(context.Background(), "claude", "summarize my week", nil, nil)

	assert.False(t, outcome.Success)
	assert.Empty(t, outcome.Data)
	assert.Equal(t, "Claude API key not configured", outcome.Error)
}

func TestGenerate_AdapterFailureBecomesOutcome(t *testing.T) {
	client := &stubClient{err: errors.New("OpenAI request failed: connection reset")}
	gen := generation.NewGenerator(&stubLocator{client: client}, newLogger())

	outcome := gen.Generate(context.Background(), "openai", "x", nil, nil)

	assert.False(t, outcome.Success)
	assert.Equal(t, "OpenAI request failed: connection reset", outcome.Error)
}
