package claude_test

import (
	"context"
	"testing"

	"github.com/meplus/tasks-api/pkg/infra/providers"
	"github.com/meplus/tasks-api/pkg/infra/providers/claude"
	"github.com/stretchr/testify/assert"
)

func TestNewClaudeClient(t *testing.T) {
	client := claude.NewClaudeClient(providers.Config{Model: "claude-sonnet-4-5"})
	assert.NotNil(t, client)
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	client := claude.NewClaudeClient(providers.Config{Model: "claude-sonnet-4-5"})

	resp, err := client.Generate(context.Background(), "x")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "Claude API key not configured", err.Error())
}
