package gemini_test

import (
	"context"
	"testing"

	"github.com/meplus/tasks-api/pkg/infra/providers"
	"github.com/meplus/tasks-api/pkg/infra/providers/gemini"
	"github.com/stretchr/testify/assert"
)

func TestGenerate_MissingAPIKey(t *testing.T) {
	client := gemini.NewGeminiClient(providers.Config{Model: "gemini-2.5-flash"})

	resp, err := client.Generate(context.Background(), "x")

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, "Gemini API key not configured", err.Error())
}
