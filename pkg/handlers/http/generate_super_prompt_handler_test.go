package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/app/generation"
	"github.com/meplus/tasks-api/pkg/domain/user"
	handlers "github.com/meplus/tasks-api/pkg/handlers/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSuperPromptApp(userID uuid.UUID, gen *stubGenerator, prompts *stubSuperPromptRepo) *fiber.App {
	users := &stubUserRepo{user: &user.User{ID: userID, Plan: "BASE", Industry: "finance"}}
	app := authenticatedApp(userID)
	app.Post("/super-prompts",
		handlers.NewGenerateSuperPromptHandler(testLogger(), gen, users, prompts).Handle)
	return app
}

func TestGenerateSuperPromptHandler_Success(t *testing.T) {
	userID := uuid.New()
	gen := &stubGenerator{outcome: generation.Outcome{Success: true, Data: "Refined super prompt"}}
	prompts := &stubSuperPromptRepo{}
	app := newSuperPromptApp(userID, gen, prompts)

	body := `{"task":"launch a newsletter","tone":"professional","questions":{"goal":"grow audience"}}`
	req := httptest.NewRequest(http.MethodPost, "/super-prompts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "openai", gen.lastProv, "provider defaults to openai")
	assert.Contains(t, gen.lastPrompt, "Task: launch a newsletter")
	assert.Contains(t, gen.lastPrompt, "Tone: professional")
	assert.Contains(t, gen.lastPrompt, "Q: goal")

	require.NotNil(t, prompts.created)
	assert.Equal(t, "Refined super prompt", prompts.created.GeneratedPrompt)
	assert.Equal(t, "openai", prompts.created.AIModel)
}

func TestGenerateSuperPromptHandler_ExplicitProvider(t *testing.T) {
	userID := uuid.New()
	gen := &stubGenerator{outcome: generation.Outcome{Success: true, Data: "ok"}}
	app := newSuperPromptApp(userID, gen, &stubSuperPromptRepo{})

	body := `{"provider":"claude","task":"plan a sprint"}`
	req := httptest.NewRequest(http.MethodPost, "/super-prompts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "claude", gen.lastProv)
}

func TestGenerateSuperPromptHandler_GenerationFailure(t *testing.T) {
	userID := uuid.New()
	gen := &stubGenerator{outcome: generation.Outcome{Success: false, Error: "Claude API key not configured"}}
	prompts := &stubSuperPromptRepo{}
	app := newSuperPromptApp(userID, gen, prompts)

	body := `{"provider":"claude","task":"plan a sprint"}`
	req := httptest.NewRequest(http.MethodPost, "/super-prompts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.Equal(t, "AI generation failed: Claude API key not configured", payload["error"])
	assert.Nil(t, prompts.created, "failed generations are not persisted")
}

func TestGenerateSuperPromptHandler_MissingTask(t *testing.T) {
	userID := uuid.New()
	app := newSuperPromptApp(userID, &stubGenerator{}, &stubSuperPromptRepo{})

	req := httptest.NewRequest(http.MethodPost, "/super-prompts", strings.NewReader(`{"tone":"casual"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
