package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	handlers "github.com/meplus/tasks-api/pkg/handlers/http"
	"github.com/meplus/tasks-api/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingAuthenticatedUser_RendersJSONEnvelope(t *testing.T) {
	// No auth middleware, so the user local is never set; the failure must
	// still come back as the JSON envelope, not fiber's text/plain default.
	app := fiber.New(fiber.Config{ErrorHandler: server.JSONErrorHandler})
	handler := handlers.NewListTasksHandler(testLogger(), newStubTaskRepo())
	app.Get("/api/v1/tasks", handler.Handle)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing authenticated user", body["error"])
}
