package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain/task"
	handlers "github.com/meplus/tasks-api/pkg/handlers/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateTaskHandler_NoFields(t *testing.T) {
	userID := uuid.New()
	app := authenticatedApp(userID)
	app.Put("/tasks/:task_id", handlers.NewUpdateTaskHandler(testLogger(), newStubTaskRepo()).Handle)

	req := httptest.NewRequest(http.MethodPut, "/tasks/"+uuid.NewString(), strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.Equal(t, "No fields to update", payload["error"])
}

func TestUpdateTaskHandler_NotFound(t *testing.T) {
	userID := uuid.New()
	app := authenticatedApp(userID)
	app.Put("/tasks/:task_id", handlers.NewUpdateTaskHandler(testLogger(), newStubTaskRepo()).Handle)

	req := httptest.NewRequest(http.MethodPut, "/tasks/"+uuid.NewString(), strings.NewReader(`{"title":"new"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	payload := decodeBody(t, resp)
	assert.Equal(t, "Task not found", payload["error"])
}

func TestUpdateTaskHandler_AppliesPartialUpdate(t *testing.T) {
	userID := uuid.New()
	repo := newStubTaskRepo()
	existing := &task.Task{
		ID:       uuid.New(),
		UserID:   userID,
		Category: "work",
		Title:    "Old title",
		Content:  "Old content",
		Priority: task.PriorityLow,
		Status:   task.StatusActive,
	}
	repo.tasks[existing.ID] = existing

	app := authenticatedApp(userID)
	app.Put("/tasks/:task_id", handlers.NewUpdateTaskHandler(testLogger(), repo).Handle)

	body := `{"title":"New title","priority":"high"}`
	req := httptest.NewRequest(http.MethodPut, "/tasks/"+existing.ID.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, repo.updated)
	assert.Equal(t, "New title", repo.updated.Title)
	assert.Equal(t, task.PriorityHigh, repo.updated.Priority)
	assert.Equal(t, "Old content", repo.updated.Content, "unsent fields keep their values")
}

func TestUpdateTaskHandler_InvalidPriority(t *testing.T) {
	userID := uuid.New()
	repo := newStubTaskRepo()
	existing := &task.Task{
		ID:       uuid.New(),
		UserID:   userID,
		Category: "work",
		Title:    "t",
		Content:  "c",
	}
	repo.tasks[existing.ID] = existing

	app := authenticatedApp(userID)
	app.Put("/tasks/:task_id", handlers.NewUpdateTaskHandler(testLogger(), repo).Handle)

	req := httptest.NewRequest(http.MethodPut, "/tasks/"+existing.ID.String(),
		strings.NewReader(`{"priority":"urgent"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
