package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/app/generation"
	"github.com/meplus/tasks-api/pkg/app/usage"
	"github.com/meplus/tasks-api/pkg/common"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/superprompt"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/meplus/tasks-api/pkg/domain/user"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// authenticatedApp wires a fiber app with the user already resolved, the way
// the auth middleware would leave it.
func authenticatedApp(userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.UserIdContextKey, userID)
		return c.Next()
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

type stubTaskRepo struct {
	tasks   map[uuid.UUID]*task.Task
	created *task.Task
	updated *task.Task
	listed  []task.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[uuid.UUID]*task.Task)}
}

func (s *stubTaskRepo) Get(_ context.Context, id, _ uuid.UUID) (*task.Task, error) {
	if entity, ok := s.tasks[id]; ok {
		return entity, nil
	}
	return nil, domain.NewNotFoundError("task", id)
}

func (s *stubTaskRepo) Create(_ context.Context, entity *task.Task) error {
	if entity.ID == uuid.Nil {
		entity.ID = uuid.New()
	}
	s.created = entity
	s.tasks[entity.ID] = entity
	return nil
}

func (s *stubTaskRepo) List(_ context.Context, _ uuid.UUID, _ task.ListFilter) ([]task.Task, error) {
	return s.listed, nil
}

func (s *stubTaskRepo) Update(_ context.Context, entity *task.Task) error {
	s.updated = entity
	s.tasks[entity.ID] = entity
	return nil
}

func (s *stubTaskRepo) Delete(_ context.Context, id, _ uuid.UUID) error {
	if _, ok := s.tasks[id]; !ok {
		return domain.NewNotFoundError("task", id)
	}
	delete(s.tasks, id)
	return nil
}

type stubChecker struct {
	user        *user.User
	taskErr     error
	exportErr   error
	tasksRec    int
	exportsRec  int
	snapshotVal *usage.Snapshot
}

func (s *stubChecker) CheckTaskAllowance(_ context.Context, _ uuid.UUID) (*user.User, error) {
	if s.taskErr != nil {
		return nil, s.taskErr
	}
	return s.user, nil
}

func (s *stubChecker) CheckExportAllowance(_ context.Context, _ uuid.UUID) (*user.User, error) {
	if s.exportErr != nil {
		return nil, s.exportErr
	}
	return s.user, nil
}

func (s *stubChecker) RecordTaskGenerated(_ context.Context, _ *user.User) error {
	s.tasksRec++
	return nil
}

func (s *stubChecker) RecordExport(_ context.Context, _ *user.User) error {
	s.exportsRec++
	return nil
}

func (s *stubChecker) Snapshot(_ context.Context, _ uuid.UUID) (*usage.Snapshot, error) {
	return s.snapshotVal, nil
}

type stubGenerator struct {
	outcome    generation.Outcome
	lastPrompt string
	lastProv   string
}

func (s *stubGenerator) Generate(
	_ context.Context,
	provider, prompt string,
	_ map[string]interface{},
	_ map[string]interface{},
) generation.Outcome {
	s.lastProv = provider
	s.lastPrompt = prompt
	return s.outcome
}

type stubUserRepo struct {
	user *user.User
}

func (s *stubUserRepo) Get(_ context.Context, id uuid.UUID) (*user.User, error) {
	if s.user == nil {
		return nil, domain.NewNotFoundError("user", id)
	}
	return s.user, nil
}

func (s *stubUserRepo) UpdateUsage(_ context.Context, _ uuid.UUID, _ user.Usage) error {
	return nil
}

type stubSuperPromptRepo struct {
	created *superprompt.SuperPrompt
}

func (s *stubSuperPromptRepo) Create(_ context.Context, entity *superprompt.SuperPrompt) error {
	if entity.ID == uuid.Nil {
		entity.ID = uuid.New()
	}
	s.created = entity
	return nil
}
