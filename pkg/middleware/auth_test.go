package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/common"
	"github.com/meplus/tasks-api/pkg/infra/jwt"
	"github.com/meplus/tasks-api/pkg/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthApp(t *testing.T, manager jwt.Manager) *fiber.App {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	app := fiber.New()
	app.Use(middleware.NewAuthMiddleware(logger, manager).Middleware())
	app.Get("/me", func(c *fiber.Ctx) error {
		userID, ok := c.Locals(common.UserIdContextKey).(uuid.UUID)
		require.True(t, ok)
		return c.JSON(fiber.Map{"success": true, "data": userID.String()})
	})
	return app
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	manager := jwt.NewJwtManager("test-secret")
	app := newAuthApp(t, manager)

	token, err := manager.CreateToken(uuid.New(), "ana@meplus.ai", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newAuthApp(t, jwt.NewJwtManager("test-secret"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	manager := jwt.NewJwtManager("test-secret")
	app := newAuthApp(t, manager)

	token, err := manager.CreateToken(uuid.New(), "ana@meplus.ai", -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ForeignSecret(t *testing.T) {
	app := newAuthApp(t, jwt.NewJwtManager("test-secret"))

	foreign := jwt.NewJwtManager("someone-else")
	token, err := foreign.CreateToken(uuid.New(), "ana@meplus.ai", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
