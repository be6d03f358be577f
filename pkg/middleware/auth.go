package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/common"
	"github.com/meplus/tasks-api/pkg/infra/jwt"
	"github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewAuthMiddleware(logger *logrus.Logger, jwtManager jwt.Manager) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			m.logger.Debug("no bearer token provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Missing authorization header",
			})
		}

		claims, err := m.jwtManager.DecodeToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			m.logger.WithError(err).Debug("token rejected")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid or expired token",
			})
		}

		userID, err := claims.UserID()
		if err != nil {
			m.logger.WithError(err).Debug("token subject is not a user id")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid or expired token",
			})
		}

		ctx.Locals(common.LatencyContextKey, time.Now())
		ctx.Locals(common.UserIdContextKey, userID)
		ctx.Locals(common.UserEmailKey, claims.Email)

		return ctx.Next()
	}
}
