package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/common"
)

const ErrInvalidJsonPayload = "invalid JSON payload"

func successResponse(data interface{}, message string) fiber.Map {
	resp := fiber.Map{"success": true, "data": data}
	if message != "" {
		resp["message"] = message
	}
	return resp
}

func errorResponse(message string) fiber.Map {
	return fiber.Map{"success": false, "error": message}
}

// userIDFromContext reads the authenticated user set by the auth middleware.
func userIDFromContext(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals(common.UserIdContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing authenticated user")
	}
	return userID, nil
}
