package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/app/usage"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/sirupsen/logrus"
)

type getUsageHandler struct {
	logger  *logrus.Logger
	checker usage.Checker
}

func NewGetUsageHandler(logger *logrus.Logger, checker usage.Checker) Handler {
	return &getUsageHandler{
		logger:  logger,
		checker: checker,
	}
}

func (h *getUsageHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	snap, err := h.checker.Snapshot(c.Context(), userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("User not found"))
		}
		h.logger.WithError(err).Error("failed to fetch usage")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to fetch usage"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(fiber.Map{
		"plan": snap.Plan,
		"usage": fiber.Map{
			"tasks_generated": snap.TasksGenerated,
			"export_count":    snap.ExportCount,
		},
		"limits": fiber.Map{
			"task_limit":   snap.TaskLimit,
			"export_limit": snap.ExportLimit,
		},
	}, ""))
}
