package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/sirupsen/logrus"
)

type deleteTaskHandler struct {
	logger *logrus.Logger
	repo   task.Repository
}

func NewDeleteTaskHandler(logger *logrus.Logger, repo task.Repository) Handler {
	return &deleteTaskHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *deleteTaskHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid task ID"))
	}

	if err := h.repo.Delete(c.Context(), taskID, userID); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Task not found"))
		}
		h.logger.WithError(err).Error("failed to delete task")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to delete task"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(nil, "Task deleted successfully"))
}
