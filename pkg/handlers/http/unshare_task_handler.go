package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/sirupsen/logrus"
)

type unshareTaskHandler struct {
	logger *logrus.Logger
	repo   task.Repository
}

func NewUnshareTaskHandler(logger *logrus.Logger, repo task.Repository) Handler {
	return &unshareTaskHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *unshareTaskHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid task ID"))
	}

	entity, err := h.repo.Get(c.Context(), taskID, userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Task not found"))
		}
		h.logger.WithError(err).Error("failed to fetch task for unsharing")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to unshare task"))
	}

	entity.IsShared = false
	entity.SharedLink = nil

	if err := h.repo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to unshare task")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to unshare task"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(entity, "Task sharing disabled"))
}
