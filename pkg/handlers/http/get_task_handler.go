package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/sirupsen/logrus"
)

type getTaskHandler struct {
	logger *logrus.Logger
	repo   task.Repository
}

func NewGetTaskHandler(logger *logrus.Logger, repo task.Repository) Handler {
	return &getTaskHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getTaskHandler) Handle(c *fiber.Ctx) error {
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
		h.logger.WithError(err).Error("failed to fetch task")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to fetch task"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(entity, ""))
}
