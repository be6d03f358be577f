package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/sirupsen/logrus"
)

type shareTaskHandler struct {
	logger      *logrus.Logger
	repo        task.Repository
	frontendURL string
}

func NewShareTaskHandler(logger *logrus.Logger, repo task.Repository, frontendURL string) Handler {
	return &shareTaskHandler{
		logger:      logger,
		repo:        repo,
		frontendURL: frontendURL,
	}
}

func (h *shareTaskHandler) Handle(c *fiber.Ctx) error {
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
		h.logger.WithError(err).Error("failed to fetch task for sharing")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to share task"))
	}

	link := fmt.Sprintf("%s/task/%s", h.frontendURL, entity.ID)
	entity.IsShared = true
	entity.SharedLink = &link

	if err := h.repo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to share task")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to share task"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(entity, "Task shared successfully"))
}
