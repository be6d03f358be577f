package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/meplus/tasks-api/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type updateTaskHandler struct {
	logger *logrus.Logger
	repo   task.Repository
}

func NewUpdateTaskHandler(logger *logrus.Logger, repo task.Repository) Handler {
	return &updateTaskHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *updateTaskHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid task ID"))
	}

	var req request.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(ErrInvalidJsonPayload))
	}
	if !req.HasUpdates() {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("No fields to update"))
	}

	entity, err := h.repo.Get(c.Context(), taskID, userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Task not found"))
		}
		h.logger.WithError(err).Error("failed to fetch task for update")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to update task"))
	}

	applyTaskUpdates(entity, &req)
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error()))
	}

	if err := h.repo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update task")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to update task"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(entity, "Task updated successfully"))
}

func applyTaskUpdates(entity *task.Task, req *request.UpdateTaskRequest) {
	if req.Category != nil {
		entity.Category = *req.Category
	}
	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.Content != nil {
		entity.Content = *req.Content
	}
	if req.Priority != nil {
		entity.Priority = *req.Priority
	}
	if req.DueDate != nil {
		entity.DueDate = req.DueDate
	}
	if req.Tags != nil {
		entity.Tags = *req.Tags
	}
	if req.Status != nil {
		entity.Status = *req.Status
	}
	if req.IsFavorite != nil {
		entity.IsFavorite = *req.IsFavorite
	}
	if req.Metadata != nil {
		entity.Metadata = *req.Metadata
	}
}
