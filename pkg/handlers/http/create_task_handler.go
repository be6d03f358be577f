package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/app/usage"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/meplus/tasks-api/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type createTaskHandler struct {
	logger  *logrus.Logger
	repo    task.Repository
	checker usage.Checker
}

func NewCreateTaskHandler(logger *logrus.Logger, repo task.Repository, checker usage.Checker) Handler {
	return &createTaskHandler{
		logger:  logger,
		repo:    repo,
		checker: checker,
	}
}

func (h *createTaskHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req request.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(ErrInvalidJsonPayload))
	}

	u, err := h.checker.CheckTaskAllowance(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usage.ErrTaskLimitReached) {
			return c.Status(fiber.StatusForbidden).JSON(errorResponse("Task limit reached for your current plan"))
		}
		h.logger.WithError(err).Error("failed to check task allowance")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to create task"))
	}

	entity := task.Task{
		UserID:   userID,
		Category: req.Category,
		Title:    req.Title,
		Content:  req.Content,
		Priority: req.Priority,
		DueDate:  req.DueDate,
		Tags:     req.Tags,
		Type:     req.Type,
		Metadata: req.Metadata,
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error()))
	}

	if err := h.repo.Create(c.Context(), &entity); err != nil {
		h.logger.WithError(err).Error("failed to create task")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to create task"))
	}

	if err := h.checker.RecordTaskGenerated(c.Context(), u); err != nil {
		h.logger.WithError(err).Error("failed to record task usage")
	}

	return c.Status(fiber.StatusCreated).JSON(successResponse(entity, "Task created successfully"))
}
