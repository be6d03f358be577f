package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/app/usage"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/sirupsen/logrus"
)

// taskExport is the downloadable document produced by the export endpoints.
type taskExport struct {
	ExportedAt time.Time   `json:"exported_at"`
	ExportedBy uuid.UUID   `json:"exported_by"`
	Count      int         `json:"count"`
	Tasks      []task.Task `json:"tasks"`
}

type exportTaskHandler struct {
	logger  *logrus.Logger
	repo    task.Repository
	checker usage.Checker
}

func NewExportTaskHandler(logger *logrus.Logger, repo task.Repository, checker usage.Checker) Handler {
	return &exportTaskHandler{
		logger:  logger,
		repo:    repo,
		checker: checker,
	}
}

func (h *exportTaskHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid task ID"))
	}

	u, err := h.checker.CheckExportAllowance(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usage.ErrExportLimitReached) {
			return c.Status(fiber.StatusForbidden).JSON(errorResponse("Export limit reached for your current plan"))
		}
		h.logger.WithError(err).Error("failed to check export allowance")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to export task"))
	}

	entity, err := h.repo.Get(c.Context(), taskID, userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Task not found"))
		}
		h.logger.WithError(err).Error("failed to fetch task for export")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to export task"))
	}

	if err := h.checker.RecordExport(c.Context(), u); err != nil {
		h.logger.WithError(err).Error("failed to record export usage")
	}

	doc := taskExport{
		ExportedAt: time.Now().UTC(),
		ExportedBy: userID,
		Count:      1,
		Tasks:      []task.Task{*entity},
	}
	setExportHeaders(c, fmt.Sprintf("task-%s.json", entity.ID))
	return c.Status(fiber.StatusOK).JSON(doc)
}

func setExportHeaders(c *fiber.Ctx, filename string) {
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
}
