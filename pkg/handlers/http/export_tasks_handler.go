package http

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/app/usage"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/sirupsen/logrus"
)

type exportTasksHandler struct {
	logger  *logrus.Logger
	repo    task.Repository
	checker usage.Checker
}

func NewExportTasksHandler(logger *logrus.Logger, repo task.Repository, checker usage.Checker) Handler {
	return &exportTasksHandler{
		logger:  logger,
		repo:    repo,
		checker: checker,
	}
}

// Handle exports a selection of tasks as a downloadable JSON document. The
// selection comes either from an explicit taskIds list or from
// category/status filters; one of the two is required.
func (h *exportTasksHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	filter, err := parseExportFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error()))
	}

	u, err := h.checker.CheckExportAllowance(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usage.ErrExportLimitReached) {
			return c.Status(fiber.StatusForbidden).JSON(errorResponse("Export limit reached for your current plan"))
		}
		h.logger.WithError(err).Error("failed to check export allowance")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to export tasks"))
	}

	tasks, err := h.repo.List(c.Context(), userID, filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to fetch tasks for export")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to export tasks"))
	}

	if err := h.checker.RecordExport(c.Context(), u); err != nil {
		h.logger.WithError(err).Error("failed to record export usage")
	}

	now := time.Now().UTC()
	doc := taskExport{
		ExportedAt: now,
		ExportedBy: userID,
		Count:      len(tasks),
		Tasks:      tasks,
	}
	setExportHeaders(c, fmt.Sprintf("tasks-export-%s.json", now.Format("2006-01-02")))
	return c.Status(fiber.StatusOK).JSON(doc)
}

func parseExportFilter(c *fiber.Ctx) (task.ListFilter, error) {
	filter := task.ListFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	if raw := c.Query("taskIds"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				return task.ListFilter{}, fmt.Errorf("invalid task ID in taskIds: %s", part)
			}
			filter.TaskIDs = append(filter.TaskIDs, id)
		}
	}

	if len(filter.TaskIDs) == 0 && filter.Category == "" && filter.Status == "" {
		return task.ListFilter{}, errors.New("taskIds or category/status filters are required")
	}
	return filter, nil
}
