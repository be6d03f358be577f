package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"github.com/sirupsen/logrus"
)

const defaultListLimit = 50

type listTasksHandler struct {
	logger *logrus.Logger
	repo   task.Repository
}

func NewListTasksHandler(logger *logrus.Logger, repo task.Repository) Handler {
	return &listTasksHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listTasksHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	filter := task.ListFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Limit:    c.QueryInt("limit", defaultListLimit),
		Offset:   c.QueryInt("offset", 0),
	}

	tasks, err := h.repo.List(c.Context(), userID, filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list tasks")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to fetch tasks"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(tasks, ""))
}
