package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/domain/template"
	"github.com/sirupsen/logrus"
)

type listTemplatesHandler struct {
	logger *logrus.Logger
	repo   template.Repository
}

func NewListTemplatesHandler(logger *logrus.Logger, repo template.Repository) Handler {
	return &listTemplatesHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listTemplatesHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	filter := template.ListFilter{
		Category:  c.Query("category"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Limit:     c.QueryInt("limit", defaultListLimit),
		Offset:    c.QueryInt("offset", 0),
	}
	if raw := c.Query("isPublic"); raw != "" {
		v := raw == "true"
		filter.IsPublic = &v
	}
	if raw := c.Query("isFavorite"); raw != "" {
		v := raw == "true"
		filter.IsFavorite = &v
	}

	templates, count, err := h.repo.List(c.Context(), userID, filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list templates")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to fetch templates"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    templates,
		"count":   count,
		"pagination": fiber.Map{
			"limit":   filter.Limit,
			"offset":  filter.Offset,
			"hasMore": int64(filter.Offset+len(templates)) < count,
		},
	})
}
