package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/template"
	"github.com/meplus/tasks-api/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type updateTemplateHandler struct {
	logger *logrus.Logger
	repo   template.Repository
}

func NewUpdateTemplateHandler(logger *logrus.Logger, repo template.Repository) Handler {
	return &updateTemplateHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *updateTemplateHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	templateID, err := uuid.Parse(c.Params("template_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid template ID"))
	}

	var req request.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(ErrInvalidJsonPayload))
	}
	if !req.HasUpdates() {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("No fields to update"))
	}

	// Updates require ownership; public templates are readable but not
	// writable by other users.
	entity, err := h.repo.GetOwned(c.Context(), templateID, userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Template not found"))
		}
		h.logger.WithError(err).Error("failed to fetch template for update")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to update template"))
	}

	if req.Title != nil {
		entity.Title = *req.Title
	}
	if req.Category != nil {
		entity.Category = *req.Category
	}
	if req.Content != nil {
		entity.Content = *req.Content
	}
	if req.Tags != nil {
		entity.Tags = *req.Tags
	}
	if req.IsPublic != nil {
		entity.IsPublic = *req.IsPublic
	}
	if req.IsFavorite != nil {
		entity.IsFavorite = *req.IsFavorite
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error()))
	}

	if err := h.repo.Update(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to update template")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to update template"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(entity, "Template updated successfully"))
}
