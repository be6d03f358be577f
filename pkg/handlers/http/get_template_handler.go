package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/template"
	"github.com/sirupsen/logrus"
)

type getTemplateHandler struct {
	logger *logrus.Logger
	repo   template.Repository
}

func NewGetTemplateHandler(logger *logrus.Logger, repo template.Repository) Handler {
	return &getTemplateHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getTemplateHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	templateID, err := uuid.Parse(c.Params("template_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid template ID"))
	}

	entity, err := h.repo.Get(c.Context(), templateID, userID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Template not found"))
		}
		h.logger.WithError(err).Error("failed to fetch template")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to fetch template"))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(entity, ""))
}
