package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/domain/template"
	"github.com/meplus/tasks-api/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type createTemplateHandler struct {
	logger *logrus.Logger
	repo   template.Repository
}

func NewCreateTemplateHandler(logger *logrus.Logger, repo template.Repository) Handler {
	return &createTemplateHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *createTemplateHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req request.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(ErrInvalidJsonPayload))
	}

	entity := template.Template{
		UserID:     userID,
		Title:      req.Title,
		Category:   req.Category,
		Content:    req.Content,
		Tags:       req.Tags,
		IsPublic:   req.IsPublic,
		IsFavorite: req.IsFavorite,
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error()))
	}

	if err := h.repo.Create(c.Context(), &entity); err != nil {
		h.logger.WithError(err).Error("failed to create template")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to create template"))
	}

	return c.Status(fiber.StatusCreated).JSON(successResponse(entity, "Template created successfully"))
}
