package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/handlers/http/request"
	"github.com/meplus/tasks-api/pkg/infra/providers/factory"
	"github.com/sirupsen/logrus"
)

const improveInstruction = "Improve the following prompt so it is clearer, more specific and more actionable. " +
	"Return only the improved prompt, without commentary.\n\nPrompt: "

type improvePromptHandler struct {
	logger  *logrus.Logger
	locator factory.ProviderLocator
}

// NewImprovePromptHandler rewrites a user prompt through OpenAI. Unlike super
// prompt generation, the provider is fixed.
func NewImprovePromptHandler(logger *logrus.Logger, locator factory.ProviderLocator) Handler {
	return &improvePromptHandler{
		logger:  logger,
		locator: locator,
	}
}

func (h *improvePromptHandler) Handle(c *fiber.Ctx) error {
	if _, err := userIDFromContext(c); err != nil {
		return err
	}

	var req request.ImprovePromptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(ErrInvalidJsonPayload))
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Prompt is required"))
	}

	client, err := h.locator.Get(factory.ProviderOpenAI)
	if err != nil {
		h.logger.WithError(err).Error("openai adapter unavailable")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to improve prompt"))
	}

	completion, err := client.Generate(c.Context(), improveInstruction+req.Prompt)
	if err != nil {
		h.logger.WithError(err).Error("prompt improvement failed")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("AI generation failed: " + err.Error()))
	}

	return c.Status(fiber.StatusOK).JSON(successResponse(fiber.Map{
		"improved_prompt": completion.Text,
	}, "Prompt improved successfully"))
}
