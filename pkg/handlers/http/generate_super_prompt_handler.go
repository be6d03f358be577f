package http

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/app/generation"
	"github.com/meplus/tasks-api/pkg/domain/superprompt"
	"github.com/meplus/tasks-api/pkg/domain/user"
	"github.com/meplus/tasks-api/pkg/handlers/http/request"
	"github.com/meplus/tasks-api/pkg/infra/prometheus"
	"github.com/meplus/tasks-api/pkg/infra/providers/factory"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
)

type generateSuperPromptHandler struct {
	logger    *logrus.Logger
	generator generation.Generator
	users     user.Repository
	prompts   superprompt.Repository
}

func NewGenerateSuperPromptHandler(
	logger *logrus.Logger,
	generator generation.Generator,
	users user.Repository,
	prompts superprompt.Repository,
) Handler {
	return &generateSuperPromptHandler{
		logger:    logger,
		generator: generator,
		users:     users,
		prompts:   prompts,
	}
}

// promptHints are optional prompt-shaping fields that may arrive either as
// top-level request fields or inside the free-form metadata map.
type promptHints struct {
	CategoryName string `mapstructure:"category_name"`
	Tone         string `mapstructure:"tone"`
	Audience     string `mapstructure:"audience"`
}

func (h *generateSuperPromptHandler) Handle(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req request.GenerateSuperPromptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(ErrInvalidJsonPayload))
	}
	if strings.TrimSpace(req.Task) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Task is required"))
	}

	provider := req.Provider
	if provider == "" {
		provider = factory.ProviderOpenAI
	}

	hints := promptHints{
		CategoryName: req.CategoryName,
		Tone:         req.Tone,
		Audience:     req.Audience,
	}
	if len(req.Metadata) > 0 {
		var fromMetadata promptHints
		if err := mapstructure.Decode(req.Metadata, &fromMetadata); err != nil {
			h.logger.WithError(err).Debug("metadata does not carry prompt hints")
		} else {
			if hints.CategoryName == "" {
				hints.CategoryName = fromMetadata.CategoryName
			}
			if hints.Tone == "" {
				hints.Tone = fromMetadata.Tone
			}
			if hints.Audience == "" {
				hints.Audience = fromMetadata.Audience
			}
		}
	}

	var userContext map[string]interface{}
	if u, err := h.users.Get(c.Context(), userID); err == nil {
		userContext = u.ProfileContext()
	} else {
		h.logger.WithError(err).Warn("failed to load user profile for prompt context")
	}

	enhanced := buildEnhancedPrompt(req.Task, hints, req.Questions)

	start := time.Now()
	outcome := h.generator.Generate(c.Context(), provider, enhanced, userContext, req.Metadata)
	prometheus.GenerationLatency.WithLabelValues(provider).Observe(float64(time.Since(start).Milliseconds()))

	if !outcome.Success {
		prometheus.GenerationTotal.WithLabelValues(provider, "error").Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(
			errorResponse("AI generation failed: " + outcome.Error))
	}
	prometheus.GenerationTotal.WithLabelValues(provider, "success").Inc()

	entity := superprompt.SuperPrompt{
		UserID:          userID,
		GeneratedPrompt: outcome.Data,
		AIModel:         provider,
		Questions:       req.Questions,
	}
	if err := h.prompts.Create(c.Context(), &entity); err != nil {
		h.logger.WithError(err).Error("failed to persist super prompt")
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to save super prompt"))
	}

	return c.Status(fiber.StatusCreated).JSON(successResponse(entity, "Super prompt generated successfully"))
}

func buildEnhancedPrompt(task string, hints promptHints, questions map[string]string) string {
	var b strings.Builder
	b.WriteString("Task: ")
	b.WriteString(task)
	if hints.CategoryName != "" {
		b.WriteString("\nCategory: ")
		b.WriteString(hints.CategoryName)
	}
	if hints.Tone != "" {
		b.WriteString("\nTone: ")
		b.WriteString(hints.Tone)
	}
	if hints.Audience != "" {
		b.WriteString("\nAudience: ")
		b.WriteString(hints.Audience)
	}
	if len(questions) > 0 {
		b.WriteString("\n\nAdditional context:")
		keys := make([]string, 0, len(questions))
		for k := range questions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("\nQ: %s\nA: %s", k, questions[k]))
		}
	}
	return b.String()
}
