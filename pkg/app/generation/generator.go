package generation

import (
	"context"

	"github.com/meplus/tasks-api/pkg/infra/providers"
	"github.com/meplus/tasks-api/pkg/infra/providers/factory"
	"github.com/sirupsen/logrus"
)

// Outcome is the single normalized result of a generation call. Exactly one
// of Data/Error is meaningful, gated by Success.
type Outcome struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

//go:generate mockery --name=Generator --dir=. --output=./mocks --filename=generator_mock.go --case=underscore --with-expecter

// Generator dispatches a generation request to the selected provider. It
// never returns a Go error: every failure, from a missing credential to an
// upstream fault, is folded into a failed Outcome.
type Generator interface {
	Generate(
		ctx context.Context,
		provider string,
		prompt string,
		userContext map[string]interface{},
		metadata map[string]interface{},
	) Outcome
}

type generator struct {
	locator factory.ProviderLocator
	logger  *logrus.Logger
}

func NewGenerator(locator factory.ProviderLocator, logger *logrus.Logger) Generator {
	return &generator{
		locator: locator,
		logger:  logger,
	}
}

func (g *generator) Generate(
	ctx context.Context,
	provider string,
	prompt string,
	userContext map[string]interface{},
	metadata map[string]interface{},
) Outcome {
	if prompt == "" {
		return Outcome{Success: false, Error: "prompt is required"}
	}

	client, err := g.locator.Get(provider)
	if err != nil {
		return Outcome{Success: false, Error: err.Error()}
	}

	// Normalization runs identically regardless of the selected provider.
	composite := providers.BuildPrompt(prompt, userContext, metadata)

	completion, err := client.Generate(ctx, composite)
	if err != nil {
		g.logger.WithError(err).WithField("provider", provider).Warn("generation failed")
		return Outcome{Success: false, Error: err.Error()}
	}

	return Outcome{Success: true, Data: completion.Text}
}
