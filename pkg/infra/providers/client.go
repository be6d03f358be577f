package providers

import (
	"context"
	"fmt"
)

// Config is the static per-provider binding resolved once at startup.
// An empty APIKey leaves the provider permanently unavailable for the
// process lifetime.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
}

// Completion is the normalized provider result: the single generated text
// plus identifiers for bookkeeping.
type Completion struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Text     string `json:"text"`
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

// Client is the uniform adapter contract over heterogeneous generation
// backends. Implementations must check their credential before any network
// I/O and must never panic; every failure surfaces as an error.
type Client interface {
	Generate(ctx context.Context, prompt string) (*Completion, error)
}

// ErrNotConfigured is returned before any I/O when the provider credential
// is absent from the environment.
func ErrNotConfigured(displayName string) error {
	return fmt.Errorf("%s API key not configured", displayName)
}

// ErrNoContent is returned when a provider call succeeds but yields no
// usable text.
func ErrNoContent(displayName string) error {
	return fmt.Errorf("No content generated from %s", displayName)
}
