package template

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows template listings. The visibility rule (own templates
// plus public ones) is applied by the repository, not the filter.
type ListFilter struct {
	Category   string
	IsPublic   *bool
	IsFavorite *bool
	Search     string
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

type Repository interface {
	// Get returns a template visible to userID: their own or a public one.
	Get(ctx context.Context, id, userID uuid.UUID) (*Template, error)
	// GetOwned returns a template only if userID owns it.
	GetOwned(ctx context.Context, id, userID uuid.UUID) (*Template, error)
	Create(ctx context.Context, template *Template) error
	List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Template, int64, error)
	Update(ctx context.Context, template *Template) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
