package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	UpdateUsage(ctx context.Context, id uuid.UUID, usage Usage) error
}
