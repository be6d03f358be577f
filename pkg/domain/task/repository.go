package task

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows task listings. Zero values mean "no filter".
type ListFilter struct {
	Category string
	Status   string
	TaskIDs  []uuid.UUID
	Limit    int
	Offset   int
}

type Repository interface {
	Get(ctx context.Context, id, userID uuid.UUID) (*Task, error)
	Create(ctx context.Context, task *Task) error
	List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
