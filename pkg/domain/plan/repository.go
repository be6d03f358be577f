package plan

import "context"

type Repository interface {
	GetByName(ctx context.Context, name string) (*Plan, error)
}
