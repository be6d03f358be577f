package superprompt

import "context"

type Repository interface {
	Create(ctx context.Context, prompt *SuperPrompt) error
}
