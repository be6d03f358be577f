package repository

import (
	"context"

	"github.com/meplus/tasks-api/pkg/domain/superprompt"
	"gorm.io/gorm"
)

type SuperPromptRepository struct {
	db *gorm.DB
}

func NewSuperPromptRepository(db *gorm.DB) superprompt.Repository {
	return &SuperPromptRepository{db: db}
}

func (r *SuperPromptRepository) Create(ctx context.Context, entity *superprompt.SuperPrompt) error {
	return r.db.WithContext(ctx).Create(entity).Error
}
