package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var entity user.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("user", id)
		}
		return nil, fmt.Errorf("user: %w", err)
	}
	return &entity, nil
}

func (r *UserRepository) UpdateUsage(ctx context.Context, id uuid.UUID, usage user.Usage) error {
	result := r.db.WithContext(ctx).Model(&user.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"usage":      usage,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("update usage: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("user", id)
	}
	return nil
}
