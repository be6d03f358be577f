package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/meplus/tasks-api/pkg/domain/plan"
	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) plan.Repository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	var entity plan.Plan
	err := r.db.WithContext(ctx).Where("name = ?", name).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("plan: %w", err)
	}
	return &entity, nil
}
