package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/task"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Get(ctx context.Context, id, userID uuid.UUID) (*task.Task, error) {
	var entity task.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("task", id)
		}
		return nil, fmt.Errorf("task: %w", err)
	}
	return &entity, nil
}

func (r *TaskRepository) Create(ctx context.Context, entity *task.Task) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *TaskRepository) List(ctx context.Context, userID uuid.UUID, filter task.ListFilter) ([]task.Task, error) {
	query := r.db.WithContext(ctx).Model(&task.Task{}).
		Where("user_id = ?", userID).
		Order("created_at desc")

	if len(filter.TaskIDs) > 0 {
		query = query.Where("id IN ?", filter.TaskIDs)
	} else {
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var tasks []task.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, entity *task.Task) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&task.Task{})
	if result.Error != nil {
		return fmt.Errorf("delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("task", id)
	}
	return nil
}
