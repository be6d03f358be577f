package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"github.com/meplus/tasks-api/pkg/domain/template"
	"gorm.io/gorm"
)

// sortColumns whitelists sortable template columns so client input never
// reaches the ORDER BY clause unchecked.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"title":      "title",
	"category":   "category",
}

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) template.Repository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Get(ctx context.Context, id, userID uuid.UUID) (*template.Template, error) {
	var entity template.Template
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Where("user_id = ? OR is_public = ?", userID, true).
		Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("template", id)
		}
		return nil, fmt.Errorf("template: %w", err)
	}
	return &entity, nil
}

func (r *TemplateRepository) GetOwned(ctx context.Context, id, userID uuid.UUID) (*template.Template, error) {
	var entity template.Template
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("template", id)
		}
		return nil, fmt.Errorf("template: %w", err)
	}
	return &entity, nil
}

func (r *TemplateRepository) Create(ctx context.Context, entity *template.Template) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *TemplateRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter template.ListFilter,
) ([]template.Template, int64, error) {
	query := r.db.WithContext(ctx).Model(&template.Template{}).
		Where("user_id = ? OR is_public = ?", userID, true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}
	if filter.IsFavorite != nil {
		query = query.Where("is_favorite = ?", *filter.IsFavorite)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count templates: %w", err)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "desc"
	if filter.SortOrder == "asc" {
		direction = "asc"
	}
	query = query.Order(column + " " + direction)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var templates []template.Template
	if err := query.Find(&templates).Error; err != nil {
		return nil, 0, fmt.Errorf("templates: %w", err)
	}
	return templates, count, nil
}

func (r *TemplateRepository) Update(ctx context.Context, entity *template.Template) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *TemplateRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&template.Template{})
	if result.Error != nil {
		return fmt.Errorf("delete template: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("template", id)
	}
	return nil
}
