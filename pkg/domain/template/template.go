package template

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"gorm.io/gorm"
)

type Template struct {
	ID         uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index:idx_templates_user"`
	Title      string          `json:"title" gorm:"not null"`
	Category   string          `json:"category" gorm:"not null"`
	Content    string          `json:"content" gorm:"not null"`
	Tags       domain.TagsJSON `json:"tags" gorm:"type:jsonb"`
	IsPublic   bool            `json:"is_public"`
	IsFavorite bool            `json:"is_favorite"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

func (t *Template) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

func (t *Template) Validate() error {
	if t.Title == "" || t.Category == "" || t.Content == "" {
		return fmt.Errorf("title, category and content are required")
	}
	return nil
}
