package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"gorm.io/gorm"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"

	StatusActive   = "active"
	StatusArchived = "archived"
	StatusDeleted  = "deleted"

	TypeGenerated = "generated"
	TypeCustom    = "custom"
)

type Task struct {
	ID         uuid.UUID           `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID           `json:"user_id" gorm:"type:uuid;not null;index:idx_tasks_user"`
	Category   string              `json:"category" gorm:"not null"`
	Title      string              `json:"title" gorm:"not null"`
	Content    string              `json:"content" gorm:"not null"`
	Priority   string              `json:"priority" gorm:"default:medium"`
	DueDate    *time.Time          `json:"due_date,omitempty"`
	Tags       domain.TagsJSON     `json:"tags" gorm:"type:jsonb"`
	Status     string              `json:"status" gorm:"default:active"`
	Type       string              `json:"type" gorm:"default:custom"`
	IsFavorite bool                `json:"is_favorite"`
	IsShared   bool                `json:"is_shared"`
	SharedLink *string             `json:"shared_link,omitempty"`
	Metadata   domain.MetadataJSON `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return t.Validate()
}

func (t *Task) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

func (t *Task) Validate() error {
	if t.Category == "" || t.Title == "" || t.Content == "" {
		return fmt.Errorf("category, title and content are required")
	}
	switch t.Priority {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
	default:
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}
	switch t.Status {
	case "", StatusActive, StatusArchived, StatusDeleted:
	default:
		return fmt.Errorf("invalid status: %s", t.Status)
	}
	return nil
}
