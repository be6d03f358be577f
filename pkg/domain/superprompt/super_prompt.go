package superprompt

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/domain"
	"gorm.io/gorm"
)

// SuperPrompt is a persisted AI-generated prompt together with the provider
// that produced it and the Q&A context it was built from.
type SuperPrompt struct {
	ID              uuid.UUID            `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID            `json:"user_id" gorm:"type:uuid;not null;index:idx_super_prompts_user"`
	GeneratedPrompt string               `json:"generated_prompt" gorm:"not null"`
	AIModel         string               `json:"ai_model" gorm:"column:ai_model;not null"`
	Questions       domain.QuestionsJSON `json:"questions,omitempty" gorm:"type:jsonb"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func (SuperPrompt) TableName() string {
	return "super_prompts"
}

func (s *SuperPrompt) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.GeneratedPrompt == "" {
		return fmt.Errorf("generated prompt is required")
	}
	return nil
}
