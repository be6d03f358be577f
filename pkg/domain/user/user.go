package user

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Usage is the per-user consumption counter stored as jsonb on the users row.
type Usage struct {
	TasksGenerated int `json:"tasks_generated"`
	ExportCount    int `json:"export_count"`
}

func (u Usage) Value() (driver.Value, error) {
	return json.Marshal(u)
}

func (u *Usage) Scan(value interface{}) error {
	if value == nil {
		*u = Usage{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(bytes, u)
}

type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	FullName  string    `json:"full_name"`
	Plan      string    `json:"plan" gorm:"default:BASE"`
	Usage     Usage     `json:"usage" gorm:"type:jsonb"`
	Industry  string    `json:"industry,omitempty"`
	Seniority string    `json:"seniority,omitempty"`
	Goals     string    `json:"goals,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileContext returns the profile fields fed into prompt personalization.
func (u *User) ProfileContext() map[string]interface{} {
	ctx := map[string]interface{}{
		"plan": u.Plan,
	}
	if u.FullName != "" {
		ctx["full_name"] = u.FullName
	}
	if u.Industry != "" {
		ctx["industry"] = u.Industry
	}
	if u.Seniority != "" {
		ctx["seniority"] = u.Seniority
	}
	if u.Goals != "" {
		ctx["goals"] = u.Goals
	}
	return ctx
}
