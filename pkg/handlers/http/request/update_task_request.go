package request

import "time"

// UpdateTaskRequest carries partial task updates. Pointer fields distinguish
// "not sent" from zero values.
type UpdateTaskRequest struct {
	Category   *string                 `json:"category"`
	Title      *string                 `json:"title"`
	Content    *string                 `json:"content"`
	Priority   *string                 `json:"priority"`
	DueDate    *time.Time              `json:"due_date"`
	Tags       *[]string               `json:"tags"`
	Status     *string                 `json:"status"`
	IsFavorite *bool                   `json:"is_favorite"`
	Metadata   *map[string]interface{} `json:"metadata"`
}

func (r *UpdateTaskRequest) HasUpdates() bool {
	return r.Category != nil || r.Title != nil || r.Content != nil ||
		r.Priority != nil || r.DueDate != nil || r.Tags != nil ||
		r.Status != nil || r.IsFavorite != nil || r.Metadata != nil
}
