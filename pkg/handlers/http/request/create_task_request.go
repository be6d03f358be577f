package request

import "time"

type CreateTaskRequest struct {
	Category string                 `json:"category"`
	Title    string                 `json:"title"`
	Content  string                 `json:"content"`
	Priority string                 `json:"priority"`
	DueDate  *time.Time             `json:"due_date"`
	Tags     []string               `json:"tags"`
	Type     string                 `json:"type"`
	Metadata map[string]interface{} `json:"metadata"`
}
