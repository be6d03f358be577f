package plan

import "time"

const (
	Base = "BASE"
	Pro  = "PRO"
)

// Plan defines per-tier limits. A nil limit means unlimited.
type Plan struct {
	Name        string    `json:"name" gorm:"primaryKey"`
	TaskLimit   *int      `json:"task_limit,omitempty"`
	ExportLimit *int      `json:"export_limit,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AllowsTask reports whether a user with the given generated-task count may
// create another task under this plan.
func (p *Plan) AllowsTask(tasksGenerated int) bool {
	return p.TaskLimit == nil || tasksGenerated < *p.TaskLimit
}

// AllowsExport reports whether a user with the given export count may run
// another export under this plan.
func (p *Plan) AllowsExport(exportCount int) bool {
	return p.ExportLimit == nil || exportCount < *p.ExportLimit
}
