package usage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/meplus/tasks-api/pkg/app/plan"
	"github.com/meplus/tasks-api/pkg/cache"
	domainplan "github.com/meplus/tasks-api/pkg/domain/plan"
	"github.com/meplus/tasks-api/pkg/domain/user"
	"github.com/sirupsen/logrus"
)

var (
	ErrTaskLimitReached   = errors.New("task limit reached")
	ErrExportLimitReached = errors.New("export limit reached")
)

// Snapshot is the usage view returned to the client alongside plan limits.
type Snapshot struct {
	Plan           string `json:"plan"`
	TasksGenerated int    `json:"tasks_generated"`
	ExportCount    int    `json:"export_count"`
	TaskLimit      *int   `json:"task_limit,omitempty"`
	ExportLimit    *int   `json:"export_limit,omitempty"`
}

//go:generate mockery --name=Checker --dir=. --output=./mocks --filename=usage_checker_mock.go --case=underscore --with-expecter
type Checker interface {
	// CheckTaskAllowance loads the user and verifies the plan admits one
	// more generated task.
	CheckTaskAllowance(ctx context.Context, userID uuid.UUID) (*user.User, error)
	CheckExportAllowance(ctx context.Context, userID uuid.UUID) (*user.User, error)
	RecordTaskGenerated(ctx context.Context, u *user.User) error
	RecordExport(ctx context.Context, u *user.User) error
	Snapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error)
}

type checker struct {
	users      user.Repository
	planFinder plan.Finder
	cache      *cache.Cache
	logger     *logrus.Logger
}

func NewChecker(
	users user.Repository,
	planFinder plan.Finder,
	c *cache.Cache,
	logger *logrus.Logger,
) Checker {
	return &checker{
		users:      users,
		planFinder: planFinder,
		cache:      c,
		logger:     logger,
	}
}

func (c *checker) CheckTaskAllowance(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, p, err := c.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.AllowsTask(u.Usage.TasksGenerated) {
		return nil, ErrTaskLimitReached
	}
	return u, nil
}

func (c *checker) CheckExportAllowance(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	u, p, err := c.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.AllowsExport(u.Usage.ExportCount) {
		return nil, ErrExportLimitReached
	}
	return u, nil
}

func (c *checker) RecordTaskGenerated(ctx context.Context, u *user.User) error {
	u.Usage.TasksGenerated++
	return c.persistUsage(ctx, u)
}

func (c *checker) RecordExport(ctx context.Context, u *user.User) error {
	u.Usage.ExportCount++
	return c.persistUsage(ctx, u)
}

func (c *checker) Snapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	u, p, err := c.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Plan:           u.Plan,
		TasksGenerated: u.Usage.TasksGenerated,
		ExportCount:    u.Usage.ExportCount,
		TaskLimit:      p.TaskLimit,
		ExportLimit:    p.ExportLimit,
	}, nil
}

func (c *checker) load(ctx context.Context, userID uuid.UUID) (*user.User, *domainplan.Plan, error) {
	u, err := c.users.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	p, err := c.planFinder.Find(ctx, u.Plan)
	if err != nil {
		return nil, nil, err
	}
	return u, p, nil
}

func (c *checker) persistUsage(ctx context.Context, u *user.User) error {
	if err := c.users.UpdateUsage(ctx, u.ID, u.Usage); err != nil {
		return err
	}
	if err := c.cache.InvalidateUsage(ctx, u.ID.String()); err != nil {
		c.logger.WithError(err).Warn("failed to invalidate usage cache")
	}
	return nil
}
