package plan

import (
	"context"

	"github.com/meplus/tasks-api/pkg/cache"
	domain "github.com/meplus/tasks-api/pkg/domain/plan"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=plan_finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Find(ctx context.Context, name string) (*domain.Plan, error)
}

type finder struct {
	repo   domain.Repository
	cache  *cache.Cache
	logger *logrus.Logger
}

func NewFinder(
	repository domain.Repository,
	c *cache.Cache,
	logger *logrus.Logger,
) Finder {
	return &finder{
		repo:   repository,
		cache:  c,
		logger: logger,
	}
}

func (f *finder) Find(ctx context.Context, name string) (*domain.Plan, error) {
	if cached, err := f.cache.GetPlan(ctx, name); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		f.logger.WithError(err).Debug("plan cache read failure")
	}

	entity, err := f.repo.GetByName(ctx, name)
	if err != nil {
		f.logger.WithError(err).Error("failed to fetch plan from repository")
		return nil, err
	}

	if err := f.cache.SavePlan(ctx, entity); err != nil {
		f.logger.WithError(err).Warn("failed to cache plan")
	}
	return entity, nil
}
