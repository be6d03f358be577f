package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/meplus/tasks-api/pkg/common"
	"github.com/meplus/tasks-api/pkg/config"
	"github.com/meplus/tasks-api/pkg/domain/plan"
)

const (
	PlanKeyPattern  = "plan:%s"
	UsageKeyPattern = "usage:%s"
)

// Cache fronts the plan and usage tables with redis. Plan definitions change
// rarely, so reads during limit checks go through here instead of postgres.
type Cache struct {
	client *redis.Client
}

func NewCache(cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &Cache{client: client}, nil
}

func NewCacheWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *Cache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.client.Set(ctx, key, value, expiration).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

func (c *Cache) GetPlan(ctx context.Context, name string) (*plan.Plan, error) {
	key := fmt.Sprintf(PlanKeyPattern, name)
	res, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	entity := new(plan.Plan)
	if err := json.Unmarshal([]byte(res), entity); err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *Cache) SavePlan(ctx context.Context, entity *plan.Plan) error {
	key := fmt.Sprintf(PlanKeyPattern, entity.Name)
	planJSON, err := json.Marshal(entity)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, string(planJSON), common.PlanCacheTTL)
}

// InvalidateUsage drops the cached usage snapshot after a counter bump so the
// next limit check sees fresh numbers.
func (c *Cache) InvalidateUsage(ctx context.Context, userID string) error {
	return c.Delete(ctx, fmt.Sprintf(UsageKeyPattern, userID))
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) Client() *redis.Client {
	return c.client
}
