package cache_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/meplus/tasks-api/pkg/cache"
	"github.com/meplus/tasks-api/pkg/common"
	"github.com/meplus/tasks-api/pkg/domain/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_GetPlan(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewCacheWithClient(client)

	taskLimit := 10
	exportLimit := 2
	entity := &plan.Plan{Name: plan.Base, TaskLimit: &taskLimit, ExportLimit: &exportLimit}
	planJSON, err := json.Marshal(entity)
	require.NoError(t, err)

	mock.ExpectGet(fmt.Sprintf(cache.PlanKeyPattern, plan.Base)).SetVal(string(planJSON))

	got, err := c.GetPlan(context.Background(), plan.Base)
	require.NoError(t, err)
	assert.Equal(t, plan.Base, got.Name)
	require.NotNil(t, got.TaskLimit)
	assert.Equal(t, 10, *got.TaskLimit)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_GetPlan_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewCacheWithClient(client)

	mock.ExpectGet(fmt.Sprintf(cache.PlanKeyPattern, plan.Pro)).RedisNil()

	got, err := c.GetPlan(context.Background(), plan.Pro)
	assert.Nil(t, got)
	assert.Error(t, err)
}

func TestCache_SavePlan(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewCacheWithClient(client)

	entity := &plan.Plan{Name: plan.Pro}
	planJSON, err := json.Marshal(entity)
	require.NoError(t, err)

	mock.ExpectSet(fmt.Sprintf(cache.PlanKeyPattern, plan.Pro), string(planJSON), common.PlanCacheTTL).SetVal("OK")

	require.NoError(t, c.SavePlan(context.Background(), entity))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_InvalidateUsage(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := cache.NewCacheWithClient(client)

	mock.ExpectDel(fmt.Sprintf(cache.UsageKeyPattern, "user-1")).SetVal(1)

	require.NoError(t, c.InvalidateUsage(context.Background(), "user-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
