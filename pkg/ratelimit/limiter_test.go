package ratelimit_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/meplus/tasks-api/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(maxRequests int, now *time.Time) *ratelimit.FixedWindowLimiter {
	return ratelimit.NewFixedWindowLimiter(&ratelimit.Opts{
		Window:       time.Minute,
		MaxRequests:  maxRequests,
		TimeProvider: func() time.Time { return *now },
	})
}

func TestFixedWindowLimiter_AdmitsUpToLimit(t *testing.T) {
	now := time.Unix(1740730536, 0)
	limiter := newTestLimiter(5, &now)
	defer limiter.Stop()

	for i := 1; i <= 5; i++ {
		decision := limiter.Check("1.2.3.4")
		assert.True(t, decision.Allowed, "request %d should be admitted", i)
		assert.Equal(t, 5-i, decision.Remaining)
		assert.Equal(t, now.Add(time.Minute), decision.ResetAt)
	}
}

func TestFixedWindowLimiter_RejectsOverLimit(t *testing.T) {
	start := time.Unix(1740730536, 0)
	now := start
	limiter := newTestLimiter(3, &now)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		now = start.Add(time.Duration(i) * time.Second)
		require.True(t, limiter.Check("1.2.3.4").Allowed)
	}

	now = start.Add(10 * time.Second)
	decision := limiter.Check("1.2.3.4")
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)
	assert.Equal(t, start.Add(time.Minute), decision.ResetAt, "reset time must not move on rejection")
}

func TestFixedWindowLimiter_NewWindowAfterReset(t *testing.T) {
	start := time.Unix(1740730536, 0)
	now := start
	limiter := newTestLimiter(2, &now)
	defer limiter.Stop()

	require.True(t, limiter.Check("1.2.3.4").Allowed)
	require.True(t, limiter.Check("1.2.3.4").Allowed)
	require.False(t, limiter.Check("1.2.3.4").Allowed)

	now = start.Add(time.Minute)
	decision := limiter.Check("1.2.3.4")
	assert.True(t, decision.Allowed)
	assert.Equal(t, 1, decision.Remaining)
	assert.Equal(t, now.Add(time.Minute), decision.ResetAt)
}

func TestFixedWindowLimiter_ClientIsolation(t *testing.T) {
	now := time.Unix(1740730536, 0)
	limiter := newTestLimiter(1, &now)
	defer limiter.Stop()

	require.True(t, limiter.Check("1.2.3.4").Allowed)
	require.False(t, limiter.Check("1.2.3.4").Allowed)

	decision := limiter.Check("5.6.7.8")
	assert.True(t, decision.Allowed, "another client must not be affected")
	assert.Equal(t, 0, decision.Remaining)
}

func TestFixedWindowLimiter_HundredRequestsScenario(t *testing.T) {
	start := time.Unix(1740730536, 0)
	now := start
	limiter := ratelimit.NewFixedWindowLimiter(&ratelimit.Opts{
		TimeProvider: func() time.Time { return now },
	})
	defer limiter.Stop()

	for i := 0; i < ratelimit.MaxRequests; i++ {
		now = start.Add(time.Duration(i) * 100 * time.Millisecond)
		decision := limiter.Check("1.2.3.4")
		require.True(t, decision.Allowed, "request %d should be admitted", i+1)
		require.Equal(t, ratelimit.MaxRequests-i-1, decision.Remaining)
	}

	now = start.Add(10 * time.Second)
	decision := limiter.Check("1.2.3.4")
	assert.False(t, decision.Allowed)
	assert.Equal(t, 0, decision.Remaining)
}

func TestFixedWindowLimiter_ConcurrentChecksNeverExceedLimit(t *testing.T) {
	limiter := ratelimit.NewFixedWindowLimiter(&ratelimit.Opts{
		Window:      time.Minute,
		MaxRequests: 50,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	admitted := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Check("concurrent").Allowed {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, admitted)
}

func TestFixedWindowLimiter_SweepRemovesExpiredEntries(t *testing.T) {
	now := time.Unix(1740730536, 0)
	limiter := newTestLimiter(10, &now)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		limiter.Check(fmt.Sprintf("client-%d", i))
	}
	require.Equal(t, 100, limiter.EntryCount())

	now = now.Add(2 * time.Minute)
	limiter.SweepExpiredNow()
	assert.Equal(t, 0, limiter.EntryCount(), "expired entries must be dropped")

	// A fresh check after the sweep starts a new window.
	decision := limiter.Check("client-0")
	assert.True(t, decision.Allowed)
	assert.Equal(t, 9, decision.Remaining)
}
