package ratelimit

import (
	"sync"
	"time"
)

const (
	// Window and MaxRequests are fixed by design: 100 requests per
	// 60-second window per client.
	Window      = 60 * time.Second
	MaxRequests = 100
)

// Decision is the admission verdict for a single request.
type Decision struct {
	Allowed   bool      `json:"allowed"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}

// Limiter admits or rejects requests per client identifier.
type Limiter interface {
	Check(clientID string) Decision
}

type entry struct {
	count   int
	resetAt time.Time
}

// FixedWindowLimiter counts requests in fixed windows keyed by client
// identifier. A window boundary can admit up to 2x the limit across two
// adjacent windows; that imprecision is accepted in exchange for O(1)
// bookkeeping per request.
type FixedWindowLimiter struct {
	mu           sync.Mutex
	entries      map[string]*entry
	window       time.Duration
	maxRequests  int
	timeProvider func() time.Time
	stop         chan struct{}
	stopOnce     sync.Once
}

type Opts struct {
	Window       time.Duration
	MaxRequests  int
	TimeProvider func() time.Time
}

func NewFixedWindowLimiter(opts *Opts) *FixedWindowLimiter {
	window := Window
	maxRequests := MaxRequests
	timeProvider := time.Now
	if opts != nil {
		if opts.Window > 0 {
			window = opts.Window
		}
		if opts.MaxRequests > 0 {
			maxRequests = opts.MaxRequests
		}
		if opts.TimeProvider != nil {
			timeProvider = opts.TimeProvider
		}
	}

	l := &FixedWindowLimiter{
		entries:      make(map[string]*entry),
		window:       window,
		maxRequests:  maxRequests,
		timeProvider: timeProvider,
		stop:         make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Check records one request for clientID and returns the admission decision.
// The check-and-increment runs under the lock so concurrent requests for the
// same client are strictly ordered.
func (l *FixedWindowLimiter) Check(clientID string) Decision {
	now := l.timeProvider()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[clientID]
	if !ok || !now.Before(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(l.window)}
		l.entries[clientID] = e
		return Decision{Allowed: true, Limit: l.maxRequests, Remaining: l.maxRequests - 1, ResetAt: e.resetAt}
	}

	if e.count >= l.maxRequests {
		return Decision{Allowed: false, Limit: l.maxRequests, Remaining: 0, ResetAt: e.resetAt}
	}

	e.count++
	return Decision{Allowed: true, Limit: l.maxRequests, Remaining: l.maxRequests - e.count, ResetAt: e.resetAt}
}

// Stop terminates the background sweep goroutine.
func (l *FixedWindowLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

// sweep drops expired entries once per window so memory stays bounded by the
// number of recently active clients.
func (l *FixedWindowLimiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.removeExpired()
		}
	}
}

func (l *FixedWindowLimiter) removeExpired() {
	now := l.timeProvider()
	l.mu.Lock()
	defer l.mu.Unlock()
	for clientID, e := range l.entries {
		if !now.Before(e.resetAt) {
			delete(l.entries, clientID)
		}
	}
}
