package ratelimit

// SweepExpiredNow runs one sweep pass synchronously so tests do not have to
// wait on the background ticker.
func (l *FixedWindowLimiter) SweepExpiredNow() {
	l.removeExpired()
}

// EntryCount reports how many clients are currently tracked.
func (l *FixedWindowLimiter) EntryCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
