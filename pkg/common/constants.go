package common

import "time"

const (
	PlanCacheTTL  = 5 * time.Minute
	UsageCacheTTL = 1 * time.Minute

	RateLimitLimitHeader     = "X-RateLimit-Limit"
	RateLimitRemainingHeader = "X-RateLimit-Remaining"
	RateLimitResetHeader     = "X-RateLimit-Reset"
)
