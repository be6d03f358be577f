package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/common"
	"github.com/meplus/tasks-api/pkg/infra/prometheus"
	"github.com/meplus/tasks-api/pkg/ratelimit"
	"github.com/sirupsen/logrus"
)

type rateLimitMiddleware struct {
	logger  *logrus.Logger
	limiter ratelimit.Limiter
}

func NewRateLimitMiddleware(logger *logrus.Logger, limiter ratelimit.Limiter) Middleware {
	return &rateLimitMiddleware{
		logger:  logger,
		limiter: limiter,
	}
}

// Middleware admits or rejects the request before any other work happens.
// Every request, allowed or not, counts against the client's window.
func (m *rateLimitMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		clientID := ratelimit.ClientIP(func(key string) string { return ctx.Get(key) })
		decision := m.limiter.Check(clientID)

		ctx.Set(common.RateLimitLimitHeader, strconv.Itoa(decision.Limit))
		ctx.Set(common.RateLimitRemainingHeader, strconv.Itoa(decision.Remaining))
		ctx.Set(common.RateLimitResetHeader, strconv.FormatInt(decision.ResetAt.Unix(), 10))

		if !decision.Allowed {
			m.logger.WithFields(logrus.Fields{
				"client_id": clientID,
				"path":      ctx.Path(),
			}).Warn("rate limit exceeded")
			prometheus.RateLimitRejections.WithLabelValues(ctx.Path()).Inc()
			// Retry-After carries delta-seconds, not the reset timestamp.
			retryAfter := int64(time.Until(decision.ResetAt).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			ctx.Set(fiber.HeaderRetryAfter, strconv.FormatInt(retryAfter, 10))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Rate limit exceeded. Please try again later.",
			})
		}

		ctx.Locals(common.ClientIPKey, clientID)
		return ctx.Next()
	}
}
