package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/meplus/tasks-api/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		elapsed := time.Since(start)
		// Route() gives the registered pattern, keeping label cardinality
		// bounded even with uuid path params.
		path := c.Route().Path
		status := c.Response().StatusCode()

		prometheus.RequestTotal.WithLabelValues(c.Method(), path, strconv.Itoa(status)).Inc()
		prometheus.RequestLatency.WithLabelValues(c.Method(), path).Observe(float64(elapsed.Milliseconds()))

		return err
	}
}
