package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasksapi_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tasksapi_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "path"},
	)

	RateLimitRejections = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasksapi_rate_limit_rejections_total",
			Help: "Requests rejected by the fixed window rate limiter",
		},
		[]string{"path"},
	)

	GenerationTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasksapi_generations_total",
			Help: "AI generation calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	GenerationLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tasksapi_generation_latency_ms",
			Help:    "AI provider call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider"},
	)
)

func Initialize() {
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

func Registry() *prometheus.Registry {
	return registry
}
