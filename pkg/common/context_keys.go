package common

type contextKey string

const (
	TraceIdKey        contextKey = "trace_id"
	UserContextKey    contextKey = "user"
	UserIdContextKey  contextKey = "user_id"
	UserEmailKey      contextKey = "user_email"
	ClientIPKey       contextKey = "client_ip"
	LatencyContextKey contextKey = "__execution_time"
)
