package ratelimit

import "strings"

// UnknownClient is the shared bucket for requests that carry none of the
// proxy headers. All such clients count against a single window.
const UnknownClient = "unknown"

// clientIPHeaders in order of preference.
var clientIPHeaders = []string{
	"X-Forwarded-For",
	"X-Real-IP",
	"CF-Connecting-IP",
}

// HeaderGetter abstracts header lookup so both fiber and net/http requests
// can feed ClientIP.
type HeaderGetter func(key string) string

// ClientIP derives the rate-limit key from proxy headers; the first
// non-empty header wins. X-Forwarded-For may hold a chain, only the
// left-most address counts.
func ClientIP(get HeaderGetter) string {
	for _, header := range clientIPHeaders {
		value := get(header)
		if value == "" {
			continue
		}
		if header == "X-Forwarded-For" {
			if idx := strings.Index(value, ","); idx >= 0 {
				value = value[:idx]
			}
		}
		value = strings.TrimSpace(value)
		if value != "" {
			return value
		}
	}
	return UnknownClient
}
