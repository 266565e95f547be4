package middleware

import (
	"travel-assistant/config"
	"travel-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	origins []string
}

// New builds the middleware set. A disabled or non-positive rate limit
// turns RateLimit into a pass-through.
func New(l log.Logger, rl config.RateLimitConfig, cors config.CORSConfig) Middleware {
	m := Middleware{
		l:       l,
		origins: cors.AllowedOrigins,
	}
	if rl.Enabled && rl.RequestsPerMin > 0 {
		m.limiter = newRateLimiter(rl.RequestsPerMin)
	}
	if len(m.origins) == 0 {
		m.origins = []string{"*"}
	}
	return m
}
