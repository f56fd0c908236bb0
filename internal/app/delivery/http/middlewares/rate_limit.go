package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// GlobalRateLimit caps every client IP at MaxRequests per
// MaxTimeRequestsPerSeconds across the whole API.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
}

// AuthRateLimit builds the brute-force guard mounted on /auth.
func (m *Middlewares) AuthRateLimit() func(next http.Handler) http.Handler {
	perMinute := m.InternalConfig.App.AuthRateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	burst := m.InternalConfig.App.AuthRateLimitBurst
	if burst <= 0 {
		burst = perMinute
	}
	block := time.Duration(m.InternalConfig.App.AuthBlockDurationInMinutes) * time.Minute

	limiter := NewRateLimiter(m.Log, burst, time.Minute/time.Duration(perMinute), block)
	return limiter.Limit
}
