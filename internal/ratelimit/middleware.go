package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/redmonkez12/goals-api/internal/httputil"
	"github.com/redmonkez12/goals-api/internal/logging"
)

// PerIP limits requests by client address. Run it after chi's RealIP so
// RemoteAddr reflects the proxy headers. Redis failures fail open.
func PerIP(limiter Limiter, purpose string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision, err := limiter.Allow(r.Context(), purpose, clientIP(r))
			if err != nil {
				logging.GetLoggerFromContext(r.Context()).Warn("rate limiter unavailable",
					"purpose", purpose,
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}

			if !decision.Allowed {
				secs := int(math.Ceil(decision.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				httputil.RespondErrorWithCode(w, "too many requests", httputil.CodeRateLimited, http.StatusTooManyRequests)
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		return r.RemoteAddr
	}
	return host
}
