package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/fiscal-bridge/internal/metrics"
	"github.com/grachmannico95/fiscal-bridge/pkg/logger"
	"github.com/grachmannico95/fiscal-bridge/pkg/ratelimit"
	"github.com/labstack/echo/v4"
)

// RateLimit limits requests per client IP within the named class. Each class
// counts separately, so one client can use its read and write budgets
// independently.
func RateLimit(limiter *ratelimit.Limiter, class string, policy ratelimit.Policy, log *logger.Logger, m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := ClientIP(c.Request())
			result := limiter.Allow(class+":"+ip, policy)

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				retryAfter := result.RetryAfter(time.Now())
				m.IncRateLimitRejection(class)

				log.Warn(c.Request().Context(), "Rate limit exceeded",
					"class", class,
					"client_ip", ip,
				)

				h.Set("Retry-After", strconv.Itoa(retryAfter))
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "too many requests",
					"retry_after": retryAfter,
				})
			}

			return next(c)
		}
	}
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// connection's remote address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
