// File: internal/ratelimit/ratelimit.go
package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"task-management-api/internal/api"
	"task-management-api/internal/cache"
)

// Limiter is a fixed-window request limiter backed by the shared cache. One
// counter per client IP per window; the counter expires with the window. When
// the cache is unreachable the limiter fails open.
type Limiter struct {
	cache   cache.Cache
	max     int64
	window  time.Duration
	prefix  string
	message string
}

func New(cch cache.Cache, max int, window time.Duration, prefix, message string) *Limiter {
	return &Limiter{
		cache:   cch,
		max:     int64(max),
		window:  window,
		prefix:  prefix,
		message: message,
	}
}

// NewLoginLimiter 登入端點限流：每 IP 15 分鐘 5 次
func NewLoginLimiter(cch cache.Cache) *Limiter {
	return New(cch, 5, 15*time.Minute, "ratelimit:login",
		"Too many login attempts, please try again later")
}

// NewGeneralLimiter 全域限流：每 IP 15 分鐘 100 次
func NewGeneralLimiter(cch cache.Cache) *Limiter {
	return New(cch, 100, 15*time.Minute, "ratelimit:general",
		"Too many requests, please try again later")
}

// Middleware returns the echo middleware enforcing the limit.
func (l *Limiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := fmt.Sprintf("%s:%s", l.prefix, c.RealIP())

			n, err := l.cache.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				l.cache.Expire(ctx, key, l.window)
			}
			if n > l.max {
				return c.JSON(http.StatusTooManyRequests, api.Fail(l.message))
			}
			return next(c)
		}
	}
}
