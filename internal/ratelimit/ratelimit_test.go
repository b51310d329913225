// File: internal/ratelimit/ratelimit_test.go
package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task-management-api/internal/cache"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = "203.0.113.7:51234"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLimiter(t *testing.T) {
	t.Run("first hit sets window expiry and passes", func(t *testing.T) {
		expired := false
		cch := &cache.FakeCache{
			IncrFn: func(_ context.Context, key string) *redis.IntCmd {
				require.Equal(t, "ratelimit:login:203.0.113.7", key)
				return redis.NewIntResult(1, nil)
			},
			ExpireFn: func(_ context.Context, _ string, ttl time.Duration) *redis.BoolCmd {
				expired = true
				require.Equal(t, 15*time.Minute, ttl)
				return redis.NewBoolResult(true, nil)
			},
		}
		ctx, rec := newContext()
		called := false
		err := NewLoginLimiter(cch).Middleware()(func(c echo.Context) error {
			called = true
			return c.String(http.StatusOK, "ok")
		})(ctx)
		require.NoError(t, err)
		require.True(t, called)
		require.True(t, expired)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("under the limit passes without resetting expiry", func(t *testing.T) {
		cch := &cache.FakeCache{
			IncrFn: func(context.Context, string) *redis.IntCmd {
				return redis.NewIntResult(5, nil)
			},
		}
		ctx, rec := newContext()
		err := NewLoginLimiter(cch).Middleware()(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("over the limit rejects with 429", func(t *testing.T) {
		cch := &cache.FakeCache{
			IncrFn: func(context.Context, string) *redis.IntCmd {
				return redis.NewIntResult(6, nil)
			},
		}
		ctx, rec := newContext()
		called := false
		err := NewLoginLimiter(cch).Middleware()(func(echo.Context) error { called = true; return nil })(ctx)
		require.NoError(t, err)
		require.False(t, called)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Contains(t, rec.Body.String(), "Too many login attempts")
	})

	t.Run("cache failure fails open", func(t *testing.T) {
		cch := &cache.FakeCache{
			IncrFn: func(context.Context, string) *redis.IntCmd {
				return redis.NewIntResult(0, errors.New("redis down"))
			},
		}
		ctx, rec := newContext()
		called := false
		err := NewLoginLimiter(cch).Middleware()(func(c echo.Context) error {
			called = true
			return c.String(http.StatusOK, "ok")
		})(ctx)
		require.NoError(t, err)
		require.True(t, called)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("general limiter allows 100 per window", func(t *testing.T) {
		l := NewGeneralLimiter(&cache.FakeCache{})
		require.Equal(t, int64(100), l.max)
		require.Equal(t, 15*time.Minute, l.window)
	})
}
