// File: internal/router/router.go
package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"task-management-api/internal/api"
	"task-management-api/internal/cache"
	"task-management-api/internal/config"
	"task-management-api/internal/database"
	"task-management-api/internal/handler"
	"task-management-api/internal/handler/analytics"
	"task-management-api/internal/handler/auth"
	"task-management-api/internal/handler/tasks"
	"task-management-api/internal/middleware"
	"task-management-api/internal/ratelimit"
	"task-management-api/internal/service"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, cch cache.Cache, cfg *config.Config) {
	e.HTTPErrorHandler = httpErrorHandler(cfg)

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))
	e.Use(ratelimit.NewGeneralLimiter(cch).Middleware())

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpires)
	requireAuth := middleware.RequireAuth(db, tokens)

	// 健康檢查（公開）
	e.GET("/health", handler.HealthHandler(db, cch))

	apiGroup := e.Group("/api")

	// 註冊與登入（登入另加限流）
	apiGroup.POST("/auth/register", auth.RegisterHandler(db, tokens))
	apiGroup.POST("/auth/login", auth.LoginHandler(db, tokens),
		ratelimit.NewLoginLimiter(cch).Middleware())
	apiGroup.GET("/auth/me", auth.MeHandler(), requireAuth)

	// 任務 CRUD（登入後，可見範圍由 store.Scope 統一限制）
	apiTasks := apiGroup.Group("/tasks", requireAuth)
	apiTasks.GET("", tasks.ListTasksHandler(db))
	apiTasks.POST("", tasks.CreateTaskHandler(db))
	apiTasks.GET("/:id", tasks.GetTaskHandler(db))
	apiTasks.PUT("/:id", tasks.UpdateTaskHandler(db))
	apiTasks.PATCH("/:id/toggle", tasks.ToggleTaskHandler(db))
	apiTasks.DELETE("/:id", tasks.DeleteTaskHandler(db))

	// 管理員專屬統計
	apiAnalytics := apiGroup.Group("/analytics", requireAuth, middleware.RequireAdmin)
	apiAnalytics.GET("", analytics.GetAnalyticsHandler(db))
	apiAnalytics.GET("/user/:userId", analytics.GetUserStatsHandler(db))
}

// httpErrorHandler renders every error echo surfaces (unmatched routes,
// panics recovered by the Recover middleware, stray handler errors) as the
// standard envelope. Diagnostic detail is attached only outside production.
func httpErrorHandler(cfg *config.Config) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if code == http.StatusNotFound {
				message = "Route not found"
			} else if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}

		resp := api.Fail(message)
		if code == http.StatusInternalServerError && !cfg.Production() {
			resp.Data = map[string]any{"error": err.Error()}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}
