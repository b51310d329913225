package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-management-api/internal/api"
	"task-management-api/internal/middleware"
)

// MeHandler 透過 JWT Token 取得當前使用者詳細資訊
// @Summary     Get current user
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.Envelope{data=api.UserResponse}
// @Failure     401 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /auth/me [get]
func MeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		if user == nil {
			return c.JSON(http.StatusUnauthorized, api.Fail("Token is not valid"))
		}
		return c.JSON(http.StatusOK, api.OK(map[string]any{
			"user": api.NewUserResponse(user),
		}))
	}
}
