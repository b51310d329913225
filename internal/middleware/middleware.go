package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-management-api/internal/api"
	"task-management-api/internal/database"
	"task-management-api/internal/model"
	"task-management-api/internal/service"
	"task-management-api/internal/store"
)

const ContextUserKey = "user"

var getUserByID = store.GetUserByID

// RequireAuth resolves the bearer token into a full user record and stores it
// in the request context. The role is always re-read from the database, never
// trusted from the token.
func RequireAuth(db database.DB, tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")
			if token == "" {
				return c.JSON(http.StatusUnauthorized, api.Fail("No token provided, authorization denied"))
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.Fail("Token is not valid"))
			}

			user, err := getUserByID(c.Request().Context(), db, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.Fail("Token is not valid"))
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// RequireAdmin rejects authenticated non-admin users. Must run after
// RequireAuth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			return c.JSON(http.StatusForbidden, api.Fail("Access denied. Admin role required."))
		}
		return next(c)
	}
}

// CurrentUser returns the user resolved by RequireAuth, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
