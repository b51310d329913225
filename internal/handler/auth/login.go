// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"task-management-api/internal/api"
	"task-management-api/internal/database"
	"task-management-api/internal/service"
)

// LoginHandler 使用 Email/Password 驗證並回傳 JWT
// @Summary     Log in
// @Description Verifies credentials and returns the user with a bearer token.
// @Description Unknown email and wrong password fail with the same message.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "credentials"
// @Success     200 {object} api.Envelope{data=api.AuthResponse}
// @Failure     400 {object} api.Envelope
// @Failure     429 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request payload"))
		}
		if req.Email == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, api.Fail("Email and password are required"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid credentials"))
		}
		if err := comparePassword(user.PasswordHash, req.Password); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid credentials"))
		}

		token, _, err := tokens.Issue(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error during login"))
		}

		return c.JSON(http.StatusOK, api.OKMessage("Login successful", api.AuthResponse{
			User:  api.NewUserResponse(user),
			Token: token,
		}))
	}
}
