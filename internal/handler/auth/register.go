package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"task-management-api/internal/api"
	"task-management-api/internal/database"
	"task-management-api/internal/model"
	"task-management-api/internal/service"
	"task-management-api/internal/store"
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	createUser      = store.CreateUser
	getUserByEmail  = store.GetUserByEmail
)

const minPasswordLength = 6

// RegisterHandler 建立新帳號並直接發行存取令牌 (Email 會自動轉小寫)
// @Summary     Register a new user
// @Description Creates an account and returns the user together with a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "registration payload"
// @Success     201 {object} api.Envelope{data=api.AuthResponse}
// @Failure     400 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, tokens *service.TokenService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request payload"))
		}
		if req.Email == "" || req.Password == "" {
			return c.JSON(http.StatusBadRequest, api.Fail("Email and password are required"))
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail(err.Error()))
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Please provide a valid email address"))
		}
		if len(req.Password) < minPasswordLength {
			return c.JSON(http.StatusBadRequest, api.Fail("Password must be at least 6 characters long"))
		}

		if _, err := getUserByEmail(c.Request().Context(), db, req.Email); err == nil {
			return c.JSON(http.StatusBadRequest, api.Fail("User already exists with this email"))
		} else if !errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error during registration"))
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error during registration"))
		}

		role := model.RoleUser
		if req.Role == model.RoleAdmin {
			role = model.RoleAdmin
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Email:        req.Email,
			PasswordHash: hash,
			Role:         role,
		})
		if err != nil {
			// Backstop for the race between the existence check and the insert.
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusBadRequest, api.Fail("User already exists with this email"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error during registration"))
		}

		token, _, err := tokens.Issue(user.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error during registration"))
		}

		return c.JSON(http.StatusCreated, api.OKMessage("User registered successfully", api.AuthResponse{
			User:  api.NewUserResponse(user),
			Token: token,
		}))
	}
}
