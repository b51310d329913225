package api

import (
	"time"

	"github.com/google/uuid"

	"task-management-api/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        uuid.UUID `json:"id" example:"6f1c63b2-0d4e-4fbb-9c0e-13f9f3ab7a70"`
	Email     string    `json:"email" example:"alice@example.com"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
