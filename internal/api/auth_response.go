// File: internal/api/auth_response.go
package api

// swagger:model api.AuthResponse
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token" example:"eyJhbGciOi..."`
}
