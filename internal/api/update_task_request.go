// File: internal/api/update_task_request.go
package api

// UpdateTaskRequest carries a partial update: only fields present in the JSON
// body are applied, so every field is a pointer.
// swagger:model api.UpdateTaskRequest
type UpdateTaskRequest struct {
	Title       *string `json:"title" example:"Buy groceries"`
	Description *string `json:"description" example:"Milk, eggs, bread"`
	Completed   *bool   `json:"completed" example:"true"`
}
