package api

// swagger:model api.CreateTaskRequest
type CreateTaskRequest struct {
	Title       string `json:"title" example:"Buy groceries"`
	Description string `json:"description" example:"Milk, eggs, bread"`
}
