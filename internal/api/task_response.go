package api

import (
	"time"

	"github.com/google/uuid"

	"task-management-api/internal/model"
)

// swagger:model api.TaskResponse
type TaskResponse struct {
	ID          uuid.UUID `json:"id" example:"9a4b0c66-7a51-4f8e-b8aa-52a8d7a9c111"`
	Title       string    `json:"title" example:"Buy groceries"`
	Description string    `json:"description" example:"Milk, eggs, bread"`
	Completed   bool      `json:"completed" example:"false"`
	UserID      uuid.UUID `json:"user_id" example:"6f1c63b2-0d4e-4fbb-9c0e-13f9f3ab7a70"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewTaskResponse(t *model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
