// File: internal/api/analytics_response.go
package api

import (
	"github.com/google/uuid"

	"task-management-api/internal/store"
)

// UserTaskBreakdown is one per-user row of the global analytics snapshot.
// swagger:model api.UserTaskBreakdown
type UserTaskBreakdown struct {
	User           uuid.UUID `json:"user"`
	Email          string    `json:"email" example:"alice@example.com"`
	TotalTasks     int       `json:"totalTasks" example:"8"`
	CompletedTasks int       `json:"completedTasks" example:"5"`
	CompletionRate float64   `json:"completionRate" example:"62.5"`
}

// AnalyticsResponse 全域統計快照，每次請求即時計算，不做快取
// swagger:model api.AnalyticsResponse
type AnalyticsResponse struct {
	TotalTasks             int                 `json:"totalTasks" example:"42"`
	CompletedTasks         int                 `json:"completedTasks" example:"17"`
	PendingTasks           int                 `json:"pendingTasks" example:"25"`
	CompletionRate         float64             `json:"completionRate" example:"40.48"`
	TasksByUser            []UserTaskBreakdown `json:"tasksByUser"`
	TasksCreatedLastWeek   int                 `json:"tasksCreatedLastWeek" example:"6"`
	TasksCompletedLastWeek int                 `json:"tasksCompletedLastWeek" example:"3"`
	CompletionTrend        []store.TrendPoint  `json:"completionTrend"`
	CreationTrend          []store.TrendPoint  `json:"creationTrend"`
}

// UserStatsResponse 單一使用者的統計快照
// swagger:model api.UserStatsResponse
type UserStatsResponse struct {
	User  UserStatsUser `json:"user"`
	Stats UserStats     `json:"stats"`
}

// swagger:model api.UserStatsUser
type UserStatsUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email" example:"alice@example.com"`
}

// swagger:model api.UserStats
type UserStats struct {
	TotalTasks        int     `json:"totalTasks" example:"8"`
	CompletedTasks    int     `json:"completedTasks" example:"5"`
	PendingTasks      int     `json:"pendingTasks" example:"3"`
	CompletionRate    float64 `json:"completionRate" example:"62.5"`
	RecentTasks       int     `json:"recentTasks" example:"2"`
	RecentCompletions int     `json:"recentCompletions" example:"1"`
}
