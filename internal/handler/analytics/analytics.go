// File: internal/handler/analytics/analytics.go
package analytics

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"task-management-api/internal/api"
	"task-management-api/internal/database"
	"task-management-api/internal/store"
)

var (
	globalTaskStats = store.GlobalTaskStats
	userTaskStats   = store.UserTaskStats
	tasksByUser     = store.TasksByUser
	completionTrend = store.CompletionTrend
	creationTrend   = store.CreationTrend
	getUserByID     = store.GetUserByID
)

// timeNow 供測試覆寫
var timeNow = time.Now

// GetAnalyticsHandler 全域統計：總量、完成率、每使用者分佈與 30 天趨勢。
// 快照每次即時計算，不落地。
// @Summary     Global task analytics
// @Tags        analytics
// @Produce     json
// @Success     200 {object} api.Envelope{data=api.AnalyticsResponse}
// @Failure     401 {object} api.Envelope
// @Failure     403 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /analytics [get]
func GetAnalyticsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		now := timeNow().UTC()
		weekAgo := now.AddDate(0, 0, -7)
		monthAgo := now.AddDate(0, 0, -30)

		stats, err := globalTaskStats(ctx, db, weekAgo)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while fetching analytics"))
		}

		byUser, err := tasksByUser(ctx, db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while fetching analytics"))
		}
		breakdown := make([]api.UserTaskBreakdown, 0, len(byUser))
		for _, u := range byUser {
			breakdown = append(breakdown, api.UserTaskBreakdown{
				User:           u.UserID,
				Email:          u.Email,
				TotalTasks:     u.Total,
				CompletedTasks: u.Completed,
				CompletionRate: store.CompletionRate(u.Completed, u.Total),
			})
		}

		completed, err := completionTrend(ctx, db, monthAgo)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while fetching analytics"))
		}
		created, err := creationTrend(ctx, db, monthAgo)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while fetching analytics"))
		}

		return c.JSON(http.StatusOK, api.OK(api.AnalyticsResponse{
			TotalTasks:             stats.Total,
			CompletedTasks:         stats.Completed,
			PendingTasks:           stats.Total - stats.Completed,
			CompletionRate:         store.CompletionRate(stats.Completed, stats.Total),
			TasksByUser:            breakdown,
			TasksCreatedLastWeek:   stats.RecentCreated,
			TasksCompletedLastWeek: stats.RecentCompleted,
			CompletionTrend:        completed,
			CreationTrend:          created,
		}))
	}
}

// GetUserStatsHandler 單一使用者統計（近 30 天活動）
// @Summary     Per-user task statistics
// @Tags        analytics
// @Produce     json
// @Param       userId path string true "user ID"
// @Success     200 {object} api.Envelope{data=api.UserStatsResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     403 {object} api.Envelope
// @Failure     404 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /analytics/user/{userId} [get]
func GetUserStatsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userID, err := uuid.Parse(c.Param("userId"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid user ID"))
		}

		user, err := getUserByID(ctx, db, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("User not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while fetching user statistics"))
		}

		monthAgo := timeNow().UTC().AddDate(0, 0, -30)
		stats, err := userTaskStats(ctx, db, userID, monthAgo)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while fetching user statistics"))
		}

		return c.JSON(http.StatusOK, api.OK(api.UserStatsResponse{
			User: api.UserStatsUser{ID: user.ID, Email: user.Email},
			Stats: api.UserStats{
				TotalTasks:        stats.Total,
				CompletedTasks:    stats.Completed,
				PendingTasks:      stats.Total - stats.Completed,
				CompletionRate:    store.CompletionRate(stats.Completed, stats.Total),
				RecentTasks:       stats.RecentCreated,
				RecentCompletions: stats.RecentCompleted,
			},
		}))
	}
}
