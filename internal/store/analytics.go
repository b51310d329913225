// File: internal/store/analytics.go
package store

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"task-management-api/internal/database"
)

// TaskStats are the aggregate counters for a task set.
type TaskStats struct {
	Total           int
	Completed       int
	RecentCreated   int
	RecentCompleted int
}

// UserTaskCount is one row of the per-user breakdown, already joined with the
// owner's email.
type UserTaskCount struct {
	UserID    uuid.UUID
	Email     string
	Total     int
	Completed int
}

// TrendPoint is one day of a sparse trend series. Days without events produce
// no point at all.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CompletionRate converts completed/total into a percentage rounded to two
// decimal places. A zero total yields 0.
func CompletionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(completed) / float64(total) * 100
	return math.Round(rate*100) / 100
}

// GlobalTaskStats aggregates all tasks in one pass. recentSince bounds the
// created/completed counters (completion is judged by updated_at).
func GlobalTaskStats(ctx context.Context, db database.DB, recentSince time.Time) (*TaskStats, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE completed),
		        COUNT(*) FILTER (WHERE created_at >= $1),
		        COUNT(*) FILTER (WHERE completed AND updated_at >= $1)
		 FROM tasks`,
		recentSince,
	)
	s := &TaskStats{}
	if err := row.Scan(&s.Total, &s.Completed, &s.RecentCreated, &s.RecentCompleted); err != nil {
		return nil, fmt.Errorf("GlobalTaskStats: %w", err)
	}
	return s, nil
}

// UserTaskStats aggregates a single owner's tasks the same way.
func UserTaskStats(ctx context.Context, db database.DB, userID uuid.UUID, recentSince time.Time) (*TaskStats, error) {
	row := db.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE completed),
		        COUNT(*) FILTER (WHERE created_at >= $2),
		        COUNT(*) FILTER (WHERE completed AND updated_at >= $2)
		 FROM tasks WHERE user_id = $1`,
		userID,
		recentSince,
	)
	s := &TaskStats{}
	if err := row.Scan(&s.Total, &s.Completed, &s.RecentCreated, &s.RecentCompleted); err != nil {
		return nil, fmt.Errorf("UserTaskStats: %w", err)
	}
	return s, nil
}

// TasksByUser groups tasks per owner, joins the owner's email and sorts by
// total count descending.
func TasksByUser(ctx context.Context, db database.DB) ([]UserTaskCount, error) {
	rows, err := db.Query(ctx,
		`SELECT t.user_id, u.email,
		        COUNT(*) AS total,
		        COUNT(*) FILTER (WHERE t.completed) AS completed
		 FROM tasks t
		 JOIN users u ON u.id = t.user_id
		 GROUP BY t.user_id, u.email
		 ORDER BY total DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("TasksByUser: %w", err)
	}
	defer rows.Close()

	counts := []UserTaskCount{}
	for rows.Next() {
		var c UserTaskCount
		if err := rows.Scan(&c.UserID, &c.Email, &c.Total, &c.Completed); err != nil {
			return nil, fmt.Errorf("TasksByUser: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("TasksByUser: %w", err)
	}
	return counts, nil
}

// CompletionTrend buckets completed tasks by the UTC calendar day of their
// last update, from since onwards. The series is sparse and date-ordered.
func CompletionTrend(ctx context.Context, db database.DB, since time.Time) ([]TrendPoint, error) {
	return trend(ctx, db,
		`SELECT to_char(updated_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		 FROM tasks
		 WHERE completed AND updated_at >= $1
		 GROUP BY day
		 ORDER BY day`,
		since,
	)
}

// CreationTrend buckets task creations by UTC calendar day, from since onwards.
func CreationTrend(ctx context.Context, db database.DB, since time.Time) ([]TrendPoint, error) {
	return trend(ctx, db,
		`SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		 FROM tasks
		 WHERE created_at >= $1
		 GROUP BY day
		 ORDER BY day`,
		since,
	)
}

func trend(ctx context.Context, db database.DB, sql string, since time.Time) ([]TrendPoint, error) {
	rows, err := db.Query(ctx, sql, since)
	if err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}
	defer rows.Close()

	points := []TrendPoint{}
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.Date, &p.Count); err != nil {
			return nil, fmt.Errorf("trend: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trend: %w", err)
	}
	return points, nil
}
