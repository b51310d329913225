package tasks

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"task-management-api/internal/api"
	"task-management-api/internal/database"
	"task-management-api/internal/middleware"
	"task-management-api/internal/model"
	"task-management-api/internal/store"
)

var (
	createTask = store.CreateTask
	getTask    = store.GetTask
	listTasks  = store.ListTasks
	updateTask = store.UpdateTask
	deleteTask = store.DeleteTask
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// queryInt parses a positive integer query parameter, falling back to def
// when absent or malformed.
func queryInt(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v < 1 {
		return def
	}
	return v
}

func taskID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// ListTasksHandler 分頁列出可見任務，依建立時間新到舊排序
// @Summary     List tasks
// @Description Non-admins see only their own tasks; admins see all and may filter by userId
// @Tags        tasks
// @Produce     json
// @Param       page   query int    false "page number (default 1)"
// @Param       limit  query int    false "page size (default 10)"
// @Param       userId query string false "admin only: filter by owner"
// @Success     200 {object} api.Envelope{data=api.TaskListResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /tasks [get]
func ListTasksHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		page := queryInt(c, "page", defaultPage)
		limit := queryInt(c, "limit", defaultLimit)

		scope := store.ScopeFor(user)
		if target := c.QueryParam("userId"); target != "" && user.IsAdmin() {
			targetID, err := uuid.Parse(target)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.Fail("Invalid user ID"))
			}
			scope = scope.Narrow(targetID)
		}

		tasks, total, err := listTasks(c.Request().Context(), db, scope, page, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while fetching tasks"))
		}

		pages := (total + limit - 1) / limit
		return c.JSON(http.StatusOK, api.OK(api.TaskListResponse{
			Tasks: api.NewTaskResponses(tasks),
			Pagination: api.Pagination{
				Page:  page,
				Limit: limit,
				Total: total,
				Pages: pages,
			},
		}))
	}
}

// CreateTaskHandler 建立任務，擁有者強制為請求者本人
// @Summary     Create a task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       body body api.CreateTaskRequest true "task payload"
// @Success     201 {object} api.Envelope{data=api.TaskResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /tasks [post]
func CreateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)

		var req api.CreateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request payload"))
		}
		req.Title = strings.TrimSpace(req.Title)
		req.Description = strings.TrimSpace(req.Description)
		if req.Title == "" {
			return c.JSON(http.StatusBadRequest, api.Fail("Title is required"))
		}
		if req.Description == "" {
			return c.JSON(http.StatusBadRequest, api.Fail("Description is required"))
		}

		task, err := createTask(c.Request().Context(), db, &model.Task{
			Title:       req.Title,
			Description: req.Description,
			UserID:      user.ID,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while creating task"))
		}

		return c.JSON(http.StatusCreated, api.OKMessage("Task created successfully", map[string]any{
			"task": api.NewTaskResponse(task),
		}))
	}
}

// GetTaskHandler 取得單一任務。他人擁有的任務對非管理員回 404，不洩漏其存在。
// @Summary     Get a task
// @Tags        tasks
// @Produce     json
// @Param       id path string true "task ID"
// @Success     200 {object} api.Envelope{data=api.TaskResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     404 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [get]
func GetTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		id, err := taskID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid task ID"))
		}

		task, err := getTask(c.Request().Context(), db, store.ScopeFor(user), id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Task not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while fetching task"))
		}

		return c.JSON(http.StatusOK, api.OK(map[string]any{
			"task": api.NewTaskResponse(task),
		}))
	}
}

// UpdateTaskHandler 部分更新：只套用請求中出現的欄位。
// 讀取與寫回未包在交易內，並發更新採 last-write-wins。
// @Summary     Update a task
// @Tags        tasks
// @Accept      json
// @Produce     json
// @Param       id   path string                true "task ID"
// @Param       body body api.UpdateTaskRequest true "fields to update"
// @Success     200 {object} api.Envelope{data=api.TaskResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     404 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [put]
func UpdateTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		id, err := taskID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid task ID"))
		}

		var req api.UpdateTaskRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("invalid request payload"))
		}

		scope := store.ScopeFor(user)
		task, err := getTask(c.Request().Context(), db, scope, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Task not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while updating task"))
		}

		if req.Title != nil {
			task.Title = *req.Title
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Completed != nil {
			task.Completed = *req.Completed
		}

		if err := updateTask(c.Request().Context(), db, scope, task); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Task not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while updating task"))
		}

		return c.JSON(http.StatusOK, api.OKMessage("Task updated successfully", map[string]any{
			"task": api.NewTaskResponse(task),
		}))
	}
}

// ToggleTaskHandler 反轉任務完成狀態
// @Summary     Toggle task completion
// @Tags        tasks
// @Produce     json
// @Param       id path string true "task ID"
// @Success     200 {object} api.Envelope{data=api.TaskResponse}
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     404 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /tasks/{id}/toggle [patch]
func ToggleTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		id, err := taskID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid task ID"))
		}

		scope := store.ScopeFor(user)
		task, err := getTask(c.Request().Context(), db, scope, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Task not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while updating task"))
		}

		task.Completed = !task.Completed
		if err := updateTask(c.Request().Context(), db, scope, task); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Task not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while updating task"))
		}

		status := "pending"
		if task.Completed {
			status = "completed"
		}
		return c.JSON(http.StatusOK, api.OKMessage("Task marked as "+status, map[string]any{
			"task": api.NewTaskResponse(task),
		}))
	}
}

// DeleteTaskHandler 刪除任務（單一原子語句，含擁有權過濾）
// @Summary     Delete a task
// @Tags        tasks
// @Produce     json
// @Param       id path string true "task ID"
// @Success     200 {object} api.Envelope
// @Failure     400 {object} api.Envelope
// @Failure     401 {object} api.Envelope
// @Failure     404 {object} api.Envelope
// @Failure     500 {object} api.Envelope
// @Security    ApiKeyAuth
// @Router      /tasks/{id} [delete]
func DeleteTaskHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := middleware.CurrentUser(c)
		id, err := taskID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.Fail("Invalid task ID"))
		}

		if err := deleteTask(c.Request().Context(), db, store.ScopeFor(user), id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.Fail("Task not found"))
			}
			return c.JSON(http.StatusInternalServerError, api.Fail("Server error while deleting task"))
		}

		return c.JSON(http.StatusOK, api.Envelope{Success: true, Message: "Task deleted successfully"})
	}
}
