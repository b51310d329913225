package tasks

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"task-management-api/internal/database"
	"task-management-api/internal/middleware"
	"task-management-api/internal/model"
	"task-management-api/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	createTask = store.CreateTask
	getTask = store.GetTask
	listTasks = store.ListTasks
	updateTask = store.UpdateTask
	deleteTask = store.DeleteTask
}

func newCtx(e *echo.Echo, method, target, body string, user *model.User) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if user != nil {
		ctx.Set(middleware.ContextUserKey, user)
	}
	return ctx, rec
}

func TestListTasksHandler(t *testing.T) {
	e := echo.New()
	owner := &model.User{ID: uuid.New(), Role: model.RoleUser}
	admin := &model.User{ID: uuid.New(), Role: model.RoleAdmin}

	t.Run("defaults scope to requester with page and limit fallbacks", func(t *testing.T) {
		t.Cleanup(restore)
		listTasks = func(_ context.Context, _ database.DB, scope store.Scope, page, limit int) ([]model.Task, int, error) {
			require.False(t, scope.Admin)
			require.Equal(t, owner.ID, scope.UserID)
			require.Equal(t, 1, page)
			require.Equal(t, 10, limit)
			return []model.Task{{ID: uuid.New(), Title: "a", UserID: owner.ID}}, 1, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/api/tasks?page=abc&limit=-3", "", owner)
		require.NoError(t, ListTasksHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total":1`)
		require.Contains(t, rec.Body.String(), `"pages":1`)
	})

	t.Run("admin filter by userId narrows the scope", func(t *testing.T) {
		t.Cleanup(restore)
		target := uuid.New()
		listTasks = func(_ context.Context, _ database.DB, scope store.Scope, page, limit int) ([]model.Task, int, error) {
			require.False(t, scope.Admin)
			require.Equal(t, target, scope.UserID)
			return nil, 0, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/api/tasks?userId="+target.String(), "", admin)
		require.NoError(t, ListTasksHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-admin userId filter is ignored", func(t *testing.T) {
		t.Cleanup(restore)
		listTasks = func(_ context.Context, _ database.DB, scope store.Scope, page, limit int) ([]model.Task, int, error) {
			require.Equal(t, owner.ID, scope.UserID)
			return nil, 0, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/api/tasks?userId="+uuid.NewString(), "", owner)
		require.NoError(t, ListTasksHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin with malformed userId", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodGet, "/api/tasks?userId=not-a-uuid", "", admin)
		require.NoError(t, ListTasksHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid user ID")
	})

	t.Run("pages rounds up", func(t *testing.T) {
		t.Cleanup(restore)
		listTasks = func(_ context.Context, _ database.DB, scope store.Scope, page, limit int) ([]model.Task, int, error) {
			require.Equal(t, 2, page)
			require.Equal(t, 5, limit)
			return nil, 11, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/api/tasks?page=2&limit=5", "", owner)
		require.NoError(t, ListTasksHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"pages":3`)
	})
}

func TestCreateTaskHandler(t *testing.T) {
	e := echo.New()
	owner := &model.User{ID: uuid.New(), Role: model.RoleUser}

	t.Run("title required after trimming", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodPost, "/api/tasks", `{"title":"   ","description":"d"}`, owner)
		require.NoError(t, CreateTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Title is required")
	})

	t.Run("description required", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodPost, "/api/tasks", `{"title":"t","description":""}`, owner)
		require.NoError(t, CreateTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Description is required")
	})

	t.Run("owner forced to requester", func(t *testing.T) {
		t.Cleanup(restore)
		createTask = func(_ context.Context, _ database.DB, task *model.Task) (*model.Task, error) {
			require.Equal(t, owner.ID, task.UserID)
			require.Equal(t, "buy milk", task.Title)
			require.False(t, task.Completed)
			task.ID = uuid.New()
			task.CreatedAt = time.Now()
			task.UpdatedAt = task.CreatedAt
			return task, nil
		}
		ctx, rec := newCtx(e, http.MethodPost, "/api/tasks", `{"title":" buy milk ","description":"2L","userId":"`+uuid.NewString()+`"}`, owner)
		require.NoError(t, CreateTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), "Task created successfully")
		require.Contains(t, rec.Body.String(), owner.ID.String())
	})
}

func TestGetTaskHandler(t *testing.T) {
	e := echo.New()
	owner := &model.User{ID: uuid.New(), Role: model.RoleUser}

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodGet, "/", "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues("nope")
		require.NoError(t, GetTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Invalid task ID")
	})

	t.Run("not visible reports not found", func(t *testing.T) {
		t.Cleanup(restore)
		getTask = func(_ context.Context, _ database.DB, scope store.Scope, _ uuid.UUID) (*model.Task, error) {
			require.Equal(t, owner.ID, scope.UserID)
			return nil, store.ErrNotFound
		}
		ctx, rec := newCtx(e, http.MethodGet, "/", "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(uuid.NewString())
		require.NoError(t, GetTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Task not found")
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		id := uuid.New()
		getTask = func(_ context.Context, _ database.DB, _ store.Scope, got uuid.UUID) (*model.Task, error) {
			require.Equal(t, id, got)
			return &model.Task{ID: id, Title: "t", Description: "d", UserID: owner.ID}, nil
		}
		ctx, rec := newCtx(e, http.MethodGet, "/", "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())
		require.NoError(t, GetTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), id.String())
	})
}

func TestUpdateTaskHandler(t *testing.T) {
	e := echo.New()
	owner := &model.User{ID: uuid.New(), Role: model.RoleUser}
	id := uuid.New()

	t.Run("partial update applies only provided fields", func(t *testing.T) {
		t.Cleanup(restore)
		getTask = func(context.Context, database.DB, store.Scope, uuid.UUID) (*model.Task, error) {
			return &model.Task{ID: id, Title: "old", Description: "keep", Completed: true, UserID: owner.ID}, nil
		}
		updateTask = func(_ context.Context, _ database.DB, _ store.Scope, task *model.Task) error {
			require.Equal(t, "new title", task.Title)
			require.Equal(t, "keep", task.Description)
			require.True(t, task.Completed)
			return nil
		}
		ctx, rec := newCtx(e, http.MethodPut, "/", `{"title":"new title"}`, owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())
		require.NoError(t, UpdateTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Task updated successfully")
	})

	t.Run("explicit false completed is applied", func(t *testing.T) {
		t.Cleanup(restore)
		getTask = func(context.Context, database.DB, store.Scope, uuid.UUID) (*model.Task, error) {
			return &model.Task{ID: id, Title: "t", Description: "d", Completed: true, UserID: owner.ID}, nil
		}
		updateTask = func(_ context.Context, _ database.DB, _ store.Scope, task *model.Task) error {
			require.False(t, task.Completed)
			return nil
		}
		ctx, rec := newCtx(e, http.MethodPut, "/", `{"completed":false}`, owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())
		require.NoError(t, UpdateTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("vanished between read and write", func(t *testing.T) {
		t.Cleanup(restore)
		getTask = func(context.Context, database.DB, store.Scope, uuid.UUID) (*model.Task, error) {
			return &model.Task{ID: id, Title: "t", Description: "d", UserID: owner.ID}, nil
		}
		updateTask = func(context.Context, database.DB, store.Scope, *model.Task) error {
			return store.ErrNotFound
		}
		ctx, rec := newCtx(e, http.MethodPut, "/", `{"title":"x"}`, owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())
		require.NoError(t, UpdateTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestToggleTaskHandler(t *testing.T) {
	e := echo.New()
	owner := &model.User{ID: uuid.New(), Role: model.RoleUser}
	id := uuid.New()

	toggled := func(initial bool) (*httptest.ResponseRecorder, *model.Task) {
		var saved *model.Task
		getTask = func(context.Context, database.DB, store.Scope, uuid.UUID) (*model.Task, error) {
			return &model.Task{ID: id, Title: "t", Description: "d", Completed: initial, UserID: owner.ID}, nil
		}
		updateTask = func(_ context.Context, _ database.DB, _ store.Scope, task *model.Task) error {
			saved = task
			return nil
		}
		ctx, rec := newCtx(echo.New(), http.MethodPatch, "/", "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())
		require.NoError(t, ToggleTaskHandler(nil)(ctx))
		return rec, saved
	}

	t.Run("pending becomes completed", func(t *testing.T) {
		t.Cleanup(restore)
		rec, saved := toggled(false)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, saved.Completed)
		require.Contains(t, rec.Body.String(), "Task marked as completed")
	})

	t.Run("completed becomes pending", func(t *testing.T) {
		t.Cleanup(restore)
		rec, saved := toggled(true)
		require.Equal(t, http.StatusOK, rec.Code)
		require.False(t, saved.Completed)
		require.Contains(t, rec.Body.String(), "Task marked as pending")
	})

	t.Run("missing task", func(t *testing.T) {
		t.Cleanup(restore)
		getTask = func(context.Context, database.DB, store.Scope, uuid.UUID) (*model.Task, error) {
			return nil, store.ErrNotFound
		}
		ctx, rec := newCtx(e, http.MethodPatch, "/", "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())
		require.NoError(t, ToggleTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteTaskHandler(t *testing.T) {
	e := echo.New()
	owner := &model.User{ID: uuid.New(), Role: model.RoleUser}
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		deleteTask = func(_ context.Context, _ database.DB, scope store.Scope, got uuid.UUID) error {
			require.Equal(t, owner.ID, scope.UserID)
			require.Equal(t, id, got)
			return nil
		}
		ctx, rec := newCtx(e, http.MethodDelete, "/", "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())
		require.NoError(t, DeleteTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Task deleted successfully")
	})

	t.Run("not visible", func(t *testing.T) {
		t.Cleanup(restore)
		deleteTask = func(context.Context, database.DB, store.Scope, uuid.UUID) error {
			return store.ErrNotFound
		}
		ctx, rec := newCtx(e, http.MethodDelete, "/", "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())
		require.NoError(t, DeleteTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "Task not found")
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, http.MethodDelete, "/", "", owner)
		ctx.SetParamNames("id")
		ctx.SetParamValues("xyz")
		require.NoError(t, DeleteTaskHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
