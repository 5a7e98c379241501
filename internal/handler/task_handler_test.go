package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/handler"
	"taskflow/internal/insight"
	"taskflow/internal/model"
	"taskflow/internal/store"
)

func setupTaskTest() (*gin.Engine, *store.Store) {
	r := newRouter(uuid.New())
	st := newStore()
	h := handler.NewTaskHandler(st, clock)

	r.POST("/tasks", h.CreateTask)
	r.GET("/projects/:id/tasks", h.ListProjectTasks)
	r.GET("/tasks/:id", h.GetTask)
	r.PATCH("/tasks/:id", h.UpdateTask)
	r.DELETE("/tasks/:id", h.DeleteTask)
	r.POST("/tasks/:id/status", h.ChangeStatus)
	r.POST("/tasks/:id/priority", h.ChangePriority)
	r.POST("/tasks/:id/assignee", h.ChangeAssignee)
	r.POST("/tasks/:id/select", h.SelectTask)
	r.DELETE("/selection/task", h.ClearSelection)
	r.GET("/tasks/:id/health", h.GetHealth)
	return r, st
}

func TestCreateTask_Defaults(t *testing.T) {
	// Arrange
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")

	// Act
	resp := doJSON(router, http.MethodPost, "/tasks", map[string]any{
		"title":      "Design",
		"start_date": "2024-01-02",
		"end_date":   "2024-01-05",
		"project_id": p.ID,
	})

	// Assert
	require.Equal(t, http.StatusCreated, resp.Code)
	task, err := decode[model.Task](resp)
	require.NoError(t, err)
	assert.Equal(t, model.PriorityMedium, task.Priority)
	assert.Equal(t, model.TaskTodo, task.Status)
	assert.Equal(t, p.ID, task.ProjectID)

	project, err := st.Project(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, project.TaskCount)
}

func TestCreateTask_Errors(t *testing.T) {
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")

	cases := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"missing title", map[string]any{"start_date": "2024-01-02", "end_date": "2024-01-05", "project_id": p.ID}, http.StatusBadRequest},
		{"inverted dates", map[string]any{"title": "x", "start_date": "2024-01-05", "end_date": "2024-01-02", "project_id": p.ID}, http.StatusBadRequest},
		{"unknown project", map[string]any{"title": "x", "start_date": "2024-01-02", "end_date": "2024-01-05", "project_id": uuid.New()}, http.StatusNotFound},
		{"unknown priority", map[string]any{"title": "x", "start_date": "2024-01-02", "end_date": "2024-01-05", "project_id": p.ID, "priority": "SOMEDAY"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(router, http.MethodPost, "/tasks", tc.body)
			assert.Equal(t, tc.status, resp.Code)
		})
	}
	assert.Empty(t, st.Tasks())
}

func TestListProjectTasks(t *testing.T) {
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")
	other := seedProject(st, "Beta")
	seedTask(st, p.ID, "one", "2024-01-02", "2024-01-03")
	seedTask(st, other.ID, "two", "2024-01-02", "2024-01-03")

	resp := doJSON(router, http.MethodGet, "/projects/"+p.ID.String()+"/tasks", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	tasks, err := decode[[]model.Task](resp)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "one", tasks[0].Title)

	resp = doJSON(router, http.MethodGet, "/projects/"+uuid.NewString()+"/tasks", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListProjectTasks_EmptyProjectIsEmptyArray(t *testing.T) {
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")

	resp := doJSON(router, http.MethodGet, "/projects/"+p.ID.String()+"/tasks", nil)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestUpdateTask(t *testing.T) {
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")
	task := seedTask(st, p.ID, "one", "2024-01-02", "2024-01-03")

	resp := doJSON(router, http.MethodPatch, "/tasks/"+task.ID.String(), map[string]any{
		"title":    "renamed",
		"progress": 40,
	})

	require.Equal(t, http.StatusOK, resp.Code)
	got, err := st.Task(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	assert.Equal(t, 40, got.Progress)
}

func TestChangeStatusPriorityAssignee(t *testing.T) {
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")
	task := seedTask(st, p.ID, "one", "2024-01-02", "2024-01-03")
	path := "/tasks/" + task.ID.String()
	assignee := uuid.New()

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, path+"/status", map[string]any{"status": "COMPLETED"}).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, path+"/priority", map[string]any{"priority": "URGENT"}).Code)
	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, path+"/assignee", map[string]any{"assignee_id": assignee}).Code)

	got, err := st.Task(task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TaskCompleted, got.Status)
	assert.Equal(t, model.PriorityUrgent, got.Priority)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, assignee, *got.AssigneeID)

	project, err := st.Project(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, project.CompletedTaskCount)

	assert.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, path+"/assignee", map[string]any{"assignee_id": nil}).Code)
	got, err = st.Task(task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AssigneeID)

	assert.Equal(t, http.StatusBadRequest, doJSON(router, http.MethodPost, path+"/status", map[string]any{"status": "DONE"}).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(router, http.MethodPost, path+"/priority", map[string]any{}).Code)
}

func TestDeleteTask(t *testing.T) {
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")
	task := seedTask(st, p.ID, "one", "2024-01-02", "2024-01-03")
	require.Equal(t, http.StatusOK, doJSON(router, http.MethodPost, "/tasks/"+task.ID.String()+"/select", nil).Code)

	resp := doJSON(router, http.MethodDelete, "/tasks/"+task.ID.String(), nil)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	_, selected := st.SelectedTask()
	assert.False(t, selected)
	assert.Equal(t, http.StatusNotFound, doJSON(router, http.MethodGet, "/tasks/"+task.ID.String(), nil).Code)
}

func TestClearTaskSelection(t *testing.T) {
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")
	task := seedTask(st, p.ID, "one", "2024-01-02", "2024-01-03")
	_, err := st.SelectTask(task.ID)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNoContent, doJSON(router, http.MethodDelete, "/selection/task", nil).Code)
	_, selected := st.SelectedTask()
	assert.False(t, selected)
}

func TestGetHealth(t *testing.T) {
	// Arrange: the schedule runs 2024-01-08 through 2024-01-11 inclusive
	// and the clock sits 60 of its 96 hours in.
	router, st := setupTaskTest()
	p := seedProject(st, "Alpha")
	task := seedTask(st, p.ID, "one", "2024-01-08", "2024-01-11")
	_, err := st.UpdateTask(task.ID, store.TaskPatch{Progress: ptr(20)})
	require.NoError(t, err)

	// Act
	resp := doJSON(router, http.MethodGet, "/tasks/"+task.ID.String()+"/health", nil)

	// Assert
	require.Equal(t, http.StatusOK, resp.Code)
	health, err := decode[insight.Health](resp)
	require.NoError(t, err)
	assert.Equal(t, 63, health.Expected)
	assert.Equal(t, 20, health.Actual)
	assert.True(t, health.Behind)
	assert.Equal(t, -43, health.Diff)
}

func ptr[T any](v T) *T { return &v }
