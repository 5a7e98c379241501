package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/insight"
	"taskflow/internal/model"
	"taskflow/internal/store"
)

type TaskHandler struct {
	store *store.Store
	now   func() time.Time
}

func NewTaskHandler(st *store.Store, now func() time.Time) *TaskHandler {
	if now == nil {
		now = time.Now
	}
	return &TaskHandler{store: st, now: now}
}

type CreateTaskRequest struct {
	Title        string             `json:"title"`
	Description  *string            `json:"description"`
	StartDate    model.Date         `json:"start_date"`
	EndDate      model.Date         `json:"end_date"`
	Progress     int                `json:"progress"`
	Priority     model.TaskPriority `json:"priority"`
	Status       model.TaskStatus   `json:"status"`
	ProjectID    uuid.UUID          `json:"project_id"`
	AssigneeID   *uuid.UUID         `json:"assignee_id"`
	ParentTaskID *uuid.UUID         `json:"parent_task_id"`
}

type UpdateTaskRequest struct {
	Title         *string             `json:"title"`
	Description   *string             `json:"description"`
	StartDate     *model.Date         `json:"start_date"`
	EndDate       *model.Date         `json:"end_date"`
	Progress      *int                `json:"progress"`
	Priority      *model.TaskPriority `json:"priority"`
	Status        *model.TaskStatus   `json:"status"`
	ProjectID     *uuid.UUID          `json:"project_id"`
	AssigneeID    *uuid.UUID          `json:"assignee_id"`
	ClearAssignee bool                `json:"clear_assignee"`
}

type ChangeStatusRequest struct {
	Status model.TaskStatus `json:"status" binding:"required"`
}

type ChangePriorityRequest struct {
	Priority model.TaskPriority `json:"priority" binding:"required"`
}

// ChangeAssigneeRequest unassigns the task when AssigneeID is null.
type ChangeAssigneeRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"`
}

// CreateTask godoc
// @Summary      Create a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handler.CreateTaskRequest  true  "Request body"
// @Success      201  {object}  model.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	t, err := h.store.CreateTask(store.TaskInput{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Progress:     req.Progress,
		Priority:     req.Priority,
		Status:       req.Status,
		ProjectID:    req.ProjectID,
		AssigneeID:   req.AssigneeID,
		ParentTaskID: req.ParentTaskID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// ListProjectTasks godoc
// @Summary      List the tasks of a project
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {array}  model.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/tasks [get]
func (h *TaskHandler) ListProjectTasks(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	if _, err := h.store.Project(id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.TasksByProject(id))
}

// GetTask godoc
// @Summary      Get a task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  model.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}
	t, err := h.store.Task(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTask godoc
// @Summary      Update a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Param        body  body      handler.UpdateTaskRequest  true  "Request body"
// @Success      200  {object}  model.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [patch]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	t, err := h.store.UpdateTask(id, store.TaskPatch{
		Title:         req.Title,
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Progress:      req.Progress,
		Priority:      req.Priority,
		Status:        req.Status,
		ProjectID:     req.ProjectID,
		AssigneeID:    req.AssigneeID,
		ClearAssignee: req.ClearAssignee,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTask godoc
// @Summary      Delete a task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}
	if err := h.store.DeleteTask(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeStatus godoc
// @Summary      Change task status
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Param        body  body      handler.ChangeStatusRequest  true  "Request body"
// @Success      200  {object}  model.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/status [post]
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	t, err := h.store.ChangeTaskStatus(id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ChangePriority godoc
// @Summary      Change task priority
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Param        body  body      handler.ChangePriorityRequest  true  "Request body"
// @Success      200  {object}  model.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/priority [post]
func (h *TaskHandler) ChangePriority(c *gin.Context) {
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}
	var req ChangePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	t, err := h.store.ChangeTaskPriority(id, req.Priority)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ChangeAssignee godoc
// @Summary      Assign or unassign a task
// @Tags         Tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Param        body  body      handler.ChangeAssigneeRequest  true  "Request body"
// @Success      200  {object}  model.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/assignee [post]
func (h *TaskHandler) ChangeAssignee(c *gin.Context) {
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}
	var req ChangeAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	t, err := h.store.ChangeTaskAssignee(id, req.AssigneeID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// SelectTask godoc
// @Summary      Select a task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  model.Task
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/select [post]
func (h *TaskHandler) SelectTask(c *gin.Context) {
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}
	t, err := h.store.SelectTask(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// ClearSelection godoc
// @Summary      Clear the selected task
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Router       /selection/task [delete]
func (h *TaskHandler) ClearSelection(c *gin.Context) {
	h.store.ClearTaskSelection()
	c.Status(http.StatusNoContent)
}

// GetHealth compares the task's progress with its elapsed schedule.
//
// @Summary      Task schedule health
// @Tags         Tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Task ID"
// @Success      200  {object}  insight.Health
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id}/health [get]
func (h *TaskHandler) GetHealth(c *gin.Context) {
	id, ok := pathID(c, "id", "task")
	if !ok {
		return
	}
	t, err := h.store.Task(id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, insight.ScheduleHealth(t, h.now()))
}
