package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/insight"
	"taskflow/internal/model"
	"taskflow/internal/store"
)

// UserDirectory resolves user ids to accounts.
type UserDirectory interface {
	CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type ProjectHandler struct {
	store    *store.Store
	users    UserDirectory
	progress *insight.Aggregator
}

func NewProjectHandler(st *store.Store, users UserDirectory, progress *insight.Aggregator) *ProjectHandler {
	return &ProjectHandler{store: st, users: users, progress: progress}
}

type CreateProjectRequest struct {
	Name        string              `json:"name"`
	Description *string             `json:"description"`
	StartDate   model.Date          `json:"start_date"`
	EndDate     model.Date          `json:"end_date"`
	Status      model.ProjectStatus `json:"status"`
}

type UpdateProjectRequest struct {
	Name        *string              `json:"name"`
	Description *string              `json:"description"`
	StartDate   *model.Date          `json:"start_date"`
	EndDate     *model.Date          `json:"end_date"`
	Status      *model.ProjectStatus `json:"status"`
}

type AddMemberRequest struct {
	UserID uuid.UUID      `json:"user_id" binding:"required"`
	Role   model.UserRole `json:"role"`
}

type ProjectResponse struct {
	model.Project
	Progress int `json:"progress"`
}

func (h *ProjectHandler) respond(c *gin.Context, status int, p model.Project) {
	c.JSON(status, ProjectResponse{
		Project:  p,
		Progress: h.progress.ProjectProgress(p, h.store.TasksByProject(p.ID)),
	})
}

// CreateProject godoc
// @Summary      Create a project
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handler.CreateProjectRequest  true  "Request body"
// @Success      201  {object}  handler.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Router       /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	p, err := h.store.CreateProject(store.ProjectInput{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
		OwnerID:     &userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, p)
}

// ListProjects godoc
// @Summary      List projects with progress
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  handler.ProjectResponse
// @Router       /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects := h.store.Projects()
	tasks := h.store.Tasks()
	progress := h.progress.AllProgress(projects, tasks)

	resp := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		resp[i] = ProjectResponse{Project: p, Progress: progress[i].Progress}
	}
	c.JSON(http.StatusOK, resp)
}

// GetProject godoc
// @Summary      Get a project
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  handler.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	p, err := h.store.Project(id)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, p)
}

// UpdateProject godoc
// @Summary      Update a project
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Param        body  body      handler.UpdateProjectRequest  true  "Request body"
// @Success      200  {object}  handler.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [patch]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	p, err := h.store.UpdateProject(id, store.ProjectPatch{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, p)
}

// DeleteProject godoc
// @Summary      Delete a project and its tasks
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	if err := h.store.DeleteProject(id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectProject godoc
// @Summary      Select a project
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  handler.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/select [post]
func (h *ProjectHandler) SelectProject(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	p, err := h.store.SelectProject(id)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, p)
}

// ClearSelection godoc
// @Summary      Clear the selected project
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Success      204
// @Router       /selection/project [delete]
func (h *ProjectHandler) ClearSelection(c *gin.Context) {
	h.store.ClearProjectSelection()
	c.Status(http.StatusNoContent)
}

// AddMember godoc
// @Summary      Add or update a project member
// @Tags         Projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Param        body  body      handler.AddMemberRequest  true  "Request body"
// @Success      200  {object}  handler.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/members [post]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	user, err := h.users.CurrentUser(c.Request.Context(), req.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	p, err := h.store.AddMember(id, *user, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, p)
}

// RemoveMember godoc
// @Summary      Remove a project member
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Param        user_id  path  string  true  "User ID"
// @Success      200  {object}  handler.ProjectResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/members/{user_id} [delete]
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	userID, ok := pathID(c, "user_id", "user")
	if !ok {
		return
	}
	p, err := h.store.RemoveMember(id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.respond(c, http.StatusOK, p)
}

// GetProgress godoc
// @Summary      Project progress
// @Tags         Projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  insight.ProjectProgress
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/progress [get]
func (h *ProjectHandler) GetProgress(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	p, err := h.store.Project(id)
	if err != nil {
		writeError(c, err)
		return
	}
	tasks := h.store.TasksByProject(id)
	all := h.progress.AllProgress([]model.Project{p}, tasks)
	c.JSON(http.StatusOK, all[0])
}
