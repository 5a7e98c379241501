package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/render"
	"taskflow/internal/store"
	"taskflow/internal/timeline"
)

type TimelineHandler struct {
	store *store.Store
	calc  *timeline.Calculator
	ctrl  *timeline.Controller
	theme render.Theme
	now   func() time.Time
}

func NewTimelineHandler(st *store.Store, calc *timeline.Calculator, ctrl *timeline.Controller, theme render.Theme, now func() time.Time) *TimelineHandler {
	if now == nil {
		now = time.Now
	}
	return &TimelineHandler{store: st, calc: calc, ctrl: ctrl, theme: theme, now: now}
}

// ViewRequest selects the visible window. Start and End must be given
// together; without them the window is derived from the tasks.
type ViewRequest struct {
	Start string  `json:"start" form:"start"`
	End   string  `json:"end" form:"end"`
	Zoom  float64 `json:"zoom" form:"zoom"`
}

type ClickRequest struct {
	ViewRequest
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ZoomRequest applies either whole steps or a wheel event.
type ZoomRequest struct {
	Zoom     float64 `json:"zoom"`
	Steps    int     `json:"steps"`
	DeltaY   float64 `json:"delta_y"`
	Modifier bool    `json:"modifier"`
}

type GestureStartRequest struct {
	TaskID uuid.UUID `json:"task_id" binding:"required"`
	Target string    `json:"target" binding:"required"`
	X      float64   `json:"x"`
	Zoom   float64   `json:"zoom"`
}

type PointerRequest struct {
	X *float64 `json:"x" binding:"required"`
}

func zoomOrDefault(z float64) float64 {
	if z == 0 {
		return timeline.DefaultZoom
	}
	return z
}

func (v ViewRequest) bounds() (*timeline.Bounds, error) {
	if v.Start == "" && v.End == "" {
		return nil, nil
	}
	if v.Start == "" || v.End == "" {
		return nil, errors.New("start and end must be given together")
	}
	start, err := model.ParseDate(v.Start)
	if err != nil {
		return nil, err
	}
	end, err := model.ParseDate(v.End)
	if err != nil {
		return nil, err
	}
	return &timeline.Bounds{Start: start, End: end}, nil
}

// layout lays out a project's tasks, writing the error response itself
// when it returns false.
func (h *TimelineHandler) layout(c *gin.Context, projectID uuid.UUID, view ViewRequest) (model.Project, timeline.Layout, bool) {
	p, err := h.store.Project(projectID)
	if err != nil {
		writeError(c, err)
		return model.Project{}, timeline.Layout{}, false
	}
	bounds, err := view.bounds()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return model.Project{}, timeline.Layout{}, false
	}

	tasks := h.store.TasksByProject(projectID)
	g, err := h.calc.Grid(tasks, bounds, zoomOrDefault(view.Zoom), model.DateOf(h.now()))
	if err != nil {
		writeError(c, err)
		return model.Project{}, timeline.Layout{}, false
	}
	return p, timeline.Place(g, tasks), true
}

// GetTimeline godoc
// @Summary      Lay out a project timeline
// @Tags         Timeline
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Param        start  query     string  false  "First visible day"
// @Param        end    query     string  false  "Last visible day"
// @Param        zoom   query     number  false  "Zoom percent"
// @Success      200  {object}  timeline.Layout
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/timeline [get]
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	var view ViewRequest
	if err := c.ShouldBindQuery(&view); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}
	_, l, ok := h.layout(c, id, view)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, l)
}

// Click resolves a click without displacement into either a detail view
// request or a creation draft.
//
// @Summary      Resolve a click on the chart
// @Tags         Timeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Param        body  body      handler.ClickRequest  true  "Request body"
// @Success      200  {object}  timeline.Outcome
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/timeline/click [post]
func (h *TimelineHandler) Click(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	_, l, ok := h.layout(c, id, req.ViewRequest)
	if !ok {
		return
	}
	out, err := h.ctrl.Click(l, id, req.X, req.Y)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Zoom godoc
// @Summary      Apply a zoom step or wheel event
// @Tags         Timeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handler.ZoomRequest  true  "Request body"
// @Success      200  {object}  map[string]number
// @Failure      400  {object}  map[string]string
// @Router       /timeline/zoom [post]
func (h *TimelineHandler) Zoom(c *gin.Context) {
	var req ZoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	current := zoomOrDefault(req.Zoom)
	zoom := timeline.WheelZoom(current, req.DeltaY, req.Modifier)
	if req.Steps != 0 {
		zoom = timeline.StepZoom(current, req.Steps)
	}
	c.JSON(http.StatusOK, gin.H{"zoom": zoom, "day_width": h.calc.DayWidth(zoom)})
}

// StartGesture godoc
// @Summary      Capture the pointer on a task bar
// @Tags         Timeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handler.GestureStartRequest  true  "Request body"
// @Success      200  {object}  timeline.Gesture
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /timeline/gesture/start [post]
func (h *TimelineHandler) StartGesture(c *gin.Context) {
	var req GestureStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	target, ok := timeline.ParseTarget(req.Target)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target"})
		return
	}

	g, err := h.ctrl.Begin(req.TaskID, target, req.X, h.calc.DayWidth(zoomOrDefault(req.Zoom)))
	if errors.Is(err, timeline.ErrGestureActive) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "gesture": g})
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// MoveGesture godoc
// @Summary      Move the captured pointer
// @Tags         Timeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handler.PointerRequest  true  "Request body"
// @Success      200  {object}  timeline.Frame
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /timeline/gesture/move [post]
func (h *TimelineHandler) MoveGesture(c *gin.Context) {
	var req PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	frame, err := h.ctrl.Move(*req.X)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}

// EndGesture godoc
// @Summary      Release the pointer
// @Tags         Timeline
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      handler.PointerRequest  true  "Request body"
// @Success      200  {object}  timeline.Outcome
// @Failure      400  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /timeline/gesture/end [post]
func (h *TimelineHandler) EndGesture(c *gin.Context) {
	var req PointerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	out, err := h.ctrl.End(*req.X)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// CancelGesture godoc
// @Summary      Cancel the gesture
// @Tags         Timeline
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  timeline.Gesture
// @Failure      409  {object}  map[string]string
// @Router       /timeline/gesture/cancel [post]
func (h *TimelineHandler) CancelGesture(c *gin.Context) {
	g, err := h.ctrl.Cancel()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// GetGesture godoc
// @Summary      Current gesture state
// @Tags         Timeline
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  timeline.Gesture
// @Router       /timeline/gesture [get]
func (h *TimelineHandler) GetGesture(c *gin.Context) {
	c.JSON(http.StatusOK, h.ctrl.State())
}

// GanttSVG exports the laid-out chart as a standalone SVG document.
//
// @Summary      Export the chart as SVG
// @Tags         Timeline
// @Produce      image/svg+xml
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Param        start  query     string  false  "First visible day"
// @Param        end    query     string  false  "Last visible day"
// @Param        zoom   query     number  false  "Zoom percent"
// @Success      200  {string}  string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id}/gantt.svg [get]
func (h *TimelineHandler) GanttSVG(c *gin.Context) {
	id, ok := pathID(c, "id", "project")
	if !ok {
		return
	}
	var view ViewRequest
	if err := c.ShouldBindQuery(&view); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return
	}
	p, l, ok := h.layout(c, id, view)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(render.GanttSVG(l, p.Name, h.theme)))
}
