package timeline

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
	"taskflow/internal/notify"
)

var (
	ErrGestureActive = errors.New("another gesture is in progress")
	ErrNoGesture     = errors.New("no gesture in progress")
	ErrNoTarget      = errors.New("pointer is not on a task bar")
	ErrOutsideGrid   = errors.New("point is outside the timeline grid")
)

// DefaultDraftSpan is the number of days added to the clicked day to get
// the end of a new task, giving a three-day task.
const DefaultDraftSpan = 2

type GestureKind int

const (
	Idle GestureKind = iota
	Dragging
	Resizing
)

func (k GestureKind) String() string {
	switch k {
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	}
	return "idle"
}

func (k GestureKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

type Side int

const (
	NoSide Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return ""
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Interval struct {
	Start model.Date `json:"start_date"`
	End   model.Date `json:"end_date"`
}

func (iv Interval) Shift(days int) Interval {
	return Interval{Start: iv.Start.AddDays(days), End: iv.End.AddDays(days)}
}

// Gesture is the state of the pointer capture. The zero value is Idle.
type Gesture struct {
	Kind     GestureKind `json:"kind"`
	Side     Side        `json:"side,omitempty"`
	TaskID   uuid.UUID   `json:"task_id"`
	OriginX  float64     `json:"origin_x"`
	Origin   Interval    `json:"origin"`
	DayWidth float64     `json:"day_width"`
	Delta    int         `json:"delta"`
}

func (g Gesture) Active() bool { return g.Kind != Idle }

// TaskMutator is the slice of the store the controller reads and writes.
type TaskMutator interface {
	Task(id uuid.UUID) (model.Task, error)
	MoveTask(id uuid.UUID, start, end model.Date) (model.Task, error)
}

type Notifier interface {
	Enqueue(message string, severity notify.Severity, duration time.Duration) notify.Toast
}

// Frame is the result of one pointer move.
type Frame struct {
	Gesture  Gesture  `json:"gesture"`
	Delta    int      `json:"delta"`
	Preview  Interval `json:"preview"`
	Applied  bool     `json:"applied"`
	Rejected bool     `json:"rejected"`
}

type Action string

const (
	ActionMoved      Action = "moved"
	ActionResized    Action = "resized"
	ActionOpenDetail Action = "open_detail"
	ActionCreate     Action = "create"
)

// Outcome is what a finished gesture or click asks the caller to do.
type Outcome struct {
	Action  Action      `json:"action"`
	TaskID  uuid.UUID   `json:"task_id,omitempty"`
	Delta   int         `json:"delta"`
	Task    *model.Task `json:"task,omitempty"`
	Draft   *Draft      `json:"draft,omitempty"`
	Message string      `json:"message,omitempty"`
}

// Draft pre-fills the task creation form. Nothing is stored until the form
// is submitted.
type Draft struct {
	ProjectID uuid.UUID  `json:"project_id"`
	DayIndex  int        `json:"day_index"`
	StartDate model.Date `json:"start_date"`
	EndDate   model.Date `json:"end_date"`
}

// NewDraft returns the creation draft for a click at offsetX on an empty
// part of the grid.
func NewDraft(g Grid, projectID uuid.UUID, offsetX float64) (Draft, error) {
	day, idx, err := g.DayAt(offsetX)
	if err != nil {
		return Draft{}, err
	}
	return Draft{
		ProjectID: projectID,
		DayIndex:  idx,
		StartDate: day,
		EndDate:   day.AddDays(DefaultDraftSpan),
	}, nil
}

// Controller turns pointer gestures on task bars into store mutations.
// Pointer capture is exclusive: at most one gesture exists at a time.
type Controller struct {
	mu       sync.Mutex
	tasks    TaskMutator
	toasts   Notifier
	toastDur time.Duration
	gesture  Gesture
}

func NewController(tasks TaskMutator, toasts Notifier, toastDuration time.Duration) *Controller {
	return &Controller{tasks: tasks, toasts: toasts, toastDur: toastDuration}
}

func (c *Controller) State() Gesture {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gesture
}

// Click handles a pointer click without displacement. A click on a bar opens
// its detail view; a click on empty grid produces a creation draft.
func (c *Controller) Click(l Layout, projectID uuid.UUID, x, y float64) (Outcome, error) {
	if bar, target := l.HitTest(x, y); target != TargetNone {
		return Outcome{Action: ActionOpenDetail, TaskID: bar.TaskID}, nil
	}
	draft, err := NewDraft(l.Grid, projectID, x)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Action: ActionCreate, Draft: &draft}, nil
}

// Begin captures the pointer for a task. The body starts a drag, an edge
// handle starts a resize. While another gesture is active the request is
// ignored and ErrGestureActive is returned with the current gesture.
func (c *Controller) Begin(taskID uuid.UUID, target Target, x, dayWidth float64) (Gesture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gesture.Active() {
		return c.gesture, ErrGestureActive
	}

	var g Gesture
	switch target {
	case TargetBody:
		g.Kind = Dragging
	case TargetLeftEdge:
		g.Kind, g.Side = Resizing, Left
	case TargetRightEdge:
		g.Kind, g.Side = Resizing, Right
	default:
		return Gesture{}, ErrNoTarget
	}

	task, err := c.tasks.Task(taskID)
	if err != nil {
		return Gesture{}, err
	}
	g.TaskID = taskID
	g.OriginX = x
	g.Origin = Interval{Start: task.StartDate, End: task.EndDate}
	g.DayWidth = dayWidth

	c.gesture = g
	return g, nil
}

// Move handles an intermediate pointer position. Drags only preview; resizes
// are applied live, and a frame that would invert the interval is dropped
// while the gesture continues.
func (c *Controller) Move(x float64) (Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.gesture.Active() {
		return Frame{}, ErrNoGesture
	}
	c.gesture.Delta = DayDelta(x-c.gesture.OriginX, c.gesture.DayWidth)

	if c.gesture.Kind == Dragging {
		return Frame{
			Gesture: c.gesture,
			Delta:   c.gesture.Delta,
			Preview: c.gesture.Origin.Shift(c.gesture.Delta),
		}, nil
	}

	frame, err := c.resizeLocked()
	if err != nil {
		c.gesture = Gesture{}
		return Frame{}, err
	}
	return frame, nil
}

func (c *Controller) resizeLocked() (Frame, error) {
	g := c.gesture
	current, err := c.tasks.Task(g.TaskID)
	if err != nil {
		return Frame{}, err
	}

	frame := Frame{Gesture: g, Delta: g.Delta}
	proposed := Interval{Start: current.StartDate, End: current.EndDate}
	if g.Side == Left {
		proposed.Start = g.Origin.Start.AddDays(g.Delta)
		frame.Rejected = !proposed.Start.Before(current.EndDate)
	} else {
		proposed.End = g.Origin.End.AddDays(g.Delta)
		frame.Rejected = !proposed.End.After(current.StartDate)
	}

	if frame.Rejected {
		frame.Preview = Interval{Start: current.StartDate, End: current.EndDate}
		return frame, nil
	}
	frame.Preview = proposed
	if proposed.Start.Equal(current.StartDate) && proposed.End.Equal(current.EndDate) {
		return frame, nil
	}
	if _, err := c.tasks.MoveTask(g.TaskID, proposed.Start, proposed.End); err != nil {
		return Frame{}, err
	}
	frame.Applied = true
	return frame, nil
}

// End releases the pointer. The controller is Idle afterwards whatever the
// result.
func (c *Controller) End(x float64) (Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.gesture
	if !g.Active() {
		return Outcome{}, ErrNoGesture
	}
	defer func() { c.gesture = Gesture{} }()

	c.gesture.Delta = DayDelta(x-g.OriginX, g.DayWidth)
	g = c.gesture

	if g.Kind == Dragging {
		return c.finishDragLocked(g)
	}
	return c.finishResizeLocked(g)
}

func (c *Controller) finishDragLocked(g Gesture) (Outcome, error) {
	if g.Delta == 0 {
		return Outcome{Action: ActionOpenDetail, TaskID: g.TaskID}, nil
	}
	next := g.Origin.Shift(g.Delta)
	task, err := c.tasks.MoveTask(g.TaskID, next.Start, next.End)
	if err != nil {
		c.notify("Failed to move task", notify.Error)
		return Outcome{}, err
	}
	msg := fmt.Sprintf("Task moved: %s", formatDays(g.Delta))
	c.notify(msg, notify.Info)
	return Outcome{Action: ActionMoved, TaskID: g.TaskID, Delta: g.Delta, Task: &task, Message: msg}, nil
}

func (c *Controller) finishResizeLocked(g Gesture) (Outcome, error) {
	if g.Delta == 0 {
		if task, err := c.tasks.Task(g.TaskID); err == nil &&
			task.StartDate.Equal(g.Origin.Start) && task.EndDate.Equal(g.Origin.End) {
			return Outcome{Action: ActionOpenDetail, TaskID: g.TaskID}, nil
		}
	}
	if _, err := c.resizeLocked(); err != nil {
		c.notify("Failed to resize task", notify.Error)
		return Outcome{}, err
	}
	task, err := c.tasks.Task(g.TaskID)
	if err != nil {
		return Outcome{}, err
	}

	var applied int
	var msg string
	if g.Side == Left {
		applied = g.Origin.Start.DaysUntil(task.StartDate)
		msg = fmt.Sprintf("Start date adjusted: %s", formatDays(applied))
	} else {
		applied = g.Origin.End.DaysUntil(task.EndDate)
		msg = fmt.Sprintf("End date adjusted: %s", formatDays(applied))
	}
	c.notify(msg, notify.Info)
	return Outcome{Action: ActionResized, TaskID: g.TaskID, Delta: applied, Task: &task, Message: msg}, nil
}

// Cancel abandons the gesture and restores the interval the task had when
// it was captured.
func (c *Controller) Cancel() (Gesture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	g := c.gesture
	if !g.Active() {
		return Gesture{}, ErrNoGesture
	}
	c.gesture = Gesture{}
	if g.Kind == Resizing {
		if _, err := c.tasks.MoveTask(g.TaskID, g.Origin.Start, g.Origin.End); err != nil {
			return g, err
		}
	}
	return g, nil
}

// Release drops the capture if it belongs to the given task, e.g. when the
// task is deleted mid-gesture.
func (c *Controller) Release(taskID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gesture.Active() && c.gesture.TaskID == taskID {
		c.gesture = Gesture{}
		return true
	}
	return false
}

func (c *Controller) notify(msg string, sev notify.Severity) {
	if c.toasts != nil {
		c.toasts.Enqueue(msg, sev, c.toastDur)
	}
}

func formatDays(n int) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%+d day", n)
	}
	return fmt.Sprintf("%+d days", n)
}
