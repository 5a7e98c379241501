package timeline

import (
	"math"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

const (
	RowHeight = 40.0
	BarInset  = 1.0
	BarHeight = 38.0
	// HandleWidth is the hit width of the resize handle at each bar end.
	HandleWidth = 12.0
	// MinChartHeight keeps an empty chart clickable.
	MinChartHeight = 200.0
	chartPadding   = 20.0
)

// Bar is the laid-out rectangle of one task. Left is negative when the task
// starts before the visible window; bars are never clipped to the grid.
type Bar struct {
	TaskID    uuid.UUID          `json:"task_id"`
	Title     string             `json:"title"`
	Row       int                `json:"row"`
	Left      float64            `json:"left"`
	Width     float64            `json:"width"`
	Top       float64            `json:"top"`
	Height    float64            `json:"height"`
	StartDate model.Date         `json:"start_date"`
	EndDate   model.Date         `json:"end_date"`
	Progress  int                `json:"progress"`
	Priority  model.TaskPriority `json:"priority"`
	Status    model.TaskStatus   `json:"status"`
	OffCanvas bool               `json:"off_canvas"`
}

func (b Bar) Right() float64 { return b.Left + b.Width }

type Layout struct {
	Grid   Grid    `json:"grid"`
	Bars   []Bar   `json:"bars"`
	Height float64 `json:"height"`
}

// Place lays out tasks one row each, in the order given.
func Place(g Grid, tasks []model.Task) Layout {
	bars := make([]Bar, len(tasks))
	for i, t := range tasks {
		left := g.Offset(t.StartDate)
		width := float64(t.Duration()+1) * g.DayWidth
		bars[i] = Bar{
			TaskID:    t.ID,
			Title:     t.Title,
			Row:       i,
			Left:      left,
			Width:     width,
			Top:       float64(i)*RowHeight + BarInset,
			Height:    BarHeight,
			StartDate: t.StartDate,
			EndDate:   t.EndDate,
			Progress:  t.Progress,
			Priority:  t.Priority,
			Status:    t.Status,
			OffCanvas: left < 0 || left+width > g.Width,
		}
	}
	return Layout{
		Grid:   g,
		Bars:   bars,
		Height: math.Max(float64(len(tasks))*RowHeight+chartPadding, MinChartHeight),
	}
}

func (l Layout) Bar(taskID uuid.UUID) (Bar, bool) {
	for _, b := range l.Bars {
		if b.TaskID == taskID {
			return b, true
		}
	}
	return Bar{}, false
}

// Target is the part of a bar under the pointer.
type Target int

const (
	TargetNone Target = iota
	TargetBody
	TargetLeftEdge
	TargetRightEdge
)

func (t Target) String() string {
	switch t {
	case TargetBody:
		return "body"
	case TargetLeftEdge:
		return "left"
	case TargetRightEdge:
		return "right"
	}
	return "none"
}

func ParseTarget(s string) (Target, bool) {
	switch s {
	case "body", "bar":
		return TargetBody, true
	case "left", "left_edge":
		return TargetLeftEdge, true
	case "right", "right_edge":
		return TargetRightEdge, true
	}
	return TargetNone, false
}

// HitTest reports which part of the bar contains the point. The left handle
// wins on bars narrower than two handles.
func (b Bar) HitTest(x, y float64) Target {
	if y < b.Top || y > b.Top+b.Height || x < b.Left || x > b.Right() {
		return TargetNone
	}
	switch {
	case x-b.Left < HandleWidth:
		return TargetLeftEdge
	case b.Right()-x < HandleWidth:
		return TargetRightEdge
	}
	return TargetBody
}

// HitTest finds the bar under a point in chart coordinates.
func (l Layout) HitTest(x, y float64) (Bar, Target) {
	row := floorDiv(y, RowHeight)
	if row < 0 || row >= len(l.Bars) {
		return Bar{}, TargetNone
	}
	b := l.Bars[row]
	if t := b.HitTest(x, y); t != TargetNone {
		return b, t
	}
	return Bar{}, TargetNone
}
