package timeline

import (
	"errors"
	"time"

	"github.com/jinzhu/now"

	"taskflow/internal/model"
)

const (
	DefaultBaseDayWidth = 50.0
	// DefaultSpanDays is how far past today the empty-chart window reaches.
	DefaultSpanDays = 30
)

var ErrInvalidBounds = errors.New("timeline end date is before start date")

// Options tunes the date grid.
type Options struct {
	BaseDayWidth float64
	WeekStart    time.Weekday
}

func DefaultOptions() Options {
	return Options{BaseDayWidth: DefaultBaseDayWidth, WeekStart: time.Sunday}
}

// Bounds is an explicit visible range. Both ends are inclusive.
type Bounds struct {
	Start model.Date
	End   model.Date
}

type Day struct {
	Date    model.Date `json:"date"`
	Index   int        `json:"index"`
	Left    float64    `json:"left"`
	Weekend bool       `json:"weekend"`
}

// Grid is the pixel-addressable day grid of a chart.
type Grid struct {
	Start       model.Date `json:"start"`
	End         model.Date `json:"end"`
	Days        []Day      `json:"days"`
	Zoom        float64    `json:"zoom"`
	DayWidth    float64    `json:"day_width"`
	Width       float64    `json:"width"`
	TodayOffset *float64   `json:"today_offset,omitempty"`
}

// Calculator derives the visible range and day width.
type Calculator struct {
	opts Options
}

func NewCalculator(opts Options) *Calculator {
	if opts.BaseDayWidth <= 0 {
		opts.BaseDayWidth = DefaultBaseDayWidth
	}
	return &Calculator{opts: opts}
}

func (c *Calculator) weeks() *now.Config {
	return &now.Config{WeekStartDay: c.opts.WeekStart, TimeLocation: time.UTC}
}

func (c *Calculator) StartOfWeek(d model.Date) model.Date {
	return model.DateOf(c.weeks().With(d.Time).BeginningOfWeek())
}

func (c *Calculator) EndOfWeek(d model.Date) model.Date {
	return model.DateOf(c.weeks().With(d.Time).EndOfWeek())
}

// DayWidth returns the pixel width of one day at the given zoom percentage.
func (c *Calculator) DayWidth(zoom float64) float64 {
	return c.opts.BaseDayWidth * ClampZoom(zoom) / 100
}

// Range picks the visible window: explicit bounds verbatim, otherwise the
// whole weeks covering every task, otherwise a default window from this week.
func (c *Calculator) Range(tasks []model.Task, bounds *Bounds, today model.Date) (model.Date, model.Date, error) {
	if bounds != nil {
		if bounds.End.Before(bounds.Start) {
			return model.Date{}, model.Date{}, ErrInvalidBounds
		}
		return bounds.Start, bounds.End, nil
	}

	if len(tasks) == 0 {
		return c.StartOfWeek(today), c.EndOfWeek(today.AddDays(DefaultSpanDays)), nil
	}

	earliest, latest := tasks[0].StartDate, tasks[0].EndDate
	for _, t := range tasks[1:] {
		if t.StartDate.Before(earliest) {
			earliest = t.StartDate
		}
		if t.EndDate.After(latest) {
			latest = t.EndDate
		}
	}
	return c.StartOfWeek(earliest), c.EndOfWeek(latest), nil
}

// Grid builds the contiguous day sequence for the range at the given zoom.
func (c *Calculator) Grid(tasks []model.Task, bounds *Bounds, zoom float64, today model.Date) (Grid, error) {
	start, end, err := c.Range(tasks, bounds, today)
	if err != nil {
		return Grid{}, err
	}

	zoom = ClampZoom(zoom)
	dayWidth := c.DayWidth(zoom)
	total := start.DaysUntil(end) + 1

	days := make([]Day, total)
	for i := range days {
		d := start.AddDays(i)
		wd := d.Weekday()
		days[i] = Day{
			Date:    d,
			Index:   i,
			Left:    float64(i) * dayWidth,
			Weekend: wd == time.Saturday || wd == time.Sunday,
		}
	}

	g := Grid{
		Start:    start,
		End:      end,
		Days:     days,
		Zoom:     zoom,
		DayWidth: dayWidth,
		Width:    float64(total) * dayWidth,
	}
	if diff := start.DaysUntil(today); diff >= 0 && diff < total {
		offset := float64(diff) * dayWidth
		g.TodayOffset = &offset
	}
	return g, nil
}

// DayIndexAt maps a horizontal pixel offset to a day index. The result may
// fall outside the grid.
func (g Grid) DayIndexAt(offsetX float64) int {
	if g.DayWidth <= 0 {
		return -1
	}
	return floorDiv(offsetX, g.DayWidth)
}

// DayAt maps a horizontal pixel offset to the calendar day under it.
func (g Grid) DayAt(offsetX float64) (model.Date, int, error) {
	idx := g.DayIndexAt(offsetX)
	if idx < 0 || idx >= len(g.Days) {
		return model.Date{}, idx, ErrOutsideGrid
	}
	return g.Days[idx].Date, idx, nil
}

// Offset returns the left pixel offset of a day, negative when it precedes
// the grid start.
func (g Grid) Offset(d model.Date) float64 {
	return float64(g.Start.DaysUntil(d)) * g.DayWidth
}
