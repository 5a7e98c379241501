package timeline_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
	"taskflow/internal/timeline"
)

func task(title, start, end string) model.Task {
	return model.Task{
		ID:        uuid.New(),
		Title:     title,
		StartDate: model.MustParseDate(start),
		EndDate:   model.MustParseDate(end),
		Priority:  model.PriorityMedium,
		Status:    model.TaskTodo,
	}
}

func TestRange_CoversWholeWeeksOfTasks(t *testing.T) {
	// Arrange
	calc := timeline.NewCalculator(timeline.DefaultOptions())
	tasks := []model.Task{
		task("a", "2024-01-10", "2024-01-12"), // Wednesday
		task("b", "2024-01-03", "2024-01-20"),
	}

	// Act
	start, end, err := calc.Range(tasks, nil, model.MustParseDate("2024-06-01"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", start.String())
	assert.Equal(t, "2024-01-20", end.String())
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, time.Saturday, end.Weekday())
}

func TestRange_EmptyUsesDefaultWindow(t *testing.T) {
	calc := timeline.NewCalculator(timeline.DefaultOptions())
	today := model.MustParseDate("2024-01-10")

	start, end, err := calc.Range(nil, nil, today)

	require.NoError(t, err)
	assert.Equal(t, "2024-01-07", start.String())
	// today+30 is Friday 2024-02-09; the window ends on that week's Saturday.
	assert.Equal(t, "2024-02-10", end.String())
}

func TestRange_ExplicitBounds(t *testing.T) {
	calc := timeline.NewCalculator(timeline.DefaultOptions())
	bounds := &timeline.Bounds{Start: model.MustParseDate("2024-01-01"), End: model.MustParseDate("2024-01-31")}

	start, end, err := calc.Range([]model.Task{task("a", "2023-01-01", "2025-01-01")}, bounds, model.Today())

	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", start.String())
	assert.Equal(t, "2024-01-31", end.String())

	_, _, err = calc.Range(nil, &timeline.Bounds{Start: bounds.End, End: bounds.Start}, model.Today())
	assert.ErrorIs(t, err, timeline.ErrInvalidBounds)
}

func TestRange_MondayWeekStart(t *testing.T) {
	calc := timeline.NewCalculator(timeline.Options{WeekStart: time.Monday})

	start, end, err := calc.Range([]model.Task{task("a", "2024-01-10", "2024-01-10")}, nil, model.Today())

	require.NoError(t, err)
	assert.Equal(t, "2024-01-08", start.String())
	assert.Equal(t, "2024-01-14", end.String())
}

func TestGrid_DaysAreContiguous(t *testing.T) {
	calc := timeline.NewCalculator(timeline.DefaultOptions())
	bounds := &timeline.Bounds{Start: model.MustParseDate("2024-02-25"), End: model.MustParseDate("2024-03-05")}

	g, err := calc.Grid(nil, bounds, 100, model.MustParseDate("2024-02-29"))

	require.NoError(t, err)
	require.Len(t, g.Days, 10)
	for i := 1; i < len(g.Days); i++ {
		assert.Equal(t, g.Days[i-1].Date.AddDays(1), g.Days[i].Date)
		assert.Equal(t, float64(i)*50, g.Days[i].Left)
	}
	assert.True(t, g.Days[0].Weekend)
	assert.False(t, g.Days[1].Weekend)
	assert.Equal(t, 500.0, g.Width)
	require.NotNil(t, g.TodayOffset)
	assert.Equal(t, 200.0, *g.TodayOffset)
}

func TestGrid_TodayOutsideRangeHasNoMarker(t *testing.T) {
	calc := timeline.NewCalculator(timeline.DefaultOptions())
	bounds := &timeline.Bounds{Start: model.MustParseDate("2024-01-01"), End: model.MustParseDate("2024-01-07")}

	g, err := calc.Grid(nil, bounds, 100, model.MustParseDate("2024-01-08"))

	require.NoError(t, err)
	assert.Nil(t, g.TodayOffset)
}

func TestGrid_ZoomScalesDayWidth(t *testing.T) {
	calc := timeline.NewCalculator(timeline.DefaultOptions())
	bounds := &timeline.Bounds{Start: model.MustParseDate("2024-01-01"), End: model.MustParseDate("2024-01-01")}

	cases := map[float64]float64{50: 25, 100: 50, 150: 75, 250: 100, 10: 25}
	for zoom, want := range cases {
		g, err := calc.Grid(nil, bounds, zoom, model.Today())
		require.NoError(t, err)
		assert.Equal(t, want, g.DayWidth, "zoom %v", zoom)
		assert.Equal(t, want, g.Width, "single day grid at zoom %v", zoom)
	}
}

func TestGrid_DayAt(t *testing.T) {
	calc := timeline.NewCalculator(timeline.DefaultOptions())
	bounds := &timeline.Bounds{Start: model.MustParseDate("2024-01-01"), End: model.MustParseDate("2024-01-31")}
	g, err := calc.Grid(nil, bounds, 100, model.Today())
	require.NoError(t, err)

	day, idx, err := g.DayAt(520)
	require.NoError(t, err)
	assert.Equal(t, 10, idx)
	assert.Equal(t, "2024-01-11", day.String())

	_, _, err = g.DayAt(-1)
	assert.ErrorIs(t, err, timeline.ErrOutsideGrid)
	_, _, err = g.DayAt(g.Width)
	assert.ErrorIs(t, err, timeline.ErrOutsideGrid)
}
