package render_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
	"taskflow/internal/render"
	"taskflow/internal/timeline"
)

func sampleLayout(t *testing.T) timeline.Layout {
	t.Helper()
	calc := timeline.NewCalculator(timeline.DefaultOptions())
	g, err := calc.Grid(nil, &timeline.Bounds{
		Start: model.MustParseDate("2024-01-01"),
		End:   model.MustParseDate("2024-01-07"),
	}, 100, model.MustParseDate("2024-01-03"))
	require.NoError(t, err)
	return timeline.Place(g, []model.Task{{
		ID:        uuid.New(),
		Title:     "Design <v2> & review",
		StartDate: model.MustParseDate("2024-01-02"),
		EndDate:   model.MustParseDate("2024-01-03"),
		Progress:  50,
		Priority:  model.PriorityUrgent,
		Status:    model.TaskInProgress,
	}})
}

func TestGanttSVG(t *testing.T) {
	// Arrange
	l := sampleLayout(t)

	// Act
	out := render.GanttSVG(l, "Launch", render.DefaultTheme())

	// Assert
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"`))
	assert.Contains(t, out, `<svg width="350" height="240"`)
	assert.Contains(t, out, "<title>Launch</title>")
	assert.Contains(t, out, `<rect x="50" y="41" width="100" height="38" rx="4" fill="#ef4444"/>`)
	assert.Contains(t, out, `width="50" height="38" rx="4" fill="#ffffff" fill-opacity="0.3"`)
	assert.Contains(t, out, "Design &lt;v2&gt; &amp; review")
	assert.Contains(t, out, `class="today" x1="125"`)
	assert.Equal(t, 2, strings.Count(out, `fill="#f3f4f6"`), "both weekend days are shaded")
}

func TestGanttSVG_NoTodayOutsideRange(t *testing.T) {
	l := sampleLayout(t)
	l.Grid.TodayOffset = nil

	out := render.GanttSVG(l, "x", render.DefaultTheme())

	assert.NotContains(t, out, `class="today"`)
}

func TestLoadTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  background: "#000000"
priorities:
  URGENT: "#ff00ff"
`), 0o644))

	theme, err := render.LoadTheme(path)

	require.NoError(t, err)
	assert.Equal(t, "#000000", theme.Colors.Background)
	assert.Equal(t, "#ff00ff", theme.Priorities[model.PriorityUrgent])
	assert.Equal(t, "#3b82f6", theme.Priorities[model.PriorityLow], "unset keys keep defaults")
	assert.Equal(t, 12, theme.Font.Size)
}

func TestLoadTheme_Errors(t *testing.T) {
	_, err := render.LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	def, err := render.LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, render.DefaultTheme().Colors, def.Colors)
}

func TestLoadTheme_RejectsMarkupInValues(t *testing.T) {
	cases := map[string]string{
		"font":     "font:\n  family: \"x; } </style><script>alert(1)</script>\"\n",
		"color":    "colors:\n  grid: \"red\\\" onload=\\\"alert(1)\"\n",
		"priority": "priorities:\n  HIGH: \"#fff'/><script/>\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "theme.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			_, err := render.LoadTheme(path)

			assert.ErrorContains(t, err, "invalid theme")
		})
	}
}

func TestGanttSVG_EscapesThemeValues(t *testing.T) {
	theme := render.DefaultTheme()
	theme.Font.Family = `Inter"</style><script>`
	theme.Colors.Grid = `red" onload="x`

	out := render.GanttSVG(sampleLayout(t), "Launch", theme)

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, `onload="x"`)
	assert.Contains(t, out, "Inter&quot;&lt;/style&gt;&lt;script&gt;")
	assert.Contains(t, out, `stroke="red&quot; onload=&quot;x"`)
}
