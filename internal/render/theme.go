package render

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"taskflow/internal/model"
)

var (
	colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|rgba?\([0-9., %]+\))$`)
	fontPattern  = regexp.MustCompile(`^[\w\s,'"-]+$`)
)

// Theme controls the colors and fonts of an exported chart. Unset fields in
// a theme file keep their defaults.
type Theme struct {
	Font struct {
		Family string `yaml:"family"`
		Size   int    `yaml:"size"`
	} `yaml:"font"`
	Colors struct {
		Background string `yaml:"background"`
		Grid       string `yaml:"grid"`
		Text       string `yaml:"text"`
		Weekend    string `yaml:"weekend"`
		Today      string `yaml:"today"`
		Progress   string `yaml:"progress"`
	} `yaml:"colors"`
	// Priorities maps a task priority to its bar fill.
	Priorities map[model.TaskPriority]string `yaml:"priorities"`
	// StatusOpacity maps a task status to its bar opacity.
	StatusOpacity map[model.TaskStatus]float64 `yaml:"status_opacity"`
	HeaderHeight  int                          `yaml:"header_height"`
}

func DefaultTheme() Theme {
	var t Theme
	t.Font.Family = "Arial, sans-serif"
	t.Font.Size = 12
	t.Colors.Background = "#ffffff"
	t.Colors.Grid = "#e5e7eb"
	t.Colors.Text = "#111827"
	t.Colors.Weekend = "#f3f4f6"
	t.Colors.Today = "#ef4444"
	t.Colors.Progress = "#ffffff"
	t.Priorities = map[model.TaskPriority]string{
		model.PriorityLow:    "#3b82f6",
		model.PriorityMedium: "#22c55e",
		model.PriorityHigh:   "#f59e0b",
		model.PriorityUrgent: "#ef4444",
	}
	t.StatusOpacity = map[model.TaskStatus]float64{
		model.TaskTodo:       0.7,
		model.TaskInProgress: 1,
		model.TaskCompleted:  0.9,
	}
	t.HeaderHeight = 40
	return t
}

// LoadTheme reads a yaml theme over the defaults. An empty path returns the
// default theme.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Theme{}, fmt.Errorf("parse theme: %w", err)
	}
	if err := t.validate(); err != nil {
		return Theme{}, fmt.Errorf("invalid theme: %w", err)
	}
	return t, nil
}

func (t Theme) validate() error {
	if !fontPattern.MatchString(t.Font.Family) {
		return fmt.Errorf("font family %q", t.Font.Family)
	}
	if t.Font.Size <= 2 {
		return fmt.Errorf("font size %d", t.Font.Size)
	}
	colors := map[string]string{
		"background": t.Colors.Background,
		"grid":       t.Colors.Grid,
		"text":       t.Colors.Text,
		"weekend":    t.Colors.Weekend,
		"today":      t.Colors.Today,
		"progress":   t.Colors.Progress,
	}
	for p, c := range t.Priorities {
		colors["priority "+string(p)] = c
	}
	for name, c := range colors {
		if !colorPattern.MatchString(c) {
			return fmt.Errorf("%s color %q", name, c)
		}
	}
	return nil
}

func (t Theme) barColor(p model.TaskPriority) string {
	if c, ok := t.Priorities[p]; ok {
		return c
	}
	return "#6b7280"
}

func (t Theme) barOpacity(s model.TaskStatus) float64 {
	if o, ok := t.StatusOpacity[s]; ok {
		return o
	}
	return 1
}
