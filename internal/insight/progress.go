// Package insight derives read-only views from the projects and tasks
// collections: project progress, upcoming deadlines, the activity feed,
// dashboard statistics and per-task schedule health. Callers pass the
// collections in; nothing here holds state between calls.
package insight

import (
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

const (
	UpcomingWindowDays = 7
	UpcomingLimit      = 5
	RecentProjectLimit = 2
	RecentTaskLimit    = 3
	// DefaultActor names the user in the activity feed when no session name
	// is known.
	DefaultActor = "User"
)

type Aggregator struct {
	log *slog.Logger
}

func NewAggregator(log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Aggregator{log: log}
}

// percent returns part/total as a rounded integer percentage, 0 when total
// is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Progress computes the completion percentage of a project from the live
// task collection.
func Progress(projectID uuid.UUID, tasks []model.Task) int {
	var total, done int
	for _, t := range tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == model.TaskCompleted {
			done++
		}
	}
	return percent(done, total)
}

// CachedProgress uses the project's denormalized counters. Only meant for
// when the task collection is not available.
func CachedProgress(p model.Project) int {
	return percent(p.CompletedTaskCount, p.TaskCount)
}

// ProjectProgress returns the live progress and logs a warning when the
// project's counters disagree with the tasks. A nil tasks slice means the
// collection is not available and the counters are used instead.
func (a *Aggregator) ProjectProgress(p model.Project, tasks []model.Task) int {
	if tasks == nil {
		return CachedProgress(p)
	}
	var total, done int
	for _, t := range tasks {
		if t.ProjectID != p.ID {
			continue
		}
		total++
		if t.Status == model.TaskCompleted {
			done++
		}
	}
	if total != p.TaskCount || done != p.CompletedTaskCount {
		a.log.Warn("project task counters out of date",
			"project_id", p.ID,
			"task_count", p.TaskCount,
			"completed_task_count", p.CompletedTaskCount,
			"live_task_count", total,
			"live_completed_count", done,
		)
	}
	return percent(done, total)
}

type ProjectProgress struct {
	ProjectID      uuid.UUID           `json:"project_id"`
	Name           string              `json:"name"`
	Status         model.ProjectStatus `json:"status"`
	Progress       int                 `json:"progress"`
	TaskCount      int                 `json:"task_count"`
	CompletedCount int                 `json:"completed_count"`
}

// AllProgress reports progress for every project in the given order. Like
// ProjectProgress it falls back to the counters when tasks is nil.
func (a *Aggregator) AllProgress(projects []model.Project, tasks []model.Task) []ProjectProgress {
	if tasks == nil {
		out := make([]ProjectProgress, len(projects))
		for i, p := range projects {
			out[i] = ProjectProgress{
				ProjectID:      p.ID,
				Name:           p.Name,
				Status:         p.Status,
				Progress:       CachedProgress(p),
				TaskCount:      p.TaskCount,
				CompletedCount: p.CompletedTaskCount,
			}
		}
		return out
	}

	byProject := make(map[uuid.UUID][2]int, len(projects))
	for _, t := range tasks {
		c := byProject[t.ProjectID]
		c[0]++
		if t.Status == model.TaskCompleted {
			c[1]++
		}
		byProject[t.ProjectID] = c
	}

	out := make([]ProjectProgress, len(projects))
	for i, p := range projects {
		c := byProject[p.ID]
		if c[0] != p.TaskCount || c[1] != p.CompletedTaskCount {
			a.log.Warn("project task counters out of date",
				"project_id", p.ID, "task_count", p.TaskCount, "live_task_count", c[0])
		}
		out[i] = ProjectProgress{
			ProjectID:      p.ID,
			Name:           p.Name,
			Status:         p.Status,
			Progress:       percent(c[1], c[0]),
			TaskCount:      c[0],
			CompletedCount: c[1],
		}
	}
	return out
}

// Health compares a task's reported progress with the share of its
// schedule that has elapsed.
type Health struct {
	TaskID   uuid.UUID `json:"task_id"`
	Expected int       `json:"expected_progress"`
	Actual   int       `json:"actual_progress"`
	Ahead    bool      `json:"ahead"`
	Behind   bool      `json:"behind"`
	Diff     int       `json:"diff"`
}

// ScheduleHealth treats the end date as inclusive, so a task's schedule
// runs until midnight after its end date and is never zero-length.
func ScheduleHealth(t model.Task, now time.Time) Health {
	start := t.StartDate.Time
	end := t.EndDate.AddDays(1).Time
	ratio := float64(now.Sub(start)) / float64(end.Sub(start))
	expected := int(math.Min(100, math.Max(0, math.Round(ratio*100))))
	return Health{
		TaskID:   t.ID,
		Expected: expected,
		Actual:   t.Progress,
		Ahead:    t.Progress > expected,
		Behind:   t.Progress < expected,
		Diff:     t.Progress - expected,
	}
}
