package insight

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

// UpcomingDeadlines returns unfinished tasks due between today and a week
// from today, inclusive, soonest first.
func UpcomingDeadlines(tasks []model.Task, today model.Date) []model.Task {
	until := today.AddDays(UpcomingWindowDays)
	var out []model.Task
	for _, t := range tasks {
		if t.Status == model.TaskCompleted {
			continue
		}
		if t.EndDate.Before(today) || t.EndDate.After(until) {
			continue
		}
		out = append(out, t)
	}
	slices.SortStableFunc(out, func(a, b model.Task) int {
		return a.EndDate.Compare(b.EndDate.Time)
	})
	if len(out) > UpcomingLimit {
		out = out[:UpcomingLimit]
	}
	return out
}

type ActivityKind string

const (
	ActivityProject ActivityKind = "project"
	ActivityTask    ActivityKind = "task"
)

const (
	ActionProjectCreated = "project created"
	ActionCompleted      = "completed"
	ActionInProgress     = "in progress"
	ActionCreated        = "created"
)

type Activity struct {
	ID        string       `json:"id"`
	Kind      ActivityKind `json:"kind"`
	EntityID  uuid.UUID    `json:"entity_id"`
	Action    string       `json:"action"`
	Subject   string       `json:"subject"`
	User      string       `json:"user"`
	Timestamp time.Time    `json:"timestamp"`
}

func taskAction(s model.TaskStatus) string {
	switch s {
	case model.TaskCompleted:
		return ActionCompleted
	case model.TaskInProgress:
		return ActionInProgress
	}
	return ActionCreated
}

func newestFirst[T any](items []T, created func(T) time.Time, limit int) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return created(b).Compare(created(a))
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// ActivityFeed synthesizes recent activity from the newest projects and
// tasks by creation time. Task entries are stamped with their last update.
func ActivityFeed(projects []model.Project, tasks []model.Task, actor string) []Activity {
	if actor == "" {
		actor = DefaultActor
	}
	var feed []Activity
	for _, p := range newestFirst(projects, func(p model.Project) time.Time { return p.CreatedAt }, RecentProjectLimit) {
		feed = append(feed, Activity{
			ID:        "project-" + p.ID.String(),
			Kind:      ActivityProject,
			EntityID:  p.ID,
			Action:    ActionProjectCreated,
			Subject:   p.Name,
			User:      actor,
			Timestamp: p.CreatedAt,
		})
	}
	for _, t := range newestFirst(tasks, func(t model.Task) time.Time { return t.CreatedAt }, RecentTaskLimit) {
		feed = append(feed, Activity{
			ID:        "task-" + t.ID.String(),
			Kind:      ActivityTask,
			EntityID:  t.ID,
			Action:    taskAction(t.Status),
			Subject:   t.Title,
			User:      actor,
			Timestamp: t.UpdatedAt,
		})
	}
	slices.SortStableFunc(feed, func(a, b Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	return feed
}

type ProjectStats struct {
	Total      int `json:"total"`
	Planning   int `json:"planning"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	OnHold     int `json:"on_hold"`
}

type TaskStats struct {
	Total      int `json:"total"`
	Todo       int `json:"todo"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

func CountProjects(projects []model.Project) ProjectStats {
	s := ProjectStats{Total: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case model.ProjectPlanning:
			s.Planning++
		case model.ProjectInProgress:
			s.InProgress++
		case model.ProjectCompleted:
			s.Completed++
		case model.ProjectOnHold:
			s.OnHold++
		}
	}
	return s
}

func CountTasks(tasks []model.Task) TaskStats {
	s := TaskStats{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case model.TaskTodo:
			s.Todo++
		case model.TaskInProgress:
			s.InProgress++
		case model.TaskCompleted:
			s.Completed++
		}
	}
	return s
}

type Dashboard struct {
	Projects ProjectStats      `json:"projects"`
	Tasks    TaskStats         `json:"tasks"`
	Progress []ProjectProgress `json:"progress"`
	Upcoming []model.Task      `json:"upcoming_deadlines"`
	Activity []Activity        `json:"activity"`
	At       time.Time         `json:"generated_at"`
}

// Dashboard builds every dashboard view from one consistent read of the
// collections.
func (a *Aggregator) Dashboard(projects []model.Project, tasks []model.Task, actor string, now time.Time) Dashboard {
	return Dashboard{
		Projects: CountProjects(projects),
		Tasks:    CountTasks(tasks),
		Progress: a.AllProgress(projects, tasks),
		Upcoming: orEmpty(UpcomingDeadlines(tasks, model.DateOf(now))),
		Activity: orEmpty(ActivityFeed(projects, tasks, actor)),
		At:       now,
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
