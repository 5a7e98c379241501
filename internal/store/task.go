package store

import (
	"strings"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

type TaskInput struct {
	Title        string
	Description  *string
	StartDate    model.Date
	EndDate      model.Date
	Progress     int
	Priority     model.TaskPriority
	Status       model.TaskStatus
	ProjectID    uuid.UUID
	AssigneeID   *uuid.UUID
	ParentTaskID *uuid.UUID
}

// TaskPatch is a partial update; nil fields are left unchanged. A non-nil
// ClearAssignee removes the assignee.
type TaskPatch struct {
	Title         *string
	Description   *string
	StartDate     *model.Date
	EndDate       *model.Date
	Progress      *int
	Priority      *model.TaskPriority
	Status        *model.TaskStatus
	ProjectID     *uuid.UUID
	AssigneeID    *uuid.UUID
	ClearAssignee bool
}

func (p TaskPatch) empty() bool {
	return p.Title == nil && p.Description == nil && p.StartDate == nil && p.EndDate == nil &&
		p.Progress == nil && p.Priority == nil && p.Status == nil && p.ProjectID == nil &&
		p.AssigneeID == nil && !p.ClearAssignee
}

func validateTask(t model.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return invalid("title", "title is required")
	}
	if t.ProjectID == uuid.Nil {
		return invalid("project_id", "project is required")
	}
	if t.StartDate.IsZero() {
		return invalid("start_date", "start date is required")
	}
	if t.EndDate.IsZero() {
		return invalid("end_date", "end date is required")
	}
	if t.EndDate.Before(t.StartDate) {
		return invalid("end_date", "end date must not be before start date")
	}
	if t.Progress < 0 || t.Progress > 100 {
		return invalid("progress", "progress must be between 0 and 100")
	}
	if !t.Priority.Valid() {
		return invalid("priority", "unknown priority")
	}
	if !t.Status.Valid() {
		return invalid("status", "unknown status")
	}
	return nil
}

func (s *Store) Tasks() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// TasksByProject returns the project's tasks in list order, which is also
// their row order on the timeline.
func (s *Store) TasksByProject(projectID uuid.UUID) []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			out = append(out, t.Clone())
		}
	}
	return out
}

func (s *Store) Task(id uuid.UUID) (model.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.taskIndex(id)
	if i < 0 {
		return model.Task{}, notFound("task", id)
	}
	return s.tasks[i].Clone(), nil
}

// SetTasks replaces the tasks collection. Every task must reference a
// loaded project.
func (s *Store) SetTasks(tasks []model.Task) error {
	for _, t := range tasks {
		if err := validateTask(t); err != nil {
			return err
		}
	}

	s.mu.Lock()
	for _, t := range tasks {
		if s.projectIndex(t.ProjectID) < 0 {
			s.mu.Unlock()
			return notFound("project", t.ProjectID)
		}
	}
	s.tasks = make([]model.Task, len(tasks))
	for i, t := range tasks {
		s.tasks[i] = t.Clone()
	}
	for i := range s.projects {
		s.recountLocked(s.projects[i].ID)
	}
	if s.selectedTask != nil && s.taskIndex(*s.selectedTask) < 0 {
		s.selectedTask = nil
	}
	s.commitLocked(Event{Kind: Loaded, Collection: Tasks})
	s.mu.Unlock()

	s.flush()
	return nil
}

func (s *Store) CreateTask(in TaskInput) (model.Task, error) {
	now := s.now()
	t := model.Task{
		ID:           s.newID(),
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Progress:     in.Progress,
		Priority:     in.Priority,
		Status:       in.Status,
		ProjectID:    in.ProjectID,
		AssigneeID:   in.AssigneeID,
		ParentTaskID: in.ParentTaskID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if t.Status == "" {
		t.Status = model.TaskTodo
	}
	if err := validateTask(t); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	if s.projectIndex(t.ProjectID) < 0 {
		s.mu.Unlock()
		return model.Task{}, notFound("project", t.ProjectID)
	}
	if t.ParentTaskID != nil && s.taskIndex(*t.ParentTaskID) < 0 {
		s.mu.Unlock()
		return model.Task{}, notFound("parent task", *t.ParentTaskID)
	}
	s.tasks = append(s.tasks, t)
	events := []Event{taskEvent(Created, t.Clone())}
	if p, changed := s.recountLocked(t.ProjectID); changed {
		events = append(events, projectEvent(Updated, p))
	}
	s.commitLocked(events...)
	s.mu.Unlock()

	s.flush()
	return t.Clone(), nil
}

// UpdateTask merges patch into the task and refreshes UpdatedAt.
func (s *Store) UpdateTask(id uuid.UUID, patch TaskPatch) (model.Task, error) {
	if patch.empty() {
		return model.Task{}, ErrNothingToUpdate
	}
	return s.mutateTask(id, func(t *model.Task) error {
		if patch.Title != nil {
			t.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Description != nil {
			t.Description = patch.Description
		}
		if patch.StartDate != nil {
			t.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			t.EndDate = *patch.EndDate
		}
		if patch.Progress != nil {
			t.Progress = *patch.Progress
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.ProjectID != nil {
			if s.projectIndex(*patch.ProjectID) < 0 {
				return notFound("project", *patch.ProjectID)
			}
			t.ProjectID = *patch.ProjectID
		}
		if patch.ClearAssignee {
			t.AssigneeID = nil
		} else if patch.AssigneeID != nil {
			t.AssigneeID = patch.AssigneeID
		}
		return validateTask(*t)
	})
}

// MoveTask sets both dates at once. An inverted interval is a constraint
// violation and leaves the task unchanged.
func (s *Store) MoveTask(id uuid.UUID, start, end model.Date) (model.Task, error) {
	if start.IsZero() || end.IsZero() {
		return model.Task{}, invalid("start_date", "both dates are required")
	}
	if end.Before(start) {
		return model.Task{}, ErrConstraintViolation
	}
	return s.mutateTask(id, func(t *model.Task) error {
		t.StartDate, t.EndDate = start, end
		return nil
	})
}

func (s *Store) ChangeTaskStatus(id uuid.UUID, status model.TaskStatus) (model.Task, error) {
	if !status.Valid() {
		return model.Task{}, invalid("status", "unknown status")
	}
	return s.UpdateTask(id, TaskPatch{Status: &status})
}

func (s *Store) ChangeTaskPriority(id uuid.UUID, priority model.TaskPriority) (model.Task, error) {
	if !priority.Valid() {
		return model.Task{}, invalid("priority", "unknown priority")
	}
	return s.UpdateTask(id, TaskPatch{Priority: &priority})
}

// ChangeTaskAssignee sets the assignee, or clears it when assigneeID is nil.
func (s *Store) ChangeTaskAssignee(id uuid.UUID, assigneeID *uuid.UUID) (model.Task, error) {
	return s.UpdateTask(id, TaskPatch{AssigneeID: assigneeID, ClearAssignee: assigneeID == nil})
}

func (s *Store) mutateTask(id uuid.UUID, fn func(*model.Task) error) (model.Task, error) {
	s.mu.Lock()
	i := s.taskIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Task{}, notFound("task", id)
	}
	prev := s.tasks[i]
	next := prev.Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return model.Task{}, err
	}
	next.UpdatedAt = s.now()
	s.tasks[i] = next

	events := []Event{taskEvent(Updated, next.Clone())}
	for _, pid := range uniqueIDs(prev.ProjectID, next.ProjectID) {
		if p, changed := s.recountLocked(pid); changed {
			events = append(events, projectEvent(Updated, p))
		}
	}
	s.commitLocked(events...)
	s.mu.Unlock()

	s.flush()
	return next.Clone(), nil
}

// DeleteTask removes the task, detaches its sub-tasks and clears the task
// selection if it pointed at it.
func (s *Store) DeleteTask(id uuid.UUID) error {
	s.mu.Lock()
	i := s.taskIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return notFound("task", id)
	}
	projectID := s.tasks[i].ProjectID
	events := s.removeTasksLocked(func(t model.Task) bool { return t.ID == id })
	if p, changed := s.recountLocked(projectID); changed {
		events = append(events, projectEvent(Updated, p))
	}
	s.commitLocked(events...)
	s.mu.Unlock()

	s.flush()
	return nil
}

// removeTasksLocked drops every task matching drop, clears a task selection
// pointing at one of them and detaches sub-tasks left without a parent.
func (s *Store) removeTasksLocked(drop func(model.Task) bool) []Event {
	var events []Event
	removed := make(map[uuid.UUID]bool)
	kept := s.tasks[:0:0]
	for _, t := range s.tasks {
		if drop(t) {
			removed[t.ID] = true
			events = append(events, taskEvent(Deleted, t.Clone()))
			continue
		}
		kept = append(kept, t)
	}
	if len(removed) == 0 {
		return nil
	}
	s.tasks = kept
	if s.selectedTask != nil && removed[*s.selectedTask] {
		s.selectedTask = nil
	}
	now := s.now()
	for j := range s.tasks {
		if p := s.tasks[j].ParentTaskID; p != nil && removed[*p] {
			s.tasks[j].ParentTaskID = nil
			s.tasks[j].UpdatedAt = now
			events = append(events, taskEvent(Updated, s.tasks[j].Clone()))
		}
	}
	return events
}

func uniqueIDs(a, b uuid.UUID) []uuid.UUID {
	if a == b {
		return []uuid.UUID{a}
	}
	return []uuid.UUID{a, b}
}
