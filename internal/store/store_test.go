package store_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/internal/model"
	"taskflow/internal/store"
)

var fixedNow = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.WithClock(func() time.Time { return fixedNow }))
}

func seedProject(t *testing.T, s *store.Store, name string) model.Project {
	t.Helper()
	p, err := s.CreateProject(store.ProjectInput{
		Name:      name,
		StartDate: model.MustParseDate("2024-01-01"),
		EndDate:   model.MustParseDate("2024-03-31"),
	})
	require.NoError(t, err)
	return p
}

func seedTask(t *testing.T, s *store.Store, projectID uuid.UUID, title string, status model.TaskStatus) model.Task {
	t.Helper()
	tk, err := s.CreateTask(store.TaskInput{
		Title:     title,
		ProjectID: projectID,
		StartDate: model.MustParseDate("2024-01-10"),
		EndDate:   model.MustParseDate("2024-01-12"),
		Status:    status,
	})
	require.NoError(t, err)
	return tk
}

func TestCreateProject_Defaults(t *testing.T) {
	s := newStore(t)

	p := seedProject(t, s, "  Launch  ")

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, "Launch", p.Name)
	assert.Equal(t, model.ProjectPlanning, p.Status)
	assert.Equal(t, fixedNow, p.CreatedAt)
	assert.Equal(t, fixedNow, p.UpdatedAt)
	assert.Empty(t, p.Members)
}

func TestCreateProject_Validation(t *testing.T) {
	s := newStore(t)

	_, err := s.CreateProject(store.ProjectInput{
		Name:      "Backwards",
		StartDate: model.MustParseDate("2024-02-01"),
		EndDate:   model.MustParseDate("2024-01-01"),
	})

	var verr *store.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "end_date", verr.Field)
	assert.ErrorIs(t, err, store.ErrValidation)
	assert.Empty(t, s.Projects())
}

func TestUpdateProject_MergesAndRefreshesTimestamp(t *testing.T) {
	clock := fixedNow
	s := store.New(store.WithClock(func() time.Time { return clock }))
	p := seedProject(t, s, "Launch")
	clock = clock.Add(time.Hour)
	name := "Relaunch"

	updated, err := s.UpdateProject(p.ID, store.ProjectPatch{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Relaunch", updated.Name)
	assert.Equal(t, p.StartDate, updated.StartDate)
	assert.Equal(t, fixedNow, updated.CreatedAt)
	assert.Equal(t, fixedNow.Add(time.Hour), updated.UpdatedAt)
}

func TestUpdateProject_FailedPatchLeavesProjectUntouched(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "Launch")
	empty := " "

	_, err := s.UpdateProject(p.ID, store.ProjectPatch{Name: &empty})
	require.ErrorIs(t, err, store.ErrValidation)

	got, err := s.Project(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Launch", got.Name)

	_, err = s.UpdateProject(p.ID, store.ProjectPatch{})
	assert.ErrorIs(t, err, store.ErrNothingToUpdate)
}

func TestDeleteProject_ClearsSelectionAndCascades(t *testing.T) {
	// Arrange
	s := newStore(t)
	p := seedProject(t, s, "Doomed")
	other := seedProject(t, s, "Keeper")
	tk := seedTask(t, s, p.ID, "child", model.TaskTodo)
	kept := seedTask(t, s, other.ID, "survivor", model.TaskTodo)
	_, err := s.SelectProject(p.ID)
	require.NoError(t, err)
	_, err = s.SelectTask(tk.ID)
	require.NoError(t, err)

	// Act
	err = s.DeleteProject(p.ID)

	// Assert
	require.NoError(t, err)
	assert.Len(t, s.Projects(), 1)
	_, ok := s.SelectedProject()
	assert.False(t, ok)
	_, ok = s.SelectedTask()
	assert.False(t, ok)
	_, err = s.Task(tk.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Task(kept.ID)
	assert.NoError(t, err)
}

func TestDeleteProject_KeepsUnrelatedSelection(t *testing.T) {
	s := newStore(t)
	a := seedProject(t, s, "A")
	b := seedProject(t, s, "B")
	_, err := s.SelectProject(b.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(a.ID))

	sel, ok := s.SelectedProject()
	require.True(t, ok)
	assert.Equal(t, b.ID, sel.ID)
	assert.ErrorIs(t, s.DeleteProject(a.ID), store.ErrNotFound)
}

func TestMembers(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "Team")
	user := model.User{ID: uuid.New(), Email: "kim@example.com"}

	p, err := s.AddMember(p.ID, user, "")
	require.NoError(t, err)
	require.Len(t, p.Members, 1)
	assert.Equal(t, model.RoleViewer, p.Members[0].Role)
	assert.Equal(t, "kim", p.Members[0].Name)

	p, err = s.AddMember(p.ID, user, model.RoleEditor)
	require.NoError(t, err)
	require.Len(t, p.Members, 1, "re-adding changes the role")
	assert.Equal(t, model.RoleEditor, p.Members[0].Role)

	p, err = s.RemoveMember(p.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, p.Members)

	_, err = s.RemoveMember(p.ID, user.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateTask_RequiresExistingProject(t *testing.T) {
	s := newStore(t)

	_, err := s.CreateTask(store.TaskInput{
		Title:     "orphan",
		ProjectID: uuid.New(),
		StartDate: model.MustParseDate("2024-01-10"),
		EndDate:   model.MustParseDate("2024-01-12"),
	})

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateTask_Defaults(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")

	tk := seedTask(t, s, p.ID, "write docs", "")

	assert.Equal(t, model.TaskTodo, tk.Status)
	assert.Equal(t, model.PriorityMedium, tk.Priority)
	assert.Equal(t, fixedNow, tk.CreatedAt)
}

func TestMoveTask_RejectsInvertedInterval(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")
	tk := seedTask(t, s, p.ID, "t", model.TaskTodo)

	_, err := s.MoveTask(tk.ID, model.MustParseDate("2024-01-12"), model.MustParseDate("2024-01-11"))

	assert.ErrorIs(t, err, store.ErrConstraintViolation)
	got, _ := s.Task(tk.ID)
	assert.Equal(t, tk.StartDate, got.StartDate)
	assert.Equal(t, tk.EndDate, got.EndDate)
}

func TestTaskCountersFollowMutations(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")
	a := seedTask(t, s, p.ID, "a", model.TaskTodo)
	seedTask(t, s, p.ID, "b", model.TaskTodo)

	_, err := s.ChangeTaskStatus(a.ID, model.TaskCompleted)
	require.NoError(t, err)

	got, _ := s.Project(p.ID)
	assert.Equal(t, 2, got.TaskCount)
	assert.Equal(t, 1, got.CompletedTaskCount)

	require.NoError(t, s.DeleteTask(a.ID))
	got, _ = s.Project(p.ID)
	assert.Equal(t, 1, got.TaskCount)
	assert.Equal(t, 0, got.CompletedTaskCount)
}

func TestChangeTaskAssignee(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")
	tk := seedTask(t, s, p.ID, "t", model.TaskTodo)
	assignee := uuid.New()

	got, err := s.ChangeTaskAssignee(tk.ID, &assignee)
	require.NoError(t, err)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, assignee, *got.AssigneeID)

	got, err = s.ChangeTaskAssignee(tk.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, got.AssigneeID)
}

func TestChangeTaskPriority_Invalid(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")
	tk := seedTask(t, s, p.ID, "t", model.TaskTodo)

	_, err := s.ChangeTaskPriority(tk.ID, "SOMEDAY")

	assert.ErrorIs(t, err, store.ErrValidation)
}

func TestDeleteTask_DetachesSubtasksAndSelection(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")
	parent := seedTask(t, s, p.ID, "parent", model.TaskTodo)
	child, err := s.CreateTask(store.TaskInput{
		Title:        "child",
		ProjectID:    p.ID,
		StartDate:    model.MustParseDate("2024-01-10"),
		EndDate:      model.MustParseDate("2024-01-10"),
		ParentTaskID: &parent.ID,
	})
	require.NoError(t, err)
	_, err = s.SelectTask(parent.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteTask(parent.ID))

	got, err := s.Task(child.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentTaskID)
	_, ok := s.SelectedTask()
	assert.False(t, ok)
}

func TestReadsReturnCopies(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")

	got, _ := s.Project(p.ID)
	got.Name = "changed"

	again, _ := s.Project(p.ID)
	assert.Equal(t, "P", again.Name)
}

func TestSubscribe(t *testing.T) {
	s := newStore(t)
	var events []store.Event
	unsubscribe := s.Subscribe(func(e store.Event) { events = append(events, e) })

	p := seedProject(t, s, "P")
	tk := seedTask(t, s, p.ID, "t", model.TaskTodo)
	require.NoError(t, s.DeleteProject(p.ID))
	unsubscribe()
	seedProject(t, s, "Q")

	kinds := make([]string, len(events))
	for i, e := range events {
		kinds[i] = string(e.Collection) + ":" + string(e.Kind)
	}
	assert.Equal(t, []string{
		"projects:created",
		"tasks:created",
		"projects:updated", // counters
		"tasks:deleted",
		"projects:deleted",
	}, kinds)
	assert.Equal(t, tk.ID, events[3].ID)
}

func TestListenerMayReadStore(t *testing.T) {
	s := newStore(t)
	var seen int
	s.Subscribe(func(e store.Event) { seen = len(s.Projects()) })

	seedProject(t, s, "P")

	assert.Equal(t, 1, seen)
}

func TestSnapshotRestore(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")
	seedTask(t, s, p.ID, "a", model.TaskCompleted)
	snap := s.Snapshot()

	other := newStore(t)
	require.NoError(t, other.Restore(snap))

	assert.Equal(t, snap, other.Snapshot())
	got, _ := other.Project(p.ID)
	assert.Equal(t, 1, got.CompletedTaskCount)
}

func TestRestore_RejectsDanglingTask(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")
	snap := store.Snapshot{Tasks: []model.Task{{
		ID:        uuid.New(),
		Title:     "lost",
		ProjectID: uuid.New(),
		StartDate: model.MustParseDate("2024-01-01"),
		EndDate:   model.MustParseDate("2024-01-01"),
		Priority:  model.PriorityLow,
		Status:    model.TaskTodo,
	}}}

	err := s.Restore(snap)

	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Project(p.ID)
	assert.NoError(t, err, "failed restore keeps previous content")
}

func TestDeleteProject_DetachesSubtasksInOtherProjects(t *testing.T) {
	s := newStore(t)
	a := seedProject(t, s, "A")
	b := seedProject(t, s, "B")
	parent := seedTask(t, s, a.ID, "parent", model.TaskTodo)
	child, err := s.CreateTask(store.TaskInput{
		Title:        "child",
		ProjectID:    b.ID,
		StartDate:    model.MustParseDate("2024-01-10"),
		EndDate:      model.MustParseDate("2024-01-11"),
		ParentTaskID: &parent.ID,
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProject(a.ID))

	got, err := s.Task(child.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentTaskID)
	assert.Equal(t, b.ID, got.ProjectID)
	assert.Equal(t, fixedNow, got.UpdatedAt)
}

func TestSetProjects_DropsTasksOfRemovedProjects(t *testing.T) {
	// Arrange
	s := newStore(t)
	keep := seedProject(t, s, "keep")
	gone := seedProject(t, s, "gone")
	seedTask(t, s, keep.ID, "kept", model.TaskCompleted)
	lost := seedTask(t, s, gone.ID, "lost", model.TaskTodo)
	child, err := s.CreateTask(store.TaskInput{
		Title:        "child",
		ProjectID:    keep.ID,
		StartDate:    model.MustParseDate("2024-01-10"),
		EndDate:      model.MustParseDate("2024-01-10"),
		ParentTaskID: &lost.ID,
	})
	require.NoError(t, err)
	_, err = s.SelectTask(lost.ID)
	require.NoError(t, err)
	_, err = s.SelectProject(gone.ID)
	require.NoError(t, err)

	var kinds []string
	s.Subscribe(func(e store.Event) { kinds = append(kinds, string(e.Collection)+":"+string(e.Kind)) })

	// Act
	require.NoError(t, s.SetProjects([]model.Project{keep}))

	// Assert
	_, err = s.Task(lost.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Len(t, s.Tasks(), 2)
	got, err := s.Task(child.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ParentTaskID)
	_, ok := s.SelectedTask()
	assert.False(t, ok)
	_, ok = s.SelectedProject()
	assert.False(t, ok)
	p, err := s.Project(keep.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.TaskCount, "counters are rebuilt")
	assert.Equal(t, 1, p.CompletedTaskCount)
	assert.Equal(t, []string{"tasks:deleted", "tasks:updated", "projects:loaded"}, kinds)
}

func TestSetTasks(t *testing.T) {
	s := newStore(t)
	p := model.Project{
		ID:        uuid.New(),
		Name:      "Imported",
		StartDate: model.MustParseDate("2024-01-01"),
		EndDate:   model.MustParseDate("2024-01-31"),
		Status:    model.ProjectInProgress,
	}
	require.NoError(t, s.SetProjects([]model.Project{p}))
	tk := model.Task{
		ID:        uuid.New(),
		Title:     "t",
		ProjectID: p.ID,
		StartDate: model.MustParseDate("2024-01-02"),
		EndDate:   model.MustParseDate("2024-01-03"),
		Priority:  model.PriorityLow,
		Status:    model.TaskCompleted,
	}
	orphan := tk
	orphan.ID = uuid.New()
	orphan.ProjectID = uuid.New()

	err := s.SetTasks([]model.Task{tk, orphan})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, s.Tasks(), "nothing loads when one task is dangling")

	require.NoError(t, s.SetTasks([]model.Task{tk}))
	got, err := s.Project(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompletedTaskCount)
	assert.NotNil(t, got.Members)

	require.NoError(t, s.SetProjects(nil))
	assert.Empty(t, s.Projects())
	assert.Empty(t, s.Tasks())
}

func TestTasksByProject_EmptyIsNotNil(t *testing.T) {
	s := newStore(t)
	p := seedProject(t, s, "P")

	got := s.TasksByProject(p.ID)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
