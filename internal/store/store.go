// Package store holds the in-memory projects and tasks collections. All
// mutation goes through the Store's actions; readers get copies.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

type EventKind string

const (
	Created EventKind = "created"
	Updated EventKind = "updated"
	Deleted EventKind = "deleted"
	Loaded  EventKind = "loaded"
)

type Collection string

const (
	Projects Collection = "projects"
	Tasks    Collection = "tasks"
)

// Event describes one applied change. Project or Task carries the entity
// after the change; for deletes it carries the removed entity.
type Event struct {
	Kind       EventKind
	Collection Collection
	ID         uuid.UUID
	Project    *model.Project
	Task       *model.Task
}

type Listener func(Event)

type Option func(*Store)

func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Store) { s.newID = gen }
}

type Store struct {
	mu              sync.RWMutex
	projects        []model.Project
	tasks           []model.Task
	selectedProject *uuid.UUID
	selectedTask    *uuid.UUID

	clock func() time.Time
	newID func() uuid.UUID

	lmu       sync.Mutex
	listeners map[int]Listener
	nextL     int

	// pending holds committed events in commit order until delivered.
	qmu        sync.Mutex
	pending    []Event
	delivering bool
}

func New(opts ...Option) *Store {
	s := &Store{
		clock:     time.Now,
		newID:     uuid.New,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers l to be called after every applied change, outside
// the store lock. Events reach listeners one at a time in the order the
// changes were applied. The returned func removes the listener.
func (s *Store) Subscribe(l Listener) func() {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	id := s.nextL
	s.nextL++
	s.listeners[id] = l
	return func() {
		s.lmu.Lock()
		defer s.lmu.Unlock()
		delete(s.listeners, id)
	}
}

// commitLocked queues events for delivery. It must be called with s.mu
// held so the queue order matches the order changes were applied.
func (s *Store) commitLocked(events ...Event) {
	if len(events) == 0 {
		return
	}
	s.qmu.Lock()
	s.pending = append(s.pending, events...)
	s.qmu.Unlock()
}

// flush delivers queued events after s.mu is released. Only one goroutine
// delivers at a time; a flush that finds delivery in progress returns and
// leaves its events to the running one. Changes made by a listener are
// queued behind the event being delivered.
func (s *Store) flush() {
	s.qmu.Lock()
	if s.delivering {
		s.qmu.Unlock()
		return
	}
	s.delivering = true
	done := false
	defer func() {
		// a panicking listener must not stall later deliveries
		if !done {
			s.qmu.Lock()
			s.delivering = false
			s.qmu.Unlock()
		}
	}()
	for len(s.pending) > 0 {
		e := s.pending[0]
		s.pending = s.pending[1:]
		s.qmu.Unlock()
		s.deliver(e)
		s.qmu.Lock()
	}
	s.delivering = false
	done = true
	s.qmu.Unlock()
}

func (s *Store) deliver(e Event) {
	s.lmu.Lock()
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	ls := make([]Listener, len(ids))
	for i, id := range ids {
		ls[i] = s.listeners[id]
	}
	s.lmu.Unlock()

	for _, l := range ls {
		l(e)
	}
}

func (s *Store) now() time.Time {
	return s.clock().UTC()
}

func (s *Store) projectIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.projects, func(p model.Project) bool { return p.ID == id })
}

func (s *Store) taskIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

// recountLocked refreshes the advisory task counters of a project and
// reports whether they changed.
func (s *Store) recountLocked(projectID uuid.UUID) (model.Project, bool) {
	i := s.projectIndex(projectID)
	if i < 0 {
		return model.Project{}, false
	}
	var total, done int
	for _, t := range s.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == model.TaskCompleted {
			done++
		}
	}
	p := &s.projects[i]
	if p.TaskCount == total && p.CompletedTaskCount == done {
		return *p, false
	}
	p.TaskCount, p.CompletedTaskCount = total, done
	return p.Clone(), true
}

func projectEvent(kind EventKind, p model.Project) Event {
	return Event{Kind: kind, Collection: Projects, ID: p.ID, Project: &p}
}

func taskEvent(kind EventKind, t model.Task) Event {
	return Event{Kind: kind, Collection: Tasks, ID: t.ID, Task: &t}
}

// SelectProject points the project selection at id.
func (s *Store) SelectProject(id uuid.UUID) (model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.projectIndex(id)
	if i < 0 {
		return model.Project{}, notFound("project", id)
	}
	s.selectedProject = &id
	return s.projects[i].Clone(), nil
}

func (s *Store) ClearProjectSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProject = nil
}

// SelectedProject returns the selected project, if any.
func (s *Store) SelectedProject() (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedProject == nil {
		return model.Project{}, false
	}
	i := s.projectIndex(*s.selectedProject)
	if i < 0 {
		return model.Project{}, false
	}
	return s.projects[i].Clone(), true
}

func (s *Store) SelectTask(id uuid.UUID) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndex(id)
	if i < 0 {
		return model.Task{}, notFound("task", id)
	}
	s.selectedTask = &id
	return s.tasks[i].Clone(), nil
}

func (s *Store) ClearTaskSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTask = nil
}

func (s *Store) SelectedTask() (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selectedTask == nil {
		return model.Task{}, false
	}
	i := s.taskIndex(*s.selectedTask)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i].Clone(), true
}
