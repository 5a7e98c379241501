package store

import (
	"github.com/google/uuid"

	"taskflow/internal/model"
)

// Snapshot is the serializable content of the store, keyed by collection.
type Snapshot struct {
	Projects []model.Project `json:"projects"`
	Tasks    []model.Task    `json:"tasks"`
}

// Snapshot copies both collections under one read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Projects: make([]model.Project, len(s.projects)),
		Tasks:    make([]model.Task, len(s.tasks)),
	}
	for i, p := range s.projects {
		snap.Projects[i] = p.Clone()
	}
	for i, t := range s.tasks {
		snap.Tasks[i] = t.Clone()
	}
	return snap
}

// Restore replaces both collections atomically. Nothing changes when any
// record is invalid.
func (s *Store) Restore(snap Snapshot) error {
	ids := make(map[uuid.UUID]bool, len(snap.Projects))
	projects := make([]model.Project, len(snap.Projects))
	for i, p := range snap.Projects {
		if err := validateProject(p); err != nil {
			return err
		}
		projects[i] = loadedProject(p)
		ids[p.ID] = true
	}
	tasks := make([]model.Task, len(snap.Tasks))
	for i, t := range snap.Tasks {
		if err := validateTask(t); err != nil {
			return err
		}
		if !ids[t.ProjectID] {
			return notFound("project", t.ProjectID)
		}
		tasks[i] = t.Clone()
	}

	s.mu.Lock()
	s.projects = projects
	s.tasks = tasks
	for i := range s.projects {
		s.recountLocked(s.projects[i].ID)
	}
	s.selectedProject = nil
	s.selectedTask = nil
	s.commitLocked(
		Event{Kind: Loaded, Collection: Projects},
		Event{Kind: Loaded, Collection: Tasks},
	)
	s.mu.Unlock()

	s.flush()
	return nil
}
