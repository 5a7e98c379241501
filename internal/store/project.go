package store

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"taskflow/internal/model"
)

type ProjectInput struct {
	Name        string
	Description *string
	StartDate   model.Date
	EndDate     model.Date
	Status      model.ProjectStatus
	OwnerID     *uuid.UUID
}

// ProjectPatch is a partial update; nil fields are left unchanged.
type ProjectPatch struct {
	Name        *string
	Description *string
	StartDate   *model.Date
	EndDate     *model.Date
	Status      *model.ProjectStatus
}

func (p ProjectPatch) empty() bool {
	return p.Name == nil && p.Description == nil && p.StartDate == nil && p.EndDate == nil && p.Status == nil
}

func validateProject(p model.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalid("name", "name is required")
	}
	if p.StartDate.IsZero() {
		return invalid("start_date", "start date is required")
	}
	if p.EndDate.IsZero() {
		return invalid("end_date", "end date is required")
	}
	if p.EndDate.Before(p.StartDate) {
		return invalid("end_date", "end date must not be before start date")
	}
	if !p.Status.Valid() {
		return invalid("status", "unknown project status")
	}
	return nil
}

// Projects returns all projects in insertion order.
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = p.Clone()
	}
	return out
}

func (s *Store) Project(id uuid.UUID) (model.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.projectIndex(id)
	if i < 0 {
		return model.Project{}, notFound("project", id)
	}
	return s.projects[i].Clone(), nil
}

// loadedProject normalizes a project handed in by a bulk load.
func loadedProject(p model.Project) model.Project {
	p = p.Clone()
	if p.Members == nil {
		p.Members = []model.ProjectMember{}
	}
	for j := range p.Members {
		p.Members[j].ProjectID = p.ID
	}
	return p
}

// SetProjects replaces the projects collection. Tasks of projects that are
// no longer present are removed with them, and selections pointing at
// either are cleared.
func (s *Store) SetProjects(projects []model.Project) error {
	loaded := make([]model.Project, len(projects))
	keep := make(map[uuid.UUID]bool, len(projects))
	for i, p := range projects {
		if err := validateProject(p); err != nil {
			return err
		}
		loaded[i] = loadedProject(p)
		keep[p.ID] = true
	}

	s.mu.Lock()
	s.projects = loaded
	events := s.removeTasksLocked(func(t model.Task) bool { return !keep[t.ProjectID] })
	for i := range s.projects {
		s.recountLocked(s.projects[i].ID)
	}
	if s.selectedProject != nil && !keep[*s.selectedProject] {
		s.selectedProject = nil
	}
	s.commitLocked(append(events, Event{Kind: Loaded, Collection: Projects})...)
	s.mu.Unlock()

	s.flush()
	return nil
}

func (s *Store) CreateProject(in ProjectInput) (model.Project, error) {
	now := s.now()
	p := model.Project{
		ID:          s.newID(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      in.Status,
		OwnerID:     in.OwnerID,
		Members:     []model.ProjectMember{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Status == "" {
		p.Status = model.ProjectPlanning
	}
	if err := validateProject(p); err != nil {
		return model.Project{}, err
	}

	out := p.Clone()
	s.mu.Lock()
	s.projects = append(s.projects, p)
	s.commitLocked(projectEvent(Created, out))
	s.mu.Unlock()

	s.flush()
	return out, nil
}

// UpdateProject merges patch into the project and refreshes UpdatedAt.
func (s *Store) UpdateProject(id uuid.UUID, patch ProjectPatch) (model.Project, error) {
	if patch.empty() {
		return model.Project{}, ErrNothingToUpdate
	}
	return s.mutateProject(id, func(p *model.Project) error {
		if patch.Name != nil {
			p.Name = strings.TrimSpace(*patch.Name)
		}
		if patch.Description != nil {
			p.Description = patch.Description
		}
		if patch.StartDate != nil {
			p.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			p.EndDate = *patch.EndDate
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		return validateProject(*p)
	})
}

func (s *Store) ChangeProjectStatus(id uuid.UUID, status model.ProjectStatus) (model.Project, error) {
	return s.UpdateProject(id, ProjectPatch{Status: &status})
}

// AddMember adds user to the project, or changes the role of an existing
// member. An empty role means VIEWER.
func (s *Store) AddMember(projectID uuid.UUID, user model.User, role model.UserRole) (model.Project, error) {
	if role == "" {
		role = model.RoleViewer
	}
	if !role.Valid() {
		return model.Project{}, invalid("role", "unknown role")
	}
	if user.ID == uuid.Nil {
		return model.Project{}, invalid("user_id", "user id is required")
	}
	now := s.now()
	return s.mutateProject(projectID, func(p *model.Project) error {
		m := model.ProjectMember{
			ProjectID: projectID,
			UserID:    user.ID,
			Name:      user.DisplayName(),
			Email:     user.Email,
			Role:      role,
			AddedAt:   now,
		}
		if i := slices.IndexFunc(p.Members, func(m model.ProjectMember) bool { return m.UserID == user.ID }); i >= 0 {
			m.AddedAt = p.Members[i].AddedAt
			p.Members[i] = m
			return nil
		}
		p.Members = append(p.Members, m)
		return nil
	})
}

func (s *Store) RemoveMember(projectID, userID uuid.UUID) (model.Project, error) {
	return s.mutateProject(projectID, func(p *model.Project) error {
		i := slices.IndexFunc(p.Members, func(m model.ProjectMember) bool { return m.UserID == userID })
		if i < 0 {
			return notFound("member", userID)
		}
		p.Members = slices.Delete(p.Members, i, i+1)
		return nil
	})
}

// mutateProject applies fn to a copy and commits it only when fn succeeds,
// so a failed update leaves the stored project untouched.
func (s *Store) mutateProject(id uuid.UUID, fn func(*model.Project) error) (model.Project, error) {
	s.mu.Lock()
	i := s.projectIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return model.Project{}, notFound("project", id)
	}
	next := s.projects[i].Clone()
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return model.Project{}, err
	}
	next.UpdatedAt = s.now()
	s.projects[i] = next
	out := next.Clone()
	s.commitLocked(projectEvent(Updated, out))
	s.mu.Unlock()

	s.flush()
	return out, nil
}

// DeleteProject removes the project together with its tasks, detaches
// sub-tasks elsewhere whose parent went with it and clears any selection
// that pointed at them.
func (s *Store) DeleteProject(id uuid.UUID) error {
	s.mu.Lock()
	i := s.projectIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return notFound("project", id)
	}
	removed := s.projects[i]
	s.projects = slices.Delete(s.projects, i, i+1)
	events := s.removeTasksLocked(func(t model.Task) bool { return t.ProjectID == id })
	if s.selectedProject != nil && *s.selectedProject == id {
		s.selectedProject = nil
	}
	s.commitLocked(append(events, projectEvent(Deleted, removed))...)
	s.mu.Unlock()

	s.flush()
	return nil
}
