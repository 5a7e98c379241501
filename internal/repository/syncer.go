package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"taskflow/internal/model"
	"taskflow/internal/store"
)

const defaultSyncTimeout = 5 * time.Second

// Syncer keeps the database in step with the in-memory store. The store
// stays authoritative: a failed write is logged and does not undo the
// change in memory.
type Syncer struct {
	db       *gorm.DB
	projects *ProjectRepository
	tasks    *TaskRepository
	store    *store.Store
	log      *slog.Logger
	timeout  time.Duration
}

func NewSyncer(db *gorm.DB, st *store.Store, log *slog.Logger) *Syncer {
	return &Syncer{
		db:       db,
		projects: NewProjectRepository(db),
		tasks:    NewTaskRepository(db),
		store:    st,
		log:      log,
		timeout:  defaultSyncTimeout,
	}
}

// Load fills the store from the database. Call it before Start so the
// initial load is not written back.
func (s *Syncer) Load(ctx context.Context) error {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if err := s.store.SetProjects(projects); err != nil {
		return fmt.Errorf("set projects: %w", err)
	}
	if err := s.store.SetTasks(tasks); err != nil {
		return fmt.Errorf("set tasks: %w", err)
	}
	s.log.Info("store loaded from database", "projects", len(projects), "tasks", len(tasks))
	return nil
}

// Start subscribes to store changes and returns the unsubscribe func.
func (s *Syncer) Start() func() {
	return s.store.Subscribe(func(e store.Event) {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		if err := s.Apply(ctx, e); err != nil {
			s.log.Error("store sync failed",
				"collection", e.Collection, "kind", e.Kind, "id", e.ID, "error", err)
		}
	})
}

// Apply writes one store event to the database.
func (s *Syncer) Apply(ctx context.Context, e store.Event) error {
	switch e.Collection {
	case store.Projects:
		switch e.Kind {
		case store.Created, store.Updated:
			return s.projects.Save(ctx, e.Project)
		case store.Deleted:
			return ignoreMissing(s.projects.Delete(ctx, e.ID))
		case store.Loaded:
			return s.replaceProjects(ctx, s.store.Projects())
		}
	case store.Tasks:
		switch e.Kind {
		case store.Created, store.Updated:
			return s.tasks.Save(ctx, e.Task)
		case store.Deleted:
			return ignoreMissing(s.tasks.Delete(ctx, e.ID))
		case store.Loaded:
			return s.replaceTasks(ctx, s.store.Tasks())
		}
	}
	return nil
}

func ignoreMissing(err error) error {
	if errors.Is(err, ErrProjectNotFound) || errors.Is(err, ErrTaskNotFound) {
		return nil
	}
	return err
}

func (s *Syncer) replaceProjects(ctx context.Context, projects []model.Project) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		all := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := all.Delete(&model.ProjectMember{}).Error; err != nil {
			return err
		}
		if err := all.Delete(&model.Project{}).Error; err != nil {
			return err
		}
		repo := NewProjectRepository(tx)
		for i := range projects {
			if err := repo.Save(ctx, &projects[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Syncer) replaceTasks(ctx context.Context, tasks []model.Task) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).CreateInBatches(&tasks, 100).Error
	})
}
