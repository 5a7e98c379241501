package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "PLANNING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
	ProjectOnHold     ProjectStatus = "ON_HOLD"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

type Project struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description *string         `json:"description"`
	StartDate   Date            `gorm:"not null" json:"start_date"`
	EndDate     Date            `gorm:"not null" json:"end_date"`
	Status      ProjectStatus   `gorm:"type:varchar(16);not null" json:"status"`
	OwnerID     *uuid.UUID      `gorm:"type:uuid" json:"owner_id,omitempty"`
	Members     []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"members"`

	// Denormalized counters kept by the store. Progress is always derived
	// from live tasks; these only serve when tasks are not loaded.
	TaskCount          int `gorm:"not null" json:"task_count"`
	CompletedTaskCount int `gorm:"not null" json:"completed_task_count"`

	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (p Project) Member(userID uuid.UUID) (ProjectMember, bool) {
	for _, m := range p.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return ProjectMember{}, false
}

// Clone returns a copy that shares no slices or pointers with p.
func (p Project) Clone() Project {
	out := p
	if p.Description != nil {
		d := *p.Description
		out.Description = &d
	}
	if p.OwnerID != nil {
		id := *p.OwnerID
		out.OwnerID = &id
	}
	if p.Members != nil {
		out.Members = make([]ProjectMember, len(p.Members))
		copy(out.Members, p.Members)
	}
	return out
}
