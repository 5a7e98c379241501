package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// Task is a scheduled unit of work. StartDate and EndDate are both inclusive.
type Task struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string       `gorm:"not null" json:"title"`
	Description  *string      `json:"description"`
	StartDate    Date         `gorm:"not null" json:"start_date"`
	EndDate      Date         `gorm:"not null" json:"end_date"`
	Progress     int          `gorm:"not null" json:"progress"`
	Priority     TaskPriority `gorm:"type:varchar(16);not null" json:"priority"`
	Status       TaskStatus   `gorm:"type:varchar(16);not null;index" json:"status"`
	ProjectID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"project_id"`
	AssigneeID   *uuid.UUID   `gorm:"type:uuid" json:"assignee_id"`
	ParentTaskID *uuid.UUID   `gorm:"type:uuid" json:"parent_task_id"`
	CreatedAt    time.Time    `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt    time.Time    `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// Duration is the number of days between start and end, so a one-day
// task has a duration of zero.
func (t Task) Duration() int {
	return t.StartDate.DaysUntil(t.EndDate)
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	out := t
	if t.Description != nil {
		d := *t.Description
		out.Description = &d
	}
	if t.AssigneeID != nil {
		id := *t.AssigneeID
		out.AssigneeID = &id
	}
	if t.ParentTaskID != nil {
		id := *t.ParentTaskID
		out.ParentTaskID = &id
	}
	return out
}
