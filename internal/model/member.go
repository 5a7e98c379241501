package model

import (
	"time"

	"github.com/google/uuid"
)

// ProjectMember links a user to a project with a per-project role.
type ProjectMember struct {
	ProjectID uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `gorm:"type:varchar(16);not null" json:"role"`
	AddedAt   time.Time `gorm:"autoCreateTime:false" json:"added_at"`
}
