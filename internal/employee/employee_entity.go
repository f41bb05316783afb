package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	Department string `gorm:"type:varchar(100);not null;index:idx_employees_dept_leader"`
	Role       string `gorm:"type:varchar(100)"`

	IsAdmin      bool `gorm:"not null;default:false"`
	IsTeamLeader bool `gorm:"not null;default:false;index:idx_employees_dept_leader"`

	Status    string `gorm:"type:varchar(20);not null;default:'Active'"`
	AvatarURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// RBACRole maps the record's flags onto the portal's three role tiers.
func (e Employee) RBACRole() string {
	switch {
	case e.IsAdmin:
		return "admin"
	case e.IsTeamLeader:
		return "team_leader"
	default:
		return "employee"
	}
}
