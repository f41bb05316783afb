package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`

	LeaveType string    `gorm:"type:varchar(30);not null"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    string    `gorm:"type:text"`

	// ApproverID nil berarti jatuh ke tier admin
	ApproverID *uuid.UUID `gorm:"type:uuid;index:idx_leave_requests_approver"`
	Status     string     `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leave_requests_status"`
	DecidedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
