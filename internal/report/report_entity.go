package report

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// CounterType is the portal_counters key backing reference numbers.
const CounterType = "report"

type Report struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_employee"`

	ReferenceNumber string  `gorm:"type:varchar(20);not null;uniqueIndex:idx_reports_reference"`
	Title           string  `gorm:"type:varchar(200);not null"`
	Type            string  `gorm:"type:varchar(50);not null"`
	Content         string  `gorm:"type:text;not null"`
	ProofURL        *string `gorm:"type:varchar(500)"`

	ApproverID *uuid.UUID `gorm:"type:uuid"`
	Status     string     `gorm:"type:varchar(20);not null;default:'Pending';index:idx_reports_status"`
	DecidedAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
