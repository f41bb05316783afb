package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeAnnouncement = "Announcement"
	TypeReportStatus = "ReportStatus"
	TypeLeaveRequest = "LeaveRequest"
	TypeGeneral      = "General"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Title   string    `gorm:"type:varchar(255);not null"`
	Message string    `gorm:"type:text;not null"`
	Type    string    `gorm:"type:varchar(30);not null;default:'General'"`
	Read    bool      `gorm:"not null;default:false;index:idx_notifications_user_read"`
	Link    *string   `gorm:"type:varchar(255)"`

	CreatedAt time.Time
}
