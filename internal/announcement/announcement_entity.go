package announcement

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeGeneral   = "General"
	TypeImportant = "Important"
	TypeEvent     = "Event"
)

type Announcement struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:text;not null"`
	Type      string    `gorm:"type:varchar(20);not null;default:'General'"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
}
