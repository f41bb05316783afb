package announcement

import "go-portal/internal/notification"

type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
	Type    string `json:"type" binding:"omitempty,oneof=General Important Event"`
}

type AnnouncementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

// CreateResponse pairs the persisted announcement with the broadcast outcome;
// the announcement exists even when the broadcast failed.
type CreateResponse struct {
	Announcement AnnouncementResponse         `json:"announcement"`
	Notification notification.DeliveryOutcome `json:"notification"`
}
