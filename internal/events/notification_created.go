package events

import "time"

const NotificationCreatedTopic = "portal.notification.v1"

// NotificationCreatedEvent is relayed through the outbox so connected clients
// can be pushed the new row; the API only guarantees the insert.
type NotificationCreatedEvent struct {
	EventType      string    `json:"event_type"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	OccurredAt     time.Time `json:"occurred_at"`
}
