package notification

type NotificationResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	Type      string  `json:"type"`
	Read      bool    `json:"read"`
	Link      *string `json:"link,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// DeliveryOutcome is the explicit best-effort side of a two-phase result: the
// primary transition reports its own success, this reports whether the fanout
// landed. It is never an abortive error.
type DeliveryOutcome struct {
	Delivered bool   `json:"delivered"`
	Count     int    `json:"count,omitempty"`
	Error     string `json:"error,omitempty"`
}
