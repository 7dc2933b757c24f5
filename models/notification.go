package models

// Notification is created as a side effect of other operations (currently
// only follows) and delivered by polling. The read flag moves false -> true
// exactly once; nothing ever unreads a notification.
type Notification struct {
	ID         string `json:"id"` // Full key, "notification:<ts>-<rand>"
	UserID     string `json:"userId"`     // Recipient
	Type       string `json:"type"`       // e.g. "follow"
	FromUserID string `json:"fromUserId"` // Originating user
	Message    string `json:"message"`
	Read       bool   `json:"read"`
	CreatedAt  string `json:"createdAt"`
}
