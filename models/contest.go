package models

// Contest is created by admins and listed publicly. Entries is reserved for
// contest submissions; nothing writes to it yet.
type Contest struct {
	ID          string         `json:"id"` // Full key, "contest:<ts>-<rand>"
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartDate   string         `json:"startDate"`
	EndDate     string         `json:"endDate"`
	Category    string         `json:"category"`
	Entries     []ContestEntry `json:"entries"`
	CreatedAt   string         `json:"createdAt"`
}

// ContestEntry is reserved for contest submissions.
type ContestEntry struct {
	UserID    string `json:"userId"`
	PostID    string `json:"postId"`
	EnteredAt string `json:"enteredAt"`
}
