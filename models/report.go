package models

// Report is a moderation report filed by any authenticated user against any
// item. Review fields stay empty until an admin resolves or dismisses it.
type Report struct {
	ID               string `json:"id"` // Full key, "report:<ts>-<rand>"
	ReporterID       string `json:"reporterId"`
	ReportedItemID   string `json:"reportedItemId"`
	ReportedItemType string `json:"reportedItemType"` // e.g. "post", "profile", "comment"
	Reason           string `json:"reason"`
	Description      string `json:"description"`
	Status           string `json:"status"` // pending | resolved | dismissed
	Action           string `json:"action,omitempty"`
	ReviewedBy       string `json:"reviewedBy,omitempty"`
	ReviewedAt       string `json:"reviewedAt,omitempty"`
	CreatedAt        string `json:"createdAt"`
}
