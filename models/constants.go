package models

// Key prefixes for the KV namespace. Every record key is "<prefix><id-part>";
// for non-profile records the stored id field carries the full key.
const (
	ProfileKeyPrefix      = "profile:"
	PostKeyPrefix         = "post:"
	CommentKeyPrefix      = "comment:"
	NotificationKeyPrefix = "notification:"
	ReportKeyPrefix       = "report:"
	ContestKeyPrefix      = "contest:"
	CredentialKeyPrefix   = "auth:"
)

// Reaction kinds the client offers. The server accepts any kind and creates
// its bucket on first use; these three are pre-seeded on every new post.
const (
	ReactionPaw     = "paw"
	ReactionSniff   = "sniff"
	ReactionTailwag = "tailwag"
)

// Notification types
const (
	NotificationTypeFollow = "follow"
)

// Report statuses. A report starts pending and is moved to a terminal status
// by an admin; the transition is not guarded, so a second review overwrites
// the first.
const (
	ReportStatusPending   = "pending"
	ReportStatusResolved  = "resolved"
	ReportStatusDismissed = "dismissed"
)
