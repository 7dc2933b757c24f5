package models

// LeaderboardEntry is a derived aggregate: one row per post author, scored by
// the engagement their posts have received. Computed at request time from a
// full post scan, never stored.
type LeaderboardEntry struct {
	UserID    string   `json:"userId"`
	Profile   *Profile `json:"profile"` // Null when the author's profile is missing
	Posts     int      `json:"posts"`
	Likes     int      `json:"likes"`
	Reactions int      `json:"reactions"`
	Reposts   int      `json:"reposts"`
	Score     int      `json:"score"` // likes + reactions + reposts
}
