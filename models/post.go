package models

// Post defines the structure for posts in the global feed. Posts are never
// edited or deleted; every mutation toggles or appends to a collection.
type Post struct {
	ID        string              `json:"id"` // Full key, "post:<ts>-<rand>"
	UserID    string              `json:"userId"`
	Content   string              `json:"content"`
	ImageURL  string              `json:"imageUrl,omitempty"`
	VideoURL  string              `json:"videoUrl,omitempty"`
	Hashtags  []string            `json:"hashtags"`  // Stored verbatim, no normalization or dedup
	Likes     []string            `json:"likes"`     // Liker user ids
	Reactions map[string][]string `json:"reactions"` // Reaction kind -> reactor user ids
	Comments  []Comment           `json:"comments"`  // Embedded, append-only
	Reposts   []string            `json:"reposts"`   // Reposter user ids
	CreatedAt string              `json:"createdAt"` // RFC3339
}

// Comment is embedded in Post.Comments and has no independent key.
type Comment struct {
	ID        string `json:"id"` // "comment:<ts>-<rand>"
	UserID    string `json:"userId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// FeedPost is a post joined with its author's current profile for the feed
// response. Profile is null when the author's profile record is missing.
type FeedPost struct {
	Post
	Profile *Profile `json:"profile"`
}

// NewPost returns a post with empty collections and the three standard
// reaction buckets pre-seeded.
func NewPost(id, userID, content, imageURL, videoURL string, hashtags []string, createdAt string) Post {
	if hashtags == nil {
		hashtags = []string{}
	}
	return Post{
		ID:       id,
		UserID:   userID,
		Content:  content,
		ImageURL: imageURL,
		VideoURL: videoURL,
		Hashtags: hashtags,
		Likes:    []string{},
		Reactions: map[string][]string{
			ReactionPaw:     {},
			ReactionSniff:   {},
			ReactionTailwag: {},
		},
		Comments:  []Comment{},
		Reposts:   []string{},
		CreatedAt: createdAt,
	}
}
