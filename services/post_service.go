package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"petnet_server/apierr"
	"petnet_server/kv"
	"petnet_server/metrics"
	"petnet_server/models"
	"petnet_server/utils"
)

// leaderboardLimit caps the leaderboard response.
const leaderboardLimit = 10

// PostService manages posts and the derived feed/leaderboard views. All
// mutations are read-modify-write over a single post record: last write wins,
// no isolation.
type PostService struct {
	Store kv.Store
}

// Create persists a new post and bumps the author's postCount. The two
// writes are independent; a concurrent profile write can lose the increment.
func (s *PostService) Create(ctx context.Context, userID, content, imageURL, videoURL string, hashtags []string) (*models.Post, error) {
	if content == "" && imageURL == "" && videoURL == "" {
		return nil, apierr.Validation("content is required")
	}

	id := kv.NewID(models.PostKeyPrefix)
	createdAt := time.Now().UTC().Format(time.RFC3339)
	post := models.NewPost(id, userID, content, imageURL, videoURL, hashtags, createdAt)

	if err := s.Store.Set(ctx, id, post); err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("Failed to store post")
		return nil, apierr.Internal("Internal server error")
	}

	var profile models.Profile
	err := kv.GetAs(ctx, s.Store, profileKey(userID), &profile)
	if err == nil {
		profile.PostCount++
		if err := s.Store.Set(ctx, profileKey(userID), profile); err != nil {
			log.Warn().Err(err).Str("userId", userID).Msg("Failed to bump postCount")
		}
	} else if !errors.Is(err, kv.ErrNotFound) {
		log.Warn().Err(err).Str("userId", userID).Msg("Failed to load profile for postCount")
	}

	metrics.RecordPostCreated()
	log.Info().Str("postId", id).Str("userId", userID).Msg("Post created")
	return &post, nil
}

// Feed returns all posts sorted by creation time descending, each joined
// with its author's current profile. A missing author profile joins as null.
// Equal timestamps keep their scan order.
func (s *PostService) Feed(ctx context.Context) ([]models.FeedPost, error) {
	posts, err := s.allPosts(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})

	profiles := make(map[string]*models.Profile)
	feed := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		profile, seen := profiles[post.UserID]
		if !seen {
			var p models.Profile
			if err := kv.GetAs(ctx, s.Store, profileKey(post.UserID), &p); err == nil {
				profile = &p
			}
			profiles[post.UserID] = profile
		}
		feed = append(feed, models.FeedPost{Post: post, Profile: profile})
	}
	return feed, nil
}

// ToggleLike adds the user to the post's like set, or removes them if
// already present.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID string) (*models.Post, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Likes, _ = utils.ToggleMember(post.Likes, userID)

	if err := s.Store.Set(ctx, post.ID, post); err != nil {
		return nil, apierr.Internal("Internal server error")
	}
	return post, nil
}

// ToggleReaction toggles the user's membership in the reaction bucket for
// kind. Unknown kinds are accepted; their bucket is created on first use.
func (s *PostService) ToggleReaction(ctx context.Context, userID, postID, kind string) (*models.Post, error) {
	if kind == "" {
		return nil, apierr.Validation("reactionType is required")
	}

	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Reactions == nil {
		post.Reactions = map[string][]string{}
	}
	post.Reactions[kind], _ = utils.ToggleMember(post.Reactions[kind], userID)

	if err := s.Store.Set(ctx, post.ID, post); err != nil {
		return nil, apierr.Internal("Internal server error")
	}
	return post, nil
}

// AddComment appends a comment to the post. Comments have no edit or delete
// path.
func (s *PostService) AddComment(ctx context.Context, userID, postID, content string) (*models.Post, error) {
	if content == "" {
		return nil, apierr.Validation("content is required")
	}

	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Comments = append(post.Comments, models.Comment{
		ID:        kv.NewID(models.CommentKeyPrefix),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})

	if err := s.Store.Set(ctx, post.ID, post); err != nil {
		return nil, apierr.Internal("Internal server error")
	}
	return post, nil
}

// ToggleRepost adds the user to the post's repost set, or removes them if
// already present.
func (s *PostService) ToggleRepost(ctx context.Context, userID, postID string) (*models.Post, error) {
	post, err := s.loadPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.Reposts, _ = utils.ToggleMember(post.Reposts, userID)

	if err := s.Store.Set(ctx, post.ID, post); err != nil {
		return nil, apierr.Internal("Internal server error")
	}
	return post, nil
}

// Leaderboard aggregates engagement per post author across all posts and
// returns the top entries by score, profile joined.
func (s *PostService) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	posts, err := s.allPosts(ctx)
	if err != nil {
		return nil, err
	}

	byAuthor := make(map[string]*models.LeaderboardEntry)
	order := []string{}
	for _, post := range posts {
		entry, ok := byAuthor[post.UserID]
		if !ok {
			entry = &models.LeaderboardEntry{UserID: post.UserID}
			byAuthor[post.UserID] = entry
			order = append(order, post.UserID)
		}
		entry.Posts++
		entry.Likes += len(post.Likes)
		for _, reactors := range post.Reactions {
			entry.Reactions += len(reactors)
		}
		entry.Reposts += len(post.Reposts)
	}

	entries := make([]models.LeaderboardEntry, 0, len(order))
	for _, userID := range order {
		entry := byAuthor[userID]
		entry.Score = entry.Likes + entry.Reactions + entry.Reposts

		var profile models.Profile
		if err := kv.GetAs(ctx, s.Store, profileKey(userID), &profile); err == nil {
			entry.Profile = &profile
		}
		entries = append(entries, *entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > leaderboardLimit {
		entries = entries[:leaderboardLimit]
	}
	return entries, nil
}

func (s *PostService) allPosts(ctx context.Context) ([]models.Post, error) {
	raws, err := s.Store.GetByPrefix(ctx, models.PostKeyPrefix)
	if err != nil {
		return nil, apierr.Internal("Internal server error")
	}

	posts := make([]models.Post, 0, len(raws))
	for _, raw := range raws {
		var post models.Post
		if err := json.Unmarshal(raw, &post); err != nil {
			log.Warn().Err(err).Msg("Skipping malformed post record")
			continue
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *PostService) loadPost(ctx context.Context, postID string) (*models.Post, error) {
	if !kv.HasPrefix(postID, models.PostKeyPrefix) {
		return nil, apierr.NotFound("Post not found")
	}

	var post models.Post
	if err := kv.GetAs(ctx, s.Store, postID, &post); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, apierr.NotFound("Post not found")
		}
		return nil, apierr.Internal("Internal server error")
	}
	return &post, nil
}
