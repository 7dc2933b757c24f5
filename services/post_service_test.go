package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petnet_server/apierr"
	"petnet_server/kv"
	"petnet_server/models"
)

func TestCreatePostInitializesCollections(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}
	seedProfile(t, store, "u1", "Rex", false)

	post, err := svc.Create(ctx, "u1", "hi #Zoomies", "", "", []string{"#Zoomies"})
	require.NoError(t, err)

	assert.True(t, kv.HasPrefix(post.ID, models.PostKeyPrefix))
	assert.Equal(t, "u1", post.UserID)
	assert.Equal(t, []string{"#Zoomies"}, post.Hashtags)
	assert.Empty(t, post.Likes)
	assert.Empty(t, post.Comments)
	assert.Empty(t, post.Reposts)
	// The three standard reaction buckets are pre-seeded
	assert.Contains(t, post.Reactions, models.ReactionPaw)
	assert.Contains(t, post.Reactions, models.ReactionSniff)
	assert.Contains(t, post.Reactions, models.ReactionTailwag)
}

func TestCreatePostIncrementsPostCount(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}
	seedProfile(t, store, "u1", "Rex", false)

	_, err := svc.Create(ctx, "u1", "first", "", "", nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, "u1", "second", "", "", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, getProfile(t, store, "u1").PostCount)
}

func TestCreatePostWithoutProfileStillSucceeds(t *testing.T) {
	svc := &PostService{Store: kv.NewMemoryStore()}

	post, err := svc.Create(context.Background(), "ghost", "hello", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "ghost", post.UserID)
}

func TestCreatePostRequiresContent(t *testing.T) {
	svc := &PostService{Store: kv.NewMemoryStore()}

	_, err := svc.Create(context.Background(), "u1", "", "", "", nil)
	require.Error(t, err)
	assert.Equal(t, apierr.CodeValidation, apierr.From(err).Code)

	// Image-only posts are fine
	_, err = svc.Create(context.Background(), "u1", "", "pet-media/pic.jpg", "", nil)
	assert.NoError(t, err)
}

func TestFeedSortsNewestFirstAndJoinsProfiles(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}

	seedProfile(t, store, "u1", "Rex", false)
	seedPost(t, store, "post:1-a", "u1", "2024-01-01T10:00:00Z")
	seedPost(t, store, "post:2-b", "u1", "2024-01-03T10:00:00Z")
	seedPost(t, store, "post:3-c", "ghost", "2024-01-02T10:00:00Z")

	feed, err := svc.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)

	assert.Equal(t, "post:2-b", feed[0].ID)
	assert.Equal(t, "post:3-c", feed[1].ID)
	assert.Equal(t, "post:1-a", feed[2].ID)

	require.NotNil(t, feed[0].Profile)
	assert.Equal(t, "Rex", feed[0].Profile.PetName)
	// Missing author profile joins as null, not an error
	assert.Nil(t, feed[1].Profile)
}

func TestFeedPreservesScanOrderOnEqualTimestamps(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}

	seedPost(t, store, "post:1-a", "u1", "2024-01-01T10:00:00Z")
	seedPost(t, store, "post:2-b", "u1", "2024-01-01T10:00:00Z")

	feed, err := svc.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "post:1-a", feed[0].ID)
	assert.Equal(t, "post:2-b", feed[1].ID)
}

func TestToggleLikeIdempotentPair(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}
	seedPost(t, store, "post:1-a", "u1", "2024-01-01T10:00:00Z")

	post, err := svc.ToggleLike(ctx, "u2", "post:1-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, post.Likes)

	post, err = svc.ToggleLike(ctx, "u2", "post:1-a")
	require.NoError(t, err)
	assert.Empty(t, post.Likes)
}

func TestToggleLikePostNotFound(t *testing.T) {
	svc := &PostService{Store: kv.NewMemoryStore()}

	_, err := svc.ToggleLike(context.Background(), "u1", "post:missing")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeNotFound, apierr.From(err).Code)

	// An id without the post prefix must not address another record type
	_, err = svc.ToggleLike(context.Background(), "u1", "profile:u1")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeNotFound, apierr.From(err).Code)
}

func TestToggleReactionKnownAndUnknownKinds(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}
	seedPost(t, store, "post:1-a", "u1", "2024-01-01T10:00:00Z")

	post, err := svc.ToggleReaction(ctx, "u2", "post:1-a", models.ReactionPaw)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, post.Reactions[models.ReactionPaw])

	// Unknown kind creates its bucket on first use
	post, err = svc.ToggleReaction(ctx, "u2", "post:1-a", "zoomies")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, post.Reactions["zoomies"])

	post, err = svc.ToggleReaction(ctx, "u2", "post:1-a", "zoomies")
	require.NoError(t, err)
	assert.Empty(t, post.Reactions["zoomies"])
}

func TestToggleReactionRequiresKind(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}
	seedPost(t, store, "post:1-a", "u1", "2024-01-01T10:00:00Z")

	_, err := svc.ToggleReaction(context.Background(), "u2", "post:1-a", "")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeValidation, apierr.From(err).Code)
}

func TestAddCommentAppends(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}
	seedPost(t, store, "post:1-a", "u1", "2024-01-01T10:00:00Z")

	post, err := svc.AddComment(ctx, "u2", "post:1-a", "cute!")
	require.NoError(t, err)
	post, err = svc.AddComment(ctx, "u3", "post:1-a", "very cute!")
	require.NoError(t, err)

	require.Len(t, post.Comments, 2)
	assert.Equal(t, "u2", post.Comments[0].UserID)
	assert.Equal(t, "cute!", post.Comments[0].Content)
	assert.True(t, kv.HasPrefix(post.Comments[0].ID, models.CommentKeyPrefix))
	assert.NotEmpty(t, post.Comments[0].CreatedAt)
}

func TestAddCommentRequiresContent(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}
	seedPost(t, store, "post:1-a", "u1", "2024-01-01T10:00:00Z")

	_, err := svc.AddComment(context.Background(), "u2", "post:1-a", "")
	require.Error(t, err)
	assert.Equal(t, apierr.CodeValidation, apierr.From(err).Code)
}

func TestToggleRepost(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}
	seedPost(t, store, "post:1-a", "u1", "2024-01-01T10:00:00Z")

	post, err := svc.ToggleRepost(ctx, "u2", "post:1-a")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, post.Reposts)

	post, err = svc.ToggleRepost(ctx, "u2", "post:1-a")
	require.NoError(t, err)
	assert.Empty(t, post.Reposts)
}

func TestLeaderboardAggregatesAndRanks(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	svc := &PostService{Store: store}

	seedProfile(t, store, "u1", "Rex", false)
	seedProfile(t, store, "u2", "Bella", false)

	busy := models.NewPost("post:1-a", "u1", "woof", "", "", nil, "2024-01-01T10:00:00Z")
	busy.Likes = []string{"a", "b", "c"}
	busy.Reactions[models.ReactionPaw] = []string{"a", "b"}
	busy.Reposts = []string{"a"}
	require.NoError(t, store.Set(ctx, busy.ID, busy))

	quiet := models.NewPost("post:2-b", "u2", "meow", "", "", nil, "2024-01-01T11:00:00Z")
	quiet.Likes = []string{"a"}
	require.NoError(t, store.Set(ctx, quiet.ID, quiet))

	entries, err := svc.Leaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "u1", entries[0].UserID)
	assert.Equal(t, 6, entries[0].Score)
	assert.Equal(t, 3, entries[0].Likes)
	assert.Equal(t, 2, entries[0].Reactions)
	assert.Equal(t, 1, entries[0].Reposts)
	assert.Equal(t, 1, entries[0].Posts)
	require.NotNil(t, entries[0].Profile)
	assert.Equal(t, "Rex", entries[0].Profile.PetName)

	assert.Equal(t, "u2", entries[1].UserID)
	assert.Equal(t, 1, entries[1].Score)
}
