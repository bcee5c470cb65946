package repository

import (
	"context"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, handle string) *models.User {
	t.Helper()
	user := &models.User{
		Name:     "User " + handle,
		Email:    handle + "@example.com",
		Handle:   handle,
		Password: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestPostRepository_CreateAndGet(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "writer")

	post := &models.Post{UserID: user.ID, Content: "hello"}
	require.NoError(t, repo.Create(ctx, post, []string{"b", "a", "c"}))

	got, err := repo.GetByID(ctx, post.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)
	// Tags come back in the author's order, not sorted.
	assert.Equal(t, []string{"b", "a", "c"}, got.Tags)
	assert.Equal(t, "writer", got.User.Handle)
	assert.Zero(t, got.LikesCount)
	assert.False(t, got.IsLiked)
}

func TestPostRepository_GetByIDMissing(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(context.Background(), 42, 0)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestPostRepository_LikeToggleRace(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "liker")

	post := &models.Post{UserID: user.ID, Content: "likeable"}
	require.NoError(t, repo.Create(ctx, post, nil))

	// Inserting twice must not create two rows; the composite key plus
	// ON CONFLICT DO NOTHING absorbs the duplicate.
	require.NoError(t, repo.Like(ctx, user.ID, post.ID))
	require.NoError(t, repo.Like(ctx, user.ID, post.ID))

	count, err := repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	liked, err := repo.IsLiked(ctx, user.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, repo.Unlike(ctx, user.ID, post.ID))
	count, err = repo.CountLikes(ctx, post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPostRepository_DeleteOwned(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	owner := createTestUser(t, db, "powner")
	other := createTestUser(t, db, "pother")

	post := &models.Post{UserID: owner.ID, Content: "mine"}
	require.NoError(t, repo.Create(ctx, post, nil))

	deleted, err := repo.DeleteOwned(ctx, post.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.DeleteOwned(ctx, post.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteOwned(ctx, post.ID, owner.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestPostRepository_TrendingTags(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "trender")

	recent := &models.Post{UserID: user.ID, Content: "recent"}
	require.NoError(t, repo.Create(ctx, recent, []string{"go", "db"}))
	recent2 := &models.Post{UserID: user.ID, Content: "recent2"}
	require.NoError(t, repo.Create(ctx, recent2, []string{"go"}))

	old := &models.Post{UserID: user.ID, Content: "old"}
	require.NoError(t, repo.Create(ctx, old, []string{"go", "stale"}))
	require.NoError(t, db.Exec(
		"UPDATE posts SET created_at = ? WHERE id = ?",
		time.Now().Add(-30*24*time.Hour), old.ID).Error)

	counts, err := repo.TrendingTags(ctx, time.Now().Add(-7*24*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, models.TagCount{Tag: "go", Count: 2}, counts[0])
	assert.Equal(t, models.TagCount{Tag: "db", Count: 1}, counts[1])
}

func TestPostRepository_ListUnbounded(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	user := createTestUser(t, db, "paginator")

	for i := 0; i < 5; i++ {
		post := &models.Post{UserID: user.ID, Content: "p"}
		require.NoError(t, repo.Create(ctx, post, nil))
	}

	all, err := repo.List(ctx, 0, 0, user.ID)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	limited, err := repo.List(ctx, 2, 0, user.ID)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}
