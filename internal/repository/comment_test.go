package repository

import (
	"context"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_CreateLoadsAuthor(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	comments := NewCommentRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "cauthor")
	post := &models.Post{UserID: user.ID, Content: "p"}
	require.NoError(t, posts.Create(ctx, post, nil))

	comment := &models.Comment{PostID: post.ID, UserID: user.ID, Content: "hi"}
	require.NoError(t, comments.Create(ctx, comment))
	assert.Equal(t, "cauthor", comment.User.Handle)
}

func TestCommentRepository_ListByPostNewestFirst(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	comments := NewCommentRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	user := createTestUser(t, db, "clister")
	post := &models.Post{UserID: user.ID, Content: "p"}
	require.NoError(t, posts.Create(ctx, post, nil))

	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"oldest", "newest"} {
		c := &models.Comment{
			PostID: post.ID, UserID: user.ID, Content: content,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(c).Error)
	}

	got, err := comments.ListByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "newest", got[0].Content)
}

func TestCommentRepository_DeleteOwned(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	comments := NewCommentRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "cdowner")
	other := createTestUser(t, db, "cdother")
	post := &models.Post{UserID: owner.ID, Content: "p"}
	require.NoError(t, posts.Create(ctx, post, nil))

	comment := &models.Comment{PostID: post.ID, UserID: owner.ID, Content: "hi"}
	require.NoError(t, comments.Create(ctx, comment))

	deleted, err := comments.DeleteOwned(ctx, comment.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = comments.DeleteOwned(ctx, comment.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
