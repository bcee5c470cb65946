package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByEmailAbsent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_GetProfileByHandle(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	alice := createTestUser(t, db, "galice")
	bob := createTestUser(t, db, "gbob")

	p1 := &models.Post{UserID: alice.ID, Content: "one"}
	require.NoError(t, posts.Create(ctx, p1, nil))
	p2 := &models.Post{UserID: bob.ID, Content: "bobs"}
	require.NoError(t, posts.Create(ctx, p2, nil))
	require.NoError(t, posts.Like(ctx, alice.ID, p2.ID))

	profile, err := users.GetProfileByHandle(ctx, "galice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, profile.PostsCount)
	assert.EqualValues(t, 1, profile.LikesGivenCount)

	// Bob removes the liked post. Its like row survives the soft delete
	// but must no longer count toward Alice's given likes.
	deleted, err := posts.DeleteOwned(ctx, p2.ID, bob.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	profile, err = users.GetProfileByHandle(ctx, "galice")
	require.NoError(t, err)
	assert.EqualValues(t, 1, profile.PostsCount)
	assert.EqualValues(t, 0, profile.LikesGivenCount)

	_, err = users.GetProfileByHandle(ctx, "ghost")
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepository_Search(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "searchme")
	createTestUser(t, db, "searchtoo")
	createTestUser(t, db, "other")

	found, err := repo.Search(ctx, "SEARCH", 20)
	require.NoError(t, err)
	assert.Len(t, found, 2)

	limited, err := repo.Search(ctx, "search", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	createTestUser(t, db, "taken")

	dup := &models.User{
		Name: "Dup", Email: "other@example.com", Handle: "taken", Password: "hash",
	}
	err := repo.Create(ctx, dup)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeConflict, appErr.Code)
}

func TestUserRepository_CreateDuplicatePostgresError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_users_email"`))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{
		Name: "Dup", Email: "dup@example.com", Handle: "dup", Password: "hash",
	})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
