// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tags []string) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	ListByHandle(ctx context.Context, handle string, limit, offset int, currentUserID uint) ([]*models.Post, error)
	Search(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Post, error)
	DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error)
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	CountLikes(ctx context.Context, postID uint) (int64, error)
	TrendingTags(ctx context.Context, since time.Time, limit int) ([]models.TagCount, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and its ordered tag rows in one transaction.
func (r *postRepository) Create(ctx context.Context, post *models.Post, tags []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		for i, tag := range tags {
			row := models.PostTag{PostID: post.ID, Position: i, Tag: tag}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("TagRows", tagOrder).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post")
		}
		return nil, models.NewInternalError(err)
	}
	post.FlattenTags()
	return &post, nil
}

// List returns posts newest first. A non-positive limit returns the full feed.
func (r *postRepository) List(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	q := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("TagRows", tagOrder).
		Order("posts.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var posts []*models.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	flattenAll(posts)
	return posts, nil
}

func (r *postRepository) ListByHandle(ctx context.Context, handle string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	q := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("TagRows", tagOrder).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("users.handle = ?", handle).
		Order("posts.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if offset > 0 {
		q = q.Offset(offset)
	}

	var posts []*models.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	flattenAll(posts)
	return posts, nil
}

// Search matches case-insensitively on post content or any tag.
func (r *postRepository) Search(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Post, error) {
	like := "%" + query + "%"
	var posts []*models.Post
	err := r.applyPostDetails(r.db.WithContext(ctx), currentUserID).
		Preload("User").
		Preload("TagRows", tagOrder).
		Where(
			"LOWER(posts.content) LIKE LOWER(?) OR EXISTS(SELECT 1 FROM post_tags WHERE post_tags.post_id = posts.id AND LOWER(post_tags.tag) LIKE LOWER(?))",
			like, like,
		).
		Order("posts.created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	flattenAll(posts)
	return posts, nil
}

// DeleteOwned removes the post only when ownerID owns it. Returns false when
// no row matched, without revealing whether the post exists at all.
func (r *postRepository) DeleteOwned(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Post{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// Like inserts a like row. ON CONFLICT DO NOTHING keeps concurrent toggles
// from producing duplicate rows for the composite key.
func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, post_id, created_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id, post_id) DO NOTHING`,
		userID, postID, time.Now().UTC(),
	)
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// TrendingTags ranks tags by frequency over posts created at or after since.
// Every tag of every post counts; ties break alphabetically for a stable order.
func (r *postRepository) TrendingTags(ctx context.Context, since time.Time, limit int) ([]models.TagCount, error) {
	var counts []models.TagCount
	err := r.db.WithContext(ctx).Raw(
		`SELECT post_tags.tag AS tag, COUNT(*) AS count
		 FROM post_tags
		 JOIN posts ON posts.id = post_tags.post_id
		 WHERE posts.created_at >= ? AND posts.deleted_at IS NULL
		 GROUP BY post_tags.tag
		 ORDER BY count DESC, tag ASC
		 LIMIT ?`,
		since, limit,
	).Scan(&counts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return counts, nil
}

// applyPostDetails adds subqueries computing counts and liked status in a
// single query.
func (r *postRepository) applyPostDetails(db *gorm.DB, currentUserID uint) *gorm.DB {
	selectQuery := "posts.*, " +
		"(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) as comments_count, " +
		"(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) as likes_count"

	if currentUserID != 0 {
		return db.Select(selectQuery+", EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_id = ?) as is_liked", currentUserID)
	}
	return db.Select(selectQuery + ", 0 as is_liked")
}

func tagOrder(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func flattenAll(posts []*models.Post) {
	for _, p := range posts {
		p.FlattenTags()
	}
}
