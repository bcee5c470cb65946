// Package service contains business logic between handlers and repositories.
package service

import (
	"context"
	"strings"
	"time"

	"ripple/internal/cache"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// trendingWindow is how far back tag frequency is counted.
const trendingWindow = 7 * 24 * time.Hour

// trendingLimit caps the trending ranking length.
const trendingLimit = 10

// CreatePostInput carries the fields needed to create a post.
type CreatePostInput struct {
	UserID  uint
	Content string
	Tags    []string
	Media   string
}

// ToggleLikeResult reports the state after a like toggle.
type ToggleLikeResult struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// PostService handles post business logic.
type PostService interface {
	CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error)
	GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	ListFeed(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error)
	ListUserPosts(ctx context.Context, handle string, limit, offset int, currentUserID uint) ([]*models.Post, error)
	SearchPosts(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Post, error)
	DeletePost(ctx context.Context, id, userID uint) error
	ToggleLike(ctx context.Context, userID, postID uint) (*ToggleLikeResult, error)
	TrendingTags(ctx context.Context) ([]models.TagCount, error)
}

type postService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	comments repository.CommentRepository
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, users repository.UserRepository, comments repository.CommentRepository) PostService {
	return &postService{posts: posts, users: users, comments: comments}
}

// CreatePost validates input and stores the post with its ordered tags.
// A post needs content or media; both empty is rejected.
func (s *postService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" && input.Media == "" {
		return nil, models.NewValidationError("Post must have content or media")
	}
	if err := validation.ValidateTags(input.Tags); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		UserID:  input.UserID,
		Content: content,
		Media:   input.Media,
	}
	if err := s.posts.Create(ctx, post, input.Tags); err != nil {
		return nil, err
	}

	observability.PostsCreated.Inc()
	cache.InvalidateTrending(ctx)

	// Reload through the detail query so counts and the author come back.
	return s.posts.GetByID(ctx, post.ID, input.UserID)
}

// GetPost returns a single post with its comments attached.
func (s *postService) GetPost(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, id, currentUserID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	return post, nil
}

func (s *postService) ListFeed(ctx context.Context, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	return s.posts.List(ctx, limit, offset, currentUserID)
}

// ListUserPosts returns a user's posts, distinguishing an unknown handle
// from a user with no posts.
func (s *postService) ListUserPosts(ctx context.Context, handle string, limit, offset int, currentUserID uint) ([]*models.Post, error) {
	user, err := s.users.GetByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User")
	}
	return s.posts.ListByHandle(ctx, handle, limit, offset, currentUserID)
}

func (s *postService) SearchPosts(ctx context.Context, query string, limit int, currentUserID uint) ([]*models.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.posts.Search(ctx, query, limit, currentUserID)
}

// DeletePost removes the post when userID owns it. A missing post and a
// foreign post both come back as not found.
func (s *postService) DeletePost(ctx context.Context, id, userID uint) error {
	deleted, err := s.posts.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Post")
	}
	return nil
}

// ToggleLike likes the post when unliked and unlikes it otherwise.
func (s *postService) ToggleLike(ctx context.Context, userID, postID uint) (*ToggleLikeResult, error) {
	if _, err := s.posts.GetByID(ctx, postID, userID); err != nil {
		return nil, err
	}

	liked, err := s.posts.IsLiked(ctx, userID, postID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := s.posts.Unlike(ctx, userID, postID); err != nil {
			return nil, err
		}
		observability.LikesToggled.WithLabelValues("unliked").Inc()
	} else {
		if err := s.posts.Like(ctx, userID, postID); err != nil {
			return nil, err
		}
		observability.LikesToggled.WithLabelValues("liked").Inc()
	}

	count, err := s.posts.CountLikes(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &ToggleLikeResult{Liked: !liked, LikesCount: count}, nil
}

// TrendingTags serves the ranking from cache when fresh.
func (s *postService) TrendingTags(ctx context.Context) ([]models.TagCount, error) {
	var tags []models.TagCount
	err := cache.Aside(ctx, cache.TrendingKey(), &tags, cache.TrendingTTL, func() error {
		since := time.Now().Add(-trendingWindow)
		fetched, err := s.posts.TrendingTags(ctx, since, trendingLimit)
		if err != nil {
			return err
		}
		tags = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []models.TagCount{}
	}
	return tags, nil
}
