package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
)

const maxCommentLen = 1000

// CreateCommentInput carries the fields needed to create a comment.
type CreateCommentInput struct {
	PostID  uint
	UserID  uint
	Content string
}

// CommentService handles comment business logic.
type CommentService interface {
	CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	DeleteComment(ctx context.Context, id, userID uint) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

// CreateComment validates the content and verifies the post exists before
// inserting.
func (s *commentService) CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLen {
		return nil, models.NewValidationError("Comment content is too long")
	}

	if _, err := s.posts.GetByID(ctx, input.PostID, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  input.PostID,
		UserID:  input.UserID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListByPost returns the comments of an existing post, newest first.
func (s *commentService) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.posts.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(ctx, postID)
}

// DeleteComment removes the comment when userID owns it. A missing comment
// and a foreign comment both come back as not found.
func (s *commentService) DeleteComment(ctx context.Context, id, userID uint) error {
	deleted, err := s.comments.DeleteOwned(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Comment")
	}
	return nil
}
