package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createCommentRequest struct {
	Content string `json:"content"`
}

// GetComments returns a post's comments, newest first.
func (s *Server) GetComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, svcErr := s.commentService.ListByPost(c.UserContext(), postID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(comments)
}

// CreateComment adds a comment to an existing post.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req createCommentRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, svcErr := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		PostID:  postID,
		UserID:  currentUserID(c),
		Content: req.Content,
	})
	if svcErr != nil {
		return respondError(c, svcErr)
	}

	middleware.Logger.InfoContext(c.UserContext(), "comment created",
		"comment_id", comment.ID, "post_id", postID)

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// DeleteComment removes the caller's comment. Missing and foreign comments
// both answer 404.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.commentService.DeleteComment(c.UserContext(), id, currentUserID(c)); svcErr != nil {
		return respondError(c, svcErr)
	}

	middleware.Logger.InfoContext(c.UserContext(), "comment deleted", "comment_id", id)

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
