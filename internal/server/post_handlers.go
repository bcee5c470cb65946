package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

const searchPostsLimit = 50

type createPostRequest struct {
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Media   string   `json:"media"`
}

// GetFeed returns the post feed, newest first. Without a limit parameter the
// whole feed comes back.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	p := parsePagination(c, 0)
	posts, err := s.postService.ListFeed(c.UserContext(), p.Limit, p.Offset, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// CreatePost creates a post for the authenticated user.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  currentUserID(c),
		Content: req.Content,
		Tags:    req.Tags,
		Media:   req.Media,
	})
	if err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post created", "post_id", post.ID)

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost returns one post with its comments attached.
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, svcErr := s.postService.GetPost(c.UserContext(), id, currentUserID(c))
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(post)
}

// DeletePost removes the caller's post. A post that does not exist and a
// post owned by someone else both answer 404.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.postService.DeletePost(c.UserContext(), id, currentUserID(c)); svcErr != nil {
		return respondError(c, svcErr)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post deleted", "post_id", id)

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

// ToggleLike flips the caller's like on a post and reports the new state.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	result, svcErr := s.postService.ToggleLike(c.UserContext(), currentUserID(c), id)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(result)
}

// SearchPosts matches post content and tags case-insensitively.
func (s *Server) SearchPosts(c *fiber.Ctx) error {
	posts, err := s.postService.SearchPosts(c.UserContext(), c.Query("q"), searchPostsLimit, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// GetTrendingTags returns the most used tags over the last seven days.
func (s *Server) GetTrendingTags(c *fiber.Ctx) error {
	tags, err := s.postService.TrendingTags(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tags)
}
