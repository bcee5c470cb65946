package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

const searchUsersLimit = 20

type updateProfileRequest struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar"`
}

// GetMe returns the caller's own record. This is the only read that
// includes the email address.
func (s *Server) GetMe(c *fiber.Ctx) error {
	user, err := s.userService.GetByID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"handle":     user.Handle,
		"bio":        user.Bio,
		"avatar":     user.Avatar,
		"created_at": user.CreatedAt,
	})
}

// GetProfile returns a public profile with aggregate counts.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	handle := c.Params("handle")
	profile, err := s.userService.GetProfile(c.UserContext(), handle)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// GetUserPosts returns one user's posts in feed shape.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	handle := c.Params("handle")
	p := parsePagination(c, 0)

	posts, err := s.postService.ListUserPosts(c.UserContext(), handle, p.Limit, p.Offset, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(posts)
}

// UpdateProfile overwrites the caller's name and bio with the supplied
// values. There is no partial patch, and the avatar is untouched.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), service.UpdateProfileInput{
		UserID: currentUserID(c),
		Name:   req.Name,
		Bio:    req.Bio,
	})
	if err != nil {
		return respondError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "profile updated", "user_id", user.ID)

	return c.JSON(user)
}

// UpdateAvatar stores the avatar URL string as-is. The server does not
// verify the URL resolves to an image.
func (s *Server) UpdateAvatar(c *fiber.Ctx) error {
	var req updateAvatarRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Avatar == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Avatar URL is required"))
	}

	user, err := s.userService.SetAvatar(c.UserContext(), currentUserID(c), req.Avatar)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// SearchUsers matches display names and handles case-insensitively.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	users, err := s.userService.SearchUsers(c.UserContext(), c.Query("q"), searchUsersLimit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
