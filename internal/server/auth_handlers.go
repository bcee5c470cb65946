package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and returns a session token with the user.
func (s *Server) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Handle:   req.Handle,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		"user_id", user.ID, "handle", user.Handle)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login verifies credentials and returns a session token with the user.
// Unknown email and wrong password produce the same 401.
func (s *Server) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	user, err := s.userService.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user logged in", "user_id", user.ID)

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
