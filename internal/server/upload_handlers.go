package server

import (
	"ripple/internal/middleware"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// UploadMedia accepts a multipart "image" file, validates size and sniffed
// content type before anything is written, and returns an absolute URL for
// the stored file so clients can embed it directly.
func (s *Server) UploadMedia(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image file is required"))
	}

	path, svcErr := s.mediaService.Save(c.UserContext(), file)
	if svcErr != nil {
		return respondError(c, svcErr)
	}

	url := c.BaseURL() + path

	middleware.Logger.InfoContext(c.UserContext(), "media uploaded", "url", url)

	return c.JSON(fiber.Map{"fileUrl": url})
}
