package server

import (
	"errors"

	"ripple/internal/middleware"
	"ripple/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil after seeing it so Fiber's
// ErrorHandler does not overwrite the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds parsed limit/offset query parameters.
type Pagination struct {
	Limit  int
	Offset int
}

const maxPaginationLimit = 100

// parsePagination extracts limit and offset query parameters. A defaultLimit
// of zero means unbounded when the client sends no limit.
func parsePagination(c *fiber.Ctx, defaultLimit int) Pagination {
	limit := c.QueryInt("limit", defaultLimit)
	if limit < 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return Pagination{Limit: limit, Offset: offset}
}

// parseID extracts a route parameter by name as a positive uint. On failure
// it writes a 400 JSON response and returns errResponseWritten; callers
// should check: if err != nil { return nil }.
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondError maps an AppError code onto the HTTP status and writes the
// standardized error body. Non-AppError values become opaque 500s.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeNotFound:
		status = fiber.StatusNotFound
	case models.CodeValidation, models.CodeConflict:
		status = fiber.StatusBadRequest
	case models.CodeUnauthorized:
		status = fiber.StatusUnauthorized
	case models.CodeInternal:
		middleware.Logger.ErrorContext(c.UserContext(), "internal error", "error", appErr.Err)
	}
	return models.RespondWithError(c, status, appErr)
}
