package handlers

import (
	"errors"
	"log"

	"emporium/internal/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the app-wide Fiber error handler. Typed failures map to
// their taxonomy status; anything unclassified becomes a genericized 500 so
// internals never leak to callers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := apperrors.StatusCode(err)
	message := err.Error()

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}

	if status == fiber.StatusInternalServerError {
		log.Printf("Unexpected error on %s: %v", c.Path(), err)
		message = "Something unexpected went wrong."
	}

	return c.Status(status).JSON(apperrors.ApiError{
		Status:  status,
		Message: message,
		Path:    c.Path(),
	})
}
