package handlers

import (
	"fmt"

	"emporium/internal/apperrors"
	"emporium/internal/audit"
	"emporium/internal/middleware"
	"emporium/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// auditContext builds the per-call audit context from the resolved auth
// claims and client address. It is passed down the call chain explicitly.
func auditContext(c *fiber.Ctx) audit.Context {
	username, _ := c.Locals(middleware.LocalUsername).(string)
	ip, _ := c.Locals(middleware.LocalClientIP).(string)
	if ip == "" {
		ip = middleware.ClientIP(c)
	}
	return audit.Context{Username: username, IPAddress: ip}
}

// paramID parses a path parameter as an entity id. Negative values are left
// for the services to reject with their own messages.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := c.ParamsInt(name)
	if err != nil {
		return 0, apperrors.Invalid("Path parameter %s must be a number.", name)
	}
	return int64(id), nil
}

// validationFailed renders field-level tag violations the same way for every
// handler.
func validationFailed(c *fiber.Ctx, err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// resultResponse unwraps the service Result channel: failures become a 400
// with the collected error messages, successes carry the payload.
func resultResponse(c *fiber.Ctx, result *services.Result, successStatus int) error {
	if !result.IsSuccess() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": result.ErrorMessages(),
		})
	}
	return c.Status(successStatus).JSON(result.Data)
}
