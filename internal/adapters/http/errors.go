package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/usvmap/usvmap/internal/core/layout"
)

// APIError is a structured error response.
type APIError struct {
	Status    int    `json:"status"`
	Code      string `json:"code"`    // bad_request, not_found, unavailable, internal_error
	Message   string `json:"message"` // Human-readable message
	RequestID string `json:"request_id,omitempty"`
}

// newError builds a JSON error response with a request ID.
func newError(c *fiber.Ctx, status int, code string, message string) error {
	reqID, _ := c.Locals("requestid").(string)
	return c.Status(status).JSON(APIError{
		Status:    status,
		Code:      code,
		Message:   message,
		RequestID: reqID,
	})
}

// errBadRequest returns a 400 error.
func errBadRequest(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusBadRequest, "bad_request", msg)
}

// errNotFound returns a 404 error.
func errNotFound(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusNotFound, "not_found", msg)
}

// errUnavailable returns a 503 error, used while no dataset can be built.
func errUnavailable(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusServiceUnavailable, "unavailable", msg)
}

// errInternal returns a 500 error.
func errInternal(c *fiber.Ctx, msg string) error {
	return newError(c, fiber.StatusInternalServerError, "internal_error", msg)
}

// errFromView maps ViewService errors onto responses.
func errFromView(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, layout.ErrUnknownEvent):
		return errBadRequest(c, err.Error())
	case errors.Is(err, layout.ErrInvalidZoom), errors.Is(err, layout.ErrUnknownCenterMode):
		return errInternal(c, err.Error())
	default:
		LoggerFromCtx(c.UserContext()).Error("dataset unavailable", "error", err)
		return errUnavailable(c, "dataset unavailable")
	}
}
