// Package response writes the JSON envelopes the API speaks: resources wrapped
// under a named key on success, and {"message": ..., "errors": [...]} on failure.
package response

import "github.com/gofiber/fiber/v3"

const (
	MessageServerError = "Server error"
	MessageBadRequest  = "Bad request"
	MessageForbidden   = "Access denied"
	MessageNotFound    = "Not found"
)

// FieldError is one field-level validation problem.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Resource writes the resource under its named key, e.g. {"job": {...}}.
func Resource(c fiber.Ctx, status int, key string, v any) error {
	return c.Status(status).JSON(fiber.Map{key: v})
}

// Envelope writes an arbitrary success body, for responses carrying more than
// one top-level key (the paginated job listing, auth token pairs).
func Envelope(c fiber.Ctx, status int, body fiber.Map) error {
	return c.Status(status).JSON(body)
}

// Message writes a bare {"message": ...} success body.
func Message(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func Error(c fiber.Ctx, status int, message string, fieldErrors []FieldError) error {
	if message == "" {
		message = defaultMessageForStatus(status)
	}
	return c.Status(status).JSON(errorBody{Message: message, Errors: fieldErrors})
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageServerError
		}
		return MessageBadRequest
	}
}
