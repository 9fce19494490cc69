package middleware

import (
	"errors"
	"log"

	"hirehub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Fields     []response.FieldError
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

func NewValidationAppError(fields []response.FieldError, cause error) *AppError {
	return &AppError{
		StatusCode: fiber.StatusBadRequest,
		Message:    response.MessageBadRequest,
		Fields:     fields,
		Cause:      cause,
	}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware turns every error escaping a handler into the JSON error shape.
// Anything 5xx is logged with its cause and collapsed to a generic message so
// internal detail never reaches the client.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered | method=%s path=%s panic=%v", c.Method(), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, fields := m.normalize(err)
		if status >= 500 {
			m.logger.Printf("request failed | method=%s path=%s status=%d err=%v", c.Method(), c.Path(), status, err)
			return response.Error(c, status, response.MessageServerError, nil)
		}
		return response.Error(c, status, msg, fields)
	}
}

func (m *ErrorMiddleware) normalize(err error) (int, string, []response.FieldError) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		return status, appErr.Message, appErr.Fields
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		return status, fiberErr.Message, nil
	}

	return fiber.StatusInternalServerError, response.MessageServerError, nil
}
