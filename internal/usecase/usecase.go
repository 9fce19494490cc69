// Package usecase holds the application services sitting between the HTTP
// handlers and the repositories. Role and ownership checks live here, not in
// the delivery layer.
package usecase

import (
	"errors"
	"fmt"
	"strings"

	"hirehub/internal/domain/user"

	"github.com/google/uuid"
)

var ErrInternal = errors.New("internal error")

// Identity is the authenticated caller, resolved from the bearer token.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
}

type FieldError struct {
	Field   string
	Message string
}

// ValidationError carries field-level problems back to the handler, which
// renders them as the errors array of the 400 response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// internalErr wraps the cause under ErrInternal so handlers can classify it
// while the error middleware still logs the original fault.
func internalErr(err error) error {
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
