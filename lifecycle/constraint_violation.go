package lifecycle

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// ErrConstraintViolation matches every ConstraintViolationError with errors.Is.
var ErrConstraintViolation = errors.New("constraint violation")

// Codes reported by ConstraintViolationError.
const (
	CodeNonUniqueName = 1103
)

// ConstraintViolationError reports that a submitted value breaks a constraint of the data model.
// It carries no recovery logic and exists to be serialized back to a caller.
type ConstraintViolationError struct {
	Message string
	Code    int
	Field   string
}

// NewConstraintViolationError builds a ConstraintViolationError.
func NewConstraintViolationError(message string, code int, field string) *ConstraintViolationError {
	return &ConstraintViolationError{
		Message: message,
		Code:    code,
		Field:   field,
	}
}

// NewNonUniqueNameError reports that the value of field is already taken.
func NewNonUniqueNameError(field string) *ConstraintViolationError {
	return NewConstraintViolationError(
		fmt.Sprintf("the value of %q must be unique", field),
		CodeNonUniqueName,
		field,
	)
}

func (e *ConstraintViolationError) Error() string {
	return fmt.Sprintf("constraint violation on field %q (code %d): %s", e.Field, e.Code, e.Message)
}

// Is makes errors.Is(err, ErrConstraintViolation) succeed.
func (e *ConstraintViolationError) Is(target error) bool {
	return target == ErrConstraintViolation
}

// ToMap returns the transport representation {code, message, field}.
func (e *ConstraintViolationError) ToMap() map[string]any {
	return map[string]any{
		"code":    e.Code,
		"message": e.Message,
		"field":   e.Field,
	}
}

// MarshalJSON serializes the error as its transport representation.
func (e *ConstraintViolationError) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(e.ToMap())
}
