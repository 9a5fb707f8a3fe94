package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every [ValidationError].
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidID is returned for identities that are not 24-character hex strings.
	ErrInvalidID = errors.New("invalid object id")
)

// FieldError describes a single violated constraint.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Tag is the validation tag that failed (e.g. "min", "url_pattern").
	Tag string
	// Message is the user-facing description of the violation.
	Message string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

// Error joins the messages of all failed fields with ", ".
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}

	return strings.Join(messages, ", ")
}

// Unwrap lets errors.Is match [ErrInvalidInput].
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
