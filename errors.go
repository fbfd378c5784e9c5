package instructor

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for instructor. Use errors.Is to check.
var (
	ErrInvalidTypeShape = errors.New("typehint is not an iterable of candidate models")
	ErrEmptyModelSet    = errors.New("at least one candidate model is required")
	ErrDuplicateModel   = errors.New("duplicate candidate model name")
	ErrModeMismatch     = errors.New("unsupported decode mode")
	ErrUnknownTool      = errors.New("unknown tool name")
	ErrValidation       = errors.New("validation failed")
)

// TypeShapeError reports a typehint that does not have the required
// "slice (or array) of candidates" shape. It names the offending type.
type TypeShapeError struct {
	Type reflect.Type
}

func (e *TypeShapeError) Error() string {
	return fmt.Sprintf("typehint %v is not a slice of candidate models", e.Type)
}

// Is supports errors.Is(err, ErrInvalidTypeShape).
func (e *TypeShapeError) Is(target error) bool { return target == ErrInvalidTypeShape }

// UnknownToolError reports a call whose declared name has no candidate in
// the registry. It ends the decode sequence; instances already yielded stand.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool name %q", e.Name)
}

// Is supports errors.Is(err, ErrUnknownTool).
func (e *UnknownToolError) Is(target error) bool { return target == ErrUnknownTool }

// ValidationError reports a call payload that failed its matched candidate's
// validation. Model is the candidate's declared name; Err is the underlying
// cause (JSON parse error, schema violation, or custom validation failure).
type ValidationError struct {
	Model string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("model %q: validation failed: %v", e.Model, e.Err)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is supports errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// newModeMismatchError reports a decode invoked under a convention this
// package does not implement. A caller contract violation, not recoverable.
func newModeMismatchError(mode Mode) error {
	return fmt.Errorf("%w: %q (only %q can be decoded)", ErrModeMismatch, mode, ModeParallelTools)
}
