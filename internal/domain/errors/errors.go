package errors

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// ValidationError describes a malformed checkout request. Reason is safe to
// return to the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidation constructs ValidationError with the given reason.
func NewValidation(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
