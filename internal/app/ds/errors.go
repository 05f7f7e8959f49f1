package ds

import "errors"

// ErrShipNotFound is returned by every repository operation that targets an
// id the store does not hold. The text goes to the client verbatim.
var ErrShipNotFound = errors.New("Ship not found")

// ValidationError marks a rejected payload. Message is exactly what the API
// returns in the "error" field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
