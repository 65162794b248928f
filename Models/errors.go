package Models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced company, vehicle or record no
// longer exists, e.g. it was deleted by another client between reads.
var ErrNotFound = errors.New("not found")

// ValidationError marks user input that was rejected before any state
// changed. Controllers report these inline with a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}
