package service

import (
	"errors"
	"fmt"
)

var ErrUserCreditsNotFound = errors.New("user credits not found")

// ValidationError marks a client-side failure of the ingestion pipeline:
// wrong file type, missing columns, malformed dates, unknown categories,
// duplicate plans. Controllers map it to a 400 response; everything else
// becomes a 500.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
