package feed

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError reports a non-2xx answer from the feed endpoint. It is a
// diagnostic, not a fatal failure: callers report it and end the run clean.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d", e.Code)
}
