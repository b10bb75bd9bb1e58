package rinchi

import (
	"errors"
	"fmt"
)

// Error is a RInChI reading or writing failure. Its message is the text
// reported to callers unchanged.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// IsError returns true if err is or wraps an *Error.
func IsError(err error) bool {
	var re *Error
	return errors.As(err, &re)
}
