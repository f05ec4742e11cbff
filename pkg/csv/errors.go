package csv

import (
	"errors"
	"fmt"
)

// ReadError reports a failure of the underlying source.
// The Parser that returned it must not be used again.
type ReadError struct {
	// Line is the line being read when the failure occurred (1-indexed).
	Line int
	// Err is the error returned by the source.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ReadError) Error() string {
	return fmt.Sprintf("read error on line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error {
	return e.Err
}

// ErrCommentStart indicates a comment character that is also structural.
var ErrCommentStart = errors.New("comment start may not contain comma, quote or line terminator")

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field string
	Err   error
}

func (e *OptionsError) Error() string {
	return "csv: invalid " + e.Field + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *OptionsError) Unwrap() error {
	return e.Err
}

func wrapReadError(line int, err error) error {
	if err == nil {
		return nil
	}
	return &ReadError{Line: line, Err: err}
}
