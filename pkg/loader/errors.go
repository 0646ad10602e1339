package loader

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is the cause of a ParseError for lines that do not have
// the expected fields
var ErrMalformedLine = errors.New("malformed line")

// ParseError reports the file and 1-based line of an unparsable record
type ParseError struct {
	Path  string
	Line  int
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}
