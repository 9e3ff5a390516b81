package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedActivity means an activity line could not be parsed.
	ErrMalformedActivity = errors.New("malformed activity")
	// ErrMissingColumn means a required participant column was not found.
	ErrMissingColumn = errors.New("missing column")
)

// LineError ties an input error to its file position.
type LineError struct {
	Source string
	Line   int
	Err    error
}

func (e *LineError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Err.Error())
}

func (e *LineError) Unwrap() error { return e.Err }
