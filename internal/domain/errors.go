package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when an analysis entry point receives source
// text that is empty after trimming. It is always fatal to the call.
var ErrEmptyInput = errors.New("source text is empty")

// ErrInvalidDialect is returned when a caller bypasses the typed constants
// and hands the engine a TargetDialect it does not know.
var ErrInvalidDialect = errors.New("invalid target dialect")

// UnrecognizedObjectTypeError reports PL/SQL source whose object type is not
// in the supported closed set. The Head field carries the start of the
// normalized text to make the failure diagnosable.
type UnrecognizedObjectTypeError struct {
	Head string
}

func (e *UnrecognizedObjectTypeError) Error() string {
	return fmt.Sprintf("unrecognized PL/SQL object type near %q", e.Head)
}
