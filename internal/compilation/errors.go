package compilation

import (
	"errors"
	"fmt"
)

// ErrUnknownShape is returned when a record carries neither an "arguments"
// list nor a "command" string.
var ErrUnknownShape = errors.New(`record has neither an "arguments" list nor a "command" string`)

// PathEncodingError reports a path that cannot be written as UTF-8 text.
// The database format carries paths as JSON strings, so such a path cannot
// be represented at all.
type PathEncodingError struct {
	Path string
}

func (e *PathEncodingError) Error() string {
	return fmt.Sprintf("path is not valid UTF-8: %q", e.Path)
}
