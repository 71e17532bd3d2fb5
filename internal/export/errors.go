package export

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned by Create when the exporter cannot be
// built from the given arguments.
var ErrInvalidConfiguration = errors.New("invalid exporter configuration")

// IOError reports a failure to write an export file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("export %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
