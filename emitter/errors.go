package emitter

import "errors"

// ErrInvalidPath is returned for an entry whose name is absolute or
// escapes the set root.
var ErrInvalidPath = errors.New("emitter: invalid entry path")
