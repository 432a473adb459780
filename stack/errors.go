package stack

import "errors"

// ErrSizeLimit indicates that a requested or grown stack size does not
// fit under the configured maximum stack size (including, on Windows,
// the room needed for the guard and spill pages). The owning task
// should be failed as out of stack space; the process is fine.
var ErrSizeLimit = errors.New("stack: maximum stack size exceeded")
