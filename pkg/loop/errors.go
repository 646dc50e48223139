package loop

import "errors"

// ErrClosed is returned when a task cannot run because the loop stopped.
var ErrClosed = errors.New("loop: closed")
