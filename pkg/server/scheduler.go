package server

import (
	"time"

	"github.com/kview-dev/kview/pkg/loop"
)

// flushingScheduler runs flush after every task it posts, so each loop
// task ships the mutations it caused.
type flushingScheduler struct {
	loop  *loop.Loop
	flush func()
}

func (s *flushingScheduler) Dispatch(fn func()) bool {
	return s.loop.Dispatch(func() {
		defer s.flush()
		fn()
	})
}

func (s *flushingScheduler) AfterFunc(d time.Duration, fn func()) loop.Timer {
	return s.loop.AfterFunc(d, func() {
		defer s.flush()
		fn()
	})
}
