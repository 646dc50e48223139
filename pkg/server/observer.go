package server

import (
	"time"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/engine"
)

// Observer receives server and render measurements. *metrics.Recorder
// implements it.
type Observer interface {
	core.RenderObserver
	SessionOpened()
	SessionClosed()
	ObserveEvent(eventType string, err error)
	FramesSent(n int)
	WebSocketError(kind string)
}

type nopObserver struct{}

func (nopObserver) ObservePatch(string, time.Duration, engine.Stats) {}
func (nopObserver) ObserveBatch(string, int)                         {}
func (nopObserver) SessionOpened()                                   {}
func (nopObserver) SessionClosed()                                   {}
func (nopObserver) ObserveEvent(string, error)                       {}
func (nopObserver) FramesSent(int)                                   {}
func (nopObserver) WebSocketError(string)                            {}
