package server

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/kview-dev/kview/pkg/core"
)

func TestSessionManagerMaxSessionsConcurrent(t *testing.T) {
	const limit, callers = 3, 10

	cfg := testConfig()
	cfg.MaxSessions = limit
	sm := NewSessionManager(cfg)
	defer sm.Shutdown()

	release := make(chan struct{})
	app := func(s *core.Session) error {
		<-release
		return nil
	}

	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := sm.Create(app)
			results <- err
		}()
	}

	// Callers over the limit fail without waiting for the app.
	rejected := 0
	timeout := time.After(2 * time.Second)
wait:
	for rejected < callers-limit {
		select {
		case err := <-results:
			if !errors.Is(err, ErrMaxSessionsReached) {
				t.Errorf("early result = %v, want ErrMaxSessionsReached", err)
			}
			rejected++
		case <-timeout:
			break wait
		}
	}
	close(release)
	wg.Wait()
	close(results)

	created := 0
	for err := range results {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrMaxSessionsReached):
			rejected++
		default:
			t.Errorf("Create: %v", err)
		}
	}
	if created != limit || rejected != callers-limit {
		t.Errorf("created = %d, rejected = %d; want %d, %d", created, rejected, limit, callers-limit)
	}
	if got := sm.Count(); got != limit {
		t.Errorf("Count = %d, want %d", got, limit)
	}
}

func TestSessionManagerReleasesSlotOnAppError(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSessions = 1
	sm := NewSessionManager(cfg)
	defer sm.Shutdown()

	if _, err := sm.Create(func(*core.Session) error { return errors.New("broken") }); err == nil {
		t.Fatal("Create with a failing app succeeded")
	}
	if _, err := sm.Create(func(*core.Session) error { return nil }); err != nil {
		t.Fatalf("Create after a failed app: %v", err)
	}
}
