package loop

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	var mu sync.Mutex
	var got []int
	for i := 0; i < 5; i++ {
		i := i
		l.Dispatch(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	if err := l.Call(ctx, func() {}); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	for i, v := range got {
		if v != i {
			t.Fatalf("got %v, want ascending order", got)
		}
	}
	if len(got) != 5 {
		t.Fatalf("len(got) = %d, want 5", len(got))
	}
}

func TestLoopRecoversPanics(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	l.Dispatch(func() { panic("boom") })
	ran := false
	if err := l.Call(ctx, func() { ran = true }); err != nil {
		t.Fatal(err)
	}
	if !ran {
		t.Error("loop should keep running after a panic")
	}
}

func TestLoopAfterFuncStop(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	fired := make(chan string, 2)
	var stopped Timer
	l.Call(ctx, func() {
		stopped = l.AfterFunc(0, func() { fired <- "stopped" })
		l.AfterFunc(0, func() { fired <- "kept" })
		stopped.Stop()
	})

	select {
	case got := <-fired:
		if got != "kept" {
			t.Errorf("fired %q, want kept", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestLoopClose(t *testing.T) {
	l := New()
	l.Close()
	if l.Dispatch(func() {}) {
		t.Error("Dispatch after Close should fail")
	}
	if err := l.Call(context.Background(), func() {}); err != ErrClosed {
		t.Errorf("Call err = %v, want ErrClosed", err)
	}
}

func TestManual(t *testing.T) {
	m := NewManual()
	var got []string
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "late") })
	m.Dispatch(func() {
		got = append(got, "a")
		m.Dispatch(func() { got = append(got, "nested") })
	})
	stop := m.AfterFunc(0, func() { got = append(got, "stopped") })
	m.Dispatch(func() { got = append(got, "b") })

	if !stop.Stop() {
		t.Error("Stop should report true for a pending task")
	}
	if m.Pending() != 3 {
		t.Errorf("Pending = %d, want 3", m.Pending())
	}

	if n := m.RunPending(); n != 4 {
		t.Errorf("RunPending = %d, want 4", n)
	}
	want := []string{"a", "b", "nested", "late"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if stop.Stop() {
		t.Error("second Stop should report false")
	}
}

func TestLoopAfterFuncWaitsForFullQueue(t *testing.T) {
	l := New(WithQueueSize(4))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	const n = 20
	fired := make(chan int, n)
	err := l.Call(ctx, func() {
		for i := 0; i < n; i++ {
			i := i
			l.AfterFunc(0, func() { fired <- i })
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[int]bool)
	timeout := time.After(2 * time.Second)
	for len(seen) < n {
		select {
		case i := <-fired:
			seen[i] = true
		case <-timeout:
			t.Fatalf("%d of %d timer callbacks ran", len(seen), n)
		}
	}
}
