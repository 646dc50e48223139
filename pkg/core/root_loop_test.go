package core

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/loop"
)

func TestSingleRenderAsyncBurstOnLoop(t *testing.T) {
	l := loop.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Run(ctx)

	doc := dom.NewDocument()
	doc.AppendMount("app")
	s := NewSession(
		WithDocument(doc),
		WithScheduler(l),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	const n = 300
	var r *Root
	ran := 0
	err := l.Call(ctx, func() {
		r = NewRoot(s, "app")
		for i := 0; i < n; i++ {
			r.SingleRenderAsync(func() { ran++ })
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		var done bool
		var pending, count int
		if err := l.Call(ctx, func() {
			pending, count = r.PendingAsync(), ran
			done = pending == 0 && count == n
		}); err != nil {
			t.Fatal(err)
		}
		if done {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("ran %d of %d blocks, %d still pending", count, n, pending)
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := l.Call(ctx, func() {
		if got := r.PatchCount(); got != 2 {
			t.Errorf("PatchCount = %d, want 2 (mount and one batch)", got)
		}
	}); err != nil {
		t.Fatal(err)
	}
}
