package panel

import (
	"io"
	"log/slog"
	"testing"

	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/loop"
	"github.com/kview-dev/kview/pkg/vdom"
)

// mount attaches c to a fresh root and returns the root.
func mount(t *testing.T, c core.Component) (*core.Root, *dom.Document) {
	t.Helper()
	doc := dom.NewDocument()
	doc.AppendMount("app")
	s := core.NewSession(
		core.WithDocument(doc),
		core.WithScheduler(loop.NewManual()),
		core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	r := core.NewRoot(s, "app", core.WithInit(func(r *core.Root) { r.Add(c) }))
	return r, doc
}

func keys(vs []*vdom.VNode) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Key
	}
	return out
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func widgets(n int) []*core.Widget {
	out := make([]*core.Widget, n)
	for i := range out {
		out[i] = core.NewWidget("div")
	}
	return out
}
