package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"

	"github.com/kview-dev/kview/internal/errors"
	"github.com/kview-dev/kview/pkg/core"
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/loop"
	"github.com/kview-dev/kview/pkg/render"
)

// IndexFile is the name of the exported page.
const IndexFile = "index.html"

// ContentTypeHTML is the content type of the exported page.
const ContentTypeHTML = "text/html; charset=utf-8"

// maxDrainRounds bounds the scheduler drain for apps that keep rescheduling.
const maxDrainRounds = 64

// App builds the user interface of an exported page.
type App func(s *core.Session) error

// Options configures an export.
type Options struct {
	Title       string
	Lang        string
	Meta        []render.MetaTag
	StyleSheets []string
	Styles      []string
	Logger      *slog.Logger
}

// Result describes a completed export.
type Result struct {
	// ID identifies the export run.
	ID string

	// Files lists the published names.
	Files []string

	// Bytes is the total size of the published files.
	Bytes int
}

// Render runs app and writes the static page to w.
func Render(w io.Writer, app App, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	doc := dom.NewDocument()
	sched := loop.NewManual()
	ui := core.NewSession(
		core.WithDocument(doc),
		core.WithScheduler(sched),
		core.WithLogger(logger),
		core.WithSyncMode(true),
	)
	defer ui.DisposeAll()

	if err := runApp(app, ui); err != nil {
		return errors.New("E180").WithDetail("application failed").Wrap(err)
	}
	for i := 0; i < maxDrainRounds && sched.Pending() > 0; i++ {
		sched.RunPending()
	}
	if n := sched.Pending(); n > 0 {
		logger.Warn("export: tasks still pending after render", "pending", n)
	}

	renderer := render.NewRenderer(render.RendererConfig{Lang: opts.Lang})
	err := renderer.RenderPage(w, render.PageData{
		Document:    doc,
		Title:       opts.Title,
		Meta:        opts.Meta,
		StyleSheets: opts.StyleSheets,
		Styles:      opts.Styles,
	})
	if err != nil {
		return errors.New("E180").WithDetail("render page").Wrap(err)
	}
	return nil
}

// Export renders app and publishes the page as IndexFile.
func Export(ctx context.Context, app App, pub Publisher, opts Options) (*Result, error) {
	var buf bytes.Buffer
	if err := Render(&buf, app, opts); err != nil {
		return nil, err
	}

	res := &Result{ID: uuid.NewString()}
	if err := pub.Publish(ctx, IndexFile, buf.Bytes(), ContentTypeHTML); err != nil {
		return nil, errors.New("E180").WithDetailf("publish %s", IndexFile).Wrap(err)
	}
	res.Files = append(res.Files, IndexFile)
	res.Bytes += buf.Len()

	if opts.Logger != nil {
		opts.Logger.Info("export complete",
			"id", res.ID,
			"files", len(res.Files),
			"bytes", res.Bytes,
			"target", pub.String(),
		)
	}
	return res, nil
}

func runApp(app App, ui *core.Session) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return app(ui)
}
