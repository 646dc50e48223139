package render

import (
	"bytes"
	"io"

	"github.com/kview-dev/kview/pkg/dom"
)

// DefaultClientScript is where the server serves the browser client.
const DefaultClientScript = "/_kview/client.js"

// RendererConfig configures the page renderer.
type RendererConfig struct {
	// ClientScript is the path of the browser client. Defaults to
	// DefaultClientScript.
	ClientScript string

	// Debug makes the client log every frame to the console.
	Debug bool

	// Lang is the default html lang attribute. Defaults to "en".
	Lang string
}

// Renderer renders documents into HTML pages.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.ClientScript == "" {
		config.ClientScript = DefaultClientScript
	}
	if config.Lang == "" {
		config.Lang = "en"
	}
	return &Renderer{config: config}
}

// RenderBody writes the serialized body element of doc. With withNIDs set
// every element carries its node id.
func (r *Renderer) RenderBody(w io.Writer, doc *dom.Document, withNIDs bool) error {
	return dom.Render(w, doc.Body(), withNIDs)
}

// RenderToString renders a complete page to a string.
func (r *Renderer) RenderToString(page PageData) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, page); err != nil {
		return "", err
	}
	return buf.String(), nil
}
