package render

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/kview-dev/kview/pkg/dom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Document is the server-side document whose body becomes the page body.
	Document *dom.Document

	// Title is the page title
	Title string

	// Lang overrides the renderer's html lang attribute
	Lang string

	// Meta contains meta tags for the page
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets
	StyleSheets []string

	// Styles contains inline CSS styles
	Styles []string

	// Scripts contains extra script tags, written after the client
	Scripts []ScriptTag

	// SessionID is the session the client attaches to over the websocket.
	// An empty SessionID renders a static page: no node ids, no client.
	SessionID string

	// WSPath is the websocket endpoint of a live page
	WSPath string
}

// Static reports whether the page is rendered without the client.
func (p PageData) Static() bool {
	return p.SessionID == ""
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Content  string // content attribute
	Property string // property attribute (for OpenGraph)
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// clientConfig is the configuration handed to the browser client.
type clientConfig struct {
	Session string `json:"session"`
	WS      string `json:"ws"`
	Debug   bool   `json:"debug,omitempty"`
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if page.Document == nil {
		return fmt.Errorf("render: page without document")
	}
	lang := page.Lang
	if lang == "" {
		lang = r.config.Lang
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", html.EscapeString(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page); err != nil {
		return err
	}
	if err := r.RenderBody(w, page.Document, !page.Static()); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</html>\n")
	return err
}

// renderHead renders the document head section.
func (r *Renderer) renderHead(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<head>\n"+
		`  <meta charset="utf-8">`+"\n"+
		`  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", html.EscapeString(page.Title)); err != nil {
			return err
		}
	}

	for _, meta := range page.Meta {
		if err := renderMetaTag(w, meta); err != nil {
			return err
		}
	}

	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", html.EscapeString(href)); err != nil {
			return err
		}
	}

	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	if !page.Static() {
		if err := r.renderClientScript(w, page); err != nil {
			return err
		}
	}

	for _, script := range page.Scripts {
		if err := renderScriptTag(w, script); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

// renderMetaTag renders a meta element.
func renderMetaTag(w io.Writer, meta MetaTag) error {
	if _, err := io.WriteString(w, "  <meta"); err != nil {
		return err
	}
	for _, attr := range [][2]string{
		{"name", meta.Name},
		{"property", meta.Property},
		{"content", meta.Content},
	} {
		if attr[1] == "" {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, attr[0], html.EscapeString(attr[1])); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">\n")
	return err
}

// renderScriptTag renders a script element.
func renderScriptTag(w io.Writer, script ScriptTag) error {
	if _, err := io.WriteString(w, "  <script"); err != nil {
		return err
	}
	if script.Src != "" {
		if _, err := fmt.Fprintf(w, ` src="%s"`, html.EscapeString(script.Src)); err != nil {
			return err
		}
	}
	if script.Module {
		if _, err := io.WriteString(w, ` type="module"`); err != nil {
			return err
		}
	}
	if script.Defer {
		if _, err := io.WriteString(w, " defer"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, ">%s</script>\n", script.Inline)
	return err
}

// renderClientScript injects the client configuration and the client.
// encoding/json escapes <, > and & so the configuration cannot close the
// script element.
func (r *Renderer) renderClientScript(w io.Writer, page PageData) error {
	cfg, err := json.Marshal(clientConfig{
		Session: page.SessionID,
		WS:      page.WSPath,
		Debug:   r.config.Debug,
	})
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  <script>window.__KVIEW__=%s;</script>\n", cfg); err != nil {
		return err
	}
	return renderScriptTag(w, ScriptTag{Src: r.config.ClientScript, Defer: true})
}
