// Package render produces complete HTML pages around a server-side
// document.
//
// A live page carries node ids (data-kv-nid) on every element so the
// browser client can address the nodes named by mutation frames, plus a
// small configuration script telling the client which session to attach
// to. A static page, used by export, carries neither.
//
// # Usage
//
//	r := render.NewRenderer(render.RendererConfig{})
//	err := r.RenderPage(w, render.PageData{
//	    Document:  doc,
//	    Title:     "Showcase",
//	    SessionID: id,
//	    WSPath:    "/_kview/ws",
//	})
//
// # Security
//
// Titles and attribute values are escaped. The document body is serialized
// by the dom package, which escapes text content. Inline styles and scripts
// are written verbatim and must come from trusted code.
package render
