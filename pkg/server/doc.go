// Package server serves kview applications to browsers.
//
// Every page load creates a Session: a fresh dom.Document, a core.Session
// bound to it and a loop.Loop that owns both. The application builds its
// roots on the loop, the page is rendered with node ids, and the browser
// client then attaches over a websocket. From that point every loop task
// is followed by a flush that ships the document mutations it caused as
// one mutation frame, and every event frame from the client is dispatched
// on the node it names.
//
// # Architecture
//
//	Server (chi router)
//	  ├── GET /             page render, session creation
//	  ├── GET /_kview/ws    websocket attach
//	  ├── GET /_kview/client.js
//	  └── GET /metrics      prometheus (optional)
//
//	Session
//	  ├── loop.Loop         the only goroutine touching the document
//	  ├── readLoop          decodes frames, posts events onto the loop
//	  └── pingLoop          keepalive
//
// Detached sessions (no websocket) are closed after the resume window.
package server
