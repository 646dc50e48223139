package clientdist

import _ "embed"

// KViewJS is the browser client.
//
// It is served by the framework at "/_kview/client.js". It reads the
// session from window.__KVIEW__, attaches over the websocket, applies init
// and mutation frames to the page and forwards DOM events by node id.
//
//go:embed kview.js
var KViewJS []byte
