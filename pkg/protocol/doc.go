// Package protocol implements the wire format between a kview page and the
// server that owns its document.
//
// # Wire Format
//
// Every websocket message holds one frame with a 6-byte header:
//
//	┌─────────────┬──────────────┬───────────────────────────────┐
//	│ Frame Type  │ Flags        │ Payload Length                │
//	│ (1 byte)    │ (1 byte)     │ (4 bytes, big-endian)         │
//	└─────────────┴──────────────┴───────────────────────────────┘
//
// followed by a JSON payload.
//
// # Frame Types
//
//   - FrameInit (0x00): server → client, the connected body markup
//   - FrameMutations (0x01): server → client, a batch of document changes
//   - FrameEvent (0x02): client → server, a DOM event on a node id
//   - FramePing (0x03) / FramePong (0x04): keepalive
//   - FrameError (0x05): server → client, a fatal session error
//
// Node ids are the values of the data-kv-nid attribute in the init markup
// and in the html of insert mutations.
package protocol
