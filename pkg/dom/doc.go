// Package dom is the live document that virtual trees are patched into.
//
// A Document is an in-memory element tree with attributes, class lists,
// inline styles, properties, event listeners and layout rectangles. It is the
// server-side mirror of a browser page: while recording is enabled every change
// to a connected node is captured as a Mutation, and the transport layer ships
// those records to the browser client which replays them.
//
// Nodes are not safe for concurrent use. A document belongs to one event loop.
//
// # Node identity
//
// Every node gets a numeric node id (NID) at creation. Serialized HTML carries
// the id in a data-kv-nid attribute when requested, and browser events are
// routed back to nodes through Document.NodeByNID.
package dom
