// Package core implements the component tree and its render cycle.
//
// A Widget renders one virtual node from cached snapshots of its
// attributes, classes, inline style, event handlers and lifecycle hooks.
// Any change goes through Refresh, which drops the snapshots and asks the
// owning Root to patch the document. Containers own ordered children; a
// Root is the container bound to a mount element.
//
// Roots batch work in two ways. SingleRender counts nesting and patches
// once when the outermost scope exits. SingleRenderAsync queues blocks and
// flushes them together on a zero-delay timer of the session scheduler.
//
// All types in this package belong to one loop.Scheduler goroutine and are
// not safe for concurrent use.
package core
