// Package engine reconciles virtual node trees into a dom.Document.
//
// A Patcher is created with Init and a set of modules. Each module owns one
// aspect of an element (attributes, properties, classes, inline style, event
// listeners) and is told when an element is created, updated or destroyed.
//
//	p := engine.Init(doc, engine.DefaultModules()...)
//	cur := p.Mount(doc.Body().FirstChild(), view())
//	cur = p.Patch(cur, view())
//
// Children are reconciled by key when a key is present and by position
// otherwise. Lifecycle hooks on vdom.Data.Hook fire as follows:
//
//   - Init before an element is created
//   - Insert once the created element is part of the document
//   - Prepatch, Update and Postpatch when a node is patched against a previous one
//   - Destroy for every removed node and its descendants
//   - Remove for the top-most removed node before it is detached
//
// The Manager type is the process-wide entry point used by the core package.
package engine
