// Package vdom provides the virtual DOM node model for kview.
//
// A VNode is an immutable-by-convention description of one DOM node: tag,
// key, attributes, properties, class toggles, an ordered inline style list,
// event handlers and lifecycle hooks. The engine package reconciles pairs of
// VNode trees against a live dom.Document.
//
// # Element API
//
// Elements are created with H or the tag helpers, which accept a variadic
// mix of attributes, classes, styles, handlers, hooks and children:
//
//	Div(Key("w1"), ID("main"), Class("card", "active"),
//	    Style("width", "10px"),
//	    OnClick(handler),
//	    H1(Text("Title")),
//	    "plain text",
//	)
//
// # Equality
//
// Equal compares two trees by content. Handlers are compared by event name
// and count only, since functions are not comparable.
package vdom
