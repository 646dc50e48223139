package vdom

import "github.com/kview-dev/kview/pkg/dom"

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindComment              // Comment placeholder
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// VNode is the virtual DOM node.
type VNode struct {
	Kind     VKind     // Node type
	Tag      string    // Element tag name (e.g., "div")
	Key      string    // Reconciliation key
	Data     *Data     // Attributes, handlers and hooks; nil for text
	Children []*VNode  // Child nodes
	Text     string    // For KindText and KindComment
	Elm      *dom.Node // Live node, set by the engine once created
}

// Data holds everything about an element except its children.
type Data struct {
	Attrs map[string]string
	Props map[string]any
	Class map[string]bool
	Style []StyleDecl
	On    map[string][]Handler
	Hook  *Hooks
}

// StyleDecl is one inline style declaration.
type StyleDecl struct {
	Name  string
	Value string
}

// Handler handles a DOM event delivered to a virtual node's element.
type Handler func(e *dom.Event)

// Hooks are lifecycle callbacks invoked by the engine.
//
// Init runs before the element is created, Insert once the element is in the
// document, Prepatch/Update/Postpatch around reconciliation against a previous
// node, Destroy when the element is removed (for the node and each of its
// descendants) and Remove once for the top-most removed node, right before it
// leaves the document.
type Hooks struct {
	Init      func(v *VNode)
	Insert    func(v *VNode)
	Prepatch  func(old, v *VNode)
	Update    func(old, v *VNode)
	Postpatch func(old, v *VNode)
	Destroy   func(v *VNode)
	Remove    func(v *VNode)
}

// Sel returns the tag, or "#text"/"!" for text and comment nodes.
func (v *VNode) Sel() string {
	switch v.Kind {
	case KindText:
		return "#text"
	case KindComment:
		return "!"
	default:
		return v.Tag
	}
}

// Attr returns an attribute value.
func (v *VNode) Attr(name string) (string, bool) {
	if v == nil || v.Data == nil {
		return "", false
	}
	s, ok := v.Data.Attrs[name]
	return s, ok
}

// HasClass reports whether the class toggle for name is on.
func (v *VNode) HasClass(name string) bool {
	if v == nil || v.Data == nil {
		return false
	}
	return v.Data.Class[name]
}

// StyleValue returns the last declaration for name.
func (v *VNode) StyleValue(name string) (string, bool) {
	if v == nil || v.Data == nil {
		return "", false
	}
	for i := len(v.Data.Style) - 1; i >= 0; i-- {
		if v.Data.Style[i].Name == name {
			return v.Data.Style[i].Value, true
		}
	}
	return "", false
}

// IsInteractive returns true if this node has event handlers.
func (v *VNode) IsInteractive() bool {
	if v == nil || v.Kind != KindElement || v.Data == nil {
		return false
	}
	for _, hs := range v.Data.On {
		if len(hs) > 0 {
			return true
		}
	}
	return false
}

// SameNode reports whether two nodes may be reconciled in place: same kind,
// tag and key.
func SameNode(a, b *VNode) bool {
	return a.Kind == b.Kind && a.Tag == b.Tag && a.Key == b.Key
}

func (v *VNode) data() *Data {
	if v.Data == nil {
		v.Data = &Data{}
	}
	return v.Data
}
