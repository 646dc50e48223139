package dom

import (
	"sort"
	"strings"
)

// NodeType identifies the kind of a Node.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
	CommentNode
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case CommentNode:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Rect is a layout rectangle in CSS pixels.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is an element, text or comment node.
type Node struct {
	Type NodeType
	Tag  string

	nid      uint64
	doc      *Document
	data     string
	parent   *Node
	children []*Node

	attrs      map[string]string
	classes    []string
	style      map[string]string
	styleOrder []string
	props      map[string]any
	listeners  map[string][]listenerEntry
	rect       Rect
}

// NID returns the node id.
func (n *Node) NID() uint64 { return n.nid }

// OwnerDocument returns the document that created the node.
func (n *Node) OwnerDocument() *Document { return n.doc }

// ParentNode returns the parent, or nil when detached.
func (n *Node) ParentNode() *Node { return n.parent }

// ChildNodes returns a copy of the child list.
func (n *Node) ChildNodes() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// NextSibling returns the following sibling or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return nil
}

// Data returns the character data of a text or comment node.
func (n *Node) Data() string { return n.data }

// SetData replaces the character data of a text or comment node.
func (n *Node) SetData(s string) {
	if n.data == s {
		return
	}
	n.data = s
	n.doc.record(Mutation{Op: OpText, Target: n.nid, Value: s}, n)
}

// IsConnected reports whether the node is attached to its document tree.
func (n *Node) IsConnected() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur == n.doc.root {
			return true
		}
	}
	return false
}

// AppendChild appends child, detaching it from any previous parent.
func (n *Node) AppendChild(child *Node) *Node {
	return n.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref. A nil ref appends.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	idx := len(n.children)
	if ref != nil {
		for i, c := range n.children {
			if c == ref {
				idx = i
				break
			}
		}
	}
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	child.parent = n

	if n.IsConnected() {
		n.doc.connect(child)
		m := Mutation{Op: OpInsert, Target: child.nid, Parent: n.nid, HTML: child.OuterHTML(true)}
		if idx+1 < len(n.children) {
			m.Before = n.children[idx+1].nid
		}
		n.doc.record(m, n)
	}
	return child
}

// RemoveChild detaches child. It is a no-op when child is not a child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	for i, c := range n.children {
		if c != child {
			continue
		}
		connected := n.IsConnected()
		n.children = append(n.children[:i], n.children[i+1:]...)
		child.parent = nil
		if connected {
			n.doc.record(Mutation{Op: OpRemove, Target: child.nid}, n)
			n.doc.disconnect(child)
		}
		return child
	}
	return child
}

// ReplaceChild replaces old with child.
func (n *Node) ReplaceChild(child, old *Node) *Node {
	n.InsertBefore(child, old)
	n.RemoveChild(old)
	return old
}

// Remove detaches the node from its parent.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n.Type != ElementNode {
		return n.data
	}
	var b strings.Builder
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.children {
			if c.Type == TextNode {
				b.WriteString(c.data)
			} else if c.Type == ElementNode {
				walk(c)
			}
		}
	}
	walk(n)
	return b.String()
}

// SetTextContent replaces all children with a single text node.
func (n *Node) SetTextContent(s string) {
	if n.Type != ElementNode {
		n.SetData(s)
		return
	}
	for len(n.children) > 0 {
		n.RemoveChild(n.children[len(n.children)-1])
	}
	if s != "" {
		n.AppendChild(n.doc.CreateTextNode(s))
	}
}

// GetAttribute returns an attribute value.
func (n *Node) GetAttribute(name string) (string, bool) {
	switch name {
	case "class":
		if len(n.classes) == 0 {
			return "", false
		}
		return strings.Join(n.classes, " "), true
	case "style":
		if len(n.styleOrder) == 0 {
			return "", false
		}
		return n.styleText(), true
	}
	v, ok := n.attrs[name]
	return v, ok
}

// SetAttribute sets an attribute. The class and style attributes replace the
// class list and inline style respectively.
func (n *Node) SetAttribute(name, value string) {
	switch name {
	case "class":
		n.classes = strings.Fields(value)
		n.recordAttr("class")
		return
	case "style":
		n.style = nil
		n.styleOrder = nil
		for _, decl := range strings.Split(value, ";") {
			k, v, ok := strings.Cut(decl, ":")
			if ok {
				n.setStyle(strings.TrimSpace(k), strings.TrimSpace(v))
			}
		}
		n.recordAttr("style")
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	if old, ok := n.attrs[name]; ok && old == value {
		return
	}
	n.attrs[name] = value
	n.recordAttr(name)
}

// RemoveAttribute removes an attribute.
func (n *Node) RemoveAttribute(name string) {
	switch name {
	case "class":
		n.classes = nil
	case "style":
		n.style = nil
		n.styleOrder = nil
	default:
		if _, ok := n.attrs[name]; !ok {
			return
		}
		delete(n.attrs, name)
	}
	n.doc.record(Mutation{Op: OpRemoveAttr, Target: n.nid, Name: name}, n)
}

// AttributeNames returns the attribute names in sorted order, including class
// and style when present.
func (n *Node) AttributeNames() []string {
	names := make([]string, 0, len(n.attrs)+2)
	for k := range n.attrs {
		names = append(names, k)
	}
	if len(n.classes) > 0 {
		names = append(names, "class")
	}
	if len(n.styleOrder) > 0 {
		names = append(names, "style")
	}
	sort.Strings(names)
	return names
}

// ID returns the id attribute.
func (n *Node) ID() string {
	return n.attrs["id"]
}

// ClassList returns the class names in order.
func (n *Node) ClassList() []string {
	out := make([]string, len(n.classes))
	copy(out, n.classes)
	return out
}

// HasClass reports whether the class list contains name.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds a class name if absent.
func (n *Node) AddClass(name string) {
	if n.HasClass(name) {
		return
	}
	n.classes = append(n.classes, name)
	n.recordAttr("class")
}

// RemoveClass removes a class name if present.
func (n *Node) RemoveClass(name string) {
	for i, c := range n.classes {
		if c == name {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			n.recordAttr("class")
			return
		}
	}
}

// Style returns an inline style property.
func (n *Node) Style(name string) (string, bool) {
	v, ok := n.style[name]
	return v, ok
}

// SetStyle sets an inline style property, keeping first-set order.
func (n *Node) SetStyle(name, value string) {
	if old, ok := n.style[name]; ok && old == value {
		return
	}
	n.setStyle(name, value)
	n.recordAttr("style")
}

// RemoveStyle removes an inline style property.
func (n *Node) RemoveStyle(name string) {
	if _, ok := n.style[name]; !ok {
		return
	}
	delete(n.style, name)
	for i, k := range n.styleOrder {
		if k == name {
			n.styleOrder = append(n.styleOrder[:i], n.styleOrder[i+1:]...)
			break
		}
	}
	if len(n.styleOrder) == 0 {
		n.doc.record(Mutation{Op: OpRemoveAttr, Target: n.nid, Name: "style"}, n)
		return
	}
	n.recordAttr("style")
}

func (n *Node) setStyle(name, value string) {
	if n.style == nil {
		n.style = make(map[string]string)
	}
	if _, ok := n.style[name]; !ok {
		n.styleOrder = append(n.styleOrder, name)
	}
	n.style[name] = value
}

func (n *Node) styleText() string {
	parts := make([]string, 0, len(n.styleOrder))
	for _, k := range n.styleOrder {
		parts = append(parts, k+": "+n.style[k]+";")
	}
	return strings.Join(parts, " ")
}

func (n *Node) recordAttr(name string) {
	v, ok := n.GetAttribute(name)
	if !ok {
		n.doc.record(Mutation{Op: OpRemoveAttr, Target: n.nid, Name: name}, n)
		return
	}
	n.doc.record(Mutation{Op: OpSetAttr, Target: n.nid, Name: name, Value: v}, n)
}

// Property returns a DOM property such as "value" or "checked".
func (n *Node) Property(name string) (any, bool) {
	v, ok := n.props[name]
	return v, ok
}

// SetProperty sets a DOM property.
func (n *Node) SetProperty(name string, value any) {
	if n.props == nil {
		n.props = make(map[string]any)
	}
	n.props[name] = value
	n.doc.record(Mutation{Op: OpSetProp, Target: n.nid, Name: name, Prop: value}, n)
}

// DeleteProperty removes a DOM property.
func (n *Node) DeleteProperty(name string) {
	if _, ok := n.props[name]; !ok {
		return
	}
	delete(n.props, name)
	n.doc.record(Mutation{Op: OpSetProp, Target: n.nid, Name: name}, n)
}

// BoundingClientRect returns the last known layout rectangle.
func (n *Node) BoundingClientRect() Rect { return n.rect }

// SetBoundingClientRect stores a layout rectangle reported by the client.
func (n *Node) SetBoundingClientRect(r Rect) { n.rect = r }

// Focus makes the node the active element.
func (n *Node) Focus() {
	n.doc.active = n
	n.doc.record(Mutation{Op: OpFocus, Target: n.nid}, n)
}

// Blur clears focus if the node is the active element.
func (n *Node) Blur() {
	if n.doc.active == n {
		n.doc.active = nil
		n.doc.record(Mutation{Op: OpBlur, Target: n.nid}, n)
	}
}

// QuerySelectorAll returns descendants matching pred in document order.
func (n *Node) QuerySelectorAll(pred func(*Node) bool) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.children {
			if pred(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}
