package vdom

import "fmt"

// Attr is a single string attribute.
type Attr struct {
	Key   string
	Value string
}

// PropAttr is a DOM property such as value or checked.
type PropAttr struct {
	Key   string
	Value any
}

// ClassToggle switches a class name on or off.
type ClassToggle struct {
	Name string
	On   bool
}

// KeyAttr sets the reconciliation key.
type KeyAttr string

// EventHandler binds a handler to an event name (without the "on" prefix).
type EventHandler struct {
	Event   string
	Handler Handler
}

// H creates an element. Arguments can be: nil, Attr, []Attr, map[string]string
// (attributes), PropAttr, ClassToggle, []ClassToggle, StyleDecl, []StyleDecl,
// EventHandler, *Hooks, KeyAttr, *Data, *VNode, []*VNode and string (text).
func H(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Children: make([]*VNode, 0),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional arguments)
			continue

		case Attr:
			if v.Key != "" {
				setAttr(node, v)
			}

		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					setAttr(node, a)
				}
			}

		case map[string]string:
			for k, val := range v {
				setAttr(node, Attr{Key: k, Value: val})
			}

		case PropAttr:
			d := node.data()
			if d.Props == nil {
				d.Props = make(map[string]any)
			}
			d.Props[v.Key] = v.Value

		case ClassToggle:
			setClass(node, v)

		case []ClassToggle:
			for _, c := range v {
				setClass(node, c)
			}

		case StyleDecl:
			d := node.data()
			d.Style = append(d.Style, v)

		case []StyleDecl:
			d := node.data()
			d.Style = append(d.Style, v...)

		case EventHandler:
			d := node.data()
			if d.On == nil {
				d.On = make(map[string][]Handler)
			}
			d.On[v.Event] = append(d.On[v.Event], v.Handler)

		case *Hooks:
			node.data().Hook = v

		case KeyAttr:
			node.Key = string(v)

		case *Data:
			if v != nil {
				node.Data = v
			}

		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}

		case []*VNode:
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}

		case string:
			node.Children = append(node.Children, Text(v))

		default:
			panic(fmt.Sprintf("vdom: unsupported argument %T for <%s>", arg, tag))
		}
	}

	return node
}

func setAttr(node *VNode, a Attr) {
	d := node.data()
	if d.Attrs == nil {
		d.Attrs = make(map[string]string)
	}
	d.Attrs[a.Key] = a.Value
}

func setClass(node *VNode, c ClassToggle) {
	if c.Name == "" {
		return
	}
	d := node.data()
	if d.Class == nil {
		d.Class = make(map[string]bool)
	}
	d.Class[c.Name] = c.On
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Comment creates a comment node, used as an empty placeholder.
func Comment(content string) *VNode {
	return &VNode{Kind: KindComment, Text: content}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// When is like If but with lazy evaluation.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}
