package engine

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kview-dev/kview/pkg/vdom"
)

// Virtualize parses an HTML fragment into a virtual node. A fragment with a
// single top-level element yields that element; anything else is wrapped in a
// span.
func (m *Manager) Virtualize(fragment string) (*vdom.VNode, error) {
	return Virtualize(fragment)
}

// Virtualize parses an HTML fragment into a virtual node. See
// Manager.Virtualize.
func Virtualize(fragment string) (*vdom.VNode, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil, err
	}

	var out []*vdom.VNode
	for _, n := range nodes {
		if v := fromHTML(n); v != nil {
			out = append(out, v)
		}
	}
	if len(out) == 1 && out[0].Kind == vdom.KindElement {
		return out[0], nil
	}
	return vdom.H("span", out), nil
}

func fromHTML(n *html.Node) *vdom.VNode {
	switch n.Type {
	case html.TextNode:
		return vdom.Text(n.Data)
	case html.CommentNode:
		return vdom.Comment(n.Data)
	case html.ElementNode:
	default:
		return nil
	}

	var args []any
	for _, a := range n.Attr {
		switch a.Key {
		case "class":
			args = append(args, vdom.Class(strings.Fields(a.Val)...))
		case "style":
			for _, decl := range strings.Split(a.Val, ";") {
				if k, val, ok := strings.Cut(decl, ":"); ok {
					args = append(args, vdom.Style(strings.TrimSpace(k), strings.TrimSpace(val)))
				}
			}
		default:
			args = append(args, vdom.AttrOf(a.Key, a.Val))
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if cv := fromHTML(c); cv != nil {
			args = append(args, cv)
		}
	}
	return vdom.H(n.Data, args...)
}
