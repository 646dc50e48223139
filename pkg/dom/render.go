package dom

import (
	"bytes"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NIDAttr is the attribute carrying node ids in serialized HTML.
const NIDAttr = "data-kv-nid"

// MeasureAttr marks an element whose children's layout rectangles the client
// reports with every pointer event dispatched inside it.
const MeasureAttr = "data-kv-measure"

// Render writes the HTML serialization of n to w. When withNIDs is set every
// element carries its node id, and text nodes are preceded by a marker
// comment holding theirs, so a client can address them.
func Render(w io.Writer, n *Node, withNIDs bool) error {
	return html.Render(w, toHTML(n, withNIDs))
}

// OuterHTML returns the serialization of the node itself.
func (n *Node) OuterHTML(withNIDs bool) string {
	var buf bytes.Buffer
	if err := Render(&buf, n, withNIDs); err != nil {
		return ""
	}
	return buf.String()
}

// InnerHTML returns the serialization of the node's children.
func (n *Node) InnerHTML(withNIDs bool) string {
	var buf bytes.Buffer
	for _, c := range n.children {
		if err := Render(&buf, c, withNIDs); err != nil {
			return ""
		}
	}
	return buf.String()
}

func toHTML(n *Node, withNIDs bool) *html.Node {
	switch n.Type {
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: n.data}
	case CommentNode:
		return &html.Node{Type: html.CommentNode, Data: n.data}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, name := range n.AttributeNames() {
		v, _ := n.GetAttribute(name)
		out.Attr = append(out.Attr, html.Attribute{Key: name, Val: v})
	}
	if withNIDs {
		out.Attr = append(out.Attr, html.Attribute{Key: NIDAttr, Val: strconv.FormatUint(n.nid, 10)})
	}
	for _, c := range n.children {
		if withNIDs && c.Type == TextNode {
			out.AppendChild(&html.Node{Type: html.CommentNode, Data: "kv:" + strconv.FormatUint(c.nid, 10)})
		}
		out.AppendChild(toHTML(c, withNIDs))
	}
	return out
}
