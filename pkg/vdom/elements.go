package vdom

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Content sectioning

func Div(args ...any) *VNode     { return H("div", args...) }
func Span(args ...any) *VNode    { return H("span", args...) }
func Nav(args ...any) *VNode     { return H("nav", args...) }
func Section(args ...any) *VNode { return H("section", args...) }
func Header(args ...any) *VNode  { return H("header", args...) }
func Footer(args ...any) *VNode  { return H("footer", args...) }
func Main(args ...any) *VNode    { return H("main", args...) }

// Text content

func P(args ...any) *VNode  { return H("p", args...) }
func H1(args ...any) *VNode { return H("h1", args...) }
func H2(args ...any) *VNode { return H("h2", args...) }
func H3(args ...any) *VNode { return H("h3", args...) }
func Ul(args ...any) *VNode { return H("ul", args...) }
func Ol(args ...any) *VNode { return H("ol", args...) }
func Li(args ...any) *VNode { return H("li", args...) }
func A(args ...any) *VNode  { return H("a", args...) }
func Br(args ...any) *VNode { return H("br", args...) }
func Hr(args ...any) *VNode { return H("hr", args...) }

// Forms

func Button(args ...any) *VNode { return H("button", args...) }
func Input(args ...any) *VNode  { return H("input", args...) }
func Label(args ...any) *VNode  { return H("label", args...) }

// Document metadata

func StyleEl(args ...any) *VNode { return H("style", args...) }
