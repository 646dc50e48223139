package core

import (
	"strconv"
	"strings"
	"sync/atomic"
)

var styleCounter atomic.Uint64

// Style is a CSS class rule built from StyledComponent properties. Styles
// register with their session on construction and are emitted by the
// session's first root.
//
// Property changes are not picked up until Root.RefreshStyles is called.
type Style struct {
	StyledComponent

	session   *Session
	className string
	parent    *Style
	media     string
}

// StyleOption configures a Style.
type StyleOption func(*Style)

// WithStyleClassName sets the class name instead of an automatic one.
func WithStyleClassName(name string) StyleOption {
	return func(s *Style) { s.className = name }
}

// WithParentStyle nests the rule under parent's selector.
func WithParentStyle(parent *Style) StyleOption {
	return func(s *Style) { s.parent = parent }
}

// WithMediaQuery emits the rule inside an @media block.
func WithMediaQuery(query string) StyleOption {
	return func(s *Style) { s.media = query }
}

// WithStyleInit runs fn on the style before it is registered.
func WithStyleInit(fn func(s *Style)) StyleOption {
	return func(s *Style) { fn(s) }
}

// NewStyle creates and registers a style in session.
func NewStyle(session *Session, opts ...StyleOption) *Style {
	s := &Style{session: session}
	for _, opt := range opts {
		opt(s)
	}
	if s.className == "" {
		s.className = "kv_styleclass_" + strconv.FormatUint(styleCounter.Add(1), 10)
	}
	session.registerStyle(s)
	return s
}

// ClassName returns the class this style applies to.
func (s *Style) ClassName() string { return s.className }

// Media returns the media query, or "".
func (s *Style) Media() string { return s.media }

// Selector returns the rule selector, including parent styles.
func (s *Style) Selector() string {
	if s.parent != nil {
		return s.parent.Selector() + " ." + s.className
	}
	return "." + s.className
}

// CSS returns the rule text.
func (s *Style) CSS() string {
	var b strings.Builder
	b.WriteString(s.Selector())
	b.WriteString(" {\n")
	for _, d := range s.StyleList() {
		b.WriteString(d.Name)
		b.WriteString(": ")
		b.WriteString(d.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n")
	return b.String()
}

// Unregister removes the style from its session.
func (s *Style) Unregister() {
	s.session.unregisterStyle(s)
}

// styleSheet renders styles grouped by media query. Rules without a media
// query come first; each media query gets one block, in order of first use.
func styleSheet(styles []*Style) string {
	var plain strings.Builder
	var queries []string
	grouped := make(map[string]*strings.Builder)
	for _, s := range styles {
		if s.media == "" {
			plain.WriteString(s.CSS())
			continue
		}
		b, ok := grouped[s.media]
		if !ok {
			b = &strings.Builder{}
			grouped[s.media] = b
			queries = append(queries, s.media)
		}
		b.WriteString(s.CSS())
	}

	out := plain.String()
	for _, q := range queries {
		out += "@media " + q + " {\n" + grouped[q].String() + "}\n"
	}
	return out
}
