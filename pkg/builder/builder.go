// Package builder collects attributes and class names through a delegate and
// returns frozen snapshots.
//
// The delegate is expected to be a pure function of the caller's state, so the
// snapshot can be cached until that state changes:
//
//	attrs := builder.Attributes(func(b *builder.AttributeSetBuilder) {
//	    b.Add("id", "main")
//	    b.Add("role", "navigation")
//	})
package builder

import "strings"

// AttributeSetBuilder accumulates name/value pairs. Later writes win.
type AttributeSetBuilder struct {
	attrs map[string]string
}

// Add sets an attribute.
func (b *AttributeSetBuilder) Add(name, value string) {
	b.attrs[name] = value
}

// AddIf sets an attribute when cond is true.
func (b *AttributeSetBuilder) AddIf(cond bool, name, value string) {
	if cond {
		b.attrs[name] = value
	}
}

// AddAll copies every pair from attrs.
func (b *AttributeSetBuilder) AddAll(attrs map[string]string) {
	for k, v := range attrs {
		b.attrs[k] = v
	}
}

// Attributes runs fn against a fresh builder and returns a copy of the result.
func Attributes(fn func(b *AttributeSetBuilder)) map[string]string {
	b := &AttributeSetBuilder{attrs: make(map[string]string)}
	fn(b)
	out := make(map[string]string, len(b.attrs))
	for k, v := range b.attrs {
		out[k] = v
	}
	return out
}

// ClassSet is an immutable, insertion-ordered set of class names.
type ClassSet struct {
	names []string
}

// Names returns the class names in first-insertion order.
func (s ClassSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Has reports whether name is in the set.
func (s ClassSet) Has(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Len returns the number of class names.
func (s ClassSet) Len() int { return len(s.names) }

// Map returns the set as a name -> true map, the form virtual nodes use.
func (s ClassSet) Map() map[string]bool {
	m := make(map[string]bool, len(s.names))
	for _, n := range s.names {
		m[n] = true
	}
	return m
}

// String joins the names with spaces.
func (s ClassSet) String() string {
	return strings.Join(s.names, " ")
}

// ClassSetBuilder accumulates class names with set semantics.
type ClassSetBuilder struct {
	seen  map[string]struct{}
	names []string
}

// Add adds a class name. Empty names and duplicates are ignored.
func (b *ClassSetBuilder) Add(name string) {
	if name == "" {
		return
	}
	if _, ok := b.seen[name]; ok {
		return
	}
	b.seen[name] = struct{}{}
	b.names = append(b.names, name)
}

// AddIf adds a class name when cond is true.
func (b *ClassSetBuilder) AddIf(cond bool, name string) {
	if cond {
		b.Add(name)
	}
}

// AddAll adds every name.
func (b *ClassSetBuilder) AddAll(names ...string) {
	for _, n := range names {
		b.Add(n)
	}
}

// AddSpaced splits a space separated class string and adds each part.
func (b *ClassSetBuilder) AddSpaced(classes string) {
	b.AddAll(strings.Fields(classes)...)
}

// Classes runs fn against a fresh builder and returns the frozen set.
func Classes(fn func(b *ClassSetBuilder)) ClassSet {
	b := &ClassSetBuilder{seen: make(map[string]struct{})}
	fn(b)
	names := make([]string, len(b.names))
	copy(names, b.names)
	return ClassSet{names: names}
}
