package vdom

import "reflect"

// Equal reports whether two trees describe the same content. Live element
// references are ignored; handlers compare by event name and count.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Key != b.Key || a.Text != b.Text {
		return false
	}
	if !dataEqual(a.Data, b.Data) {
		return false
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func dataEqual(a, b *Data) bool {
	if a == nil {
		a = &Data{}
	}
	if b == nil {
		b = &Data{}
	}
	if !stringMapEqual(a.Attrs, b.Attrs) {
		return false
	}
	if len(a.Props) != len(b.Props) {
		return false
	}
	for k, av := range a.Props {
		bv, ok := b.Props[k]
		if !ok || !propsEqual(av, bv) {
			return false
		}
	}
	if !classEqual(a.Class, b.Class) {
		return false
	}
	if len(a.Style) != len(b.Style) {
		return false
	}
	for i := range a.Style {
		if a.Style[i] != b.Style[i] {
			return false
		}
	}
	if len(a.On) != len(b.On) {
		return false
	}
	for k, hs := range a.On {
		if len(b.On[k]) != len(hs) {
			return false
		}
	}
	return (a.Hook == nil) == (b.Hook == nil)
}

func stringMapEqual(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// classEqual compares the set of enabled class names.
func classEqual(a, b map[string]bool) bool {
	count := 0
	for k, on := range a {
		if !on {
			continue
		}
		count++
		if !b[k] {
			return false
		}
	}
	for _, on := range b {
		if on {
			count--
		}
	}
	return count == 0
}

// propsEqual compares two prop values for equality.
func propsEqual(a, b any) bool {
	// Fast path for common types
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return av == bv
		}
		return false
	case int:
		if bv, ok := b.(int); ok {
			return av == bv
		}
		return false
	case float64:
		if bv, ok := b.(float64); ok {
			return av == bv
		}
		return false
	case bool:
		if bv, ok := b.(bool); ok {
			return av == bv
		}
		return false
	case nil:
		return b == nil
	}
	// Fallback to reflect for complex types
	return reflect.DeepEqual(a, b)
}

// PropsEqual is the exported form of the property comparison used by the
// engine when deciding whether to write a DOM property.
func PropsEqual(a, b any) bool { return propsEqual(a, b) }
