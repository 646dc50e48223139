package vdom

import "strconv"

// attr creates an Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Key sets the reconciliation key.
func Key(k string) KeyAttr { return KeyAttr(k) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class turns on each of the given class names.
func Class(classes ...string) []ClassToggle {
	out := make([]ClassToggle, 0, len(classes))
	for _, c := range classes {
		out = append(out, ClassToggle{Name: c, On: true})
	}
	return out
}

// ClassIf switches a class name on when cond is true.
func ClassIf(name string, cond bool) ClassToggle { return ClassToggle{Name: name, On: cond} }

// Style adds one inline style declaration.
func Style(name, value string) StyleDecl { return StyleDecl{Name: name, Value: value} }

// DataAttr creates a data-* attribute.
// Example: DataAttr("id", "123") → data-id="123"
func DataAttr(key, value string) Attr { return attr("data-"+key, value) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// AriaSelected sets the aria-selected attribute.
func AriaSelected(selected bool) Attr { return attr("aria-selected", strconv.FormatBool(selected)) }

// AriaControls sets the aria-controls attribute.
func AriaControls(id string) Attr { return attr("aria-controls", id) }

// Keyboard attributes

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", strconv.Itoa(index)) }

// Visibility attributes

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Behavior attributes

// Draggable sets the draggable attribute.
func Draggable(on bool) Attr { return attr("draggable", strconv.FormatBool(on)) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Form input attributes

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Type sets the type attribute.
func Type(typ string) Attr { return attr("type", typ) }

// Value sets the value property.
func Value(v string) PropAttr { return PropAttr{Key: "value", Value: v} }

// Prop sets an arbitrary DOM property.
func Prop(key string, value any) PropAttr { return PropAttr{Key: key, Value: value} }

// AttrOf sets an arbitrary attribute.
func AttrOf(key, value string) Attr { return attr(key, value) }
