package engine

import (
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/vdom"
)

// Module receives element lifecycle notifications. Any field may be nil.
type Module struct {
	Name    string
	Create  func(empty, v *vdom.VNode)
	Update  func(old, v *vdom.VNode)
	Destroy func(v *vdom.VNode)
}

// ModuleFactory creates a fresh module. Modules may keep per-patcher state, so
// each Patcher gets its own instances.
type ModuleFactory func() Module

// DefaultModules returns the attributes, props, class, style and event
// listener modules.
func DefaultModules() []ModuleFactory {
	return []ModuleFactory{
		AttributesModule,
		PropsModule,
		ClassModule,
		StyleModule,
		EventListenersModule,
	}
}

var emptyData = &vdom.Data{}

func dataOf(v *vdom.VNode) *vdom.Data {
	if v == nil || v.Data == nil {
		return emptyData
	}
	return v.Data
}

// AttributesModule keeps element attributes in sync with Data.Attrs.
func AttributesModule() Module {
	update := func(old, v *vdom.VNode) {
		elm := v.Elm
		oldAttrs, attrs := dataOf(old).Attrs, dataOf(v).Attrs
		for k := range oldAttrs {
			if _, ok := attrs[k]; !ok {
				elm.RemoveAttribute(k)
			}
		}
		for k, val := range attrs {
			if cur, ok := oldAttrs[k]; !ok || cur != val {
				elm.SetAttribute(k, val)
			}
		}
	}
	return Module{Name: "attributes", Create: update, Update: update}
}

// PropsModule keeps element properties in sync with Data.Props.
func PropsModule() Module {
	update := func(old, v *vdom.VNode) {
		elm := v.Elm
		oldProps, props := dataOf(old).Props, dataOf(v).Props
		for k := range oldProps {
			if _, ok := props[k]; !ok {
				elm.DeleteProperty(k)
			}
		}
		for k, val := range props {
			cur, ok := elm.Property(k)
			if !ok || !vdom.PropsEqual(cur, val) {
				elm.SetProperty(k, val)
			}
		}
	}
	return Module{Name: "props", Create: update, Update: update}
}

// ClassModule toggles classes from Data.Class.
func ClassModule() Module {
	update := func(old, v *vdom.VNode) {
		elm := v.Elm
		oldClass, class := dataOf(old).Class, dataOf(v).Class
		for name, on := range oldClass {
			if on && !class[name] {
				elm.RemoveClass(name)
			}
		}
		for name, on := range class {
			if on && !oldClass[name] {
				elm.AddClass(name)
			}
		}
	}
	return Module{Name: "class", Create: update, Update: update}
}

// StyleModule applies Data.Style declarations. Later declarations of the same
// property win.
func StyleModule() Module {
	update := func(old, v *vdom.VNode) {
		elm := v.Elm
		oldStyle, style := styleMap(dataOf(old).Style), styleMap(dataOf(v).Style)
		for name := range oldStyle {
			if _, ok := style[name]; !ok {
				elm.RemoveStyle(name)
			}
		}
		for _, decl := range dataOf(v).Style {
			want := style[decl.Name]
			if cur, ok := elm.Style(decl.Name); !ok || cur != want {
				elm.SetStyle(decl.Name, want)
			}
		}
	}
	return Module{Name: "style", Create: update, Update: update}
}

func styleMap(decls []vdom.StyleDecl) map[string]string {
	if len(decls) == 0 {
		return nil
	}
	m := make(map[string]string, len(decls))
	for _, d := range decls {
		m[d.Name] = d.Value
	}
	return m
}

// EventListenersModule binds one DOM listener per event name on each element.
// The listener always dispatches to the handlers of the element's current
// vnode, so patching only rebinds when the set of event names changes.
func EventListenersModule() Module {
	type binding struct {
		v   *vdom.VNode
		ids map[string]dom.ListenerID
	}
	bound := make(map[*dom.Node]*binding)

	update := func(old, v *vdom.VNode) {
		on := dataOf(v).On
		elm := v.Elm
		b := bound[elm]
		if b == nil {
			if len(on) == 0 {
				return
			}
			b = &binding{ids: make(map[string]dom.ListenerID)}
			bound[elm] = b
		}
		b.v = v
		for name, id := range b.ids {
			if len(on[name]) == 0 {
				elm.RemoveEventListener(id)
				delete(b.ids, name)
			}
		}
		for name, hs := range on {
			if len(hs) == 0 {
				continue
			}
			if _, ok := b.ids[name]; ok {
				continue
			}
			name := name
			b.ids[name] = elm.AddEventListener(name, func(e *dom.Event) {
				for _, h := range dataOf(b.v).On[name] {
					h(e)
				}
			})
		}
		if len(b.ids) == 0 {
			delete(bound, elm)
		}
	}
	destroy := func(v *vdom.VNode) {
		b := bound[v.Elm]
		if b == nil {
			return
		}
		for _, id := range b.ids {
			v.Elm.RemoveEventListener(id)
		}
		delete(bound, v.Elm)
	}
	return Module{Name: "eventlisteners", Create: update, Update: update, Destroy: destroy}
}
