package engine

import (
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/vdom"
)

// Stats counts the DOM work done by one Patch or Mount call.
type Stats struct {
	Created int
	Patched int
	Removed int
	Moved   int
}

// Patcher applies virtual trees to one document.
type Patcher struct {
	doc     *dom.Document
	modules []Module

	inserted []*vdom.VNode
	stats    Stats
}

// Init creates a Patcher for doc using the given module factories.
func Init(doc *dom.Document, modules ...ModuleFactory) *Patcher {
	p := &Patcher{doc: doc}
	for _, f := range modules {
		p.modules = append(p.modules, f())
	}
	return p
}

// Document returns the document this patcher writes to.
func (p *Patcher) Document() *dom.Document { return p.doc }

// LastStats returns the counters of the most recent Patch or Mount.
func (p *Patcher) LastStats() Stats { return p.stats }

// Mount replaces el with the element built from v and returns v.
func (p *Patcher) Mount(el *dom.Node, v *vdom.VNode) *vdom.VNode {
	p.begin()
	p.createElm(v)
	if parent := el.ParentNode(); parent != nil {
		parent.InsertBefore(v.Elm, el)
		parent.RemoveChild(el)
	}
	p.flushInserted()
	return v
}

// Patch reconciles old against v and returns v. When the roots cannot be
// reconciled in place, the old element is replaced.
func (p *Patcher) Patch(old, v *vdom.VNode) *vdom.VNode {
	p.begin()
	if vdom.SameNode(old, v) {
		p.patchVnode(old, v)
	} else {
		elm := old.Elm
		p.createElm(v)
		if parent := elm.ParentNode(); parent != nil {
			parent.InsertBefore(v.Elm, elm)
			p.removeVnode(parent, old)
		}
	}
	p.flushInserted()
	return v
}

func (p *Patcher) begin() {
	p.inserted = p.inserted[:0]
	p.stats = Stats{}
}

func (p *Patcher) flushInserted() {
	queue := p.inserted
	p.inserted = nil
	for _, v := range queue {
		v.Data.Hook.Insert(v)
	}
}

func hooks(v *vdom.VNode) *vdom.Hooks {
	if v.Data == nil {
		return nil
	}
	return v.Data.Hook
}

// createElm builds the element tree for v without attaching it.
func (p *Patcher) createElm(v *vdom.VNode) *dom.Node {
	if h := hooks(v); h != nil && h.Init != nil {
		h.Init(v)
	}
	p.stats.Created++
	switch v.Kind {
	case vdom.KindText:
		v.Elm = p.doc.CreateTextNode(v.Text)
		return v.Elm
	case vdom.KindComment:
		v.Elm = p.doc.CreateComment(v.Text)
		return v.Elm
	}

	elm := p.doc.CreateElement(v.Tag)
	v.Elm = elm
	for _, c := range v.Children {
		elm.AppendChild(p.createElm(c))
	}
	empty := &vdom.VNode{Kind: vdom.KindElement, Tag: v.Tag, Elm: elm}
	for _, m := range p.modules {
		if m.Create != nil {
			m.Create(empty, v)
		}
	}
	if h := hooks(v); h != nil && h.Insert != nil {
		p.inserted = append(p.inserted, v)
	}
	return elm
}

func (p *Patcher) patchVnode(old, v *vdom.VNode) {
	h := hooks(v)
	if h != nil && h.Prepatch != nil {
		h.Prepatch(old, v)
	}
	elm := old.Elm
	v.Elm = elm
	if old == v {
		return
	}
	p.stats.Patched++

	if v.Kind == vdom.KindElement {
		for _, m := range p.modules {
			if m.Update != nil {
				m.Update(old, v)
			}
		}
		if h != nil && h.Update != nil {
			h.Update(old, v)
		}
		p.updateChildren(elm, old.Children, v.Children)
	} else if old.Text != v.Text {
		elm.SetData(v.Text)
	}

	if h != nil && h.Postpatch != nil {
		h.Postpatch(old, v)
	}
}

// updateChildren matches new children to old ones by key, or by position
// among the unkeyed children, patches the matches, removes the leftovers and
// finally moves elements into the new order.
func (p *Patcher) updateChildren(parent *dom.Node, oldCh, newCh []*vdom.VNode) {
	keyed := make(map[string]int)
	var unkeyed []int
	for i, c := range oldCh {
		if c.Key != "" {
			keyed[c.Key] = i
		} else {
			unkeyed = append(unkeyed, i)
		}
	}

	used := make([]bool, len(oldCh))
	for _, c := range newCh {
		match := -1
		if c.Key != "" {
			if i, ok := keyed[c.Key]; ok && !used[i] && vdom.SameNode(oldCh[i], c) {
				match = i
			}
		} else {
			for len(unkeyed) > 0 {
				i := unkeyed[0]
				unkeyed = unkeyed[1:]
				if vdom.SameNode(oldCh[i], c) {
					match = i
					break
				}
				// Positional mismatch: the old node is dropped.
			}
		}
		if match >= 0 {
			used[match] = true
			p.patchVnode(oldCh[match], c)
		} else {
			p.createElm(c)
		}
	}

	for i, c := range oldCh {
		if !used[i] {
			p.removeVnode(parent, c)
		}
	}

	ref := parent.FirstChild()
	for _, c := range newCh {
		if c.Elm == ref {
			ref = ref.NextSibling()
			continue
		}
		if c.Elm.ParentNode() == parent {
			p.stats.Moved++
		}
		parent.InsertBefore(c.Elm, ref)
	}
}

func (p *Patcher) removeVnode(parent *dom.Node, v *vdom.VNode) {
	p.invokeDestroy(v)
	if h := hooks(v); h != nil && h.Remove != nil {
		h.Remove(v)
	}
	p.stats.Removed++
	if v.Elm != nil {
		parent.RemoveChild(v.Elm)
	}
}

func (p *Patcher) invokeDestroy(v *vdom.VNode) {
	if v.Kind != vdom.KindElement {
		return
	}
	if h := hooks(v); h != nil && h.Destroy != nil {
		h.Destroy(v)
	}
	for _, m := range p.modules {
		if m.Destroy != nil {
			m.Destroy(v)
		}
	}
	for _, c := range v.Children {
		p.invokeDestroy(c)
	}
}
