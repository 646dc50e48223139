package core

import (
	"github.com/kview-dev/kview/pkg/dom"
	"github.com/kview-dev/kview/pkg/vdom"
)

func (w *Widget) nextListenerID() int {
	w.listenerSeq++
	return w.listenerSeq
}

// SetEventListener registers a removable handler and returns its id. Every
// handler registered for an event fires, in registration order.
func (w *Widget) SetEventListener(event string, handler vdom.Handler) int {
	id := w.nextListenerID()
	w.user = append(w.user, listener{id: id, event: event, handler: handler})
	w.Refresh()
	return id
}

// RemoveEventListener removes a handler registered with SetEventListener.
func (w *Widget) RemoveEventListener(id int) {
	if out, ok := removeListener(w.user, id); ok {
		w.user = out
		w.Refresh()
	}
}

// RemoveEventListeners removes every handler registered with
// SetEventListener. Internal handlers stay.
func (w *Widget) RemoveEventListeners() {
	if len(w.user) == 0 {
		return
	}
	w.user = nil
	w.Refresh()
}

// SetInternalEventListener registers a handler owned by the widget
// implementation. Internal handlers run before user handlers.
func (w *Widget) SetInternalEventListener(event string, handler vdom.Handler) int {
	id := w.nextListenerID()
	w.internal = append(w.internal, listener{id: id, event: event, handler: handler})
	w.Refresh()
	return id
}

// RemoveInternalEventListener removes an internal handler.
func (w *Widget) RemoveInternalEventListener(id int) {
	if out, ok := removeListener(w.internal, id); ok {
		w.internal = out
		w.Refresh()
	}
}

func removeListener(ls []listener, id int) ([]listener, bool) {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...), true
		}
	}
	return ls, false
}

// BindDirect attaches a handler straight to the live element rather than
// through the virtual node. It is rebound whenever the element is replaced.
func (w *Widget) BindDirect(event string, handler vdom.Handler) int {
	id := w.nextListenerID()
	l := listener{id: id, event: event, handler: handler}
	w.direct = append(w.direct, l)
	if w.directElm != nil {
		w.directBound[id] = w.directElm.AddEventListener(event, dom.Listener(handler))
	}
	return id
}

// UnbindDirect removes a handler added with BindDirect.
func (w *Widget) UnbindDirect(id int) {
	out, ok := removeListener(w.direct, id)
	if !ok {
		return
	}
	w.direct = out
	if lid, bound := w.directBound[id]; bound {
		w.directElm.RemoveEventListener(lid)
		delete(w.directBound, id)
	}
}

// bindDirect moves the direct handlers to elm when it differs from the
// element they are bound to.
func (w *Widget) bindDirect(elm *dom.Node) {
	if elm == w.directElm {
		return
	}
	w.unbindDirect()
	w.directElm = elm
	w.directBound = make(map[int]dom.ListenerID, len(w.direct))
	for _, l := range w.direct {
		w.directBound[l.id] = elm.AddEventListener(l.event, dom.Listener(l.handler))
	}
}

func (w *Widget) unbindDirect() {
	if w.directElm != nil {
		for _, lid := range w.directBound {
			w.directElm.RemoveEventListener(lid)
		}
	}
	w.directElm = nil
	w.directBound = nil
}

// Drag and drop

// SetDragDropData makes the widget draggable, carrying data under format.
func (w *Widget) SetDragDropData(format, data string) {
	if w.dragStartID != 0 {
		w.RemoveInternalEventListener(w.dragStartID)
	}
	w.SetDraggable(true)
	w.dragStartID = w.SetInternalEventListener("dragstart", func(e *dom.Event) {
		if e.DataTransfer == nil {
			e.DataTransfer = dom.NewDataTransfer()
		}
		e.DataTransfer.SetData(format, data)
	})
}

// ClearDragDropData undoes SetDragDropData.
func (w *Widget) ClearDragDropData() {
	if w.dragStartID != 0 {
		w.RemoveInternalEventListener(w.dragStartID)
		w.dragStartID = 0
	}
	w.ClearDraggable()
}

// SetDropTarget accepts drops carrying format and calls fn for each.
func (w *Widget) SetDropTarget(format string, fn func(e *dom.Event)) {
	w.ClearDropTarget()
	over := w.SetInternalEventListener("dragover", func(e *dom.Event) {
		e.PreventDefault()
	})
	drop := w.SetInternalEventListener("drop", func(e *dom.Event) {
		if e.DataTransfer == nil || !hasFormat(e.DataTransfer, format) {
			return
		}
		e.PreventDefault()
		fn(e)
	})
	w.dropIDs = []int{over, drop}
}

// ClearDropTarget undoes SetDropTarget.
func (w *Widget) ClearDropTarget() {
	for _, id := range w.dropIDs {
		w.RemoveInternalEventListener(id)
	}
	w.dropIDs = nil
}

func hasFormat(dt *dom.DataTransfer, format string) bool {
	for _, t := range dt.Types() {
		if t == format {
			return true
		}
	}
	return false
}
