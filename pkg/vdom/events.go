package vdom

// On binds a handler to an arbitrary event name.
func On(name string, handler Handler) EventHandler {
	return EventHandler{Event: name, Handler: handler}
}

// Mouse events

// OnClick handles click events.
func OnClick(handler Handler) EventHandler { return On("click", handler) }

// OnDblClick handles double-click events.
func OnDblClick(handler Handler) EventHandler { return On("dblclick", handler) }

// OnMouseDown handles mousedown events.
func OnMouseDown(handler Handler) EventHandler { return On("mousedown", handler) }

// OnMouseUp handles mouseup events.
func OnMouseUp(handler Handler) EventHandler { return On("mouseup", handler) }

// OnMouseMove handles mousemove events.
func OnMouseMove(handler Handler) EventHandler { return On("mousemove", handler) }

// Keyboard events

// OnKeyDown handles keydown events.
func OnKeyDown(handler Handler) EventHandler { return On("keydown", handler) }

// Form events

// OnInput handles input events (fired when value changes).
func OnInput(handler Handler) EventHandler { return On("input", handler) }

// OnChange handles change events (fired when value is committed).
func OnChange(handler Handler) EventHandler { return On("change", handler) }

// Drag events

// OnDragStart handles dragstart events.
func OnDragStart(handler Handler) EventHandler { return On("dragstart", handler) }

// OnDragOver handles dragover events.
func OnDragOver(handler Handler) EventHandler { return On("dragover", handler) }

// OnDrop handles drop events.
func OnDrop(handler Handler) EventHandler { return On("drop", handler) }
