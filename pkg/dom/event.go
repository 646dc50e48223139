package dom

// Listener handles a dispatched event.
type Listener func(e *Event)

// ListenerID identifies a registered listener for removal.
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	fn Listener
}

// DataTransfer carries drag and drop payloads keyed by format.
type DataTransfer struct {
	data  map[string]string
	types []string
}

// NewDataTransfer returns an empty DataTransfer.
func NewDataTransfer() *DataTransfer {
	return &DataTransfer{data: make(map[string]string)}
}

// SetData stores data for a format.
func (dt *DataTransfer) SetData(format, data string) {
	if _, ok := dt.data[format]; !ok {
		dt.types = append(dt.types, format)
	}
	dt.data[format] = data
}

// GetData returns the data stored for a format.
func (dt *DataTransfer) GetData(format string) string {
	return dt.data[format]
}

// Types returns the stored formats in insertion order.
func (dt *DataTransfer) Types() []string {
	out := make([]string, len(dt.types))
	copy(out, dt.types)
	return out
}

// Event is a DOM event dispatched to a node and its ancestors.
type Event struct {
	Type          string
	Target        *Node
	CurrentTarget *Node
	ClientX       float64
	ClientY       float64
	Key           string
	Value         string
	DataTransfer  *DataTransfer

	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// PreventDefault marks the event's default action as cancelled.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation stops the event from bubbling further.
func (e *Event) StopPropagation() { e.stopped = true }

// AddEventListener registers fn for events of the given type.
func (n *Node) AddEventListener(typ string, fn Listener) ListenerID {
	if n.listeners == nil {
		n.listeners = make(map[string][]listenerEntry)
	}
	n.doc.nextListener++
	id := n.doc.nextListener
	n.listeners[typ] = append(n.listeners[typ], listenerEntry{id: id, fn: fn})
	return id
}

// RemoveEventListener unregisters a listener by id.
func (n *Node) RemoveEventListener(id ListenerID) {
	for typ, entries := range n.listeners {
		for i, e := range entries {
			if e.id == id {
				n.listeners[typ] = append(entries[:i], entries[i+1:]...)
				if len(n.listeners[typ]) == 0 {
					delete(n.listeners, typ)
				}
				return
			}
		}
	}
}

// ListenerCount returns the number of listeners registered for typ.
func (n *Node) ListenerCount(typ string) int {
	return len(n.listeners[typ])
}

// DispatchEvent delivers e to n and then to each ancestor until propagation
// is stopped. It reports whether the default action was not prevented.
func (n *Node) DispatchEvent(e *Event) bool {
	e.Target = n
	for cur := n; cur != nil && !e.stopped; cur = cur.parent {
		entries := cur.listeners[e.Type]
		if len(entries) == 0 {
			continue
		}
		e.CurrentTarget = cur
		snapshot := make([]listenerEntry, len(entries))
		copy(snapshot, entries)
		for _, entry := range snapshot {
			entry.fn(e)
		}
	}
	return !e.defaultPrevented
}
