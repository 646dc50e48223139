package dom

// Document owns a node tree rooted at an <html> element.
type Document struct {
	nextNID      uint64
	nextListener ListenerID
	root         *Node
	head         *Node
	body         *Node
	active       *Node
	index        map[uint64]*Node
	recording    bool
	pending      []Mutation
}

// NewDocument creates an empty document with <html>, <head> and <body>.
func NewDocument() *Document {
	d := &Document{index: make(map[uint64]*Node)}
	d.root = d.CreateElement("html")
	d.index[d.root.nid] = d.root
	d.head = d.root.AppendChild(d.CreateElement("head"))
	d.body = d.root.AppendChild(d.CreateElement("body"))
	return d
}

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() *Node { return d.root }

// Head returns the <head> element.
func (d *Document) Head() *Node { return d.head }

// Body returns the <body> element.
func (d *Document) Body() *Node { return d.body }

// ActiveElement returns the focused node, if any.
func (d *Document) ActiveElement() *Node { return d.active }

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Node {
	d.nextNID++
	return &Node{Type: ElementNode, Tag: tag, nid: d.nextNID, doc: d}
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	d.nextNID++
	return &Node{Type: TextNode, data: text, nid: d.nextNID, doc: d}
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(text string) *Node {
	d.nextNID++
	return &Node{Type: CommentNode, data: text, nid: d.nextNID, doc: d}
}

// AppendMount appends an empty <div> with the given id to the body and
// returns it. It is the usual way to prepare a mount point for a root.
func (d *Document) AppendMount(id string) *Node {
	el := d.CreateElement("div")
	el.SetAttribute("id", id)
	d.body.AppendChild(el)
	return el
}

// GetElementByID returns the first connected element with the given id.
func (d *Document) GetElementByID(id string) (*Node, bool) {
	if id == "" {
		return nil, false
	}
	found := d.root.QuerySelectorAll(func(n *Node) bool {
		return n.Type == ElementNode && n.attrs["id"] == id
	})
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}

// NodeByNID returns a connected node by its node id.
func (d *Document) NodeByNID(nid uint64) (*Node, bool) {
	n, ok := d.index[nid]
	return n, ok
}

// StartRecording enables mutation capture for connected nodes.
func (d *Document) StartRecording() { d.recording = true }

// StopRecording disables mutation capture and drops pending records.
func (d *Document) StopRecording() {
	d.recording = false
	d.pending = nil
}

// TakeMutations returns and clears the pending mutation records.
func (d *Document) TakeMutations() []Mutation {
	out := d.pending
	d.pending = nil
	return out
}

func (d *Document) record(m Mutation, at *Node) {
	if !d.recording || !at.IsConnected() {
		return
	}
	d.pending = append(d.pending, m)
}

func (d *Document) connect(n *Node) {
	d.index[n.nid] = n
	for _, c := range n.children {
		d.connect(c)
	}
}

func (d *Document) disconnect(n *Node) {
	delete(d.index, n.nid)
	if d.active == n {
		d.active = nil
	}
	for _, c := range n.children {
		d.disconnect(c)
	}
}
