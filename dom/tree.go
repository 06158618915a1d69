package dom

// Poster runs a task later on the tree's logical thread.
// host.Loop and host.Manual implement it.
type Poster interface {
	Post(task func())
}

// immediate runs posted tasks synchronously.
type immediate struct{}

func (immediate) Post(task func()) { task() }

// Document owns a tree of nodes and the poster used to deliver mutation
// records.
type Document struct {
	root   *Node
	poster Poster
}

// NewDocument returns a document holding an empty <html><head><body>
// skeleton. Mutation records are delivered through p; a nil p delivers
// them synchronously after each mutation.
func NewDocument(p Poster) *Document {
	d := newDocument(p)
	html := d.CreateElement("html")
	d.root.AppendChild(html)
	html.AppendChild(d.CreateElement("head"))
	html.AppendChild(d.CreateElement("body"))
	return d
}

func newDocument(p Poster) *Document {
	d := &Document{}
	d.SetPoster(p)
	d.root = &Node{Type: DocumentNode, doc: d}
	return d
}

// SetPoster replaces the poster used for observer delivery.
func (d *Document) SetPoster(p Poster) {
	if p == nil {
		p = immediate{}
	}
	d.poster = p
}

// Root returns the document node.
func (d *Document) Root() *Node { return d.root }

// DocumentElement returns the <html> element, or nil.
func (d *Document) DocumentElement() *Node {
	for c := range d.root.Children() {
		if c.Type == ElementNode {
			return c
		}
	}
	return nil
}

// Head returns the <head> element, or nil.
func (d *Document) Head() *Node { return d.child("head") }

// Body returns the <body> element, or nil.
func (d *Document) Body() *Node { return d.child("body") }

func (d *Document) child(tag string) *Node {
	html := d.DocumentElement()
	if html == nil {
		return nil
	}
	for c := range html.Children() {
		if c.IsElement(tag) {
			return c
		}
	}
	return nil
}

// CreateElement returns a new detached element.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: tag, doc: d}
}

// CreateTextNode returns a new detached text node.
func (d *Document) CreateTextNode(data string) *Node {
	return &Node{Type: TextNode, data: data, doc: d}
}

// CreateComment returns a new detached comment node.
func (d *Document) CreateComment(data string) *Node {
	return &Node{Type: CommentNode, data: data, doc: d}
}

// AttachShadow attaches a new shadow root to element n. An empty mode
// means "open".
func (n *Node) AttachShadow(mode string) (*Node, error) {
	if n.Type != ElementNode {
		return nil, ErrNotElement
	}
	if n.shadow != nil {
		return nil, ErrShadowExists
	}
	if mode == "" {
		mode = "open"
	}
	n.shadow = &Node{Type: ShadowRootNode, doc: n.doc, host: n, mode: mode}
	return n.shadow, nil
}

// AppendChild adds c as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(c *Node) {
	n.InsertBefore(c, nil)
}

// InsertBefore inserts c before ref, or at the end when ref is nil.
// It panics if ref is not a child of n or if c is n or one of its
// ancestors.
func (n *Node) InsertBefore(c, ref *Node) {
	if ref != nil && ref.parent != n {
		panic("dom: InsertBefore called with a reference node that is not a child")
	}
	for a := n; a != nil; a = a.parent {
		if a == c {
			panic("dom: InsertBefore would create a cycle")
		}
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	n.link(c, ref)
	n.queueChildList([]*Node{c}, nil)
}

// RemoveChild detaches c from n. It panics if c is not a child of n.
func (n *Node) RemoveChild(c *Node) {
	if c.parent != n {
		panic("dom: RemoveChild called for a non-child node")
	}
	n.unlink(c)
	n.queueChildList(nil, []*Node{c})
}

// ReplaceWith atomically replaces n in its parent with nodes, producing a
// single mutation record. Nodes already in a tree are moved, siblings of
// n included, and n itself may appear in nodes.
func (n *Node) ReplaceWith(nodes ...*Node) {
	p := n.parent
	if p == nil {
		return
	}
	kept := false
	for _, c := range nodes {
		if c == n {
			kept = true
			continue
		}
		if c.parent != nil {
			c.parent.RemoveChild(c)
		}
	}
	// Siblings moved above are already unlinked, so n.next is the first
	// node staying after n.
	ref := n.next
	p.unlink(n)
	for _, c := range nodes {
		p.link(c, ref)
	}
	removed := []*Node{n}
	if kept {
		removed = nil
	}
	p.queueChildList(nodes, removed)
}

// SetData replaces the character data of a text or comment node.
func (n *Node) SetData(data string) {
	if n.data == data {
		return
	}
	n.data = data
	n.queue(MutationRecord{Type: CharacterData, Target: n})
}

// link inserts c before ref without recording a mutation.
func (n *Node) link(c, ref *Node) {
	c.parent = n
	c.doc = n.doc
	if ref == nil {
		c.prev = n.lastChild
		if n.lastChild != nil {
			n.lastChild.next = c
		} else {
			n.firstChild = c
		}
		n.lastChild = c
		return
	}
	c.prev = ref.prev
	c.next = ref
	if ref.prev != nil {
		ref.prev.next = c
	} else {
		n.firstChild = c
	}
	ref.prev = c
}

// unlink removes c without recording a mutation.
func (n *Node) unlink(c *Node) {
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		n.firstChild = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	} else {
		n.lastChild = c.prev
	}
	c.parent, c.prev, c.next = nil, nil, nil
}

func (n *Node) queueChildList(added, removed []*Node) {
	n.queue(MutationRecord{Type: ChildList, Target: n, Added: added, Removed: removed})
}
