package dom

import (
	"iter"
	"strings"
)

// NodeType is the kind of a Node.
type NodeType uint8

const (
	// DocumentNode is the root of a document.
	DocumentNode NodeType = iota

	// ElementNode is an element such as <p>.
	ElementNode

	// TextNode is a run of character data.
	TextNode

	// CommentNode is an HTML comment.
	CommentNode

	// DoctypeNode is a <!DOCTYPE> declaration.
	DoctypeNode

	// ShadowRootNode is the root of an encapsulated sub-tree hosted by an
	// element. It has no parent; Host returns the element.
	ShadowRootNode
)

var nodeTypeNames = [...]string{
	DocumentNode:   "Document",
	ElementNode:    "Element",
	TextNode:       "Text",
	CommentNode:    "Comment",
	DoctypeNode:    "Doctype",
	ShadowRootNode: "ShadowRoot",
}

// String returns the name of the node type.
func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "Unknown"
}

// Attribute is an element attribute.
type Attribute struct {
	Namespace, Key, Val string
}

// Node is a node of a live document tree.
//
// Structure is read through accessor methods and changed only through the
// mutation methods, which is what lets observers see every change.
type Node struct {
	// Type is the node type. It never changes.
	Type NodeType

	// Tag is the lower-case element name, or the doctype name.
	Tag string

	// Namespace is the element namespace for foreign content (svg, math).
	Namespace string

	// Attr holds element attributes. Use SetAttr to change them.
	Attr []Attribute

	// Replaced marks a text node that a rewriting pass has fully handled
	// and must not be processed again.
	Replaced bool

	data string
	mode string // shadow root mode

	doc *Document

	parent, firstChild, lastChild, prev, next *Node

	shadow *Node // shadow root hosted by this element
	host   *Node // host element of this shadow root

	registrations []*registration
}

// Document returns the owner document.
func (n *Node) Document() *Document { return n.doc }

// Parent returns the parent node, or nil. A shadow root has no parent.
func (n *Node) Parent() *Node { return n.parent }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node { return n.firstChild }

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node { return n.lastChild }

// NextSibling returns the next sibling, or nil.
func (n *Node) NextSibling() *Node { return n.next }

// PrevSibling returns the previous sibling, or nil.
func (n *Node) PrevSibling() *Node { return n.prev }

// Data returns the character data of a text or comment node.
func (n *Node) Data() string { return n.data }

// ShadowRoot returns the shadow root hosted by this element, or nil.
func (n *Node) ShadowRoot() *Node { return n.shadow }

// Host returns the host element of a shadow root, or nil.
func (n *Node) Host() *Node { return n.host }

// ShadowMode returns "open" or "closed" for a shadow root.
func (n *Node) ShadowMode() string { return n.mode }

// IsElement reports whether n is an element named tag (any element when
// tag is empty).
func (n *Node) IsElement(tag string) bool {
	return n.Type == ElementNode && (tag == "" || n.Tag == tag)
}

// AttrValue returns the value of the attribute key.
func (n *Node) AttrValue(key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the attribute key to val, adding it when absent.
func (n *Node) SetAttr(key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, Attribute{Key: key, Val: val})
}

// HasClass reports whether the class attribute lists name.
func (n *Node) HasClass(name string) bool {
	v, _ := n.AttrValue("class")
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

// IsConnected reports whether n is attached to its document, following
// shadow roots out through their host elements.
func (n *Node) IsConnected() bool {
	for cur := n; cur != nil; {
		switch {
		case cur.Type == DocumentNode:
			return true
		case cur.parent != nil:
			cur = cur.parent
		default:
			cur = cur.host
		}
	}
	return false
}

// IsContentEditable reports whether n (or, for non-elements, its parent)
// is editable through an inherited contenteditable attribute. Inheritance
// stops at a shadow root.
func (n *Node) IsContentEditable() bool {
	cur := n
	if cur.Type != ElementNode {
		cur = cur.parent
	}
	for ; cur != nil && cur.Type == ElementNode; cur = cur.parent {
		v, ok := cur.AttrValue("contenteditable")
		if !ok {
			continue
		}
		switch strings.ToLower(v) {
		case "", "true", "plaintext-only":
			return true
		case "false":
			return false
		}
	}
	return false
}

// Children yields the direct children of n.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.firstChild; c != nil; c = c.next {
			if !yield(c) {
				return
			}
		}
	}
}

// Descendants yields every node below n in document order, excluding n.
// The walk does not enter shadow roots, exactly like a browser TreeWalker.
// The tree must not be mutated while iterating.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		cur := n.firstChild
		for cur != nil {
			if !yield(cur) {
				return
			}
			if cur.firstChild != nil {
				cur = cur.firstChild
				continue
			}
			for cur != n && cur.next == nil {
				cur = cur.parent
			}
			if cur == n {
				return
			}
			cur = cur.next
		}
	}
}

// TextContent concatenates the data of all text descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.data
	}
	var b strings.Builder
	for d := range n.Descendants() {
		if d.Type == TextNode {
			b.WriteString(d.data)
		}
	}
	return b.String()
}
