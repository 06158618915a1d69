package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/htmlindex"
)

// ParseOption configures Parse.
type ParseOption func(*parseOptions)

type parseOptions struct {
	charset string
	poster  Poster
}

// WithCharset decodes the input from the named encoding (any WHATWG label,
// e.g. "windows-1252" or "shift_jis") before parsing. UTF-8 is assumed
// otherwise.
func WithCharset(label string) ParseOption {
	return func(o *parseOptions) {
		o.charset = label
	}
}

// WithPoster sets the poster used for observer delivery on the parsed
// document.
func WithPoster(p Poster) ParseOption {
	return func(o *parseOptions) {
		o.poster = p
	}
}

// Parse reads an HTML document. A <template shadowrootmode="open|closed">
// that is the first such template of its parent becomes the parent's
// shadow root.
func Parse(r io.Reader, opts ...ParseOption) (*Document, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	if o.charset != "" {
		enc, err := htmlindex.Get(o.charset)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, o.charset)
		}
		r = enc.NewDecoder().Reader(r)
	}

	hn, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse html: %w", err)
	}

	d := newDocument(o.poster)
	importChildren(d, d.root, hn)
	return d, nil
}

func importChildren(d *Document, dst *Node, src *html.Node) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		if mode, ok := shadowTemplate(c); ok && dst.Type == ElementNode && dst.shadow == nil {
			sr, _ := dst.AttachShadow(mode)
			importChildren(d, sr, c)
			continue
		}
		n := importNode(d, c)
		if n == nil {
			continue
		}
		dst.link(n, nil)
		importChildren(d, n, c)
	}
}

func importNode(d *Document, src *html.Node) *Node {
	switch src.Type {
	case html.ElementNode:
		n := d.CreateElement(src.Data)
		n.Namespace = src.Namespace
		for _, a := range src.Attr {
			n.Attr = append(n.Attr, Attribute{Namespace: a.Namespace, Key: a.Key, Val: a.Val})
		}
		return n
	case html.TextNode:
		return d.CreateTextNode(src.Data)
	case html.CommentNode:
		return d.CreateComment(src.Data)
	case html.DoctypeNode:
		n := &Node{Type: DoctypeNode, Tag: src.Data, doc: d}
		for _, a := range src.Attr {
			n.Attr = append(n.Attr, Attribute{Key: a.Key, Val: a.Val})
		}
		return n
	default:
		return nil
	}
}

func shadowTemplate(n *html.Node) (string, bool) {
	if n.Type != html.ElementNode || n.DataAtom != atom.Template {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == "shadowrootmode" || a.Key == "shadowroot" {
			mode := strings.ToLower(a.Val)
			if mode == "open" || mode == "closed" {
				return mode, true
			}
		}
	}
	return "", false
}

// Render writes n and its descendants as HTML. Shadow roots are written as
// declarative <template shadowrootmode> elements.
func Render(w io.Writer, n *Node) error {
	hn := exportNode(n)
	if n.Type == ShadowRootNode {
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(w, c); err != nil {
				return err
			}
		}
		return nil
	}
	return html.Render(w, hn)
}

func exportNode(n *Node) *html.Node {
	var hn *html.Node
	switch n.Type {
	case DocumentNode:
		hn = &html.Node{Type: html.DocumentNode}
	case ElementNode:
		hn = &html.Node{Type: html.ElementNode, Data: n.Tag, DataAtom: atom.Lookup([]byte(n.Tag)), Namespace: n.Namespace}
		for _, a := range n.Attr {
			hn.Attr = append(hn.Attr, html.Attribute{Namespace: a.Namespace, Key: a.Key, Val: a.Val})
		}
	case TextNode:
		return &html.Node{Type: html.TextNode, Data: n.data}
	case CommentNode:
		return &html.Node{Type: html.CommentNode, Data: n.data}
	case DoctypeNode:
		hn = &html.Node{Type: html.DoctypeNode, Data: n.Tag}
		for _, a := range n.Attr {
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Val})
		}
		return hn
	case ShadowRootNode:
		hn = &html.Node{Type: html.ElementNode, Data: "template", DataAtom: atom.Template,
			Attr: []html.Attribute{{Key: "shadowrootmode", Val: n.mode}}}
	}

	if n.shadow != nil {
		hn.AppendChild(exportNode(n.shadow))
	}
	for c := n.firstChild; c != nil; c = c.next {
		hn.AppendChild(exportNode(c))
	}
	return hn
}
