package scan

import (
	"context"
	"errors"
	"strings"

	"github.com/gogpu/emojidom/dom"
	"github.com/gogpu/emojidom/host"
)

var errMissing = errors.New("missing")

// recordingLoader fails for every address in fail and records each call.
type recordingLoader struct {
	calls []string
	fail  map[string]bool
	all   bool
}

func (l *recordingLoader) Load(_ context.Context, src string) error {
	l.calls = append(l.calls, src)
	if l.all || l.fail[src] {
		return errMissing
	}
	return nil
}

func newTestDoc() (*host.Manual, *dom.Document) {
	m := host.NewManual()
	return m, dom.NewDocument(m)
}

func appendText(d *dom.Document, parent *dom.Node, data string) *dom.Node {
	t := d.CreateTextNode(data)
	parent.AppendChild(t)
	return t
}

func appendElement(d *dom.Document, parent *dom.Node, tag string) *dom.Node {
	el := d.CreateElement(tag)
	parent.AppendChild(el)
	return el
}

// flatten renders the children of n as a compact string: text verbatim,
// images as [alt|src], other elements as <tag>.
func flatten(n *dom.Node) string {
	var b strings.Builder
	for c := range n.Children() {
		switch {
		case c.Type == dom.TextNode:
			b.WriteString(c.Data())
		case c.IsElement("img"):
			alt, _ := c.AttrValue("alt")
			src, _ := c.AttrValue("src")
			b.WriteString("[" + alt + "|" + src + "]")
		default:
			b.WriteString("<" + c.Tag + ">")
		}
	}
	return b.String()
}

// restore is the inverse of the rewrite: every image becomes its alt text.
func restore(n *dom.Node) string {
	var b strings.Builder
	for c := range n.Descendants() {
		switch {
		case c.Type == dom.TextNode:
			b.WriteString(c.Data())
		case c.IsElement("img"):
			alt, _ := c.AttrValue("alt")
			b.WriteString(alt)
		}
	}
	return b.String()
}

func countImages(n *dom.Node) int {
	count := 0
	for c := range n.Descendants() {
		if c.IsElement("img") && c.HasClass("emoji") {
			count++
		}
	}
	return count
}
