package scan

import (
	"strings"
	"unicode"

	"github.com/gogpu/emojidom/dom"
	"github.com/gogpu/emojidom/emoji"
)

// minTextLen is the shortest text, in UTF-16 code units, that can hold an
// emoji worth replacing.
const minTextLen = 2

// skipParents lists HTML elements whose text is never rewritten. Foreign
// elements of the same name (svg title and style) are not skipped.
var skipParents = map[string]struct{}{
	"script":   {},
	"style":    {},
	"textarea": {},
	"title":    {},
}

// Scanner walks a root, including the shadow roots below it, and visits
// the text nodes worth rewriting.
type Scanner struct {
	boot *Bootstrapper
}

// NewScanner returns a Scanner that bootstraps the shadow roots it meets
// with b. A nil b walks shadow roots without preparing them.
func NewScanner(b *Bootstrapper) *Scanner {
	return &Scanner{boot: b}
}

// Walk visits the eligible text nodes of root.
//
// The text nodes of the light tree are collected before any is visited,
// so visit may replace them freely. Shadow roots are handled afterwards:
// first one hosted by root itself, then one hosted by each element below
// root, each bootstrapped and walked in turn.
func (s *Scanner) Walk(root *dom.Node, visit func(*dom.Node)) {
	var texts []*dom.Node
	for n := range root.Descendants() {
		if eligible(n) {
			texts = append(texts, n)
		}
	}
	for _, t := range texts {
		visit(t)
	}

	if sr := root.ShadowRoot(); sr != nil {
		s.enter(sr, visit)
	}
	var hosts []*dom.Node
	for n := range root.Descendants() {
		if n.Type == dom.ElementNode && n.ShadowRoot() != nil {
			hosts = append(hosts, n)
		}
	}
	for _, h := range hosts {
		s.enter(h.ShadowRoot(), visit)
	}
}

func (s *Scanner) enter(shadow *dom.Node, visit func(*dom.Node)) {
	if s.boot != nil {
		s.boot.Bootstrap(shadow)
	}
	s.Walk(shadow, visit)
}

// eligible reports whether a text node should be offered for rewriting.
func eligible(n *dom.Node) bool {
	if n.Type != dom.TextNode {
		return false
	}
	data := n.Data()
	if emoji.UTF16Len(data) < minTextLen {
		return false
	}
	if strings.TrimFunc(data, unicode.IsSpace) == "" {
		return false
	}
	p := n.Parent()
	if p == nil || p.Type != dom.ElementNode {
		return true
	}
	if _, skip := skipParents[p.Tag]; skip && p.Namespace == "" {
		return false
	}
	return !p.IsContentEditable()
}
