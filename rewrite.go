package emojidom

import (
	"fmt"
	"io"

	"github.com/gogpu/emojidom/dom"
	"github.com/gogpu/emojidom/host"
	"github.com/gogpu/emojidom/scan"
)

// maxSettleSteps bounds the virtual-clock rounds of a Rewrite. A document
// settles in a handful of rounds; the bound only matters for a loader that
// keeps the tree changing.
const maxSettleSteps = 1000

// Rewrite parses the HTML document read from r, replaces its emoji and
// writes the result to w. It runs the same pipeline as an Engine against a
// virtual clock, so shadow roots declared with <template shadowrootmode>
// and the loader fallback behave exactly as they would live.
func Rewrite(w io.Writer, r io.Reader, opts ...Option) (scan.Stats, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m := host.NewManual()
	popts := []dom.ParseOption{dom.WithPoster(m)}
	if o.charset != "" {
		popts = append(popts, dom.WithCharset(o.charset))
	}
	doc, err := dom.Parse(r, popts...)
	if err != nil {
		return scan.Stats{}, fmt.Errorf("emojidom: parse: %w", err)
	}

	e := New(doc, m, opts...)
	if err := e.Start(); err != nil {
		return scan.Stats{}, err
	}
	if err := m.Settle(maxSettleSteps); err != nil {
		e.Close()
		return e.Stats(), fmt.Errorf("emojidom: rewrite: %w", err)
	}
	e.Close()

	if err := dom.Render(w, doc.Root()); err != nil {
		return e.Stats(), fmt.Errorf("emojidom: render: %w", err)
	}
	return e.Stats(), nil
}
