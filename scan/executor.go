package scan

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gogpu/emojidom/dom"
	"github.com/gogpu/emojidom/emoji"
	"github.com/gogpu/emojidom/host"
)

// Executor rewrites text nodes, replacing each eligible emoji with an
// <img class="emoji"> element.
type Executor struct {
	host    host.Host
	pattern *emoji.Pattern
	base    string
	loader  AssetLoader
	ctx     context.Context
	log     *slog.Logger
	closed  bool
}

// NewExecutor returns an Executor that schedules asset loads on h.
func NewExecutor(h host.Host, opts ...Option) *Executor {
	return newExecutor(h, newConfig(opts))
}

func newExecutor(h host.Host, cfg config) *Executor {
	return &Executor{
		host:    h,
		pattern: cfg.pattern,
		base:    cfg.baseURL,
		loader:  cfg.loader,
		ctx:     cfg.ctx,
		log:     cfg.logger,
	}
}

// Process rewrites text and returns the number of images it inserted.
//
// Text already marked Replaced, detached text and text without an
// eligible match are left alone. Otherwise text is replaced in one
// mutation by the unmatched stretches as new text nodes interleaved with
// one image per eligible match. Ineligible matches stay in the text.
func (e *Executor) Process(text *dom.Node) int {
	if text.Type != dom.TextNode || text.Replaced || text.Parent() == nil {
		return 0
	}
	data := text.Data()
	doc := text.Document()

	var (
		out  []*dom.Node
		imgs []*dom.Node
		last int
	)
	for m := range e.pattern.Matches(data) {
		if emoji.Ignored(m.Codepoint, m.Text) {
			continue
		}
		if m.Start > last {
			out = append(out, doc.CreateTextNode(data[last:m.Start]))
		}
		img := e.image(doc, m)
		out = append(out, img)
		imgs = append(imgs, img)
		last = m.End
	}
	if len(imgs) == 0 {
		return 0
	}
	if last < len(data) {
		out = append(out, doc.CreateTextNode(data[last:]))
	}

	text.ReplaceWith(out...)
	for _, img := range imgs {
		e.track(img)
	}
	e.log.Debug("scan: replaced text", "images", len(imgs), "nodes", len(out))
	return len(imgs)
}

// Close stops the asset fallback. Loads already queued are dropped and
// images keep their current address.
func (e *Executor) Close() { e.closed = true }

func (e *Executor) image(doc *dom.Document, m emoji.Match) *dom.Node {
	img := doc.CreateElement("img")
	img.SetAttr("class", "emoji")
	img.SetAttr("draggable", "false")
	img.SetAttr("alt", m.Text)
	img.SetAttr("src", e.src(m.Codepoint))
	img.SetAttr("loading", "eager")
	return img
}

func (e *Executor) src(cp string) string {
	name := emoji.AssetName(cp)
	if e.base == "" {
		return name
	}
	if strings.HasSuffix(e.base, "/") {
		return e.base + name
	}
	return e.base + "/" + name
}
