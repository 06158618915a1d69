package scan

import (
	"github.com/gogpu/emojidom/dom"
	"github.com/gogpu/emojidom/emoji"
)

// loadState tracks an image through the asset fallback.
type loadState uint8

const (
	loadUnattempted loadState = iota // first address in flight
	loadRetried                      // selector-toggled address in flight
	loadGaveUp                       // replaced by its alt text
)

type imageLoad struct {
	img   *dom.Node
	state loadState
}

// track starts loading img. With no loader the image counts as loaded.
func (e *Executor) track(img *dom.Node) {
	if e.loader == nil {
		return
	}
	e.attempt(&imageLoad{img: img})
}

func (e *Executor) attempt(l *imageLoad) {
	src, _ := l.img.AttrValue("src")
	e.host.Post(func() {
		if e.closed {
			return
		}
		err := e.loader.Load(e.ctx, src)
		e.settle(l, src, err)
	})
}

// settle applies one load outcome. The first failure retries with the
// variation selector toggled; the second puts the alt text back.
func (e *Executor) settle(l *imageLoad, src string, err error) {
	if e.closed || err == nil || l.state == loadGaveUp {
		return
	}
	if !l.img.IsConnected() {
		return
	}
	switch l.state {
	case loadUnattempted:
		l.state = loadRetried
		retry := emoji.ToggleSelector(src)
		e.log.Debug("scan: asset failed, retrying", "src", src, "retry", retry, "error", err)
		l.img.SetAttr("data-retried", "true")
		l.img.SetAttr("src", retry)
		e.attempt(l)
	case loadRetried:
		l.state = loadGaveUp
		alt, _ := l.img.AttrValue("alt")
		e.log.Debug("scan: asset unavailable, restoring text", "src", src, "alt", alt, "error", err)
		t := l.img.Document().CreateTextNode(alt)
		t.Replaced = true
		l.img.ReplaceWith(t)
	}
}
