package emojidom

import (
	"context"
	"errors"
	"testing"

	"github.com/gogpu/emojidom/dom"
	"github.com/gogpu/emojidom/host"
	"github.com/gogpu/emojidom/scan"
)

func images(n *dom.Node) int {
	count := 0
	for c := range n.Descendants() {
		if c.IsElement("img") && c.HasClass("emoji") {
			count++
		}
	}
	return count
}

func startEngine(t *testing.T, opts ...Option) (*host.Manual, *dom.Document, *Engine) {
	t.Helper()
	m := host.NewManual()
	doc := dom.NewDocument(nil)
	e := New(doc, m, opts...)
	t.Cleanup(e.Close)
	return m, doc, e
}

func settle(t *testing.T, m *host.Manual) {
	t.Helper()
	if err := m.Settle(100); err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
}

func TestEngine_Start(t *testing.T) {
	m, doc, e := startEngine(t, WithBaseURL("/png/"))
	p := doc.CreateElement("p")
	p.AppendChild(doc.CreateTextNode("hello \U0001F600"))
	doc.Body().AppendChild(p)

	if err := e.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	settle(t, m)

	if got := images(doc.Body()); got != 1 {
		t.Errorf("images = %d, want 1", got)
	}
	style := doc.Head().LastChild()
	if style == nil || !style.IsElement("style") {
		t.Fatal("no stylesheet in head")
	}
	img := p.LastChild()
	if src, _ := img.AttrValue("src"); src != "/png/emoji_u1f600.png" {
		t.Errorf("src = %q", src)
	}
	if e.ID() == "" {
		t.Error("ID() is empty")
	}
}

func TestEngine_StartTwice(t *testing.T) {
	_, _, e := startEngine(t)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); !errors.Is(err, ErrStarted) {
		t.Errorf("second Start() error = %v, want ErrStarted", err)
	}
	e.Close()
	e.Close()
	if err := e.Start(); !errors.Is(err, ErrClosed) {
		t.Errorf("Start() after Close error = %v, want ErrClosed", err)
	}
}

func TestEngine_FollowsMutations(t *testing.T) {
	m, doc, e := startEngine(t)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	settle(t, m)

	// Added subtree.
	div := doc.CreateElement("div")
	div.AppendChild(doc.CreateTextNode("new \U0001F44D"))
	doc.Body().AppendChild(div)
	settle(t, m)
	if got := images(div); got != 1 {
		t.Errorf("images after insert = %d, want 1", got)
	}

	// Character data change.
	span := doc.CreateElement("span")
	text := doc.CreateTextNode("plain")
	span.AppendChild(text)
	doc.Body().AppendChild(span)
	settle(t, m)
	text.SetData("now \U0001F680")
	settle(t, m)
	if got := images(span); got != 1 {
		t.Errorf("images after edit = %d, want 1", got)
	}

	// Nothing left to do: another round changes nothing.
	before := e.Stats().Images
	e.sched.Notify(doc.Body())
	settle(t, m)
	if e.Stats().Images != before {
		t.Errorf("rescan inserted %d images", e.Stats().Images-before)
	}
}

func TestEngine_ShadowRoots(t *testing.T) {
	m, doc, e := startEngine(t)
	card := doc.CreateElement("x-card")
	sr, err := card.AttachShadow("open")
	if err != nil {
		t.Fatal(err)
	}
	sr.AppendChild(doc.CreateTextNode("in shadow \U0001F600"))
	doc.Body().AppendChild(card)

	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	settle(t, m)
	if got := images(sr); got != 1 {
		t.Errorf("shadow images = %d, want 1", got)
	}
	if e.ShadowRoots() != 1 {
		t.Errorf("ShadowRoots() = %d, want 1", e.ShadowRoots())
	}

	sr.AppendChild(doc.CreateTextNode("later \U0001F601"))
	settle(t, m)
	if got := images(sr); got != 2 {
		t.Errorf("shadow images after change = %d, want 2", got)
	}
}

func TestEngine_CloseStopsObserving(t *testing.T) {
	m, doc, e := startEngine(t)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}
	settle(t, m)
	e.Close()

	p := doc.CreateElement("p")
	p.AppendChild(doc.CreateTextNode("after \U0001F600"))
	doc.Body().AppendChild(p)
	settle(t, m)
	if got := images(p); got != 0 {
		t.Errorf("images after Close = %d, want 0", got)
	}
}

func TestEngine_CloseDropsQueuedLoads(t *testing.T) {
	loads := 0
	failing := scan.LoaderFunc(func(context.Context, string) error {
		loads++
		return errors.New("unavailable")
	})
	m, doc, e := startEngine(t, WithLoader(failing))
	p := doc.CreateElement("p")
	p.AppendChild(doc.CreateTextNode("\U0001F600"))
	doc.Body().AppendChild(p)
	if err := e.Start(); err != nil {
		t.Fatal(err)
	}

	m.Advance(scan.DefaultDebounce)
	m.Post(e.Close)
	m.Frame()
	settle(t, m)

	if loads != 0 {
		t.Errorf("loads after Close = %d, want 0", loads)
	}
	if got := images(p); got != 1 {
		t.Errorf("images = %d, want 1", got)
	}
}
