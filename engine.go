package emojidom

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/gogpu/emojidom/dom"
	"github.com/gogpu/emojidom/host"
	"github.com/gogpu/emojidom/scan"
)

// Engine keeps a document's emoji replaced as the document changes.
//
// An Engine and the document it watches must only be used from the host's
// goroutine.
type Engine struct {
	id   uuid.UUID
	doc  *dom.Document
	host host.Host
	opts options
	log  *slog.Logger

	sched    *scan.Scheduler
	observer *dom.Observer
	root     *dom.Node

	started bool
	closed  bool
}

// New returns an Engine for doc. Mutation records of doc are delivered
// through h from now on. Nothing is scanned until Start.
func New(doc *dom.Document, h host.Host, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	id := uuid.New()
	log := Logger().With("engine", id.String())

	doc.SetPoster(h)
	e := &Engine{
		id:   id,
		doc:  doc,
		host: h,
		opts: o,
		log:  log,
	}
	e.sched = scan.NewScheduler(h,
		scan.WithBaseURL(o.baseURL),
		scan.WithDebounce(o.debounce),
		scan.WithLoader(o.loader),
		scan.WithStyle(o.style),
		scan.WithLogger(log),
		scan.WithContext(o.ctx),
	)
	return e
}

// ID returns the engine instance id used in its log records.
func (e *Engine) ID() string { return e.id.String() }

// Start injects the stylesheet, schedules the first scan of the document
// body and subscribes to changes below it.
func (e *Engine) Start() error {
	switch {
	case e.closed:
		return ErrClosed
	case e.started:
		return ErrStarted
	}
	e.started = true

	if e.opts.style != "" {
		target := e.doc.Head()
		if target == nil {
			target = e.doc.DocumentElement()
		}
		if target != nil {
			dom.InjectStyle(target, e.opts.style)
		}
	}

	e.root = e.doc.Body()
	if e.root == nil {
		e.root = e.doc.DocumentElement()
	}
	if e.root == nil {
		e.root = e.doc.Root()
	}
	e.sched.Notify(e.root)

	root := e.root
	e.observer = dom.NewObserver(func(recs []dom.MutationRecord) {
		scan.Translate(recs, e.sched, root)
	})
	e.observer.Observe(root, dom.ObserveOptions{ChildList: true, CharacterData: true, Subtree: true})

	e.log.Info("emojidom: engine started", "root", root.Tag, "base", e.opts.baseURL)
	return nil
}

// Close stops observing the document, including every shadow root the
// engine subscribed to, and drops pending scans. Images already inserted
// stay. Close is idempotent.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	if e.observer != nil {
		e.observer.Disconnect()
	}
	e.sched.Close()
	st := e.sched.Stats()
	e.log.Info("emojidom: engine closed", "batches", st.Batches, "images", st.Images)
}

// Stats returns the scheduler counters.
func (e *Engine) Stats() scan.Stats { return e.sched.Stats() }

// ShadowRoots returns how many shadow roots the engine has prepared.
func (e *Engine) ShadowRoots() int { return e.sched.Registry().Len() }
