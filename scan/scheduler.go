package scan

import (
	"log/slog"
	"time"

	"github.com/gogpu/emojidom/dom"
	"github.com/gogpu/emojidom/host"
)

// schedState is the state of the Scheduler's batching window.
type schedState uint8

const (
	stateIdle    schedState = iota // nothing pending, no timer armed
	statePending                   // timer or frame outstanding
)

// Stats counts Scheduler activity.
type Stats struct {
	Notifications int // Notify calls
	Batches       int // frames that drained the pending set
	RootsScanned  int // roots walked
	RootsSkipped  int // roots dropped because they were detached
	Images        int // images inserted
}

// Scheduler coalesces rescan requests into debounced, frame-aligned
// batches. It owns the Scanner, Bootstrapper and Executor that do the work.
type Scheduler struct {
	host     host.Host
	debounce time.Duration

	state   schedState
	closed  bool
	pending []*dom.Node
	queued  map[*dom.Node]struct{}

	boot    *Bootstrapper
	scanner *Scanner
	exec    *Executor

	stats Stats
	log   *slog.Logger
}

// NewScheduler returns an idle Scheduler running on h.
func NewScheduler(h host.Host, opts ...Option) *Scheduler {
	cfg := newConfig(opts)
	s := &Scheduler{
		host:     h,
		debounce: cfg.debounce,
		queued:   make(map[*dom.Node]struct{}),
		log:      cfg.logger,
	}
	s.boot = newBootstrapper(s, cfg)
	s.scanner = NewScanner(s.boot)
	s.exec = newExecutor(h, cfg)
	return s
}

// Notify adds root to the pending set. The first root added to an idle
// Scheduler arms the debounce timer; later ones join the same batch.
func (s *Scheduler) Notify(root *dom.Node) {
	if root == nil || s.closed {
		return
	}
	s.stats.Notifications++
	if _, ok := s.queued[root]; !ok {
		s.queued[root] = struct{}{}
		s.pending = append(s.pending, root)
	}
	if s.state == stateIdle {
		s.arm()
	}
}

func (s *Scheduler) arm() {
	s.state = statePending
	s.host.AfterFunc(s.debounce, func() {
		s.host.RequestFrame(s.drain)
	})
}

// drain scans the current batch. Roots notified while it runs form the
// next batch.
func (s *Scheduler) drain() {
	if s.closed {
		return
	}
	batch := s.pending
	s.pending = nil
	s.queued = make(map[*dom.Node]struct{})
	s.stats.Batches++

	scanned, skipped := 0, 0
	for _, root := range batch {
		if !root.IsConnected() {
			skipped++
			continue
		}
		s.scanner.Walk(root, s.process)
		scanned++
	}
	s.stats.RootsScanned += scanned
	s.stats.RootsSkipped += skipped
	s.log.Debug("scan: batch drained", "roots", scanned, "skipped", skipped)

	s.state = stateIdle
	if len(s.pending) > 0 {
		s.arm()
	}
}

func (s *Scheduler) process(text *dom.Node) {
	s.stats.Images += s.exec.Process(text)
}

// Pending returns the number of roots waiting for the next batch.
func (s *Scheduler) Pending() int { return len(s.pending) }

// Idle reports whether no batch is armed.
func (s *Scheduler) Idle() bool { return s.state == stateIdle }

// Stats returns a copy of the activity counters.
func (s *Scheduler) Stats() Stats { return s.stats }

// Registry returns the set of bootstrapped shadow roots.
func (s *Scheduler) Registry() *Registry { return s.boot.Registry() }

// Close disconnects the shadow-root subscriptions and drops pending work,
// including queued asset loads. Later notifications are ignored.
func (s *Scheduler) Close() {
	s.closed = true
	s.pending = nil
	clear(s.queued)
	s.boot.Close()
	s.exec.Close()
}
