package host

import (
	"errors"
	"sort"
	"time"
)

// ErrNotSettled is returned by Settle when work is still pending after the
// step limit.
var ErrNotSettled = errors.New("host: did not settle")

// Manual is a Host driven explicitly by its caller.
//
// Nothing runs until the caller asks: RunTasks drains posted tasks,
// Advance moves the virtual clock and fires due timers, Frame runs the
// queued frame callbacks. Manual is not safe for concurrent use.
type Manual struct {
	now    time.Duration
	seq    uint64
	tasks  []func()
	timers []manualTimer
	frames []func()
}

type manualTimer struct {
	due time.Duration
	seq uint64
	f   func()
}

// NewManual returns a Manual host with its clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Post implements Host.
func (m *Manual) Post(task func()) {
	m.tasks = append(m.tasks, task)
}

// AfterFunc implements Host.
func (m *Manual) AfterFunc(d time.Duration, f func()) {
	m.seq++
	m.timers = append(m.timers, manualTimer{due: m.now + d, seq: m.seq, f: f})
	sort.Slice(m.timers, func(i, j int) bool {
		if m.timers[i].due != m.timers[j].due {
			return m.timers[i].due < m.timers[j].due
		}
		return m.timers[i].seq < m.timers[j].seq
	})
}

// RequestFrame implements Host.
func (m *Manual) RequestFrame(f func()) {
	m.frames = append(m.frames, f)
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// PendingTasks returns the number of posted tasks not yet run.
func (m *Manual) PendingTasks() int { return len(m.tasks) }

// PendingTimers returns the number of armed timers.
func (m *Manual) PendingTimers() int { return len(m.timers) }

// PendingFrames returns the number of queued frame callbacks.
func (m *Manual) PendingFrames() int { return len(m.frames) }

// RunTasks runs posted tasks, including tasks they post, until none are
// left. It returns how many ran.
func (m *Manual) RunTasks() int {
	n := 0
	for len(m.tasks) > 0 {
		t := m.tasks[0]
		m.tasks = m.tasks[1:]
		t()
		n++
	}
	return n
}

// Advance moves the clock forward by d, firing every timer that falls due
// in order and draining posted tasks after each one.
func (m *Manual) Advance(d time.Duration) {
	end := m.now + d
	for len(m.timers) > 0 && m.timers[0].due <= end {
		t := m.timers[0]
		m.timers = m.timers[1:]
		m.now = t.due
		t.f()
		m.RunTasks()
	}
	m.now = end
}

// Frame runs the frame callbacks queued before the call, then drains
// posted tasks. Callbacks requested during the frame wait for the next one.
func (m *Manual) Frame() {
	frames := m.frames
	m.frames = nil
	for _, f := range frames {
		f()
	}
	m.RunTasks()
}

// Settle runs tasks, frames and timers, jumping the clock to the next due
// timer when idle, until nothing is pending. It gives up with
// ErrNotSettled after maxSteps rounds.
func (m *Manual) Settle(maxSteps int) error {
	for step := 0; step < maxSteps; step++ {
		m.RunTasks()
		switch {
		case len(m.frames) > 0:
			m.Advance(DefaultFrameInterval)
			m.Frame()
		case len(m.timers) > 0:
			m.Advance(m.timers[0].due - m.now)
		default:
			return nil
		}
	}
	return ErrNotSettled
}
