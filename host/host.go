package host

import "time"

// Host is the scheduling boundary used by the scan pipeline and by
// dom observer delivery. Every callback runs on the host's single logical
// thread.
type Host interface {
	// Post runs task after the current task completes.
	Post(task func())

	// AfterFunc runs f once, no earlier than d from now.
	AfterFunc(d time.Duration, f func())

	// RequestFrame runs f at the next paint opportunity.
	RequestFrame(f func())
}

// DefaultFrameInterval is the frame period of a 60 Hz display.
const DefaultFrameInterval = time.Second / 60
