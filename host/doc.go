// Package host provides the scheduling primitives a document host offers:
// posting a task to the tree's thread, one-shot timers, and callbacks
// aligned to the next paint.
//
// Two implementations are provided. [Loop] runs every callback on one
// goroutine in real time, with a fixed frame interval. [Manual] runs
// everything on the caller's goroutine against a virtual clock, which makes
// debounce and frame ordering deterministic in tests and lets batch tools
// run a document to quiescence.
package host
