// Package scan finds emoji in a live document tree and replaces them with
// image elements.
//
// The pipeline has four parts. A Scheduler collects roots that changed,
// waits for the debounce window to pass and for the next paint-aligned
// frame, then hands each still-attached root to a Scanner. The Scanner
// picks the text nodes worth rewriting, descending into shadow roots and
// bootstrapping each one it meets with a Bootstrapper. The Executor
// rewrites a text node into text and <img class="emoji"> siblings and
// runs the asset fallback for every image it creates.
//
// All of it runs on the single goroutine of a host.Host and none of it is
// safe for concurrent use.
package scan
