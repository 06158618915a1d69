package scan

import (
	"log/slog"
	"weak"

	"github.com/gogpu/emojidom/dom"
)

// Notifier receives roots that need a rescan.
type Notifier interface {
	Notify(root *dom.Node)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(root *dom.Node)

// Notify implements Notifier.
func (f NotifierFunc) Notify(root *dom.Node) { f(root) }

// Registry remembers which shadow roots have been bootstrapped. Entries
// are only ever added; they do not keep a shadow root alive.
type Registry struct {
	seen map[weak.Pointer[dom.Node]]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[weak.Pointer[dom.Node]]struct{})}
}

// Has reports whether root has been added.
func (r *Registry) Has(root *dom.Node) bool {
	_, ok := r.seen[weak.Make(root)]
	return ok
}

// Add records root and reports whether it was new.
func (r *Registry) Add(root *dom.Node) bool {
	k := weak.Make(root)
	if _, ok := r.seen[k]; ok {
		return false
	}
	r.seen[k] = struct{}{}
	return true
}

// Len returns the number of recorded roots.
func (r *Registry) Len() int { return len(r.seen) }

// observeAll is what every subscription made by the pipeline watches.
var observeAll = dom.ObserveOptions{ChildList: true, CharacterData: true, Subtree: true}

// Bootstrapper prepares shadow roots the first time a scan meets them:
// it injects the emoji stylesheet and subscribes to their changes.
type Bootstrapper struct {
	notify    Notifier
	style     string
	registry  *Registry
	observers []*dom.Observer
	log       *slog.Logger
}

// NewBootstrapper returns a Bootstrapper that reports shadow-root changes
// to n.
func NewBootstrapper(n Notifier, opts ...Option) *Bootstrapper {
	return newBootstrapper(n, newConfig(opts))
}

func newBootstrapper(n Notifier, cfg config) *Bootstrapper {
	return &Bootstrapper{
		notify:   n,
		style:    cfg.style,
		registry: NewRegistry(),
		log:      cfg.logger,
	}
}

// Registry returns the set of bootstrapped shadow roots.
func (b *Bootstrapper) Registry() *Registry { return b.registry }

// Bootstrap prepares shadow and reports whether it did anything. A shadow
// root is prepared at most once; later calls, and calls with any other
// kind of node, return false.
func (b *Bootstrapper) Bootstrap(shadow *dom.Node) bool {
	if shadow == nil || shadow.Type != dom.ShadowRootNode {
		return false
	}
	if !b.registry.Add(shadow) {
		return false
	}
	if b.style != "" {
		dom.InjectStyle(shadow, b.style)
	}
	o := dom.NewObserver(func(recs []dom.MutationRecord) {
		Translate(recs, b.notify, shadow)
	})
	o.Observe(shadow, observeAll)
	b.observers = append(b.observers, o)
	b.log.Debug("scan: shadow root bootstrapped", "host", shadow.Host().Tag, "mode", shadow.ShadowMode())
	return true
}

// Close disconnects every subscription made by Bootstrap. Roots stay
// registered and are not prepared again.
func (b *Bootstrapper) Close() {
	for _, o := range b.observers {
		o.Disconnect()
	}
	b.observers = nil
}
