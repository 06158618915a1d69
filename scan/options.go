package scan

import (
	"context"
	"log/slog"
	"time"

	"github.com/gogpu/emojidom/emoji"
	"github.com/gogpu/emojidom/internal/logx"
)

// DefaultDebounce is the quiet period before a batch of roots is scanned.
const DefaultDebounce = 16 * time.Millisecond

// AssetLoader reports whether an image address can be loaded. A nil error
// means the image loaded.
type AssetLoader interface {
	Load(ctx context.Context, src string) error
}

// LoaderFunc adapts a function to AssetLoader.
type LoaderFunc func(ctx context.Context, src string) error

// Load implements AssetLoader.
func (f LoaderFunc) Load(ctx context.Context, src string) error { return f(ctx, src) }

// Option configures the scan components.
type Option func(*config)

type config struct {
	baseURL  string
	debounce time.Duration
	loader   AssetLoader
	pattern  *emoji.Pattern
	style    string
	logger   *slog.Logger
	ctx      context.Context
}

func newConfig(opts []Option) config {
	c := config{
		debounce: DefaultDebounce,
		pattern:  emoji.Default,
		style:    DefaultStyle,
		logger:   logx.Nop(),
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithBaseURL sets the prefix put in front of every asset filename.
func WithBaseURL(base string) Option {
	return func(c *config) { c.baseURL = base }
}

// WithDebounce sets the quiet period of the Scheduler. Non-positive values
// keep the default.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithLoader enables the asset fallback. Without a loader every image is
// assumed to load.
func WithLoader(l AssetLoader) Option {
	return func(c *config) { c.loader = l }
}

// WithPattern replaces the emoji recognizer.
func WithPattern(p *emoji.Pattern) Option {
	return func(c *config) {
		if p != nil {
			c.pattern = p
		}
	}
}

// WithStyle sets the stylesheet injected into every shadow root.
func WithStyle(css string) Option {
	return func(c *config) { c.style = css }
}

// WithLogger sets the logger. nil keeps logging disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithContext sets the context passed to the AssetLoader.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
