package emojidom

import (
	"context"
	"time"

	"github.com/gogpu/emojidom/scan"
)

// Option configures an Engine or a Rewrite call.
//
// Example:
//
//	eng := emojidom.New(doc, h,
//	    emojidom.WithBaseURL("https://cdn.example.com/png/"),
//	    emojidom.WithDebounce(50*time.Millisecond),
//	)
type Option func(*options)

// options holds optional configuration.
type options struct {
	baseURL  string
	debounce time.Duration
	loader   scan.AssetLoader
	style    string
	charset  string
	ctx      context.Context
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		debounce: scan.DefaultDebounce,
		style:    scan.DefaultStyle,
		ctx:      context.Background(),
	}
}

// WithBaseURL sets the address prefix of every emoji image.
func WithBaseURL(base string) Option {
	return func(o *options) {
		o.baseURL = base
	}
}

// WithDebounce sets how long the tree must be quiet before a rescan.
// Non-positive durations keep the 16ms default.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithLoader enables the load-failure fallback. l is asked for every
// image address; see assets.NewLoader.
func WithLoader(l scan.AssetLoader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithStyle replaces the stylesheet injected into the document head and
// into every shadow root. An empty css injects nothing.
func WithStyle(css string) Option {
	return func(o *options) {
		o.style = css
	}
}

// WithCharset sets the encoding of the input to Rewrite. It has no effect
// on an Engine.
func WithCharset(label string) Option {
	return func(o *options) {
		o.charset = label
	}
}

// WithContext sets the context handed to the loader.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
