package assets

import (
	"context"
	"fmt"
	"strings"
)

// Loader checks image addresses of the form <base><name> against a Store.
// It implements scan.AssetLoader.
type Loader struct {
	base  string
	store Store
}

// NewLoader returns a Loader for addresses under base.
func NewLoader(base string, s Store) *Loader {
	return &Loader{base: base, store: s}
}

// Load reports whether src names an asset the store has.
func (l *Loader) Load(ctx context.Context, src string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := l.Name(src)
	if name == "" {
		return fmt.Errorf("%w: %q outside %q", ErrNotFound, src, l.base)
	}
	_, err := l.store.Open(name)
	return err
}

// Name returns the asset name addressed by src, or "" when src is not
// under the loader's base.
func (l *Loader) Name(src string) string {
	rest, ok := strings.CutPrefix(src, l.base)
	if !ok {
		return ""
	}
	rest = strings.TrimPrefix(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}
