package dom

import "errors"

// Sentinel errors for the dom package.
var (
	// ErrShadowExists is returned by AttachShadow when the element already
	// hosts a shadow root.
	ErrShadowExists = errors.New("dom: element already hosts a shadow root")

	// ErrNotElement is returned when an element-only operation is applied
	// to another node type.
	ErrNotElement = errors.New("dom: not an element")

	// ErrUnknownCharset is returned by Parse for an unrecognized charset label.
	ErrUnknownCharset = errors.New("dom: unknown charset")
)
