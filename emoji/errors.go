package emoji

import "errors"

// ErrInvalidCodepoint is returned when a canonical codepoint string
// has no components, a non-hex component, or a value outside Unicode.
var ErrInvalidCodepoint = errors.New("emoji: invalid codepoint")
