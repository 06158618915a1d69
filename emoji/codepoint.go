package emoji

import (
	"fmt"
	"strconv"
	"strings"
)

// Surrogate ranges in UTF-16.
const (
	surrHighStart = 0xD800
	surrHighEnd   = 0xDBFF
	surrLowStart  = 0xDC00
	surrLowEnd    = 0xDFFF
	surrBase      = 0x10000
)

// Codepoint returns the canonical codepoint identifier of text: the
// lower-case hex value of every scalar joined with "-", without padding.
//
//	Codepoint("\U0001F1FA\U0001F1F8") // "1f1fa-1f1f8"
//	Codepoint("#️⃣")        // "23-fe0f-20e3"
func Codepoint(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for i, r := range text {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(strconv.FormatInt(int64(r), 16))
	}
	return b.String()
}

// CodepointUTF16 is Codepoint for UTF-16 encoded text. A high surrogate
// immediately followed by a low surrogate is combined into one scalar;
// every other unit, including an unpaired surrogate, is emitted as its
// own value.
func CodepointUTF16(units []uint16) string {
	parts := make([]string, 0, len(units))
	for i := 0; i < len(units); i++ {
		c := rune(units[i])
		if c >= surrHighStart && c <= surrHighEnd && i+1 < len(units) {
			if lo := rune(units[i+1]); lo >= surrLowStart && lo <= surrLowEnd {
				c = surrBase + (c-surrHighStart)<<10 + (lo - surrLowStart)
				i++
			}
		}
		parts = append(parts, strconv.FormatInt(int64(c), 16))
	}
	return strings.Join(parts, "-")
}

// ParseCodepoint splits a canonical codepoint (or an asset-style
// "_"-joined one) back into runes.
func ParseCodepoint(cp string) ([]rune, error) {
	fields := strings.FieldsFunc(cp, func(r rune) bool { return r == '-' || r == '_' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCodepoint, cp)
	}
	runes := make([]rune, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 32)
		if err != nil || v > 0x10FFFF {
			return nil, fmt.Errorf("%w: component %q of %q", ErrInvalidCodepoint, f, cp)
		}
		runes = append(runes, rune(v))
	}
	return runes, nil
}

// components splits a canonical codepoint into its hex parts.
func components(cp string) []string {
	return strings.Split(cp, "-")
}

// componentValue parses one hex component, returning -1 when malformed.
func componentValue(part string) int64 {
	v, err := strconv.ParseInt(part, 16, 64)
	if err != nil {
		return -1
	}
	return v
}
