package emoji

// Scalar values with a structural role in emoji sequences.
const (
	zwj             rune = 0x200D
	textSelector    rune = 0xFE0E
	emojiSelector   rune = 0xFE0F
	enclosingKeycap rune = 0x20E3
)

// IsZWJ returns true if the rune is Zero-Width Joiner (U+200D).
func IsZWJ(r rune) bool {
	return r == zwj
}

// IsRegionalIndicator returns true if the rune is a Regional Indicator (A-Z).
// Two regional indicators form a flag emoji (e.g., U+1F1FA U+1F1F8 = US flag).
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsEmojiModifier returns true if the rune is a skin tone modifier.
// Fitzpatrick scale modifiers: U+1F3FB - U+1F3FF.
func IsEmojiModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsVariationSelector returns true for emoji-related variation selectors.
// U+FE0E forces text presentation, U+FE0F forces emoji presentation.
func IsVariationSelector(r rune) bool {
	return r == textSelector || r == emojiSelector
}

// IsKeycapBase returns true if the rune can start a keycap sequence.
func IsKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

// IsCombiningEnclosingKeycap returns true for the keycap combining mark.
func IsCombiningEnclosingKeycap(r rune) bool {
	return r == enclosingKeycap
}

// isSupplementary reports whether r lies outside the Basic Multilingual
// Plane, i.e. needs a surrogate pair in UTF-16.
func isSupplementary(r rune) bool {
	return r >= 0x10000 && r <= 0x10FFFF
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if isSupplementary(r) {
			n += 2
		} else {
			n++
		}
	}
	return n
}
