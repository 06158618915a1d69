// Package emoji recognizes RGI emoji sequences in text and maps them to
// image asset names.
//
// The package is pure: it holds no state beyond the compiled pattern and
// fixed tables, and every function is safe for concurrent use.
//
// # Recognition
//
// [Default] is a single compiled pattern that enumerates non-overlapping,
// leftmost matches:
//
//	for m := range emoji.Default.Matches("I ❤️ Go \U0001F1FA\U0001F1F8") {
//	    fmt.Println(m.Codepoint, m.Kind())
//	}
//
// It recognizes regional indicator pairs (flags), keycap sequences, ZWJ
// sequences with optional skin tone modifiers, and single codepoints from
// the supplementary planes and a fixed set of BMP symbol blocks, with an
// optional trailing presentation selector.
//
// # Asset names
//
// A match is identified by its canonical codepoint, the hyphen-joined
// lower-case hex of its scalar values ("1f1fa-1f1f8"). [Ignored] decides
// whether a match should be replaced at all, and [AssetName] derives the
// file name the asset is published under:
//
//	emoji.AssetName("1f600") // emoji_u1f600.png
//	emoji.AssetName("0023")  // emoji_u0023_fe0f.png
//
// Key concepts (Unicode Technical Report #51):
//   - Variation Selectors: U+FE0E (text) and U+FE0F (emoji)
//   - ZWJ Sequences: multiple emoji joined by U+200D
//   - Skin tone modifiers: U+1F3FB - U+1F3FF
package emoji
