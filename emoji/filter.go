package emoji

import "strings"

// Codepoint ranges whose first scalar never maps to an emoji asset.
var ignoredRanges = [...]struct{ lo, hi int64 }{
	{0x3000, 0x30FF},   // CJK symbols, kana
	{0x1D400, 0x1D7FF}, // mathematical alphanumeric symbols
	{0x10000, 0x1EFFF}, // supplementary blocks before the emoji blocks
	{0x20000, 0x10FFFF},
	{0xE000, 0xF8FF}, // private use area
}

// kissMark is the one base that has no renderable multi-codepoint form.
const kissMark = "1f48b"

// Ignored reports whether a match with canonical codepoint cp and raw
// text raw must be left as text. It returns true when:
//   - raw carries the text presentation selector U+FE0E;
//   - cp ends with a dangling ZWJ;
//   - cp is a multi-component sequence starting with U+1F48B;
//   - the first scalar lies in a range without emoji assets;
//   - cp is a single BMP scalar that is not in the allow-list.
func Ignored(cp, raw string) bool {
	if strings.ContainsRune(raw, textSelector) {
		return true
	}
	if strings.HasSuffix(cp, "-200d") {
		return true
	}

	parts := components(cp)
	if parts[0] == kissMark && len(parts) > 1 {
		return true
	}

	first := componentValue(parts[0])
	if first < 0 {
		return true
	}
	for _, rg := range ignoredRanges {
		if first >= rg.lo && first <= rg.hi {
			return true
		}
	}

	if len(parts) == 1 && first < 0x10000 {
		return !Allowed(rune(first))
	}
	return false
}

// Allowed reports whether r is a BMP scalar known to have an emoji asset
// when it appears on its own.
func Allowed(r rune) bool {
	_, ok := bmpAllowed[r]
	return ok
}

// bmpAllowed lists the single BMP codepoints with a published asset.
// Anything the pattern matches in the BMP blocks but is absent here is
// rendered as text.
var bmpAllowed = func() map[rune]struct{} {
	spans := [...][2]rune{
		// Arrows
		{0x2194, 0x2199}, {0x21A9, 0x21AA},
		// Miscellaneous technical
		{0x231A, 0x231B}, {0x2328, 0x2328}, {0x23CF, 0x23CF},
		{0x23E9, 0x23F3}, {0x23F8, 0x23FA},
		// Miscellaneous symbols: weather, zodiac, cards, religious
		{0x2600, 0x2604}, {0x260E, 0x260E}, {0x2611, 0x2611},
		{0x2614, 0x2615}, {0x2618, 0x2618}, {0x261D, 0x261D},
		{0x2620, 0x2620}, {0x2622, 0x2623}, {0x2626, 0x2626},
		{0x262A, 0x262A}, {0x262E, 0x262F}, {0x2638, 0x263A},
		{0x2640, 0x2640}, {0x2642, 0x2642}, {0x2648, 0x2653},
		{0x265F, 0x2660}, {0x2663, 0x2663}, {0x2665, 0x2666},
		{0x2668, 0x2668}, {0x267B, 0x267B}, {0x267E, 0x267F},
		{0x2692, 0x2697}, {0x2699, 0x2699}, {0x269B, 0x269C},
		{0x26A0, 0x26A1}, {0x26A7, 0x26A7}, {0x26AA, 0x26AB},
		{0x26B0, 0x26B1}, {0x26BD, 0x26BE}, {0x26C4, 0x26C5},
		{0x26C8, 0x26C8}, {0x26CE, 0x26CF}, {0x26D1, 0x26D1},
		{0x26D3, 0x26D4}, {0x26E9, 0x26EA}, {0x26F0, 0x26F5},
		{0x26F7, 0x26FA}, {0x26FD, 0x26FD},
		// Dingbats
		{0x2702, 0x2702}, {0x2705, 0x2705}, {0x2708, 0x270D},
		{0x270F, 0x270F}, {0x2712, 0x2712}, {0x2714, 0x2714},
		{0x2716, 0x2716}, {0x271D, 0x271D}, {0x2721, 0x2721},
		{0x2728, 0x2728}, {0x2733, 0x2734}, {0x2744, 0x2744},
		{0x2747, 0x2747}, {0x274C, 0x274C}, {0x274E, 0x274E},
		{0x2753, 0x2755}, {0x2757, 0x2757}, {0x2763, 0x2764},
		{0x2795, 0x2797}, {0x27A1, 0x27A1}, {0x27B0, 0x27B0},
		{0x27BF, 0x27BF},
		// Supplemental arrows, misc symbols and arrows
		{0x2934, 0x2935}, {0x2B05, 0x2B07}, {0x2B1B, 0x2B1C},
		{0x2B50, 0x2B50}, {0x2B55, 0x2B55},
		// Enclosed CJK ideographs. U+3030 and U+303D fall in the kana range
		// and never reach this table.
		{0x3297, 0x3297}, {0x3299, 0x3299},
	}
	m := make(map[rune]struct{}, 160)
	for _, s := range spans {
		for r := s[0]; r <= s[1]; r++ {
			m[r] = struct{}{}
		}
	}
	return m
}()
