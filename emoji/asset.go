package emoji

import (
	"regexp"
	"strings"
)

// Asset file name parts.
const (
	assetPrefix    = "emoji_u"
	assetExt       = ".png"
	selectorSuffix = "_fe0f"
)

// needsSelector lists normalized names that are only published in their
// selector-qualified form.
var needsSelector = map[string]struct{}{
	"0023": {}, "002a": {},
	"0030": {}, "0031": {}, "0032": {}, "0033": {}, "0034": {},
	"0035": {}, "0036": {}, "0037": {}, "0038": {}, "0039": {},
	"2640": {}, "2642": {},
}

var assetNameRe = regexp.MustCompile(`^emoji_u[0-9a-f_]+\.png$`)

// AssetName derives the asset file name for canonical codepoint cp.
// Components are zero-padded to four digits and joined with "_", every
// U+FE0F component is dropped, and the selector is re-appended for the
// few assets published only in selector form.
//
// AssetName never fails; a name without a backing asset is handled by the
// caller's fallback.
func AssetName(cp string) string {
	parts := components(cp)
	kept := parts[:0:0]
	for _, p := range parts {
		if len(p) < 4 {
			p = strings.Repeat("0", 4-len(p)) + p
		}
		if p == "fe0f" {
			continue
		}
		kept = append(kept, p)
	}
	base := strings.Join(kept, "_")
	if _, ok := needsSelector[base]; ok {
		base += selectorSuffix
	}
	return assetPrefix + base + assetExt
}

// ToggleSelector flips the presentation-selector variant of an asset
// reference: if it mentions fe0f every selector component is removed,
// otherwise "_fe0f" is inserted before the extension. Only the part after
// the last "/" is touched, so src may be a full URL.
func ToggleSelector(src string) string {
	dir, name := "", src
	if i := strings.LastIndexByte(src, '/'); i >= 0 {
		dir, name = src[:i+1], src[i+1:]
	}
	if strings.Contains(name, "fe0f") {
		name = strings.ReplaceAll(name, selectorSuffix, "")
		name = strings.ReplaceAll(name, "fe0f", "")
		return dir + name
	}
	return dir + strings.TrimSuffix(name, assetExt) + selectorSuffix + assetExt
}

// ValidAssetName reports whether name has the shape of an asset file name.
func ValidAssetName(name string) bool {
	return assetNameRe.MatchString(name)
}

// AssetCodepoint recovers the runes named by an asset file name, adding
// U+FE0F back where the name carries it.
func AssetCodepoint(name string) ([]rune, error) {
	if !ValidAssetName(name) {
		return nil, ErrInvalidCodepoint
	}
	return ParseCodepoint(strings.TrimSuffix(strings.TrimPrefix(name, assetPrefix), assetExt))
}
