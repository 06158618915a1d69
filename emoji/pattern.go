package emoji

import (
	"iter"
	"regexp"
	"strings"
)

// Pattern fragments. Every fragment operates on Unicode scalars, so a
// "surrogate pair" is simply any supplementary-plane scalar.
const (
	reSupplementary = `[\x{10000}-\x{10FFFF}]`
	reFlag          = `[\x{1F1E6}-\x{1F1FF}]{2}`
	reSkin          = `[\x{1F3FB}-\x{1F3FF}]`
	reZWJ           = `\x{200D}`
	reKeycap        = `[#*0-9]\x{FE0F}?\x{20E3}`
	reZWJTail       = `(?:` + reSupplementary + `|` + reKeycap +
		`|[\x{2640}\x{2642}\x{27A1}\x{2695}\x{2696}\x{2708}\x{27B0}\x{2795}-\x{2797}])`
	reZWJSeq      = `(?:` + reZWJ + reZWJTail + `(?:` + reSkin + `)?)*`
	reSingleBMP   = `[\x{2300}-\x{23FF}\x{2190}-\x{21FF}\x{2934}-\x{2935}\x{2600}-\x{27BF}\x{2B05}-\x{2B55}\x{3030}\x{303D}\x{3297}\x{3299}]`
	reSelector    = `[\x{FE0E}\x{FE0F}]?`
	reRGISequence = `(?:` + reFlag + `)` +
		`|(?:(?:` + reSupplementary + `|` + reSingleBMP + `)(?:` + reSkin + `)?` + reZWJSeq + reSelector + `)` +
		`|(?:` + reKeycap + `)`
)

// Pattern is a compiled RGI emoji recognizer.
// A Pattern is safe for concurrent use.
type Pattern struct {
	re *regexp.Regexp
}

// Default is the shared RGI pattern.
var Default = NewPattern()

// NewPattern compiles the RGI emoji pattern.
func NewPattern() *Pattern {
	return &Pattern{re: regexp.MustCompile(reRGISequence)}
}

// Match is one recognized sequence within a text run.
type Match struct {
	// Start and End are the byte offsets of the match, End exclusive.
	Start, End int

	// Text is the raw matched substring.
	Text string

	// Codepoint is the canonical identifier of Text.
	Codepoint string
}

// Kind classifies the match for diagnostics.
func (m Match) Kind() Kind {
	return classify(m.Text)
}

// Matches yields the leftmost non-overlapping matches in text, in order.
// Scanning always starts at offset 0 and the sequence is finite.
func (p *Pattern) Matches(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos < len(text) {
			loc := p.re.FindStringIndex(text[pos:])
			if loc == nil {
				return
			}
			start, end := pos+loc[0], pos+loc[1]
			raw := text[start:end]
			if !yield(Match{Start: start, End: end, Text: raw, Codepoint: Codepoint(raw)}) {
				return
			}
			pos = end
		}
	}
}

// FindAll returns every match in text.
func (p *Pattern) FindAll(text string) []Match {
	var out []Match
	for m := range p.Matches(text) {
		out = append(out, m)
	}
	return out
}

// Contains reports whether text holds at least one candidate match.
func (p *Pattern) Contains(text string) bool {
	return p.re.MatchString(text)
}

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Kind indicates the shape of a matched sequence.
type Kind int

const (
	// KindSimple is a single emoji scalar.
	KindSimple Kind = iota

	// KindFlag is a pair of regional indicators.
	KindFlag

	// KindKeycap is a digit, '#' or '*' followed by U+20E3.
	KindKeycap

	// KindZWJ is several emoji joined by U+200D.
	KindZWJ

	// KindModified is a base with a skin tone modifier.
	KindModified

	// KindPresentation is a scalar followed by a presentation selector.
	KindPresentation
)

var kindNames = [...]string{
	KindSimple:       "Simple",
	KindFlag:         "Flag",
	KindKeycap:       "Keycap",
	KindZWJ:          "ZWJ",
	KindModified:     "Modified",
	KindPresentation: "Presentation",
}

// String returns the string name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return unknownStr
}

func classify(raw string) Kind {
	runes := []rune(raw)
	if len(runes) == 0 {
		return KindSimple
	}
	switch {
	case len(runes) == 2 && IsRegionalIndicator(runes[0]) && IsRegionalIndicator(runes[1]):
		return KindFlag
	case strings.ContainsRune(raw, zwj):
		return KindZWJ
	case IsKeycapBase(runes[0]) && IsCombiningEnclosingKeycap(runes[len(runes)-1]):
		return KindKeycap
	case len(runes) > 1 && IsEmojiModifier(runes[1]):
		return KindModified
	case len(runes) > 1 && IsVariationSelector(runes[len(runes)-1]):
		return KindPresentation
	default:
		return KindSimple
	}
}
