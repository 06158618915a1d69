package emoji

import "testing"

func TestIgnored(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"grinning", "\U0001F600", false},
		{"flag", "\U0001F1FA\U0001F1F8", false},
		{"keycap", "#\uFE0F\u20E3", false},
		{"allowed bmp", "\u2600", false},
		{"allowed bmp heart", "\u2764", false},
		{"bmp with selector", "\u2764\uFE0F", false},
		{"text selector", "\u2764\uFE0E", true},
		{"text selector on supplementary", "\U0001F600\uFE0E", true},
		{"unlisted bmp place of interest", "\u2318", true},
		{"unlisted bmp star", "\u2606", true},
		{"kiss mark alone", "\U0001F48B", false},
		{"kiss mark sequence", "\U0001F48B\U0001F3FB", true},
		{"math bold A", "\U0001D400", true},
		{"linear b", "\U00010000", true},
		{"mahjong below emoji block", "\U0001EFFF", true},
		{"cjk extension", "\U00020000", true},
		{"wavy dash", "\u3030", true},
		{"circled secret", "\u3299", false},
		{"private use", "\uE000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := Codepoint(tt.raw)
			if got := Ignored(cp, tt.raw); got != tt.want {
				t.Errorf("Ignored(%q, %q) = %v, want %v", cp, tt.raw, got, tt.want)
			}
		})
	}
}

func TestIgnored_DanglingZWJ(t *testing.T) {
	if !Ignored("1f468-200d", "\U0001F468\u200D") {
		t.Error("Ignored(dangling zwj) = false, want true")
	}
}

func TestIgnored_MalformedCodepoint(t *testing.T) {
	if !Ignored("xyz", "xyz") {
		t.Error("Ignored(malformed) = false, want true")
	}
}

// Every single BMP scalar the pattern can match must be gated by the
// allow-list.
func TestIgnored_AllowListGatesEveryBMPMatch(t *testing.T) {
	for r := rune(0x2190); r <= 0x2BFF; r++ {
		s := string(r)
		for _, m := range Default.FindAll(s) {
			if m.Text != s {
				continue
			}
			ignored := Ignored(m.Codepoint, m.Text)
			if ignored == Allowed(r) {
				t.Errorf("U+%04X: Ignored = %v, Allowed = %v", r, ignored, Allowed(r))
			}
		}
	}
}

func TestAllowed(t *testing.T) {
	for _, r := range []rune{0x2194, 0x231A, 0x2614, 0x2648, 0x2660, 0x26A0, 0x2705, 0x2B50, 0x2B55} {
		if !Allowed(r) {
			t.Errorf("Allowed(U+%04X) = false", r)
		}
	}
	for _, r := range []rune{'A', 0x2318, 0x2312, 0x2661, 0x266A, 0x2727} {
		if Allowed(r) {
			t.Errorf("Allowed(U+%04X) = true", r)
		}
	}
	n := len(bmpAllowed)
	if n < 140 || n > 170 {
		t.Errorf("allow-list has %d entries, want roughly 150", n)
	}
}

func TestAllowed_EveryEntryMatches(t *testing.T) {
	for r := range bmpAllowed {
		s := string(r)
		got := Default.FindAll(s)
		if len(got) != 1 || got[0].Text != s {
			t.Errorf("U+%04X is allowed but the pattern yields %v", r, got)
			continue
		}
		if Ignored(got[0].Codepoint, got[0].Text) {
			t.Errorf("U+%04X is allowed but Ignored", r)
		}
	}
}
