package emoji

import (
	"errors"
	"reflect"
	"testing"
)

func TestAssetName(t *testing.T) {
	tests := []struct {
		cp   string
		want string
	}{
		{"1f600", "emoji_u1f600.png"},
		{"0023", "emoji_u0023_fe0f.png"},
		{"23", "emoji_u0023_fe0f.png"},
		{"2a", "emoji_u002a_fe0f.png"},
		{"2640", "emoji_u2640_fe0f.png"},
		{"2640-fe0f", "emoji_u2640_fe0f.png"},
		{"23-fe0f-20e3", "emoji_u0023_20e3.png"},
		{"2764-fe0f", "emoji_u2764.png"},
		{"1f1fa-1f1f8", "emoji_u1f1fa_1f1f8.png"},
		{"1f468-200d-1f469-200d-1f467", "emoji_u1f468_200d_1f469_200d_1f467.png"},
		{"1f3f3-fe0f-200d-1f308", "emoji_u1f3f3_200d_1f308.png"},
		{"2600", "emoji_u2600.png"},
	}

	for _, tt := range tests {
		t.Run(tt.cp, func(t *testing.T) {
			got := AssetName(tt.cp)
			if got != tt.want {
				t.Errorf("AssetName(%q) = %q, want %q", tt.cp, got, tt.want)
			}
			if !ValidAssetName(got) {
				t.Errorf("AssetName(%q) = %q is not a valid asset name", tt.cp, got)
			}
		})
	}
}

func TestAssetName_Deterministic(t *testing.T) {
	for _, cp := range []string{"1f600", "23-fe0f-20e3", "2640"} {
		if a, b := AssetName(cp), AssetName(cp); a != b {
			t.Errorf("AssetName(%q) not deterministic: %q vs %q", cp, a, b)
		}
	}
}

func TestToggleSelector(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"add", "emoji_u1f600.png", "emoji_u1f600_fe0f.png"},
		{"strip", "emoji_u0023_fe0f.png", "emoji_u0023.png"},
		{"url add", "https://cdn.example/png/emoji_u2764.png", "https://cdn.example/png/emoji_u2764_fe0f.png"},
		{"url strip", "/png/emoji_u2640_fe0f.png", "/png/emoji_u2640.png"},
		{"base untouched", "/fe0f/emoji_u2600.png", "/fe0f/emoji_u2600_fe0f.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToggleSelector(tt.src)
			if got != tt.want {
				t.Errorf("ToggleSelector(%q) = %q, want %q", tt.src, got, tt.want)
			}
			if back := ToggleSelector(got); back != tt.src {
				t.Errorf("ToggleSelector(ToggleSelector(%q)) = %q", tt.src, back)
			}
		})
	}
}

func TestValidAssetName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"emoji_u1f600.png", true},
		{"emoji_u0023_fe0f.png", true},
		{"emoji_u1F600.png", false},
		{"emoji_u.png", false},
		{"../emoji_u1f600.png", false},
		{"emoji_u1f600.gif", false},
	}
	for _, tt := range tests {
		if got := ValidAssetName(tt.name); got != tt.want {
			t.Errorf("ValidAssetName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAssetCodepoint(t *testing.T) {
	got, err := AssetCodepoint("emoji_u0023_fe0f.png")
	if err != nil {
		t.Fatalf("AssetCodepoint() error = %v", err)
	}
	if want := []rune{'#', 0xFE0F}; !reflect.DeepEqual(got, want) {
		t.Errorf("AssetCodepoint() = %U, want %U", got, want)
	}

	if _, err := AssetCodepoint("notes.txt"); !errors.Is(err, ErrInvalidCodepoint) {
		t.Errorf("AssetCodepoint(notes.txt) error = %v, want ErrInvalidCodepoint", err)
	}
}
