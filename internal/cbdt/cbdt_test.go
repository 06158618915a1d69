package cbdt

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

var (
	be = binary.BigEndian

	pngA = []byte("\x89PNG\r\n\x1a\nAAAA")
	pngB = []byte("\x89PNG\r\n\x1a\nBBBBBB")
)

// buildIndexed builds tables whose strikes share one format 1 index
// subtable over format 17 images for glyphs first, first+1, ...
// A nil image leaves a hole in the offset array.
func buildIndexed(ppems []uint8, first uint16, images [][]byte) (cbdt, cblc []byte) {
	cbdt = be.AppendUint32(nil, 0x00030000)
	offsets := []uint32{0}
	for _, img := range images {
		if img != nil {
			cbdt = append(cbdt, 16, 18, 1, 15, 19) // h, w, bx, by, advance
			cbdt = be.AppendUint32(cbdt, uint32(len(img)))
			cbdt = append(cbdt, img...)
		}
		offsets = append(offsets, uint32(len(cbdt)-4))
	}
	last := first + uint16(len(images)) - 1

	listOff := uint32(headerSize + len(ppems)*sizeRecordSize)
	cblc = be.AppendUint16(nil, 3)
	cblc = be.AppendUint16(cblc, 0)
	cblc = be.AppendUint32(cblc, uint32(len(ppems)))
	for _, p := range ppems {
		rec := make([]byte, sizeRecordSize)
		be.PutUint32(rec[0:], listOff)
		be.PutUint32(rec[8:], 1)
		be.PutUint16(rec[40:], first)
		be.PutUint16(rec[42:], last)
		rec[44], rec[45], rec[46] = p, p, 32
		cblc = append(cblc, rec...)
	}
	cblc = be.AppendUint16(cblc, first)
	cblc = be.AppendUint16(cblc, last)
	cblc = be.AppendUint32(cblc, 8)
	cblc = be.AppendUint16(cblc, 1)  // index format
	cblc = be.AppendUint16(cblc, 17) // image format
	cblc = be.AppendUint32(cblc, 4)  // image data offset
	for _, o := range offsets {
		cblc = be.AppendUint32(cblc, o)
	}
	return cbdt, cblc
}

// buildSparse builds one strike with a format 5 index over format 19
// images of equal size.
func buildSparse(ppem uint8, ids []uint16, img []byte) (cbdt, cblc []byte) {
	cbdt = be.AppendUint32(nil, 0x00030000)
	for range ids {
		cbdt = be.AppendUint32(cbdt, uint32(len(img)))
		cbdt = append(cbdt, img...)
	}
	recSize := uint32(4 + len(img))

	cblc = be.AppendUint16(nil, 3)
	cblc = be.AppendUint16(cblc, 0)
	cblc = be.AppendUint32(cblc, 1)
	rec := make([]byte, sizeRecordSize)
	be.PutUint32(rec[0:], headerSize+sizeRecordSize)
	be.PutUint32(rec[8:], 1)
	be.PutUint16(rec[40:], ids[0])
	be.PutUint16(rec[42:], ids[len(ids)-1])
	rec[44], rec[45] = ppem, ppem
	cblc = append(cblc, rec...)
	cblc = be.AppendUint16(cblc, ids[0])
	cblc = be.AppendUint16(cblc, ids[len(ids)-1])
	cblc = be.AppendUint32(cblc, 8)
	cblc = be.AppendUint16(cblc, 5)
	cblc = be.AppendUint16(cblc, 19)
	cblc = be.AppendUint32(cblc, 4)
	cblc = be.AppendUint32(cblc, recSize)
	cblc = append(cblc, 20, 22, 2, 18, 24, 0, 0, 0)
	cblc = be.AppendUint32(cblc, uint32(len(ids)))
	for _, id := range ids {
		cblc = be.AppendUint16(cblc, id)
	}
	return cbdt, cblc
}

func TestNew_Errors(t *testing.T) {
	cbdt, cblc := buildIndexed([]uint8{20}, 10, [][]byte{pngA})
	badVersion := bytes.Clone(cblc)
	be.PutUint16(badVersion, 2)

	tests := []struct {
		name       string
		cbdt, cblc []byte
		want       error
	}{
		{"no cbdt", nil, cblc, ErrNoTable},
		{"no cblc", cbdt, nil, ErrNoTable},
		{"short header", cbdt, cblc[:6], ErrMalformed},
		{"truncated records", cbdt, cblc[:headerSize+10], ErrMalformed},
		{"version", cbdt, badVersion, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cbdt, tt.cblc); !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTable_Select(t *testing.T) {
	cbdt, cblc := buildIndexed([]uint8{20, 136, 64}, 10, [][]byte{pngA})
	tab, err := New(cbdt, cblc)
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.Sizes(); len(got) != 3 || got[0] != 20 || got[1] != 136 || got[2] != 64 {
		t.Errorf("Sizes() = %v", got)
	}

	tests := []struct {
		ppem, want int
	}{
		{1, 0},
		{20, 0},
		{21, 2},
		{64, 2},
		{100, 1},
		{500, 1},
	}
	for _, tt := range tests {
		if got := tab.Select(tt.ppem); got != tt.want {
			t.Errorf("Select(%d) = %d, want %d", tt.ppem, got, tt.want)
		}
	}

	_, empty := buildIndexed(nil, 10, [][]byte{pngA})
	tab, err = New(cbdt, empty)
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.Select(32); got != -1 {
		t.Errorf("Select() without strikes = %d, want -1", got)
	}
	if _, err := tab.Glyph(10, 32); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("Glyph() without strikes error = %v", err)
	}
}

func TestTable_GlyphIndexed(t *testing.T) {
	cbdt, cblc := buildIndexed([]uint8{32, 109}, 10, [][]byte{pngA, nil, pngB})
	tab, err := New(cbdt, cblc)
	if err != nil {
		t.Fatal(err)
	}

	g, err := tab.Glyph(12, 96)
	if err != nil {
		t.Fatalf("Glyph(12) error = %v", err)
	}
	if !bytes.Equal(g.PNG, pngB) {
		t.Errorf("PNG = %q, want %q", g.PNG, pngB)
	}
	if g.ID != 12 || g.PPEM != 109 {
		t.Errorf("ID, PPEM = %d, %d", g.ID, g.PPEM)
	}
	if g.Width != 18 || g.Height != 16 || g.BearingX != 1 || g.BearingY != 15 || g.Advance != 19 {
		t.Errorf("metrics = %+v", g)
	}

	if g, err := tab.Glyph(10, 0); err != nil || !bytes.Equal(g.PNG, pngA) {
		t.Errorf("Glyph(10) = %v, %v", g, err)
	}

	for _, id := range []uint16{9, 11, 13} {
		if _, err := tab.Glyph(id, 32); !errors.Is(err, ErrNoGlyph) {
			t.Errorf("Glyph(%d) error = %v, want ErrNoGlyph", id, err)
		}
	}
	if _, err := tab.GlyphAt(10, 5); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("GlyphAt(bad strike) error = %v", err)
	}
}

func TestTable_GlyphSparse(t *testing.T) {
	cbdt, cblc := buildSparse(72, []uint16{5, 40, 41}, pngA)
	tab, err := New(cbdt, cblc)
	if err != nil {
		t.Fatal(err)
	}

	g, err := tab.Glyph(40, 72)
	if err != nil {
		t.Fatalf("Glyph(40) error = %v", err)
	}
	if !bytes.Equal(g.PNG, pngA) {
		t.Errorf("PNG = %q", g.PNG)
	}
	if g.Width != 22 || g.Height != 20 || g.Advance != 24 {
		t.Errorf("metrics = %+v, want shared big metrics", g)
	}
	if _, err := tab.Glyph(6, 72); !errors.Is(err, ErrNoGlyph) {
		t.Errorf("Glyph(6) error = %v, want ErrNoGlyph", err)
	}
}

func TestTable_TruncatedData(t *testing.T) {
	cbdt, cblc := buildIndexed([]uint8{32}, 10, [][]byte{pngA})
	tab, err := New(cbdt[:len(cbdt)-3], cblc)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tab.Glyph(10, 32); !errors.Is(err, ErrMalformed) {
		t.Errorf("Glyph() error = %v, want ErrMalformed", err)
	}

	tab, err = New(cbdt, cblc[:len(cblc)-6])
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tab.Glyph(10, 32); !errors.Is(err, ErrMalformed) {
		t.Errorf("Glyph() with short index error = %v, want ErrMalformed", err)
	}
}
