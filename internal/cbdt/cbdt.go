// Package cbdt reads color bitmap glyphs from the CBDT and CBLC tables of
// an OpenType font.
package cbdt

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var (
	// ErrNoTable is returned when either table is empty.
	ErrNoTable = errors.New("cbdt: missing CBDT or CBLC table")

	// ErrMalformed is returned for truncated or inconsistent table data.
	ErrMalformed = errors.New("cbdt: malformed table")

	// ErrUnsupported is returned for index or image formats without PNG data.
	ErrUnsupported = errors.New("cbdt: unsupported format")

	// ErrNoGlyph is returned when a glyph has no bitmap in the strike.
	ErrNoGlyph = errors.New("cbdt: glyph not in strike")
)

const (
	headerSize     = 8
	sizeRecordSize = 48
	majorVersion   = 3
)

// Glyph is one PNG bitmap with its metrics.
type Glyph struct {
	ID       uint16
	PPEM     int
	Width    int
	Height   int
	BearingX int
	BearingY int
	Advance  int
	PNG      []byte
}

// Table is a parsed CBLC index over CBDT data.
type Table struct {
	cbdt, cblc []byte
	strikes    []strike
}

type strike struct {
	listOffset uint32
	numLists   uint32
	first      uint16
	last       uint16
	ppem       uint8
	subtables  []subtable // parsed on first use
}

type subtable struct {
	first, last uint16
	indexFormat uint16
	imageFormat uint16
	dataOffset  uint32

	offsets   []uint32 // formats 1, 3: glyph i spans offsets[i]..offsets[i+1]
	ids       []uint16 // formats 4, 5: sparse glyph ids
	imageSize uint32   // formats 2, 5
	metrics   metrics  // formats 2, 5
}

type metrics struct {
	height, width      uint8
	bearingX, bearingY int8
	advance            uint8
}

// New parses the CBLC header. Subtables are parsed lazily per strike.
func New(cbdt, cblc []byte) (*Table, error) {
	if len(cbdt) == 0 || len(cblc) == 0 {
		return nil, ErrNoTable
	}
	if len(cblc) < headerSize {
		return nil, ErrMalformed
	}
	if v := binary.BigEndian.Uint16(cblc); v != majorVersion {
		return nil, fmt.Errorf("%w: CBLC version %d", ErrUnsupported, v)
	}
	n := int(binary.BigEndian.Uint32(cblc[4:]))
	if headerSize+n*sizeRecordSize > len(cblc) {
		return nil, ErrMalformed
	}

	t := &Table{cbdt: cbdt, cblc: cblc, strikes: make([]strike, n)}
	for i := range t.strikes {
		rec := cblc[headerSize+i*sizeRecordSize:]
		t.strikes[i] = strike{
			listOffset: binary.BigEndian.Uint32(rec[0:]),
			numLists:   binary.BigEndian.Uint32(rec[8:]),
			first:      binary.BigEndian.Uint16(rec[40:]),
			last:       binary.BigEndian.Uint16(rec[42:]),
			ppem:       rec[44],
		}
	}
	return t, nil
}

// Sizes returns the ppem of every strike in table order.
func (t *Table) Sizes() []int {
	out := make([]int, len(t.strikes))
	for i, s := range t.strikes {
		out[i] = int(s.ppem)
	}
	return out
}

// Select returns the strike index best suited to ppem: the smallest strike
// at least that large, else the largest. It returns -1 without strikes.
func (t *Table) Select(ppem int) int {
	best, largest := -1, -1
	for i, s := range t.strikes {
		p := int(s.ppem)
		if largest < 0 || p > int(t.strikes[largest].ppem) {
			largest = i
		}
		if p >= ppem && (best < 0 || p < int(t.strikes[best].ppem)) {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	return largest
}

// Glyph returns the bitmap of glyph id from the strike chosen by Select.
func (t *Table) Glyph(id uint16, ppem int) (*Glyph, error) {
	i := t.Select(ppem)
	if i < 0 {
		return nil, ErrNoGlyph
	}
	return t.GlyphAt(id, i)
}

// GlyphAt returns the bitmap of glyph id from strike si.
func (t *Table) GlyphAt(id uint16, si int) (*Glyph, error) {
	if si < 0 || si >= len(t.strikes) {
		return nil, ErrNoGlyph
	}
	s := &t.strikes[si]
	if id < s.first || id > s.last {
		return nil, ErrNoGlyph
	}
	if err := t.parseSubtables(s); err != nil {
		return nil, err
	}
	for i := range s.subtables {
		st := &s.subtables[i]
		if id < st.first || id > st.last {
			continue
		}
		off, size, err := st.locate(id)
		if err != nil {
			return nil, err
		}
		g, err := t.image(st, off, size)
		if err != nil {
			return nil, err
		}
		g.ID = id
		g.PPEM = int(s.ppem)
		return g, nil
	}
	return nil, ErrNoGlyph
}

func (t *Table) parseSubtables(s *strike) error {
	if s.subtables != nil {
		return nil
	}
	data := t.cblc
	base := int(s.listOffset)
	if base+int(s.numLists)*8 > len(data) {
		return ErrMalformed
	}
	subs := make([]subtable, s.numLists)
	for i := range subs {
		rec := data[base+i*8:]
		st := &subs[i]
		st.first = binary.BigEndian.Uint16(rec[0:])
		st.last = binary.BigEndian.Uint16(rec[2:])
		if st.last < st.first {
			return ErrMalformed
		}
		if err := st.parse(data, base+int(binary.BigEndian.Uint32(rec[4:]))); err != nil {
			return err
		}
	}
	s.subtables = subs
	return nil
}

func (st *subtable) parse(data []byte, off int) error {
	if off < 0 || off+8 > len(data) {
		return ErrMalformed
	}
	st.indexFormat = binary.BigEndian.Uint16(data[off:])
	st.imageFormat = binary.BigEndian.Uint16(data[off+2:])
	st.dataOffset = binary.BigEndian.Uint32(data[off+4:])
	p := off + 8
	n := int(st.last-st.first) + 1

	switch st.indexFormat {
	case 1, 3:
		width := 4
		if st.indexFormat == 3 {
			width = 2
		}
		if p+(n+1)*width > len(data) {
			return ErrMalformed
		}
		st.offsets = make([]uint32, n+1)
		for i := range st.offsets {
			if width == 4 {
				st.offsets[i] = binary.BigEndian.Uint32(data[p+i*4:])
			} else {
				st.offsets[i] = uint32(binary.BigEndian.Uint16(data[p+i*2:]))
			}
		}
	case 2:
		if p+12 > len(data) {
			return ErrMalformed
		}
		st.imageSize = binary.BigEndian.Uint32(data[p:])
		st.metrics = bigMetrics(data[p+4:])
	case 4:
		if p+4 > len(data) {
			return ErrMalformed
		}
		count := int(binary.BigEndian.Uint32(data[p:]))
		p += 4
		if p+(count+1)*4 > len(data) {
			return ErrMalformed
		}
		st.ids = make([]uint16, count+1)
		st.offsets = make([]uint32, count+1)
		for i := range st.ids {
			st.ids[i] = binary.BigEndian.Uint16(data[p+i*4:])
			st.offsets[i] = uint32(binary.BigEndian.Uint16(data[p+i*4+2:]))
		}
	case 5:
		if p+16 > len(data) {
			return ErrMalformed
		}
		st.imageSize = binary.BigEndian.Uint32(data[p:])
		st.metrics = bigMetrics(data[p+4:])
		count := int(binary.BigEndian.Uint32(data[p+12:]))
		p += 16
		if p+count*2 > len(data) {
			return ErrMalformed
		}
		st.ids = make([]uint16, count)
		for i := range st.ids {
			st.ids[i] = binary.BigEndian.Uint16(data[p+i*2:])
		}
	default:
		return fmt.Errorf("%w: index format %d", ErrUnsupported, st.indexFormat)
	}
	return nil
}

// locate returns the CBDT offset and size of glyph id.
func (st *subtable) locate(id uint16) (uint32, uint32, error) {
	i := int(id - st.first)
	switch st.indexFormat {
	case 1, 3:
		start, end := st.offsets[i], st.offsets[i+1]
		if end <= start {
			return 0, 0, ErrNoGlyph
		}
		return st.dataOffset + start, end - start, nil
	case 2:
		return st.dataOffset + uint32(i)*st.imageSize, st.imageSize, nil
	case 4:
		for j := 0; j < len(st.ids)-1; j++ {
			if st.ids[j] == id {
				start, end := st.offsets[j], st.offsets[j+1]
				if end <= start {
					return 0, 0, ErrNoGlyph
				}
				return st.dataOffset + start, end - start, nil
			}
		}
	case 5:
		for j, gid := range st.ids {
			if gid == id {
				return st.dataOffset + uint32(j)*st.imageSize, st.imageSize, nil
			}
		}
	}
	return 0, 0, ErrNoGlyph
}

func (t *Table) image(st *subtable, off, size uint32) (*Glyph, error) {
	if uint64(off)+uint64(size) > uint64(len(t.cbdt)) {
		return nil, ErrMalformed
	}
	rec := t.cbdt[off : off+size]

	var (
		m    metrics
		body []byte
	)
	switch st.imageFormat {
	case 17:
		if len(rec) < 9 {
			return nil, ErrMalformed
		}
		m = metrics{height: rec[0], width: rec[1], bearingX: int8(rec[2]), bearingY: int8(rec[3]), advance: rec[4]}
		body = rec[5:]
	case 18:
		if len(rec) < 12 {
			return nil, ErrMalformed
		}
		m = bigMetrics(rec)
		body = rec[8:]
	case 19:
		m = st.metrics
		body = rec
	default:
		return nil, fmt.Errorf("%w: image format %d", ErrUnsupported, st.imageFormat)
	}

	if len(body) < 4 {
		return nil, ErrMalformed
	}
	n := binary.BigEndian.Uint32(body)
	if uint64(n) > uint64(len(body)-4) {
		return nil, ErrMalformed
	}
	return &Glyph{
		Width:    int(m.width),
		Height:   int(m.height),
		BearingX: int(m.bearingX),
		BearingY: int(m.bearingY),
		Advance:  int(m.advance),
		PNG:      body[4 : 4+n],
	}, nil
}

// bigMetrics reads the horizontal half of a BigGlyphMetrics record.
func bigMetrics(b []byte) metrics {
	return metrics{height: b[0], width: b[1], bearingX: int8(b[2]), bearingY: int8(b[3]), advance: b[4]}
}
