package assets

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/emojidom/emoji"
	"github.com/gogpu/emojidom/internal/cache"
	"github.com/gogpu/emojidom/internal/cbdt"
	"github.com/gogpu/emojidom/internal/logx"
)

// ErrNoBitmaps is returned by NewFontStore for a font without CBDT and
// CBLC tables.
var ErrNoBitmaps = errors.New("assets: font has no color bitmaps")

// DefaultPPEM is the strike size requested when none is configured.
const DefaultPPEM = 109

// FontOption configures a FontStore.
type FontOption func(*fontOptions)

type fontOptions struct {
	ppem      int
	size      int
	cacheSize int
	logger    *slog.Logger
}

// WithPPEM selects the bitmap strike closest to ppem from above.
func WithPPEM(ppem int) FontOption {
	return func(o *fontOptions) {
		if ppem > 0 {
			o.ppem = ppem
		}
	}
}

// WithSize rescales every image to size x size pixels. Zero keeps the
// strike's own size.
func WithSize(size int) FontOption {
	return func(o *fontOptions) {
		if size >= 0 {
			o.size = size
		}
	}
}

// WithCacheSize sets how many rendered images each cache shard keeps.
func WithCacheSize(n int) FontOption {
	return func(o *fontOptions) { o.cacheSize = n }
}

// WithFontLogger sets the logger of the store.
func WithFontLogger(l *slog.Logger) FontOption {
	return func(o *fontOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// glyphMapper resolves a codepoint sequence to the single glyph that
// renders it.
type glyphMapper interface {
	glyph(runes []rune) (uint16, bool)
}

// FontStore renders assets from the color bitmaps of an emoji font.
// It is safe for concurrent use.
type FontStore struct {
	mapper glyphMapper
	table  *cbdt.Table
	ppem   int
	size   int
	cache  *cache.Sharded[string, []byte]
	log    *slog.Logger
}

// NewFontStore parses an OpenType font with CBDT/CBLC color bitmaps, such
// as Noto Color Emoji.
func NewFontStore(data []byte, opts ...FontOption) (*FontStore, error) {
	ld, err := opentype.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: load font: %w", err)
	}
	cbdtData, _ := ld.RawTable(opentype.MustNewTag("CBDT"))
	cblcData, _ := ld.RawTable(opentype.MustNewTag("CBLC"))
	if len(cbdtData) == 0 || len(cblcData) == 0 {
		return nil, ErrNoBitmaps
	}
	table, err := cbdt.New(cbdtData, cblcData)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}

	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: parse font: %w", err)
	}
	return newFontStore(newShaperMapper(face.Font), table, opts...), nil
}

func newFontStore(m glyphMapper, table *cbdt.Table, opts ...FontOption) *FontStore {
	o := fontOptions{ppem: DefaultPPEM, logger: logx.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &FontStore{
		mapper: m,
		table:  table,
		ppem:   o.ppem,
		size:   o.size,
		cache:  cache.New[string, []byte](o.cacheSize, cache.StringHasher),
		log:    o.logger,
	}
}

// Sizes returns the ppem of every bitmap strike in the font.
func (s *FontStore) Sizes() []int { return s.table.Sizes() }

// CacheStats returns the render cache counters.
func (s *FontStore) CacheStats() cache.Stats { return s.cache.Stats() }

// Open implements Store.
func (s *FontStore) Open(name string) ([]byte, error) {
	return s.cache.GetOrLoad(name, func() ([]byte, error) {
		return s.render(name)
	})
}

func (s *FontStore) render(name string) ([]byte, error) {
	runes, err := emoji.AssetCodepoint(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	gid, ok := s.mapper.glyph(runes)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no single glyph", ErrNotFound, name)
	}
	g, err := s.table.Glyph(gid, s.ppem)
	if errors.Is(err, cbdt.ErrNoGlyph) {
		return nil, fmt.Errorf("%w: %s has no bitmap", ErrNotFound, name)
	}
	if err != nil {
		s.log.Warn("assets: bitmap unreadable", "name", name, "glyph", gid, "error", err)
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	if s.size == 0 {
		return g.PNG, nil
	}
	out, err := Rescale(g.PNG, s.size)
	if err != nil {
		return nil, err
	}
	s.log.Debug("assets: rendered", "name", name, "glyph", gid, "ppem", g.PPEM, "size", s.size)
	return out, nil
}

// shaperMapper shapes a sequence with HarfBuzz and accepts the result
// when the font's ligatures fold it into one glyph.
type shaperMapper struct {
	font *font.Font
	pool sync.Pool
}

func newShaperMapper(f *font.Font) *shaperMapper {
	return &shaperMapper{
		font: f,
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
	}
}

func (m *shaperMapper) glyph(runes []rune) (uint16, bool) {
	if len(runes) == 0 {
		return 0, false
	}
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      fixed.I(DefaultPPEM),
		Script:    language.Common,
		Language:  language.NewLanguage("und"),
	}
	hb := m.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(in)
	m.pool.Put(hb)

	if len(out.Glyphs) != 1 || out.Glyphs[0].GlyphID == 0 {
		return 0, false
	}
	return uint16(out.Glyphs[0].GlyphID), true
}
