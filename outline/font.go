package outline

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/glyphatlas"
)

// Font is a parsed OpenType font. It answers the per-glyph metric queries
// a Buffer needs and keeps the raw font data around for shaping.
type Font struct {
	font *opentype.Font
	data []byte
}

// ParseFont parses OpenType font data (TTF or OTF).
func ParseFont(data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: failed to parse font: %w", err)
	}
	return &Font{font: f, data: data}, nil
}

// Name returns the font family name, or "" if absent.
func (f *Font) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return ""
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm returns the font's units-per-em value.
func (f *Font) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// GlyphIndex returns the glyph identifier for a rune, or 0 (the missing
// glyph) if the font has no mapping for it.
func (f *Font) GlyphIndex(r rune) glyphatlas.GlyphID {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return glyphatlas.GlyphID(idx)
}

// PixelBounds returns the glyph's bounding rectangle in pixels at the given
// point size (rendered at 72 dpi, so points equal pixels). The zero Bounds
// is returned for glyphs the font cannot measure.
func (f *Font) PixelBounds(id glyphatlas.GlyphID, pointSize float64) glyphatlas.Bounds {
	var buf sfnt.Buffer
	bounds, _, err := f.font.GlyphBounds(&buf, sfnt.GlyphIndex(id), fixedPointSize(pointSize), font.HintingFull)
	if err != nil {
		return glyphatlas.Bounds{}
	}
	return glyphatlas.Bounds{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: fixedToFloat64(bounds.Min.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: fixedToFloat64(bounds.Max.Y),
	}
}

// Advance returns the glyph's horizontal advance in pixels at the given
// point size, or 0 for glyphs the font cannot measure.
func (f *Font) Advance(id glyphatlas.GlyphID, pointSize float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(id), fixedPointSize(pointSize), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat64(advance)
}

// Data returns the raw font bytes the font was parsed from.
func (f *Font) Data() []byte { return f.data }

// fixedPointSize converts a point size to 26.6 fixed point pixels per em.
func fixedPointSize(pointSize float64) fixed.Int26_6 {
	return fixed.Int26_6(pointSize * 64)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
