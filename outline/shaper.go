package outline

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/glyphatlas"
)

// ShapedGlyph is one positioned glyph produced by Shaper.Shape. X and Y are
// the pen position in pixels; feed GlyphID to Buffer.AddGlyph and
// glyphatlas.Builder.Pack in shaping order.
type ShapedGlyph struct {
	GlyphID glyphatlas.GlyphID

	// Cluster is the rune index in the source text this glyph maps to.
	Cluster int

	X, Y               float64
	XAdvance, YAdvance float64
}

// Shaper converts text into positioned glyphs using HarfBuzz shaping.
// Mixed-direction text is split into bidirectional runs before shaping, so
// Arabic or Hebrew embedded in Latin text shapes correctly.
//
// Shaper is safe for concurrent use. Parsed go-text fonts are cached per
// *Font (font.Font is read-only and thread-safe); HarfbuzzShaper instances
// carry mutable state and are pooled.
type Shaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*Font]*font.Font
}

// NewShaper creates a Shaper backed by go-text/typesetting's HarfBuzz
// implementation.
func NewShaper() *Shaper {
	return &Shaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*Font]*font.Font),
	}
}

// Shape shapes text at the given point size and returns the positioned
// glyphs in visual order, pen advances accumulated across runs.
func (s *Shaper) Shape(f *Font, text string, pointSize float64) ([]ShapedGlyph, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	if text == "" {
		return nil, nil
	}

	goTextFont, err := s.getOrParseFont(f)
	if err != nil {
		return nil, err
	}

	// font.Face is not safe for concurrent use; each Shape call gets its
	// own lightweight instance over the cached thread-safe Font.
	face := font.NewFace(goTextFont)

	runes := []rune(text)
	runs := bidiRuns(text, runes)

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	defer s.shaperPool.Put(hb)

	var (
		glyphs []ShapedGlyph
		penX   float64
		penY   float64
	)
	for _, run := range runs {
		input := shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: run.dir,
			Face:      face,
			Size:      fixed.Int26_6(pointSize * 64),
			Script:    detectScript(runes[run.start:run.end]),
			Language:  language.NewLanguage("en"),
		}
		output := hb.Shape(input)

		for _, g := range output.Glyphs {
			xOff := fixedToFloat64(g.XOffset)
			yOff := fixedToFloat64(g.YOffset)
			shaped := ShapedGlyph{
				GlyphID: glyphatlas.GlyphID(uint16(g.GlyphID)),
				Cluster: g.TextIndex(),
				X:       penX + xOff,
				Y:       penY + yOff,
			}
			if run.dir.IsVertical() {
				adv := fixedToFloat64(g.Advance)
				shaped.YAdvance = adv
				penY += adv
			} else {
				adv := fixedToFloat64(g.Advance)
				shaped.XAdvance = adv
				penX += adv
			}
			glyphs = append(glyphs, shaped)
		}
	}
	return glyphs, nil
}

// getOrParseFont returns the cached go-text Font for f, parsing and caching
// it on first use. The Font (not a Face) is cached because it is read-only
// and safe for concurrent use.
func (s *Shaper) getOrParseFont(f *Font) (*font.Font, error) {
	s.mu.RLock()
	if cached, ok := s.fontCache[f]; ok {
		s.mu.RUnlock()
		return cached, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring the write lock.
	if cached, ok := s.fontCache[f]; ok {
		return cached, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(f.Data()))
	if err != nil {
		return nil, err
	}
	s.fontCache[f] = face.Font
	return face.Font, nil
}

// RemoveFont drops the cached parsed font for f.
func (s *Shaper) RemoveFont(f *Font) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.fontCache, f)
}

// ClearCache removes all cached parsed fonts.
func (s *Shaper) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontCache = make(map[*Font]*font.Font)
}

// bidiRun is a maximal same-direction span of the text, in rune indices.
type bidiRun struct {
	start, end int
	dir        di.Direction
}

// bidiRuns splits text into bidirectional runs. On any bidi failure the
// whole text is treated as one left-to-right run.
func bidiRuns(text string, runes []rune) []bidiRun {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return []bidiRun{{start: 0, end: len(runes), dir: di.DirectionLTR}}
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []bidiRun{{start: 0, end: len(runes), dir: di.DirectionLTR}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos returns rune indices, end inclusive.
		start, end := run.Pos()
		dir := di.DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = di.DirectionRTL
		}
		runs = append(runs, bidiRun{start: start, end: end + 1, dir: dir})
	}
	return runs
}

// detectScript returns the script of the first non-space rune, a heuristic
// that matches how runs arrive here: bidi splitting already separates the
// scripts that matter for shaping direction.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
