package outline

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/di"
)

func TestShaperShapeLatin(t *testing.T) {
	f := parseTestFont(t)
	s := NewShaper()

	glyphs, err := s.Shape(f, "Hello", 16)
	if err != nil {
		t.Fatalf("Shape() = %v", err)
	}
	if len(glyphs) != 5 {
		t.Fatalf("Shape(\"Hello\") produced %d glyphs, want 5", len(glyphs))
	}

	var penX float64
	for i, g := range glyphs {
		if g.GlyphID == 0 {
			t.Errorf("glyph %d has the missing glyph id", i)
		}
		if g.Cluster != i {
			t.Errorf("glyph %d cluster = %d, want %d", i, g.Cluster, i)
		}
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d x advance = %v, want > 0", i, g.XAdvance)
		}
		if g.X < penX {
			t.Errorf("glyph %d x = %v precedes pen %v", i, g.X, penX)
		}
		penX += g.XAdvance
	}
}

func TestShaperShapeEmpty(t *testing.T) {
	f := parseTestFont(t)
	s := NewShaper()

	glyphs, err := s.Shape(f, "", 16)
	if err != nil {
		t.Fatalf("Shape(\"\") = %v", err)
	}
	if glyphs != nil {
		t.Errorf("Shape(\"\") = %v, want nil", glyphs)
	}
}

func TestShaperNilFont(t *testing.T) {
	s := NewShaper()
	if _, err := s.Shape(nil, "x", 16); !errors.Is(err, ErrNoFont) {
		t.Fatalf("Shape(nil font) = %v, want ErrNoFont", err)
	}
}

func TestShaperFontCache(t *testing.T) {
	f := parseTestFont(t)
	s := NewShaper()

	first, err := s.Shape(f, "cache", 16)
	if err != nil {
		t.Fatalf("first Shape() = %v", err)
	}
	// Second shape hits the font cache and must agree with the first.
	second, err := s.Shape(f, "cache", 16)
	if err != nil {
		t.Fatalf("second Shape() = %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("cached shape produced %d glyphs, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("glyph %d differs after caching: %+v vs %+v",
				i, first[i], second[i])
		}
	}

	s.RemoveFont(f)
	if _, err := s.Shape(f, "reparse", 16); err != nil {
		t.Fatalf("Shape() after RemoveFont = %v", err)
	}

	s.ClearCache()
	if _, err := s.Shape(f, "reparse", 16); err != nil {
		t.Fatalf("Shape() after ClearCache = %v", err)
	}
}

func TestBidiRunsLatin(t *testing.T) {
	text := "plain latin"
	runs := bidiRuns(text, []rune(text))
	if len(runs) != 1 {
		t.Fatalf("bidiRuns(latin) = %d runs, want 1", len(runs))
	}
	if runs[0].start != 0 || runs[0].end != len([]rune(text)) {
		t.Errorf("run = [%d,%d), want [0,%d)", runs[0].start, runs[0].end, len([]rune(text)))
	}
	if runs[0].dir != di.DirectionLTR {
		t.Errorf("run direction = %v, want LTR", runs[0].dir)
	}
}

func TestBidiRunsMixed(t *testing.T) {
	// Latin followed by Hebrew: two runs, the second right-to-left.
	text := "abcאבג"
	runes := []rune(text)
	runs := bidiRuns(text, runes)
	if len(runs) != 2 {
		t.Fatalf("bidiRuns(mixed) = %d runs, want 2", len(runs))
	}

	if runs[0].start != 0 || runs[0].end != 3 || runs[0].dir != di.DirectionLTR {
		t.Errorf("run 0 = %+v, want [0,3) LTR", runs[0])
	}
	if runs[1].start != 3 || runs[1].end != 6 || runs[1].dir != di.DirectionRTL {
		t.Errorf("run 1 = %+v, want [3,6) RTL", runs[1])
	}

	// Runs tile the text exactly.
	total := 0
	for _, r := range runs {
		total += r.end - r.start
	}
	if total != len(runes) {
		t.Errorf("runs cover %d runes, want %d", total, len(runes))
	}
}
