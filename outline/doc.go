// Package outline provides a font-backed glyphatlas.OutlineSource.
//
// A Font wraps a parsed OpenType font (golang.org/x/image/font/opentype)
// and reports glyph pixel bounds and advances. A Buffer accumulates quad
// geometry for glyphs in packing order (four vertices and six indices per
// glyph into shared vertex and index buffers) and serves the per-slot
// index ranges that glyphatlas.Builder.Finalize merges into draw batches.
//
// Shaper turns a string into positioned glyphs using HarfBuzz shaping from
// github.com/go-text/typesetting, splitting mixed-direction text into
// bidirectional runs first.
package outline
