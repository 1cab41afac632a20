package glyphatlas

// OutlineSource supplies the two glyph facts the builder cannot know
// itself: pixel bounds for packing, and geometry index ranges for draw
// batching. The outline subpackage provides a font-backed implementation.
//
// The source and the builder must see the same glyph sequence: the glyph
// packed into slot i must be the i-th glyph whose geometry was added to the
// source, so that IndexRangeStart(i) names the start of that glyph's
// indices. A slot's range ends where the next slot's range starts, or at
// IndexLen() for the last slot.
type OutlineSource interface {
	// GlyphPixelBounds returns the glyph's pixel-space bounding rectangle
	// at the given point size. Only the extent is used; the origin is
	// ignored.
	GlyphPixelBounds(id GlyphID, pointSize float64) Bounds

	// IndexRangeStart returns the offset into the shared geometry index
	// buffer at which the given slot's indices begin, and false when the
	// source holds no geometry for that slot.
	IndexRangeStart(slot uint32) (int, bool)

	// IndexLen returns the total length of the geometry index buffer.
	IndexLen() int
}
