package outline

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/glyphatlas"
)

// Vertex is one corner of a glyph quad. Position is the corner of the
// glyph's pixel bounds (bearing included, pen translation applied by the
// caller's transform); RectX, RectY is the corner's pixel offset within the
// glyph's packed atlas rectangle; Slot selects the glyph's slot descriptor
// on the GPU.
type Vertex struct {
	X, Y         float32
	RectX, RectY float32
	Slot         uint32
}

// VertexSize is the wire size of one Vertex in bytes.
const VertexSize = 20

// maxVertices keeps index values within the 16-bit index format.
const maxVertices = 1 << 16

// Buffer accumulates quad geometry for glyphs in packing order and serves
// their index ranges to glyphatlas.Builder.Finalize. Each added glyph
// contributes four vertices and six indices (two triangles: 0,1,2 / 2,3,0)
// to the shared buffers, so consecutive slots occupy adjacent index ranges
// and merge into a single draw batch.
//
// Buffer implements glyphatlas.OutlineSource. It is not safe for concurrent
// use.
type Buffer struct {
	font *Font

	entries  []entry
	vertices []Vertex
	indices  []uint16
}

// entry records one glyph's geometry placement.
type entry struct {
	glyphID    glyphatlas.GlyphID
	firstIndex int
}

// NewBuffer creates an empty geometry buffer over f.
func NewBuffer(f *Font) *Buffer {
	return &Buffer{font: f}
}

// Font returns the font the buffer measures glyphs with.
func (b *Buffer) Font() *Font { return b.font }

// AddGlyph appends quad geometry for the glyph at the given point size and
// returns the slot index it will occupy. Call in the same order the glyph
// is packed into a glyphatlas.Builder.
func (b *Buffer) AddGlyph(id glyphatlas.GlyphID, pointSize float64) (uint32, error) {
	if b.font == nil {
		return 0, ErrNoFont
	}
	if len(b.vertices)+4 > maxVertices {
		return 0, ErrIndexSpaceFull
	}

	bounds := b.font.PixelBounds(id, pointSize)
	width := float32(math.Ceil(bounds.Width()))
	height := float32(math.Ceil(bounds.Height()))
	minX := float32(bounds.MinX)
	minY := float32(bounds.MinY)

	slot := uint32(len(b.entries))
	base := uint16(len(b.vertices))

	b.entries = append(b.entries, entry{glyphID: id, firstIndex: len(b.indices)})
	b.vertices = append(b.vertices,
		Vertex{X: minX, Y: minY, RectX: 0, RectY: 0, Slot: slot},
		Vertex{X: minX + width, Y: minY, RectX: width, RectY: 0, Slot: slot},
		Vertex{X: minX + width, Y: minY + height, RectX: width, RectY: height, Slot: slot},
		Vertex{X: minX, Y: minY + height, RectX: 0, RectY: height, Slot: slot},
	)
	b.indices = append(b.indices,
		base, base+1, base+2,
		base+2, base+3, base,
	)
	return slot, nil
}

// GlyphID returns the glyph identifier stored for a slot, or 0 and false
// for out-of-range slots.
func (b *Buffer) GlyphID(slot uint32) (glyphatlas.GlyphID, bool) {
	if int(slot) >= len(b.entries) {
		return 0, false
	}
	return b.entries[slot].glyphID, true
}

// GlyphCount returns the number of glyphs added.
func (b *Buffer) GlyphCount() int { return len(b.entries) }

// GlyphPixelBounds implements glyphatlas.OutlineSource.
func (b *Buffer) GlyphPixelBounds(id glyphatlas.GlyphID, pointSize float64) glyphatlas.Bounds {
	if b.font == nil {
		return glyphatlas.Bounds{}
	}
	return b.font.PixelBounds(id, pointSize)
}

// IndexRangeStart implements glyphatlas.OutlineSource.
func (b *Buffer) IndexRangeStart(slot uint32) (int, bool) {
	if int(slot) >= len(b.entries) {
		return 0, false
	}
	return b.entries[slot].firstIndex, true
}

// IndexLen implements glyphatlas.OutlineSource.
func (b *Buffer) IndexLen() int { return len(b.indices) }

// Vertices returns the shared vertex buffer contents.
func (b *Buffer) Vertices() []Vertex { return b.vertices }

// Indices returns the shared index buffer contents
// (gputypes.IndexFormatUint16).
func (b *Buffer) Indices() []uint16 { return b.indices }

// VertexData serializes the vertex buffer for upload: per vertex four
// little-endian float32 fields followed by the uint32 slot index.
func (b *Buffer) VertexData() []byte {
	data := make([]byte, 0, len(b.vertices)*VertexSize)
	for _, v := range b.vertices {
		var rec [VertexSize]byte
		binary.LittleEndian.PutUint32(rec[0:4], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(rec[4:8], math.Float32bits(v.Y))
		binary.LittleEndian.PutUint32(rec[8:12], math.Float32bits(v.RectX))
		binary.LittleEndian.PutUint32(rec[12:16], math.Float32bits(v.RectY))
		binary.LittleEndian.PutUint32(rec[16:20], v.Slot)
		data = append(data, rec[:]...)
	}
	return data
}

// IndexData serializes the index buffer for upload as little-endian uint16
// values. Six indices per glyph keep the byte length a multiple of four, as
// buffer writes require.
func (b *Buffer) IndexData() []byte {
	data := make([]byte, len(b.indices)*2)
	for i, idx := range b.indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}

// Reset clears all geometry, keeping the font and allocated capacity.
func (b *Buffer) Reset() {
	b.entries = b.entries[:0]
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
}
