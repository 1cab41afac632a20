package glyphatlas

import "encoding/binary"

// GlyphID is the stable external identifier of a glyph, independent of
// packing order. It matches the glyph index space of an OpenType font.
type GlyphID uint16

// SlotDescriptor is the GPU-visible record kept for each packed glyph,
// indexed by dense slot index. The descriptor array is uploaded verbatim as
// a storage buffer during Finalize; its wire layout is four little-endian
// unsigned 32-bit fields, 16 bytes per record.
type SlotDescriptor struct {
	// AtlasX, AtlasY are the origin of the glyph's packed rectangle.
	AtlasX uint32
	AtlasY uint32

	// PointSize is the requested rendering point size in 16.16 fixed point.
	PointSize uint32

	// SlotIndex is the glyph's own dense slot index. Redundant with the
	// record's position, kept for GPU-side lookup convenience.
	SlotIndex uint32
}

// SlotMetadata is the host-side record kept for each packed glyph. It is
// the lookup counterpart of SlotDescriptor, correlated by SlotIndex.
type SlotMetadata struct {
	// AtlasSize is the packed rectangle's extent: the ceiling of the
	// glyph's pixel bounds at the requested point size.
	AtlasSize Size

	// SlotIndex links back to the SlotDescriptor at the same index.
	SlotIndex uint32

	// GlyphID is the stable identifier used by the OutlineSource.
	GlyphID GlyphID
}

// SlotDescriptorSize is the wire size of one SlotDescriptor in bytes.
const SlotDescriptorSize = 16

// EncodePointSize converts a point size to its 16.16 fixed-point wire form
// (multiply by 65536 and truncate).
func EncodePointSize(pointSize float64) uint32 {
	return uint32(pointSize * 65536.0)
}

// DecodePointSize converts a 16.16 fixed-point value back to a point size.
func DecodePointSize(v uint32) float64 {
	return float64(v) / 65536.0
}

// appendDescriptor appends the 16-byte little-endian wire form of d.
func appendDescriptor(dst []byte, d SlotDescriptor) []byte {
	var rec [SlotDescriptorSize]byte
	binary.LittleEndian.PutUint32(rec[0:4], d.AtlasX)
	binary.LittleEndian.PutUint32(rec[4:8], d.AtlasY)
	binary.LittleEndian.PutUint32(rec[8:12], d.PointSize)
	binary.LittleEndian.PutUint32(rec[12:16], d.SlotIndex)
	return append(dst, rec[:]...)
}

// descriptorData serializes the descriptor array for a single buffer upload.
func descriptorData(descriptors []SlotDescriptor) []byte {
	data := make([]byte, 0, len(descriptors)*SlotDescriptorSize)
	for _, d := range descriptors {
		data = appendDescriptor(data, d)
	}
	return data
}
