package glyphatlas

import (
	"fmt"
	"math"
	"sort"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Builder accumulates glyph placements one at a time and finalizes them
// into an immutable Atlas.
//
// Each successful Pack call appends one SlotDescriptor and one SlotMetadata
// entry, both keyed by the next dense slot index. The builder also keeps a
// separate identifier-sorted index so that GlyphIndexFor stays valid no
// matter what order glyphs were packed in; the metadata list itself remains
// in slot order for the range merge in Finalize.
//
// Builder is not safe for concurrent use.
type Builder struct {
	device hal.Device
	queue  hal.Queue
	packer Packer

	descriptors []SlotDescriptor
	metadata    []SlotMetadata

	// lookup is sorted by GlyphID. Kept separate from metadata because the
	// merge in Finalize needs slot order and identifier lookup needs
	// identifier order.
	lookup []lookupEntry
}

type lookupEntry struct {
	id   GlyphID
	slot uint32
}

// NewBuilder creates a builder that packs into a region shaped by cfg and
// uploads the finalized descriptor array through device and queue.
//
// A nil device or queue is allowed: the builder still packs glyphs and
// answers lookups, but Finalize fails with ErrUploadFailed. This suits
// CPU-only callers that measure atlas layouts without a GPU.
func NewBuilder(device hal.Device, queue hal.Queue, cfg Config) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		device: device,
		queue:  queue,
		packer: cfg.packer(),
	}, nil
}

// Len returns the number of successfully packed glyphs.
func (b *Builder) Len() int { return len(b.descriptors) }

// Packer returns the packer in use, for layout introspection.
func (b *Builder) Packer() Packer { return b.packer }

// Pack places one glyph into the atlas.
//
// The glyph's pixel bounds at pointSize are queried from src, rounded up to
// whole pixels, and reserved through the packer. On success the glyph is
// assigned the next dense slot index and both its descriptor and metadata
// records are written. On ErrOutOfSpace the builder is left unchanged; the
// atlas never resizes, so the caller must start a new, larger atlas and
// retry there.
func (b *Builder) Pack(src OutlineSource, id GlyphID, pointSize float64) error {
	bounds := src.GlyphPixelBounds(id, pointSize)
	width := uint32(math.Ceil(bounds.Width()))
	height := uint32(math.Ceil(bounds.Height()))

	origin, err := b.packer.Pack(width, height)
	if err != nil {
		return err
	}

	slot := uint32(len(b.descriptors))

	// Keep the descriptor array dense: defined zero-valued entries up to
	// and including the new slot, then overwrite.
	for uint32(len(b.descriptors)) <= slot {
		b.descriptors = append(b.descriptors, SlotDescriptor{})
	}
	b.descriptors[slot] = SlotDescriptor{
		AtlasX:    origin.X,
		AtlasY:    origin.Y,
		PointSize: EncodePointSize(pointSize),
		SlotIndex: slot,
	}

	b.metadata = append(b.metadata, SlotMetadata{
		AtlasSize: Size{Width: width, Height: height},
		SlotIndex: slot,
		GlyphID:   id,
	})
	b.insertLookup(id, slot)

	Logger().Debug("glyphatlas: packed glyph",
		"glyph_id", uint16(id),
		"slot", slot,
		"x", origin.X, "y", origin.Y,
		"width", width, "height", height)
	return nil
}

// insertLookup inserts (id, slot) keeping lookup sorted by GlyphID.
// Duplicate identifiers (the same glyph packed twice, e.g. at two point
// sizes) sit adjacent; GlyphIndexFor returns one of them.
func (b *Builder) insertLookup(id GlyphID, slot uint32) {
	i := sort.Search(len(b.lookup), func(i int) bool {
		return b.lookup[i].id >= id
	})
	b.lookup = append(b.lookup, lookupEntry{})
	copy(b.lookup[i+1:], b.lookup[i:])
	b.lookup[i] = lookupEntry{id: id, slot: slot}
}

// GlyphIndexFor returns the slot index assigned to the glyph with the given
// identifier, or false if the glyph was never packed.
func (b *Builder) GlyphIndexFor(id GlyphID) (uint32, bool) {
	i := sort.Search(len(b.lookup), func(i int) bool {
		return b.lookup[i].id >= id
	})
	if i < len(b.lookup) && b.lookup[i].id == id {
		return b.lookup[i].slot, true
	}
	return 0, false
}

// AtlasRect returns the packed rectangle for a slot index: origin from the
// slot's descriptor, extent from its metadata. The zero Rect is returned
// for out-of-range slots.
func (b *Builder) AtlasRect(slot uint32) Rect {
	if slot >= uint32(len(b.descriptors)) {
		return Rect{}
	}
	d := b.descriptors[slot]
	m := b.metadata[slot]
	return Rect{
		X:      d.AtlasX,
		Y:      d.AtlasY,
		Width:  m.AtlasSize.Width,
		Height: m.AtlasSize.Height,
	}
}

// Finalize merges the packed glyphs' geometry index ranges into the minimal
// list of contiguous draw batches, uploads the slot descriptor array as one
// GPU buffer, and returns the immutable Atlas.
//
// For each slot in ascending order, the glyph's index range starts at
// src.IndexRangeStart(slot) and ends where the next slot's range starts (or
// at src.IndexLen() for the last slot). Adjacent ranges are merged
// greedily, so glyphs packed in geometry order collapse into a single
// batch.
//
// Packing failures cannot occur here; Finalize fails only when the device
// upload fails (ErrUploadFailed) or src does not cover every slot
// (ErrMissingRange). Builder state is left intact on failure and Finalize
// may be retried.
func (b *Builder) Finalize(src OutlineSource) (*Atlas, error) {
	meta := make([]SlotMetadata, len(b.metadata))
	copy(meta, b.metadata)

	// Slot order is the packing order; Pack appends in that order already,
	// so this sort is a precondition guard, not a reordering.
	sort.Slice(meta, func(i, j int) bool {
		return meta[i].SlotIndex < meta[j].SlotIndex
	})

	starts, counts, err := mergeRanges(src, meta)
	if err != nil {
		return nil, err
	}

	data := descriptorData(b.descriptors)
	if b.device == nil || b.queue == nil {
		return nil, fmt.Errorf("%w: no device attached", ErrUploadFailed)
	}
	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "glyphatlas_slot_descriptors",
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	b.queue.WriteBuffer(buf, 0, data)

	Logger().Info("glyphatlas: finalized atlas",
		"slots", len(b.descriptors),
		"batches", len(starts),
		"descriptor_bytes", len(data))

	return &Atlas{
		device:       b.device,
		images:       buf,
		starts:       starts,
		counts:       counts,
		shelfHeight:  b.packer.ShelfHeight(),
		shelfColumns: b.packer.ShelfColumns(),
	}, nil
}

// mergeRanges walks the slots in ascending order and merges adjacent
// geometry index ranges into (start, count) draw batches.
func mergeRanges(src OutlineSource, meta []SlotMetadata) (starts, counts []uint32, err error) {
	var (
		haveOpen         bool
		curFirst, curEnd int
	)
	for _, m := range meta {
		first, ok := src.IndexRangeStart(m.SlotIndex)
		if !ok {
			return nil, nil, fmt.Errorf("%w %d", ErrMissingRange, m.SlotIndex)
		}
		last := src.IndexLen()
		if next, ok := src.IndexRangeStart(m.SlotIndex + 1); ok {
			last = next
		}

		switch {
		case !haveOpen:
			curFirst, curEnd = first, last
			haveOpen = true
		case first == curEnd:
			curEnd = last
		default:
			starts = append(starts, uint32(curFirst))
			counts = append(counts, uint32(curEnd-curFirst))
			curFirst, curEnd = first, last
		}
	}
	if haveOpen {
		starts = append(starts, uint32(curFirst))
		counts = append(counts, uint32(curEnd-curFirst))
	}
	return starts, counts, nil
}
