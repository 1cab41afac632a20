package glyphatlas

import "fmt"

// Packer reserves rectangles within a fixed-capacity 2D region. Capacity is
// set at construction and never grows: when no room is left for a requested
// rectangle, Pack fails with ErrOutOfSpace and the caller starts a new,
// larger atlas.
//
// Packer is a capability, not an algorithm: alternative strategies (skyline,
// guillotine) can substitute for the default ShelfPacker via Config.Packer
// without touching the Builder or Atlas.
type Packer interface {
	// Pack reserves a width x height rectangle and returns its origin.
	Pack(width, height uint32) (Point, error)

	// ShelfHeight returns the configured base shelf height.
	ShelfHeight() uint32

	// ShelfColumns returns the number of shelf columns the region holds.
	ShelfColumns() uint32
}

// ShelfPacker packs rectangles into horizontal shelves.
//
// Each shelf spans the full available width. Shelf heights are quantized up
// to multiples of the configured base shelf height, so a texture sized from
// ShelfHeight and ShelfColumns always covers every placement. New rectangles
// are placed left-to-right on the first shelf tall enough to hold them; when
// no shelf fits, a new shelf is opened below, and packing fails once the
// region's vertical capacity is exhausted.
//
// The region is availableWidth wide and ShelfColumns*ShelfHeight tall.
type ShelfPacker struct {
	width       uint32
	shelfHeight uint32
	maxHeight   uint32
	shelves     []shelf

	usedArea uint64
}

// shelf is a horizontal strip of the region.
type shelf struct {
	y      uint32 // top of the shelf
	height uint32 // quantized shelf height
	x      uint32 // next free x position
}

// NewShelfPacker creates a packer for a region availableWidth pixels wide
// with shelves quantized to multiples of shelfHeight. Both values must be
// positive and shelfHeight must not exceed availableWidth; Config.Validate
// enforces this for builders.
func NewShelfPacker(availableWidth, shelfHeight uint32) *ShelfPacker {
	var columns uint32
	if shelfHeight > 0 {
		columns = availableWidth / shelfHeight
	}
	return &ShelfPacker{
		width:       availableWidth,
		shelfHeight: shelfHeight,
		maxHeight:   columns * shelfHeight,
		shelves:     make([]shelf, 0, 16),
	}
}

// Pack implements Packer.
func (p *ShelfPacker) Pack(width, height uint32) (Point, error) {
	if width > p.width {
		return Point{}, fmt.Errorf("%w: width %d exceeds available width %d",
			ErrOutOfSpace, width, p.width)
	}

	// First fit: an existing shelf tall enough with room on the right.
	for i := range p.shelves {
		s := &p.shelves[i]
		if height > s.height || s.x+width > p.width {
			continue
		}
		origin := Point{X: s.x, Y: s.y}
		s.x += width
		p.usedArea += uint64(width) * uint64(height)
		return origin, nil
	}

	// Open a new shelf below the last one.
	quantized := p.quantize(height)
	var y uint32
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		y = last.y + last.height
	}
	if y+quantized > p.maxHeight {
		return Point{}, fmt.Errorf("%w: %dx%d does not fit below y=%d (capacity %d)",
			ErrOutOfSpace, width, height, y, p.maxHeight)
	}

	p.shelves = append(p.shelves, shelf{y: y, height: quantized, x: width})
	p.usedArea += uint64(width) * uint64(height)
	return Point{X: 0, Y: y}, nil
}

// quantize rounds height up to the next multiple of the base shelf height.
func (p *ShelfPacker) quantize(height uint32) uint32 {
	if p.shelfHeight == 0 {
		return height
	}
	return (height + p.shelfHeight - 1) / p.shelfHeight * p.shelfHeight
}

// ShelfHeight implements Packer.
func (p *ShelfPacker) ShelfHeight() uint32 { return p.shelfHeight }

// ShelfColumns implements Packer.
func (p *ShelfPacker) ShelfColumns() uint32 {
	if p.shelfHeight == 0 {
		return 0
	}
	return p.width / p.shelfHeight
}

// AvailableWidth returns the region width.
func (p *ShelfPacker) AvailableWidth() uint32 { return p.width }

// ShelfCount returns the number of shelves currently open.
func (p *ShelfPacker) ShelfCount() int { return len(p.shelves) }

// Reset clears all placements, allowing the packer to be reused.
func (p *ShelfPacker) Reset() {
	p.shelves = p.shelves[:0]
	p.usedArea = 0
}

// Utilization returns the fraction of region area covered by placed
// rectangles (0.0 to 1.0).
func (p *ShelfPacker) Utilization() float64 {
	total := uint64(p.width) * uint64(p.maxHeight)
	if total == 0 {
		return 0
	}
	return float64(p.usedArea) / float64(total)
}
