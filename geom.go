package glyphatlas

// Point is a pixel position within the atlas surface.
type Point struct {
	X, Y uint32
}

// Size is a pixel extent within the atlas surface.
type Size struct {
	Width, Height uint32
}

// Rect is a packed rectangle within the atlas surface.
type Rect struct {
	X, Y          uint32
	Width, Height uint32
}

// Origin returns the rectangle's top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's extent.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Bounds is a floating-point pixel rectangle as reported by an
// OutlineSource. Only its extent matters to the builder; the origin
// (typically the glyph bearing) is ignored when packing.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }
