package outline

import "errors"

// Sentinel errors for the outline package.
var (
	// ErrIndexSpaceFull is returned by AddGlyph when another quad would
	// overflow the 16-bit index space of the shared geometry buffer.
	ErrIndexSpaceFull = errors.New("outline: 16-bit index space exhausted")

	// ErrNoFont is returned when an operation requires a font and none
	// was supplied.
	ErrNoFont = errors.New("outline: no font")
)
