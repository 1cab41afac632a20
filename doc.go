// Package glyphatlas packs variable-sized glyph images into a shared
// texture atlas and produces the minimal set of contiguous draw batches
// needed to render every packed glyph.
//
// A Builder accepts glyphs one at a time, placing each rectangle through a
// pluggable Packer (ShelfPacker by default) and assigning it a dense slot
// index. Each packed glyph is recorded twice: a GPU-visible SlotDescriptor
// (atlas origin, 16.16 fixed-point point size, slot index) and a host-side
// SlotMetadata entry (pixel size, slot index, glyph identifier). Finalize
// merges the per-glyph geometry index ranges reported by an OutlineSource
// into contiguous draw batches, uploads the descriptor array as a single
// GPU buffer, and returns an immutable Atlas.
//
// Basic usage:
//
//	builder, err := glyphatlas.NewBuilder(device, queue, glyphatlas.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	for _, g := range glyphs {
//		if err := builder.Pack(source, g.ID, 24.0); err != nil {
//			return err // ErrOutOfSpace: start a larger atlas and retry
//		}
//	}
//	atlas, err := builder.Finalize(source)
//	if err != nil {
//		return err
//	}
//	defer atlas.Close()
//
//	// During rendering, with pipeline and index buffer already bound:
//	atlas.Draw(renderPass)
//
// The outline subpackage provides a font-backed OutlineSource built on
// golang.org/x/image/font/opentype, including quad geometry generation and
// HarfBuzz text shaping via github.com/go-text/typesetting.
//
// A Builder is not safe for concurrent use; callers needing concurrent
// packing must serialize access externally. A finalized Atlas is immutable
// and safe for concurrent reads and draw recording.
package glyphatlas
