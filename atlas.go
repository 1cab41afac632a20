package glyphatlas

import (
	"sync"

	"github.com/gogpu/wgpu/hal"
)

// DrawPass is the subset of hal.RenderPassEncoder the atlas needs to record
// its draw batches. hal render passes satisfy it directly; tests supply
// recording fakes.
type DrawPass interface {
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

// Atlas is the immutable result of Builder.Finalize: the uploaded slot
// descriptor buffer, the merged (start, count) draw batch list, and the
// packer's shelf geometry for texture sizing.
//
// An Atlas is safe for concurrent reads and draw recording. Close releases
// the descriptor buffer exactly once.
type Atlas struct {
	device hal.Device

	starts []uint32
	counts []uint32

	shelfHeight  uint32
	shelfColumns uint32

	mu     sync.Mutex
	closed bool
	images hal.Buffer
}

// Draw records one indexed draw per merged batch into pass. The caller has
// already bound the pipeline, vertex buffer, and the shared geometry index
// buffer; Draw contributes only the (first index, count) pairs, so the
// whole atlas renders in a single recording walk over the minimal batch
// list regardless of how many glyphs were packed.
//
// Drawing after Close records nothing.
func (a *Atlas) Draw(pass DrawPass) {
	a.mu.Lock()
	closed := a.closed
	a.mu.Unlock()
	if closed {
		Logger().Warn("glyphatlas: draw on closed atlas")
		return
	}
	for i := range a.starts {
		pass.DrawIndexed(a.counts[i], 1, a.starts[i], 0, 0)
	}
}

// Images returns the uploaded slot descriptor buffer, for binding as a
// storage buffer during rendering. Returns nil after Close.
func (a *Atlas) Images() hal.Buffer {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.images
}

// BatchCount returns the number of merged draw batches.
func (a *Atlas) BatchCount() int { return len(a.starts) }

// BatchStarts returns a copy of the per-batch first-index offsets into the
// shared geometry index buffer. Parallel to BatchCounts; exposed for
// callers with a native multi-draw path.
func (a *Atlas) BatchStarts() []uint32 {
	starts := make([]uint32, len(a.starts))
	copy(starts, a.starts)
	return starts
}

// BatchCounts returns a copy of the per-batch index counts. Parallel to
// BatchStarts.
func (a *Atlas) BatchCounts() []uint32 {
	counts := make([]uint32, len(a.counts))
	copy(counts, a.counts)
	return counts
}

// ShelfHeight returns the packer's base shelf height, for texture sizing.
func (a *Atlas) ShelfHeight() uint32 { return a.shelfHeight }

// ShelfColumns returns the packer's shelf column count, for texture sizing.
func (a *Atlas) ShelfColumns() uint32 { return a.shelfColumns }

// IsClosed reports whether Close has released the descriptor buffer.
func (a *Atlas) IsClosed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.closed
}

// Close releases the descriptor buffer. It is idempotent and safe for
// concurrent use; only the first call destroys the buffer.
func (a *Atlas) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	if a.device != nil && a.images != nil {
		a.device.DestroyBuffer(a.images)
	}
	a.images = nil
	return nil
}
