package glyphatlas

import (
	"testing"
)

// recordingPass records DrawIndexed calls for inspection.
type recordingPass struct {
	calls []drawCall
}

type drawCall struct {
	indexCount, instanceCount, firstIndex uint32
	baseVertex                            int32
	firstInstance                         uint32
}

func (p *recordingPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.calls = append(p.calls, drawCall{indexCount, instanceCount, firstIndex, baseVertex, firstInstance})
}

// finalizeTestAtlas packs two glyphs with disjoint index ranges so the atlas
// carries two draw batches: (0,6) and (10,8).
func finalizeTestAtlas(t *testing.T) *Atlas {
	t.Helper()
	device, queue, cleanup := createNoopDevice(t)
	t.Cleanup(cleanup)

	src := &stubSource{
		bounds: map[GlyphID]Bounds{1: squareBounds(4, 4), 2: squareBounds(4, 4)},
		starts: []int{0, 10},
		total:  18,
	}
	b := newTestBuilder(t, device, queue)
	for _, id := range []GlyphID{1, 2} {
		if err := b.Pack(src, id, 12); err != nil {
			t.Fatalf("Pack(%d) = %v", id, err)
		}
	}
	atlas, err := b.Finalize(src)
	if err != nil {
		t.Fatalf("Finalize() = %v", err)
	}
	return atlas
}

func TestAtlasDrawIssuesOneCallPerBatch(t *testing.T) {
	atlas := finalizeTestAtlas(t)
	defer atlas.Close()

	pass := &recordingPass{}
	atlas.Draw(pass)

	want := []drawCall{
		{indexCount: 6, instanceCount: 1, firstIndex: 0},
		{indexCount: 8, instanceCount: 1, firstIndex: 10},
	}
	if len(pass.calls) != len(want) {
		t.Fatalf("Draw recorded %d calls, want %d", len(pass.calls), len(want))
	}
	for i, w := range want {
		if pass.calls[i] != w {
			t.Errorf("call %d = %+v, want %+v", i, pass.calls[i], w)
		}
	}
}

func TestAtlasDrawRepeatable(t *testing.T) {
	atlas := finalizeTestAtlas(t)
	defer atlas.Close()

	first := &recordingPass{}
	atlas.Draw(first)
	second := &recordingPass{}
	atlas.Draw(second)

	if len(first.calls) != len(second.calls) {
		t.Fatalf("repeated Draw recorded %d then %d calls",
			len(first.calls), len(second.calls))
	}
	for i := range first.calls {
		if first.calls[i] != second.calls[i] {
			t.Errorf("call %d differs between draws: %+v vs %+v",
				i, first.calls[i], second.calls[i])
		}
	}
}

func TestAtlasBatchAccessorsReturnCopies(t *testing.T) {
	atlas := finalizeTestAtlas(t)
	defer atlas.Close()

	starts := atlas.BatchStarts()
	starts[0] = 999
	if again := atlas.BatchStarts(); again[0] == 999 {
		t.Error("mutating BatchStarts() result leaked into the atlas")
	}

	counts := atlas.BatchCounts()
	counts[0] = 999
	if again := atlas.BatchCounts(); again[0] == 999 {
		t.Error("mutating BatchCounts() result leaked into the atlas")
	}
}

func TestAtlasShelfGeometry(t *testing.T) {
	atlas := finalizeTestAtlas(t)
	defer atlas.Close()

	// 32 wide with 8-high shelves: 4 columns.
	if atlas.ShelfHeight() != 8 {
		t.Errorf("ShelfHeight() = %d, want 8", atlas.ShelfHeight())
	}
	if atlas.ShelfColumns() != 4 {
		t.Errorf("ShelfColumns() = %d, want 4", atlas.ShelfColumns())
	}
}

func TestAtlasCloseIdempotent(t *testing.T) {
	atlas := finalizeTestAtlas(t)

	if atlas.Images() == nil {
		t.Fatal("Images() = nil before close")
	}
	if atlas.IsClosed() {
		t.Fatal("IsClosed() = true before close")
	}

	atlas.Close()
	atlas.Close() // second close is a no-op

	if !atlas.IsClosed() {
		t.Error("IsClosed() = false after close")
	}
	if atlas.Images() != nil {
		t.Error("Images() non-nil after close")
	}
}

func TestAtlasDrawAfterCloseRecordsNothing(t *testing.T) {
	atlas := finalizeTestAtlas(t)
	atlas.Close()

	pass := &recordingPass{}
	atlas.Draw(pass)
	if len(pass.calls) != 0 {
		t.Errorf("Draw after close recorded %d calls, want 0", len(pass.calls))
	}
}
