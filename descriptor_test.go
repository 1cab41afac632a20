package glyphatlas

import (
	"encoding/binary"
	"testing"
)

func TestEncodePointSize(t *testing.T) {
	tests := []struct {
		pointSize float64
		want      uint32
	}{
		{0, 0},
		{1, 65536},
		{32, 32 << 16},
		{12.5, 819200},
		{0.25, 16384},
	}
	for _, tt := range tests {
		if got := EncodePointSize(tt.pointSize); got != tt.want {
			t.Errorf("EncodePointSize(%v) = %d, want %d", tt.pointSize, got, tt.want)
		}
	}
}

func TestDecodePointSize(t *testing.T) {
	for _, ps := range []float64{0, 1, 12.5, 32, 72.25} {
		if got := DecodePointSize(EncodePointSize(ps)); got != ps {
			t.Errorf("DecodePointSize(EncodePointSize(%v)) = %v", ps, got)
		}
	}
}

func TestDescriptorDataLayout(t *testing.T) {
	descriptors := []SlotDescriptor{
		{AtlasX: 1, AtlasY: 2, PointSize: EncodePointSize(24), SlotIndex: 0},
		{AtlasX: 100, AtlasY: 200, PointSize: EncodePointSize(12.5), SlotIndex: 1},
	}

	data := descriptorData(descriptors)
	if len(data) != len(descriptors)*SlotDescriptorSize {
		t.Fatalf("len(data) = %d, want %d", len(data), len(descriptors)*SlotDescriptorSize)
	}

	for i, d := range descriptors {
		rec := data[i*SlotDescriptorSize:]
		if got := binary.LittleEndian.Uint32(rec[0:4]); got != d.AtlasX {
			t.Errorf("record %d atlas_x = %d, want %d", i, got, d.AtlasX)
		}
		if got := binary.LittleEndian.Uint32(rec[4:8]); got != d.AtlasY {
			t.Errorf("record %d atlas_y = %d, want %d", i, got, d.AtlasY)
		}
		if got := binary.LittleEndian.Uint32(rec[8:12]); got != d.PointSize {
			t.Errorf("record %d point_size = %d, want %d", i, got, d.PointSize)
		}
		if got := binary.LittleEndian.Uint32(rec[12:16]); got != d.SlotIndex {
			t.Errorf("record %d slot_index = %d, want %d", i, got, d.SlotIndex)
		}
	}
}

func TestDescriptorDataEmpty(t *testing.T) {
	if data := descriptorData(nil); len(data) != 0 {
		t.Errorf("descriptorData(nil) has %d bytes, want 0", len(data))
	}
}
