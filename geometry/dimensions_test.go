package geometry

import "testing"

func TestCoordinateIndexBijection(t *testing.T) {
	dims := NewDimensions(10, 20)

	var i uint32
	for y := uint32(0); y < dims.Height; y++ {
		for x := uint32(0); x < dims.Width; x++ {
			coord := NewCoordinate(x, y)

			if got := coord.Index(dims); got != i {
				t.Errorf("Coordinate{%d,%d}.Index(%v) = %d, want %d", x, y, dims, got, i)
			}
			if got := CoordinateFromIndex(i, dims); got != coord {
				t.Errorf("CoordinateFromIndex(%d, %v) = %v, want %v", i, dims, got, coord)
			}
			i++
		}
	}
}

func TestDimensionsArea(t *testing.T) {
	tests := []struct {
		w, h uint32
		want uint32
	}{
		{0, 0, 0},
		{1, 1, 1},
		{4, 4, 16},
		{256, 256, 65536},
	}
	for _, tt := range tests {
		d := NewDimensions(tt.w, tt.h)
		if got := d.Area(); got != tt.want {
			t.Errorf("Dimensions{%d,%d}.Area() = %d, want %d", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestDimensionsContains(t *testing.T) {
	d := NewDimensions(4, 4)

	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			if !d.Contains(x, y) {
				t.Errorf("Contains(%d,%d) = false, want true", x, y)
			}
		}
	}
	if d.Contains(4, 0) {
		t.Error("Contains(4,0) = true, want false (x == width)")
	}
	if d.Contains(0, 4) {
		t.Error("Contains(0,4) = true, want false (y == height)")
	}
}
