package parallel

import (
	"testing"

	"github.com/gogpu/softraster/geometry"
)

func TestPlanExhaustiveAndDisjoint(t *testing.T) {
	cases := []struct {
		w, h   uint32
		tw, th uint32
	}{
		{256, 256, 64, 64},
		{100, 100, 64, 64},
		{1, 1, 128, 128},
		{300, 200, 32, 48},
	}

	for _, c := range cases {
		dims := geometry.NewDimensions(c.w, c.h)
		tiles := Plan(dims, geometry.NewDimensions(c.tw, c.th))

		covered := make([]bool, c.w*c.h)
		for _, tile := range tiles {
			for y := tile.MinY; y < tile.MaxY; y++ {
				for x := tile.MinX; x < tile.MaxX; x++ {
					idx := y*c.w + x
					if covered[idx] {
						t.Fatalf("dims=%dx%d tile=%d: pixel (%d,%d) covered by more than one tile", c.w, c.h, c.tw, x, y)
					}
					covered[idx] = true
				}
			}
		}
		for idx, hit := range covered {
			if !hit {
				t.Fatalf("dims=%dx%d tilesize=%dx%d: pixel index %d never covered", c.w, c.h, c.tw, c.th, idx)
			}
		}
	}
}

func TestPlanEmptyDimensions(t *testing.T) {
	if tiles := Plan(geometry.NewDimensions(0, 0), DefaultTileSize); tiles != nil {
		t.Errorf("Plan(0,0) = %v, want nil", tiles)
	}
}

func TestPlanTileBoundaryScenario(t *testing.T) {
	dims := geometry.NewDimensions(256, 256)
	tiles := Plan(dims, geometry.NewDimensions(64, 64))

	if len(tiles) != 16 {
		t.Fatalf("Plan(256x256, 64x64) produced %d tiles, want 16", len(tiles))
	}

	var touched int
	for y := uint32(30); y < 100; y++ {
		for x := uint32(30); x < 100; x++ {
			for _, tile := range tiles {
				if tile.Contains(x, y) {
					touched++
				}
			}
		}
	}
	want := (100 - 30) * (100 - 30)
	if touched != want {
		t.Errorf("pixels in [30,100)x[30,100) touched by exactly one tile: got %d hits, want %d", touched, want)
	}
}
