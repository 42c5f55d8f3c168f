package parallel

import (
	"sort"
	"sync"
	"testing"

	"github.com/gogpu/softraster/geometry"
)

func TestDispatcherVisitsEveryTileExactlyOnce(t *testing.T) {
	dims := geometry.NewDimensions(256, 256)
	d := NewDispatcher(WithWorkerCount(8), WithTileSize(geometry.NewDimensions(64, 64)))

	var mu sync.Mutex
	visits := map[Tile]int{}
	d.Run(dims, func(tile Tile) {
		mu.Lock()
		visits[tile]++
		mu.Unlock()
	})

	want := Plan(dims, d.TileSize())
	if len(visits) != len(want) {
		t.Fatalf("visited %d distinct tiles, want %d", len(visits), len(want))
	}
	for tile, n := range visits {
		if n != 1 {
			t.Errorf("tile %+v visited %d times, want 1", tile, n)
		}
	}
}

func TestDispatcherDeterministicAcrossWorkerCounts(t *testing.T) {
	dims := geometry.NewDimensions(130, 130)
	tileSize := geometry.NewDimensions(32, 32)

	run := func(workers int) []Tile {
		d := NewDispatcher(WithWorkerCount(workers), WithTileSize(tileSize))
		var mu sync.Mutex
		var tiles []Tile
		d.Run(dims, func(tile Tile) {
			mu.Lock()
			tiles = append(tiles, tile)
			mu.Unlock()
		})
		sort.Slice(tiles, func(i, j int) bool {
			if tiles[i].MinY != tiles[j].MinY {
				return tiles[i].MinY < tiles[j].MinY
			}
			return tiles[i].MinX < tiles[j].MinX
		})
		return tiles
	}

	base := run(1)
	for _, workers := range []int{2, 3, 7, 16} {
		got := run(workers)
		if len(got) != len(base) {
			t.Fatalf("workers=%d produced %d tiles, want %d", workers, len(got), len(base))
		}
		for i := range got {
			if got[i] != base[i] {
				t.Fatalf("workers=%d tile[%d] = %+v, want %+v", workers, i, got[i], base[i])
			}
		}
	}
}

func TestDispatcherEmptyTileListIsNoOp(t *testing.T) {
	d := NewDispatcher()
	called := false
	d.Run(geometry.NewDimensions(0, 0), func(Tile) { called = true })
	if called {
		t.Error("Run with empty dimensions invoked work, want no-op")
	}
}

func TestDispatcherDefaults(t *testing.T) {
	d := NewDispatcher()
	if d.TileSize() != DefaultTileSize {
		t.Errorf("default TileSize() = %v, want %v", d.TileSize(), DefaultTileSize)
	}
	if d.Workers() < 1 {
		t.Errorf("default Workers() = %d, want >= 1", d.Workers())
	}
}
