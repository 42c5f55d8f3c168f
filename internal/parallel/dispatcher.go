package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gogpu/softraster/geometry"
)

// Option configures a Dispatcher at construction time, following
// gogpu/gg's ContextOption functional-option pattern.
type Option func(*Dispatcher)

// WithWorkerCount overrides the worker goroutine count. Non-positive
// values are ignored and the default (runtime.GOMAXPROCS(0)) is kept.
func WithWorkerCount(n int) Option {
	return func(d *Dispatcher) {
		if n > 0 {
			d.workers = n
		}
	}
}

// WithTileSize overrides the tile size Run plans with. The default is
// DefaultTileSize (128x128).
func WithTileSize(size geometry.Dimensions) Option {
	return func(d *Dispatcher) {
		d.tileSize = size
	}
}

// Dispatcher claims tiles from a shared list across a pool of worker
// goroutines using a lock-free fetch-and-add counter, per spec §4.6: each
// worker repeatedly claims the next unclaimed tile index and processes it
// to completion before claiming again, until the tile list is exhausted.
type Dispatcher struct {
	workers  int
	tileSize geometry.Dimensions
}

// NewDispatcher builds a Dispatcher, defaulting to GOMAXPROCS(0) workers
// and DefaultTileSize tiles.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		workers:  runtime.GOMAXPROCS(0),
		tileSize: DefaultTileSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Workers returns the configured worker count.
func (d *Dispatcher) Workers() int { return d.workers }

// TileSize returns the configured tile size.
func (d *Dispatcher) TileSize() geometry.Dimensions { return d.tileSize }

// Run plans dims into tiles at the dispatcher's tile size and processes
// them to completion across the worker pool, invoking work once per
// claimed tile. Run is the only suspension point: it blocks until every
// tile has been processed. There is no cancellation and no ordering
// guarantee across tiles (spec §5).
func (d *Dispatcher) Run(dims geometry.Dimensions, work func(Tile)) {
	d.RunTiles(Plan(dims, d.tileSize), work)
}

// RunTiles is like Run but takes an already-planned tile list, letting a
// caller reuse one Plan across several Run invocations -- e.g. a fragment
// stage's duplicate() re-running rasterization under different knobs
// without re-planning tiles.
func (d *Dispatcher) RunTiles(tiles []Tile, work func(Tile)) {
	if len(tiles) == 0 {
		return
	}

	workers := d.workers
	if workers > len(tiles) {
		workers = len(tiles)
	}
	if workers < 1 {
		workers = 1
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for {
				claimed := next.Add(1) - 1
				if claimed >= int64(len(tiles)) {
					return
				}
				work(tiles[claimed])
			}
		}()
	}
	wg.Wait()
}
