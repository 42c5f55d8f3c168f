package framebuffer

import (
	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/geometry"
)

// cell is one (Color, Depth, Stencil) tuple of a RenderBuffer's interleaved
// storage.
type cell[C any, D attach.Depthlike, St attach.Stencillike] struct {
	Color   C
	Depth   D
	Stencil St
}

// RenderBuffer stores one interleaved array of (Color, Depth, Stencil)
// tuples, the Go analogue of original_source's RenderBuffer<A>. C is
// constrained to attach.Color[C,A] so MulAlpha/WithAlpha are available to
// blending code that only has a RenderBuffer's color type in hand.
type RenderBuffer[C attach.Color[C, A], A attach.Numeric, D attach.Depthlike, St attach.Stencillike] struct {
	dims  geometry.Dimensions
	cells []cell[C, D, St]
}

// NewEmptyRenderBuffer constructs a zero-area RenderBuffer, matching the
// "constructed empty" lifecycle case in spec §3.
func NewEmptyRenderBuffer[C attach.Color[C, A], A attach.Numeric, D attach.Depthlike, St attach.Stencillike]() *RenderBuffer[C, A, D, St] {
	return &RenderBuffer[C, A, D, St]{}
}

// NewRenderBuffer constructs a RenderBuffer at the given dimensions,
// pre-filled with (Color zero value, Depth.Far(), Stencil zero value).
func NewRenderBuffer[C attach.Color[C, A], A attach.Numeric, D attach.Depthlike, St attach.Stencillike](dims geometry.Dimensions) *RenderBuffer[C, A, D, St] {
	rb := &RenderBuffer[C, A, D, St]{dims: dims, cells: make([]cell[C, D, St], dims.Area())}
	rb.resetCells()
	return rb
}

func (rb *RenderBuffer[C, A, D, St]) resetCells() {
	var emptyColor C
	var zeroStencil St
	far := attach.Far[D]()
	for i := range rb.cells {
		rb.cells[i] = cell[C, D, St]{Color: emptyColor, Depth: far, Stencil: zeroStencil}
	}
}

// Dimensions returns the buffer's pixel extent.
func (rb *RenderBuffer[C, A, D, St]) Dimensions() geometry.Dimensions {
	return rb.dims
}

// UncheckedColor reads the color at index without bounds checking.
func (rb *RenderBuffer[C, A, D, St]) UncheckedColor(index uint32) C {
	return rb.cells[index].Color
}

// ColorAt is the checked counterpart of UncheckedColor.
func (rb *RenderBuffer[C, A, D, St]) ColorAt(coord geometry.Coordinate) (C, error) {
	if !rb.dims.Contains(coord.X, coord.Y) {
		var zero C
		return zero, ErrOutOfBounds
	}
	return rb.cells[coord.Index(rb.dims)].Color, nil
}

// UncheckedSetColor writes the color at index without bounds checking.
func (rb *RenderBuffer[C, A, D, St]) UncheckedSetColor(index uint32, c C) {
	rb.cells[index].Color = c
}

// SetColorAt is the checked counterpart of UncheckedSetColor.
func (rb *RenderBuffer[C, A, D, St]) SetColorAt(coord geometry.Coordinate, c C) error {
	if !rb.dims.Contains(coord.X, coord.Y) {
		return ErrOutOfBounds
	}
	rb.cells[coord.Index(rb.dims)].Color = c
	return nil
}

// UncheckedDepth reads the depth at index without bounds checking.
func (rb *RenderBuffer[C, A, D, St]) UncheckedDepth(index uint32) D {
	return rb.cells[index].Depth
}

// UncheckedSetDepth writes the depth at index without bounds checking.
func (rb *RenderBuffer[C, A, D, St]) UncheckedSetDepth(index uint32, d D) {
	rb.cells[index].Depth = d
}

// UncheckedStencil reads the stencil at index without bounds checking.
func (rb *RenderBuffer[C, A, D, St]) UncheckedStencil(index uint32) St {
	return rb.cells[index].Stencil
}

// UncheckedSetStencil writes the stencil at index without bounds checking.
func (rb *RenderBuffer[C, A, D, St]) UncheckedSetStencil(index uint32, s St) {
	rb.cells[index].Stencil = s
}

// Clear overwrites every cell: color to c, depth to attach.Far[D](),
// stencil to its zero value. It is the only bulk mutation entry point.
func (rb *RenderBuffer[C, A, D, St]) Clear(c C) {
	var zeroStencil St
	far := attach.Far[D]()
	for i := range rb.cells {
		rb.cells[i] = cell[C, D, St]{Color: c, Depth: far, Stencil: zeroStencil}
	}
}

var _ Framebuffer[attach.RGBA[uint8], float32, uint8] = (*RenderBuffer[attach.RGBA[uint8], uint8, float32, uint8])(nil)
