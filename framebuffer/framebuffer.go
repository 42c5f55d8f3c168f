// Package framebuffer implements the typed raster surfaces the fragment
// pipeline writes into: a single-interleaved RenderBuffer and a
// multi-plane TextureBuffer, grounded on
// original_source/src/framebuffer/{render_buffer,texture_buffer}.rs and,
// for the plane-format tagging idea, gogpu-gg's render.RenderTarget.Format.
package framebuffer

import (
	"errors"

	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/geometry"
)

// ErrOutOfBounds is returned by checked accessors when a coordinate or
// index lies outside a framebuffer's Dimensions.
var ErrOutOfBounds = errors.New("framebuffer: coordinate out of bounds")

// Reader is the read-only half of a framebuffer's pixel contract: both
// PlaneRef (read-only) and the mutable buffer types satisfy it, matching
// original_source's separate PixelRead/PixelWrite/PixelBuffer traits
// rather than folding every capability into one interface.
type Reader[C any] interface {
	Dimensions() geometry.Dimensions
	// UncheckedColor reads the color at index without bounds checking;
	// the caller must have already proven 0 <= index < Dimensions().Area().
	UncheckedColor(index uint32) C
	// ColorAt is the checked counterpart, returning ErrOutOfBounds when
	// coord lies outside Dimensions().
	ColorAt(coord geometry.Coordinate) (C, error)
}

// Writer is the mutable pixel contract a framebuffer exposes to the
// fragment pipeline: checked and unchecked color access, unchecked
// depth/stencil access (only ever touched from inside a tile-clamped
// rasterizer loop), and the single bulk-mutation entry point, Clear.
type Writer[C any, D attach.Depthlike, St attach.Stencillike] interface {
	Reader[C]

	UncheckedSetColor(index uint32, c C)
	SetColorAt(coord geometry.Coordinate, c C) error

	UncheckedDepth(index uint32) D
	UncheckedSetDepth(index uint32, d D)

	UncheckedStencil(index uint32) St
	UncheckedSetStencil(index uint32, s St)

	// Clear overwrites every color cell with c, every depth cell with
	// attach.Far[D](), and every stencil cell with St's zero value.
	Clear(c C)
}

// Framebuffer is the full contract the fragment pipeline requires of its
// render target, combining Reader and Writer.
type Framebuffer[C any, D attach.Depthlike, St attach.Stencillike] interface {
	Writer[C, D, St]
}
