package framebuffer

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/softraster/geometry"
)

// PlaneRef is a read-only, dimensioned view over one named color plane of
// a TextureBuffer. It borrows the plane's backing array directly rather
// than copying, so it must not outlive the parent buffer's current
// dimensions, matching original_source/src/texturebuffer.rs's
// TextureBufferRef borrow discipline.
type PlaneRef[C any] struct {
	dims   geometry.Dimensions
	data   []C
	format gputypes.TextureFormat
	name   string
}

// Dimensions returns the plane's pixel extent, identical to its parent
// TextureBuffer's Dimensions().
func (p PlaneRef[C]) Dimensions() geometry.Dimensions { return p.dims }

// Len returns the number of pixels in the plane (== Dimensions().Area()).
func (p PlaneRef[C]) Len() int { return len(p.data) }

// Name returns the plane's declared name.
func (p PlaneRef[C]) Name() string { return p.name }

// Format returns the gputypes pixel format this plane was declared with,
// letting a consumer outside this module (e.g. a GPU upload path) know
// how to interpret the plane's bytes without re-deriving it from C.
func (p PlaneRef[C]) Format() gputypes.TextureFormat { return p.format }

// UncheckedColor reads the color at index without bounds checking.
func (p PlaneRef[C]) UncheckedColor(index uint32) C { return p.data[index] }

// ColorAt is the checked counterpart of UncheckedColor.
func (p PlaneRef[C]) ColorAt(coord geometry.Coordinate) (C, error) {
	if !p.dims.Contains(coord.X, coord.Y) {
		var zero C
		return zero, ErrOutOfBounds
	}
	return p.data[coord.Index(p.dims)], nil
}

var _ Reader[int] = PlaneRef[int]{}
