package framebuffer

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/geometry"
)

// ErrDuplicatePlaneName is returned by NewTextureBuffer when two planes
// share a name.
var ErrDuplicatePlaneName = errors.New("framebuffer: duplicate plane name")

// ErrPlaneNotFound is returned by TextureBuffer.Plane for an unknown name.
var ErrPlaneNotFound = errors.New("framebuffer: no such plane")

// PlaneSpec declares one named color plane at TextureBuffer construction.
type PlaneSpec struct {
	Name   string
	Format gputypes.TextureFormat
}

type depthStencilCell[D attach.Depthlike, St attach.Stencillike] struct {
	Depth   D
	Stencil St
}

// TextureBuffer holds one or more named color planes of element type C,
// all sharing one interleaved (Depth, Stencil) array, the Go analogue of
// original_source's TextureBuffer<A>. Per spec §3's "empty-color marker"
// requirement — the attachments bundle contributes no color type of its
// own — this buffer family never embeds an attach.Color bundle at all
// (see DESIGN.md's "two distinct framebuffer type families" resolution of
// the Open Question in spec §9's Design Notes): its pixel color type is
// simply []C, one value per named plane in declaration order, scattered
// across planes on write exactly as §4.4 describes.
type TextureBuffer[C any, D attach.Depthlike, St attach.Stencillike] struct {
	dims         geometry.Dimensions
	names        []string
	formats      []gputypes.TextureFormat
	index        map[string]int
	planes       [][]C
	depthStencil []depthStencilCell[D, St]
}

// NewTextureBuffer constructs a TextureBuffer at the given dimensions with
// one plane per entry in specs, in the order given.
func NewTextureBuffer[C any, D attach.Depthlike, St attach.Stencillike](dims geometry.Dimensions, specs []PlaneSpec) (*TextureBuffer[C, D, St], error) {
	area := dims.Area()
	tb := &TextureBuffer[C, D, St]{
		dims:         dims,
		names:        make([]string, len(specs)),
		formats:      make([]gputypes.TextureFormat, len(specs)),
		index:        make(map[string]int, len(specs)),
		planes:       make([][]C, len(specs)),
		depthStencil: make([]depthStencilCell[D, St], area),
	}
	for i, spec := range specs {
		if _, exists := tb.index[spec.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlaneName, spec.Name)
		}
		tb.index[spec.Name] = i
		tb.names[i] = spec.Name
		tb.formats[i] = spec.Format
		tb.planes[i] = make([]C, area)
	}
	far := attach.Far[D]()
	var zeroStencil St
	for i := range tb.depthStencil {
		tb.depthStencil[i] = depthStencilCell[D, St]{Depth: far, Stencil: zeroStencil}
	}
	return tb, nil
}

// Dimensions returns the buffer's pixel extent.
func (tb *TextureBuffer[C, D, St]) Dimensions() geometry.Dimensions {
	return tb.dims
}

// PlaneNames returns the plane names in declaration order.
func (tb *TextureBuffer[C, D, St]) PlaneNames() []string {
	return tb.names
}

// Plane returns a read-only view over the named plane.
func (tb *TextureBuffer[C, D, St]) Plane(name string) (PlaneRef[C], error) {
	i, ok := tb.index[name]
	if !ok {
		return PlaneRef[C]{}, fmt.Errorf("%w: %q", ErrPlaneNotFound, name)
	}
	return PlaneRef[C]{dims: tb.dims, data: tb.planes[i], format: tb.formats[i], name: name}, nil
}

// UncheckedColor reads the per-plane color tuple at index without bounds
// checking, one value per plane in declaration order.
func (tb *TextureBuffer[C, D, St]) UncheckedColor(index uint32) []C {
	out := make([]C, len(tb.planes))
	for i, plane := range tb.planes {
		out[i] = plane[index]
	}
	return out
}

// ColorAt is the checked counterpart of UncheckedColor.
func (tb *TextureBuffer[C, D, St]) ColorAt(coord geometry.Coordinate) ([]C, error) {
	if !tb.dims.Contains(coord.X, coord.Y) {
		return nil, ErrOutOfBounds
	}
	return tb.UncheckedColor(coord.Index(tb.dims)), nil
}

// UncheckedSetColor scatters one value per plane into each plane array at
// index, decomposing the color tuple exactly as spec §4.4 describes.
// values must have one entry per declared plane, in declaration order.
func (tb *TextureBuffer[C, D, St]) UncheckedSetColor(index uint32, values []C) {
	for i, plane := range tb.planes {
		if i < len(values) {
			plane[index] = values[i]
		}
	}
}

// SetColorAt is the checked counterpart of UncheckedSetColor.
func (tb *TextureBuffer[C, D, St]) SetColorAt(coord geometry.Coordinate, values []C) error {
	if !tb.dims.Contains(coord.X, coord.Y) {
		return ErrOutOfBounds
	}
	tb.UncheckedSetColor(coord.Index(tb.dims), values)
	return nil
}

// UncheckedDepth reads the depth at index without bounds checking.
func (tb *TextureBuffer[C, D, St]) UncheckedDepth(index uint32) D {
	return tb.depthStencil[index].Depth
}

// UncheckedSetDepth writes the depth at index without bounds checking.
func (tb *TextureBuffer[C, D, St]) UncheckedSetDepth(index uint32, d D) {
	tb.depthStencil[index].Depth = d
}

// UncheckedStencil reads the stencil at index without bounds checking.
func (tb *TextureBuffer[C, D, St]) UncheckedStencil(index uint32) St {
	return tb.depthStencil[index].Stencil
}

// UncheckedSetStencil writes the stencil at index without bounds checking.
func (tb *TextureBuffer[C, D, St]) UncheckedSetStencil(index uint32, s St) {
	tb.depthStencil[index].Stencil = s
}

// Clear overwrites every plane cell with the corresponding entry of
// values, every depth cell with attach.Far[D](), and every stencil cell
// with its zero value.
func (tb *TextureBuffer[C, D, St]) Clear(values []C) {
	far := attach.Far[D]()
	var zeroStencil St
	for i, plane := range tb.planes {
		if i >= len(values) {
			continue
		}
		v := values[i]
		for j := range plane {
			plane[j] = v
		}
	}
	for i := range tb.depthStencil {
		tb.depthStencil[i] = depthStencilCell[D, St]{Depth: far, Stencil: zeroStencil}
	}
}

var _ Framebuffer[[]int, float32, uint8] = (*TextureBuffer[int, float32, uint8])(nil)

// RGBAF32Texture is a ready instantiation with a single plane named
// "color", the Go analogue of original_source's predefined
// RGBAf32TextureBuffer worked example.
type RGBAF32Texture = TextureBuffer[attach.RGBA[float32], float32, uint8]

// NewRGBAF32Texture constructs an RGBAF32Texture at the given dimensions.
func NewRGBAF32Texture(dims geometry.Dimensions) (*RGBAF32Texture, error) {
	return NewTextureBuffer[attach.RGBA[float32], float32, uint8](dims, []PlaneSpec{
		{Name: "color", Format: gputypes.TextureFormatRGBA32Float},
	})
}
