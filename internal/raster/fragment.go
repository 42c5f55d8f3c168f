// Package raster implements the three primitive scan routines (triangle,
// line, point) and the per-pixel pipeline they feed into, grounded on
// gogpu-wgpu's hal/software/raster package for the edge-function /
// bounding-box triangle scan and original_source/src/fragment.rs for the
// stencil -> depth -> fragment -> blend -> write ordering.
package raster

import "github.com/gogpu/softraster/geometry"

// Fragment is the outcome of evaluating a user fragment function at a
// covered pixel: either a color to shade the pixel with, or Discard to
// skip it entirely (no color/depth write, but the stencil op still
// fires, per the pipeline's ordering).
type Fragment[C any] struct {
	color   C
	discard bool
}

// Color builds a Fragment that shades the pixel with c.
func Color[C any](c C) Fragment[C] {
	return Fragment[C]{color: c}
}

// Discard builds a Fragment that abandons the pixel.
func Discard[C any]() Fragment[C] {
	return Fragment[C]{discard: true}
}

// IsDiscard reports whether this fragment abandoned the pixel.
func (f Fragment[C]) IsDiscard() bool { return f.discard }

// Value returns the shaded color. Only meaningful when IsDiscard is false.
func (f Fragment[C]) Value() C { return f.color }

// Func is the user-supplied fragment shader: given the interpolated
// screen vertex for a covered pixel and a read-only uniforms value, it
// decides whether the pixel is shaded and with what color.
type Func[S geometry.Scalar, K geometry.Interpolatable[S], C any, U any] func(sv geometry.ScreenVertex[S, K], uniforms U) Fragment[C]
