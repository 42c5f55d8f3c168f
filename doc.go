// Package softraster provides the tiled fragment stage and typed
// framebuffer model of a CPU software rasterizer: the back end of a
// programmable graphics pipeline whose front end (vertex transformation,
// primitive assembly, clipping) emits screen-space primitives.
//
// # Overview
//
// A Stage rasterizes triangles, lines, and points — either indexed
// through a geometry.Mesh or supplied pre-expanded as
// geometry.GeneratedPrimitives — into a framebuffer.Writer. Every covered
// pixel runs the same per-pixel pipeline: a stencil test, a
// greater-is-closer depth test, the user's fragment function, blending,
// and write-back.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/softraster"
//		"github.com/gogpu/softraster/attach"
//		"github.com/gogpu/softraster/blend"
//		"github.com/gogpu/softraster/framebuffer"
//		"github.com/gogpu/softraster/geometry"
//		"github.com/gogpu/softraster/internal/parallel"
//		"github.com/gogpu/softraster/stencil"
//	)
//
//	fb := framebuffer.NewRenderBuffer[attach.RGBA[float64], float64, float64, uint8](
//		geometry.NewDimensions(256, 256))
//
//	stage := softraster.NewStage[float64, geometry.Vec[float64], attach.RGBA[float64], float64, uint8, struct{}](
//		fb, parallel.NewDispatcher(), stencil.Disabled, 0, blend.SourceOverF64{})
//
//	stage.Run(func(sv geometry.ScreenVertex[float64, geometry.Vec[float64]], _ struct{}) softraster.Fragment[attach.RGBA[float64]] {
//		return softraster.Color(attach.RGBA[float64]{R: 1, A: 1})
//	}, struct{}{})
//
// # Attachment types
//
// Color, depth, and stencil attachment types are ordinary Go types
// satisfying the attach package's capability constraints, so a Stage can
// be instantiated over any combination (8/16/32/64-bit integer or
// floating depth and stencil, any packed color struct, or the no-op
// struct{} attachment for a depth-less or stencil-less pipeline).
//
// # Concurrency
//
// Run partitions the framebuffer into disjoint tiles and claims them
// across a worker pool (internal/parallel.Dispatcher); rasterizers clamp
// every write to their claimed tile, so concurrent workers never write
// the same pixel. Run blocks until every tile has been processed.
//
// # Scope
//
// Vertex transformation, clipping, triangle setup in clip space, texture
// sampling, window-system integration, GPU offload, and image codec I/O
// are out of scope: this package is the fragment stage and framebuffer
// model only.
package softraster
