// Package softraster is a CPU software rasterizer: the tiled, parallel
// fragment stage of a programmable graphics pipeline. Given a stream of
// already-projected screen vertices, it rasterizes triangles, lines, and
// points into a typed framebuffer, running a user fragment function at
// every covered pixel behind a stencil test and a greater-is-closer depth
// test, then blending and writing the result.
//
// Vertex transformation, clipping, and triangle setup in clip space
// happen upstream of this package; a Stage only consumes their output.
package softraster

import (
	"log/slog"

	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/blend"
	"github.com/gogpu/softraster/framebuffer"
	"github.com/gogpu/softraster/geometry"
	"github.com/gogpu/softraster/internal/parallel"
	"github.com/gogpu/softraster/internal/raster"
	"github.com/gogpu/softraster/stencil"
)

// Fragment is what a fragment function returns for a visited pixel: either
// a color to write, or a request to discard the pixel entirely.
type Fragment[C any] = raster.Fragment[C]

// Color builds a Fragment carrying a color value.
func Color[C any](c C) Fragment[C] { return raster.Color(c) }

// Discard builds a Fragment that skips the pixel: no color write, no
// depth write, but the stencil op still fires.
func Discard[C any]() Fragment[C] { return raster.Discard[C]() }

// Func is the signature of a user-supplied fragment function: given the
// interpolated screen vertex at a covered pixel and the uniforms value
// shared across the whole run, it produces a Fragment.
type Func[S geometry.Scalar, K geometry.Interpolatable[S], C any, U any] = raster.Func[S, K, C, U]

// Stage is a tiled fragment stage bound to one framebuffer, stencil
// configuration, and worker dispatcher. It rasterizes a mesh's indexed
// primitives plus any separately-held generated primitive streams,
// grounded on original_source/src/pipeline/stages/fragment.rs's
// FragmentShader: the same fields (mesh, stencil value, cull_faces,
// blend, antialiased_lines, tile_size), minus the unsafe raw-pointer
// sharing that file used to hand the framebuffer to worker threads —
// internal/parallel.Dispatcher claims disjoint tiles instead, so every
// worker's writes are already confined to pixels no other worker touches.
type Stage[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any] struct {
	fb         framebuffer.Writer[C, D, St]
	dispatcher *parallel.Dispatcher

	stencilConfig stencil.Config
	stencilValue  St

	mesh            geometry.Mesh
	primitiveKind   geometry.PrimitiveKind
	indexedVertices []geometry.ScreenVertex[S, K]
	generated       geometry.GeneratedPrimitives[S, K]

	cullFaces        *geometry.FaceWinding
	antialiasedLines bool
	tileSize         geometry.Dimensions
	blend            blend.Blend[C]
}

// NewStage builds a Stage against fb, dispatching tile work through
// dispatcher and testing every fragment's stencil value against
// stencilConfig and stencilValue (spec §6's "pipeline container"
// collaborators). The new Stage has no primitives to draw until Mesh or
// GeneratedPrimitives is called, defaults to no face culling, Bresenham
// (non-antialiased) lines, and dispatcher's configured tile size.
func NewStage[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any](
	fb framebuffer.Writer[C, D, St],
	dispatcher *parallel.Dispatcher,
	stencilConfig stencil.Config,
	stencilValue St,
	blendOp blend.Blend[C],
) *Stage[S, K, C, D, St, U] {
	return &Stage[S, K, C, D, St, U]{
		fb:            fb,
		dispatcher:    dispatcher,
		stencilConfig: stencilConfig,
		stencilValue:  stencilValue,
		tileSize:      dispatcher.TileSize(),
		blend:         blendOp,
	}
}

// Mesh attaches an indexed primitive stream: kind selects how mesh's
// indices are chunked (3/2/1 per triangle/line/point) and vertices is the
// stream those indices select into.
func (s *Stage[S, K, C, D, St, U]) Mesh(mesh geometry.Mesh, kind geometry.PrimitiveKind, vertices []geometry.ScreenVertex[S, K]) *Stage[S, K, C, D, St, U] {
	s.mesh = mesh
	s.primitiveKind = kind
	s.indexedVertices = vertices
	return s
}

// GeneratedPrimitives attaches the already-expanded, non-indexed
// primitive streams (e.g. procedurally generated geometry) that run
// alongside any indexed mesh.
func (s *Stage[S, K, C, D, St, U]) GeneratedPrimitives(gp geometry.GeneratedPrimitives[S, K]) *Stage[S, K, C, D, St, U] {
	s.generated = gp
	return s
}

// CullFaces configures face culling: triangles whose screen-space signed
// area matches winding are skipped. Pass nil to disable culling.
func (s *Stage[S, K, C, D, St, U]) CullFaces(winding *geometry.FaceWinding) *Stage[S, K, C, D, St, U] {
	s.cullFaces = winding
	return s
}

// AntialiasedLines selects Xiaolin Wu's algorithm for the line
// rasterizer when enabled, Bresenham's otherwise.
func (s *Stage[S, K, C, D, St, U]) AntialiasedLines(enable bool) *Stage[S, K, C, D, St, U] {
	s.antialiasedLines = enable
	return s
}

// TileSize overrides the tile size Run partitions the framebuffer into.
func (s *Stage[S, K, C, D, St, U]) TileSize(size geometry.Dimensions) *Stage[S, K, C, D, St, U] {
	s.tileSize = size
	return s
}

// WithBlend replaces the compositing operator fragments are written
// through.
func (s *Stage[S, K, C, D, St, U]) WithBlend(blendOp blend.Blend[C]) *Stage[S, K, C, D, St, U] {
	s.blend = blendOp
	return s
}

// Duplicate returns an independent Stage sharing this one's framebuffer,
// dispatcher, stencil configuration, and primitive streams but free to
// have its own knobs changed (cull faces, antialiasing, tile size, blend)
// without affecting the original — e.g. rendering the same geometry
// filled, then again as a wireframe, without redoing vertex work.
func (s *Stage[S, K, C, D, St, U]) Duplicate() *Stage[S, K, C, D, St, U] {
	dup := *s
	return &dup
}

// Run partitions the framebuffer into tiles and, across the dispatcher's
// worker pool, rasterizes every indexed and generated primitive clipped
// to each claimed tile, invoking fragmentFn at every covered pixel (spec
// §4.6-§4.8). Run blocks until every tile has been processed.
func (s *Stage[S, K, C, D, St, U]) Run(fragmentFn Func[S, K, C, U], uniforms U) {
	dims := s.fb.Dimensions()
	logger := Logger()

	tiles := parallel.Plan(dims, s.tileSize)
	s.dispatcher.RunTiles(tiles, func(tile parallel.Tile) {
		logger.Debug("softraster: claimed tile", slog.Uint64("minX", uint64(tile.MinX)), slog.Uint64("minY", uint64(tile.MinY)))

		args := raster.Arguments[St]{
			Dimensions:       dims,
			Tile:             tile,
			StencilValue:     s.stencilValue,
			StencilTest:      s.stencilConfig.GetTest(),
			StencilOp:        s.stencilConfig.GetOp(),
			AntialiasedLines: s.antialiasedLines,
			CullFaces:        s.cullFaces,
		}

		s.runIndexed(args, fragmentFn, uniforms)
		s.runGenerated(args, fragmentFn, uniforms)
	})
}

func (s *Stage[S, K, C, D, St, U]) runIndexed(args raster.Arguments[St], fragmentFn Func[S, K, C, U], uniforms U) {
	if len(s.indexedVertices) == 0 || len(s.mesh.Indices) == 0 {
		return
	}
	switch {
	case s.primitiveKind.IsTriangle():
		for i := 0; i+2 < len(s.mesh.Indices); i += 3 {
			a := s.indexedVertices[s.mesh.Indices[i]]
			b := s.indexedVertices[s.mesh.Indices[i+1]]
			c := s.indexedVertices[s.mesh.Indices[i+2]]
			raster.Triangle(s.fb, args, a, b, c, fragmentFn, uniforms, s.blend)
		}
	case s.primitiveKind.IsLine():
		for i := 0; i+1 < len(s.mesh.Indices); i += 2 {
			a := s.indexedVertices[s.mesh.Indices[i]]
			b := s.indexedVertices[s.mesh.Indices[i+1]]
			raster.Line(s.fb, args, a, b, fragmentFn, uniforms, s.blend)
		}
	case s.primitiveKind.IsPoint():
		for _, idx := range s.mesh.Indices {
			raster.Point(s.fb, args, s.indexedVertices[idx], fragmentFn, uniforms, s.blend)
		}
	}
}

func (s *Stage[S, K, C, D, St, U]) runGenerated(args raster.Arguments[St], fragmentFn Func[S, K, C, U], uniforms U) {
	for i := 0; i+2 < len(s.generated.Tris); i += 3 {
		raster.Triangle(s.fb, args, s.generated.Tris[i], s.generated.Tris[i+1], s.generated.Tris[i+2], fragmentFn, uniforms, s.blend)
	}
	for i := 0; i+1 < len(s.generated.Lines); i += 2 {
		raster.Line(s.fb, args, s.generated.Lines[i], s.generated.Lines[i+1], fragmentFn, uniforms, s.blend)
	}
	for _, p := range s.generated.Points {
		raster.Point(s.fb, args, p, fragmentFn, uniforms, s.blend)
	}
}
