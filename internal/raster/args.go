package raster

import (
	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/geometry"
	"github.com/gogpu/softraster/internal/parallel"
	"github.com/gogpu/softraster/stencil"
)

// Arguments bundles everything a rasterizer needs beyond the primitive's
// own vertices: the surface it is drawing into, the tile it must clamp
// its writes to, the stencil reference value and test/op pair, and the
// two draw-call knobs (antialiased lines, face culling) that change how
// a primitive is scanned. Corresponds to original_source's
// RasterArguments struct threaded through every `rasterize_*` call.
type Arguments[St attach.Stencillike] struct {
	Dimensions       geometry.Dimensions
	Tile             parallel.Tile
	StencilValue     St
	StencilTest      stencil.Test
	StencilOp        stencil.Op
	AntialiasedLines bool
	// CullFaces, when non-nil, names the winding that should be skipped.
	// A nil value disables face culling.
	CullFaces *geometry.FaceWinding
}
