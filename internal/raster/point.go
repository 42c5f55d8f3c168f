package raster

import (
	"math"

	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/blend"
	"github.com/gogpu/softraster/framebuffer"
	"github.com/gogpu/softraster/geometry"
)

// Point visits the single pixel containing v, rounded to the nearest
// pixel center, with t=0 and the vertex's own payload (spec §4.7's point
// rasterizer). A point outside args.Tile is silently skipped.
func Point[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any](
	fb framebuffer.Writer[C, D, St],
	args Arguments[St],
	v geometry.ScreenVertex[S, K],
	fragmentFn Func[S, K, C, U],
	uniforms U,
	blendOp blend.Blend[C],
) {
	x := int(math.Floor(float64(v.Position.X)))
	y := int(math.Floor(float64(v.Position.Y)))

	if x < 0 || y < 0 {
		return
	}
	if x < int(args.Tile.MinX) || x >= int(args.Tile.MaxX) ||
		y < int(args.Tile.MinY) || y >= int(args.Tile.MaxY) {
		return
	}

	var depth float64
	if v.Position.W != 0 {
		depth = float64(v.Position.Z) / float64(v.Position.W)
	} else {
		depth = float64(v.Position.Z)
	}

	index := geometry.NewCoordinate(uint32(x), uint32(y)).Index(args.Dimensions)
	visit(fb, args, index, v, depth, 1.0, fragmentFn, uniforms, blendOp)
}
