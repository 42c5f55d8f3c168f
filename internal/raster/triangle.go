package raster

import (
	"math"

	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/blend"
	"github.com/gogpu/softraster/framebuffer"
	"github.com/gogpu/softraster/geometry"
)

// Triangle scans the screen-space triangle (v0, v1, v2), intersected with
// args.Tile, and runs the per-pixel pipeline at every covered pixel.
// Grounded on gogpu-wgpu's raster.Rasterize: bounding-box setup, edge
// functions for barycentric weights, and a top-left fill rule for tie
// pixels -- generalized to spec §4.7's winding-agnostic cull test and to
// geometry.BarycentricVertex's payload interpolation instead of a flat
// []float32 attribute slice.
func Triangle[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any](
	fb framebuffer.Writer[C, D, St],
	args Arguments[St],
	v0, v1, v2 geometry.ScreenVertex[S, K],
	fragmentFn Func[S, K, C, U],
	uniforms U,
	blendOp blend.Blend[C],
) {
	x0, y0 := float64(v0.Position.X), float64(v0.Position.Y)
	x1, y1 := float64(v1.Position.X), float64(v1.Position.Y)
	x2, y2 := float64(v2.Position.X), float64(v2.Position.Y)

	area := signedArea(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	if args.CullFaces != nil && windingOf(area) == *args.CullFaces {
		return
	}

	minX := min3f(x0, x1, x2)
	maxX := max3f(x0, x1, x2)
	minY := min3f(y0, y1, y2)
	maxY := max3f(y0, y1, y2)

	startX := maxInt(int(math.Floor(minX)), int(args.Tile.MinX))
	endX := minInt(int(math.Ceil(maxX)), int(args.Tile.MaxX))
	startY := maxInt(int(math.Floor(minY)), int(args.Tile.MinY))
	endY := minInt(int(math.Ceil(maxY)), int(args.Tile.MaxY))
	if startX >= endX || startY >= endY {
		return
	}

	topLeft0 := isTopLeftEdge(x2-x1, y2-y1, area) // edge v1->v2, opposite v0
	topLeft1 := isTopLeftEdge(x0-x2, y0-y2, area) // edge v2->v0, opposite v1
	topLeft2 := isTopLeftEdge(x1-x0, y1-y0, area) // edge v0->v1, opposite v2

	invArea := 1.0 / area

	for y := startY; y < endY; y++ {
		for x := startX; x < endX; x++ {
			px := float64(x) + 0.5
			py := float64(y) + 0.5

			w0 := edgeValue(x1, y1, x2, y2, px, py)
			w1 := edgeValue(x2, y2, x0, y0, px, py)
			w2 := edgeValue(x0, y0, x1, y1, px, py)

			if !edgeIncluded(w0, area, topLeft0) ||
				!edgeIncluded(w1, area, topLeft1) ||
				!edgeIncluded(w2, area, topLeft2) {
				continue
			}

			u := S(w0 * invArea)
			v := S(w1 * invArea)
			w := S(w2 * invArea)

			sv := geometry.BarycentricVertex(u, v0, v, v1, w, v2)

			var depth float64
			if sv.Position.W != 0 {
				depth = float64(sv.Position.Z) / float64(sv.Position.W)
			} else {
				depth = float64(sv.Position.Z)
			}

			index := geometry.NewCoordinate(uint32(x), uint32(y)).Index(args.Dimensions)
			visit(fb, args, index, sv, depth, 1.0, fragmentFn, uniforms, blendOp)
		}
	}
}
