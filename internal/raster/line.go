package raster

import (
	"math"

	"github.com/gogpu/softraster/attach"
	"github.com/gogpu/softraster/blend"
	"github.com/gogpu/softraster/framebuffer"
	"github.com/gogpu/softraster/geometry"
)

// Line scans the screen-space segment (a, b). When args.AntialiasedLines
// is false it walks pixels with Bresenham's integer algorithm; otherwise
// it uses Xiaolin Wu's algorithm, which visits two pixels per step and
// weights each by a coverage fraction fed to the blend stage as an alpha
// multiplier (spec §4.7's line rasterizer).
func Line[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any](
	fb framebuffer.Writer[C, D, St],
	args Arguments[St],
	a, b geometry.ScreenVertex[S, K],
	fragmentFn Func[S, K, C, U],
	uniforms U,
	blendOp blend.Blend[C],
) {
	if args.AntialiasedLines {
		rasterizeWu(fb, args, a, b, fragmentFn, uniforms, blendOp)
		return
	}
	rasterizeBresenham(fb, args, a, b, fragmentFn, uniforms, blendOp)
}

// emitLinePixel interpolates the payload at parameter t between a and b
// and runs the per-pixel pipeline at (x, y), skipping pixels outside the
// tile or the framebuffer.
func emitLinePixel[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any](
	fb framebuffer.Writer[C, D, St],
	args Arguments[St],
	a, b geometry.ScreenVertex[S, K],
	x, y int,
	t S,
	fragmentFn Func[S, K, C, U],
	uniforms U,
	blendOp blend.Blend[C],
	coverage float64,
) {
	if coverage <= 0 {
		return
	}
	if x < 0 || y < 0 {
		return
	}
	if x < int(args.Tile.MinX) || x >= int(args.Tile.MaxX) ||
		y < int(args.Tile.MinY) || y >= int(args.Tile.MaxY) {
		return
	}

	sv := geometry.LinearVertex(t, a, b)

	var depth float64
	if sv.Position.W != 0 {
		depth = float64(sv.Position.Z) / float64(sv.Position.W)
	} else {
		depth = float64(sv.Position.Z)
	}

	index := geometry.NewCoordinate(uint32(x), uint32(y)).Index(args.Dimensions)
	visit(fb, args, index, sv, depth, coverage, fragmentFn, uniforms, blendOp)
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// rasterizeBresenham walks the integer pixel grid from a to b, reporting
// t as the fraction of steps taken so far along the dominant axis.
func rasterizeBresenham[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any](
	fb framebuffer.Writer[C, D, St],
	args Arguments[St],
	a, b geometry.ScreenVertex[S, K],
	fragmentFn Func[S, K, C, U],
	uniforms U,
	blendOp blend.Blend[C],
) {
	x0 := int(math.Floor(float64(a.Position.X)))
	y0 := int(math.Floor(float64(a.Position.Y)))
	x1 := int(math.Floor(float64(b.Position.X)))
	y1 := int(math.Floor(float64(b.Position.Y)))

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	totalSteps := maxInt(absInt(x1-x0), absInt(y1-y0))
	if totalSteps == 0 {
		totalSteps = 1
	}

	x, y := x0, y0
	for step := 0; ; step++ {
		t := S(float64(step) / float64(totalSteps))
		emitLinePixel(fb, args, a, b, x, y, t, fragmentFn, uniforms, blendOp, 1.0)

		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func ipart(x float64) float64  { return math.Floor(x) }
func fpart(x float64) float64  { return x - math.Floor(x) }
func rfpart(x float64) float64 { return 1 - fpart(x) }

// rasterizeWu implements Xiaolin Wu's antialiased line algorithm, plotting
// each of the two pixels straddling the ideal line with a coverage weight
// derived from how close the line passes to each one.
func rasterizeWu[S geometry.Scalar, K geometry.Interpolatable[S], C any, D attach.Depthlike, St attach.Stencillike, U any](
	fb framebuffer.Writer[C, D, St],
	args Arguments[St],
	a0, b0 geometry.ScreenVertex[S, K],
	fragmentFn Func[S, K, C, U],
	uniforms U,
	blendOp blend.Blend[C],
) {
	a, b := a0, b0
	x0, y0 := float64(a.Position.X), float64(a.Position.Y)
	x1, y1 := float64(b.Position.X), float64(b.Position.Y)

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
		a, b = b, a
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	span := x1 - x0
	if span == 0 {
		span = 1
	}

	plot := func(x int, y float64, coverage float64) {
		iy := int(ipart(y))
		frac := fpart(y)
		t := S((float64(x) - x0) / span)
		if steep {
			emitLinePixel(fb, args, a, b, iy, x, t, fragmentFn, uniforms, blendOp, coverage*rfpart(y))
			emitLinePixel(fb, args, a, b, iy+1, x, t, fragmentFn, uniforms, blendOp, coverage*frac)
		} else {
			emitLinePixel(fb, args, a, b, x, iy, t, fragmentFn, uniforms, blendOp, coverage*rfpart(y))
			emitLinePixel(fb, args, a, b, x, iy+1, t, fragmentFn, uniforms, blendOp, coverage*frac)
		}
	}

	// First endpoint.
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpxl1 := int(xend)
	plot(xpxl1, yend, xgap)
	intery := yend + gradient

	// Second endpoint.
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpxl2 := int(xend)
	plot(xpxl2, yend, xgap)

	for x := xpxl1 + 1; x < xpxl2; x++ {
		plot(x, intery, 1.0)
		intery += gradient
	}
}
