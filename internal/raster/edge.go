package raster

import "github.com/gogpu/softraster/geometry"

// edgeValue evaluates the linear edge equation running from (x0,y0) to
// (x1,y1) at point (px,py). Positive on the left of the directed edge,
// zero exactly on it, negative on the right -- the same convention as
// gogpu-wgpu's raster.EdgeFunction.
func edgeValue(x0, y0, x1, y1, px, py float64) float64 {
	return (y0-y1)*px + (x1-x0)*py + (x0*y1 - x1*y0)
}

// signedArea returns twice the signed area of the triangle (a, b, c) in
// screen space: positive for counter-clockwise winding, negative for
// clockwise, zero for a degenerate (collinear) triangle.
func signedArea(ax, ay, bx, by, cx, cy float64) float64 {
	return edgeValue(ax, ay, bx, by, cx, cy)
}

// windingOf classifies a nonzero signed area as a FaceWinding, matching
// the "positive area is counter-clockwise" convention documented on
// geometry.FaceWinding.
func windingOf(area float64) geometry.FaceWinding {
	if area > 0 {
		return geometry.CounterClockwise
	}
	return geometry.Clockwise
}

// isTopLeftEdge classifies a directed edge (dx,dy) -- the vector from one
// vertex to the next, in the order the triangle's three edges are walked
// -- as a "top" or "left" edge under the standard top-left fill rule: a
// horizontal edge pointing in +x, or any edge pointing in -y. The rule is
// normalized for triangle winding by flipping the direction vector when
// area is negative, so the same pixel set is produced no matter which
// order the three vertices were supplied in.
//
// Pixels exactly on a top or left edge belong to this triangle; pixels
// exactly on any other edge do not -- this is what keeps two triangles
// sharing an edge from double-drawing or leaving a gap along it, and is
// the "standard fill convention" spec §4.7 calls for tie pixels.
func isTopLeftEdge(dx, dy, area float64) bool {
	if area < 0 {
		dx, dy = -dx, -dy
	}
	if dy == 0 {
		return dx > 0
	}
	return dy < 0
}

// edgeIncluded reports whether a pixel lying on an edge (w == 0) counts as
// covered by that edge, given the edge's classification and the
// triangle's winding sign.
func edgeIncluded(w, area float64, topLeft bool) bool {
	if area > 0 {
		if topLeft {
			return w >= 0
		}
		return w > 0
	}
	if topLeft {
		return w <= 0
	}
	return w < 0
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min3f(a, b, c float64) float64 {
	return minF(minF(a, b), c)
}

func max3f(a, b, c float64) float64 {
	return maxF(maxF(a, b), c)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
