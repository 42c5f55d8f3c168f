package geometry

// Mesh is an index buffer into a separately-held vertex stream, grounded
// on original_source/src/mesh.rs's Mesh<V>: the vertex stage hands the
// fragment stage a mesh plus the vertex stream it indexes, and the
// fragment stage walks Indices in chunks sized by PrimitiveKind (3 for
// triangles, 2 for lines, 1 for points).
type Mesh struct {
	Indices []uint32
}

// PrimitiveKind selects how a Mesh's Indices are chunked and which
// rasterizer an indexed primitive stream is run through.
type PrimitiveKind int

const (
	TrianglePrimitive PrimitiveKind = iota
	LinePrimitive
	PointPrimitive
)

// IsTriangle reports whether k selects the triangle rasterizer.
func (k PrimitiveKind) IsTriangle() bool { return k == TrianglePrimitive }

// IsLine reports whether k selects the line rasterizer.
func (k PrimitiveKind) IsLine() bool { return k == LinePrimitive }

// IsPoint reports whether k selects the point rasterizer.
func (k PrimitiveKind) IsPoint() bool { return k == PointPrimitive }

// GeneratedPrimitives holds three flat, already-expanded vertex streams —
// one per primitive family — the way original_source's
// SeparableScreenPrimitiveStorage keeps triangle/line/point geometry that
// bypassed mesh indexing (e.g. procedurally generated geometry) separate
// from the indexed mesh path. Tris is grouped in runs of three vertices,
// Lines in runs of two, Points one per entry.
type GeneratedPrimitives[S Scalar, K Interpolatable[S]] struct {
	Tris   []ScreenVertex[S, K]
	Lines  []ScreenVertex[S, K]
	Points []ScreenVertex[S, K]
}
