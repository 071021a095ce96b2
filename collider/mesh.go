package collider

import "tics/geomath"

// Triangle indexes three vertices of a Mesh.
type Triangle struct {
	A, B, C int
}

// TriangleEdges holds the three PGA edge lines of a triangle, each built by
// translating the triangle so its first vertex sits at the local origin:
// k1 through (0, b-a), k2 through (b-a, c-a), k3 through (c-a, 0). They
// depend only on the mesh's own geometry, never on a ray, so Mesh
// precomputes them once in NewMesh and every raycast against the mesh
// reuses them instead of rebuilding per call.
type TriangleEdges struct {
	K1, K2, K3 geomath.Line
}

// Mesh is a convex triangle mesh collider. The origin of the mesh's local
// space must lie strictly inside the hull - GJK's support function assumes
// this when it reports "no improvement possible" as a termination
// condition.
type Mesh struct {
	Vertices  []geomath.Vec3
	Triangles []Triangle
	Edges     []TriangleEdges // parallel to Triangles, precomputed
}

// originSampleDirections is a fixed spread of directions used to sanity-check
// that a mesh's local origin sits strictly inside its hull: the 6 axes plus
// the 8 cube diagonals. It is not an exhaustive proof (that would require
// solving the same closest-point problem GJK does, against every direction),
// but a hull that fails on any of these is definitely malformed, which is
// all a construction-time guard needs to catch.
var originSampleDirections = []geomath.Vec3{
	{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
	{-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}, {-1, -1, -1},
}

// NewMesh builds a Mesh and precomputes its PGA edge lines. It panics if a
// triangle indexes outside vertices, or if the origin is not strictly inside
// the hull along any sampled direction - both are programmer errors, not
// runtime conditions the collision pipeline should have to handle.
func NewMesh(vertices []geomath.Vec3, triangles []Triangle) *Mesh {
	if len(vertices) == 0 {
		panic("collider: mesh must have at least one vertex")
	}
	for _, tri := range triangles {
		if tri.A < 0 || tri.A >= len(vertices) ||
			tri.B < 0 || tri.B >= len(vertices) ||
			tri.C < 0 || tri.C >= len(vertices) {
			panic("collider: triangle index out of range")
		}
	}

	const originInsideTolerance = 1e-9
	for _, d := range originSampleDirections {
		best := vertices[0].Dot(d)
		for _, v := range vertices[1:] {
			if dot := v.Dot(d); dot > best {
				best = dot
			}
		}
		if best < originInsideTolerance {
			panic("collider: mesh origin must lie strictly inside the hull")
		}
	}

	m := &Mesh{Vertices: vertices, Triangles: triangles}
	m.Edges = make([]TriangleEdges, len(triangles))
	for i, tri := range triangles {
		a, b, c := vertices[tri.A], vertices[tri.B], vertices[tri.C]
		zero := geomath.Vec3{0, 0, 0}
		bShift := b.Sub(a)
		cShift := c.Sub(a)
		m.Edges[i] = TriangleEdges{
			K1: geomath.LineThroughPoints(zero, bShift),
			K2: geomath.LineThroughPoints(bShift, cShift),
			K3: geomath.LineThroughPoints(cShift, zero),
		}
	}
	return m
}

func (m *Mesh) Kind() Kind { return KindMesh }

func (m *Mesh) Support(direction geomath.Vec3) geomath.Vec3 {
	best := m.Vertices[0]
	bestDot := best.Dot(direction)
	for _, v := range m.Vertices[1:] {
		d := v.Dot(direction)
		if d > bestDot {
			bestDot = d
			best = v
		}
	}
	return best
}
