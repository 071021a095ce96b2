package epa

import (
	"tics/geomath"
	"tics/gjk"
)

// Face is a triangular facet of the expanding polytope, carrying both the
// Minkowski-space points used to grow the polytope and the tagged
// points-on-A used to reconstruct a world-space contact once EPA converges.
type Face struct {
	Points   [3]gjk.SupportPoint
	Normal   geomath.Vec3
	Distance float64
}

func newFace(a, b, c gjk.SupportPoint) Face {
	ab := b.Minkowski.Sub(a.Minkowski)
	ac := c.Minkowski.Sub(a.Minkowski)
	normal := ab.Cross(ac)

	if length := normal.Len(); length > 1e-12 {
		normal = normal.Mul(1 / length)
	} else {
		normal = geomath.Vec3{0, 1, 0}
	}

	distance := normal.Dot(a.Minkowski)
	if distance < 0 {
		normal = normal.Mul(-1)
		distance = -distance
	}

	return Face{Points: [3]gjk.SupportPoint{a, b, c}, Normal: normal, Distance: distance}
}

// buildInitialFaces turns the GJK tetrahedron into the four starting faces
// of the polytope: ABC, ADB, ACD, BDC, with A = Points[0], B = Points[1],
// C = Points[2], D = Points[3] in GJK's own simplex ordering.
func buildInitialFaces(simplex gjk.Simplex) []Face {
	a, b, c, d := simplex.Points[0], simplex.Points[1], simplex.Points[2], simplex.Points[3]

	return []Face{
		newFace(a, b, c),
		newFace(a, d, b),
		newFace(a, c, d),
		newFace(b, d, c),
	}
}

func findClosestFace(faces []Face) int {
	closest := 0
	for i := 1; i < len(faces); i++ {
		if faces[i].Distance < faces[closest].Distance {
			closest = i
		}
	}
	return closest
}

func faceNormalPointsToward(f Face, p geomath.Vec3) bool {
	return f.Normal.Dot(p.Sub(f.Points[0].Minkowski)) > 0
}

type posPair struct{ a, b geomath.Vec3 }

// rebuildAroundSupport removes every face whose normal faces the new support
// point, finds the horizon (the edges shared between exactly one removed and
// one kept face, detected by cancelling each directed edge against its
// reverse), and re-triangulates the hole with one new face per horizon edge.
func rebuildAroundSupport(faces []Face, support gjk.SupportPoint) []Face {
	kept := make([]Face, 0, len(faces))
	horizon := make(map[posPair][2]gjk.SupportPoint)

	addEdge := func(a, b gjk.SupportPoint) {
		reverse := posPair{a: b.Minkowski, b: a.Minkowski}
		if _, ok := horizon[reverse]; ok {
			delete(horizon, reverse)
			return
		}
		horizon[posPair{a: a.Minkowski, b: b.Minkowski}] = [2]gjk.SupportPoint{a, b}
	}

	for _, f := range faces {
		if faceNormalPointsToward(f, support.Minkowski) {
			addEdge(f.Points[0], f.Points[1])
			addEdge(f.Points[1], f.Points[2])
			addEdge(f.Points[2], f.Points[0])
			continue
		}
		kept = append(kept, f)
	}

	for _, e := range horizon {
		kept = append(kept, newFace(e[0], e[1], support))
	}

	return kept
}

// barycentric computes the (u, v, w) weights of the origin's projection
// onto the plane of a, b, c via signed sub-triangle area ratios, so that
// u*a + v*b + w*c reconstructs that projection.
func barycentric(a, b, c geomath.Vec3) (u, v, w float64) {
	normal := b.Sub(a).Cross(c.Sub(a))
	areaSq := normal.Dot(normal)
	if areaSq < 1e-18 {
		return 1.0 / 3, 1.0 / 3, 1.0 / 3
	}

	distance := normal.Dot(a) / areaSq
	p := normal.Mul(distance)

	areaPBC := normal.Dot(b.Sub(p).Cross(c.Sub(p)))
	areaPCA := normal.Dot(c.Sub(p).Cross(a.Sub(p)))

	u = areaPBC / areaSq
	v = areaPCA / areaSq
	w = 1 - u - v
	return u, v, w
}
