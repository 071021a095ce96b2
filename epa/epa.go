// Package epa implements the Expanding Polytope Algorithm, which recovers a
// contact normal, penetration depth and contact point from a GJK result that
// already contains the origin inside its final tetrahedron.
package epa

import (
	"errors"

	"tics/body"
	"tics/gjk"
)

// ErrDidNotConverge is returned when the polytope expansion exceeds its
// iteration budget without the closest face's distance settling down. In
// practice this indicates a degenerate or non-convex input, since any pair
// of genuinely convex, overlapping shapes converges in well under the cap.
var ErrDidNotConverge = errors.New("epa: polytope expansion did not converge")

const convergenceTolerance = 0.001
const maxIterations = 64

// EPA expands the tetrahedron in result into a polytope whose closest face
// to the origin gives the contact normal and penetration depth between a
// and b.
func EPA(a, b *body.CollisionObject, result gjk.Result) (body.CollisionPoints, error) {
	if !result.Hit {
		return body.CollisionPoints{}, errors.New("epa: GJK result does not contain the origin")
	}

	faces := buildInitialFaces(result.Simplex)

	var closest Face
	for i := 0; i < maxIterations; i++ {
		closestIndex := findClosestFace(faces)
		closest = faces[closestIndex]

		support := gjk.MinkowskiSupport(a, b, closest.Normal)
		newDistance := support.Minkowski.Dot(closest.Normal)

		if newDistance-closest.Distance < convergenceTolerance {
			return contactFromFace(closest), nil
		}

		faces = rebuildAroundSupport(faces, support)
		if len(faces) == 0 {
			return body.CollisionPoints{}, ErrDidNotConverge
		}
	}

	return body.CollisionPoints{}, ErrDidNotConverge
}

// contactFromFace reconstructs the single contact point pair the narrow
// phase reports: the closest face's normal reversed to point from B toward
// A, the face's distance as the penetration depth, and a point on A found
// by barycentric-weighting the three support points' recorded A-side
// contributions by the origin's projection onto the face.
func contactFromFace(f Face) body.CollisionPoints {
	normal := f.Normal.Mul(-1)
	depth := f.Distance

	u, v, w := barycentric(f.Points[0].Minkowski, f.Points[1].Minkowski, f.Points[2].Minkowski)

	a := f.Points[0].PointOnA.Mul(u).
		Add(f.Points[1].PointOnA.Mul(v)).
		Add(f.Points[2].PointOnA.Mul(w))
	b := a.Add(normal.Mul(depth))

	return body.CollisionPoints{A: a, B: b, Normal: normal, Depth: depth, Hit: true}
}
