// Package gjk implements the Gilbert-Johnson-Keerthi convex intersection
// test. GJK walks a simplex through the Minkowski difference of two
// colliders, refining it toward the origin; if the origin ends up enclosed
// by a tetrahedron, the shapes overlap and that tetrahedron becomes EPA's
// starting polytope.
package gjk

import (
	"log"

	"tics/body"
	"tics/geomath"
)

// toleranceEps is the tie-break tolerance the bootstrap and the tetrahedron
// loop use in place of a strict >0/<=0 comparison. Exact zero comparisons on
// floating point support-function results are unreliable right at the
// boundary of two touching shapes, which is exactly the case this test cares
// about getting right.
const toleranceEps = 0.001

// maxTetrahedronIterations caps the tetrahedron-refinement loop. 100 is a
// generous safety net, not a normally-reached limit: reaching it signals a
// numerically degenerate pair (near-zero-volume Minkowski difference) rather
// than a slow-converging valid case.
const maxTetrahedronIterations = 100

// SupportPoint is a single Minkowski-difference support sample, tagged with
// the point on collider A that produced it so EPA can later reconstruct a
// contact point on A's surface.
type SupportPoint struct {
	Minkowski geomath.Vec3
	PointOnA  geomath.Vec3
}

// Simplex is the (up to 4)-point set GJK builds while searching for the
// origin in the Minkowski difference.
type Simplex struct {
	Points [4]SupportPoint
	Count  int
}

// Result reports the outcome of a GJK run. CapHit and Iterations exist so
// tests can assert how often the tetrahedron loop's safety cap fires, per
// the module's explicit policy of tracking rather than silently extending
// that cap.
type Result struct {
	Hit        bool
	Simplex    Simplex
	Iterations int
	CapHit     bool
}

// MinkowskiSupport computes a support point of a-b in the given direction,
// recording the contributing point on a.
func MinkowskiSupport(a, b *body.CollisionObject, direction geomath.Vec3) SupportPoint {
	pointOnA := a.WorldSupport(direction)
	pointOnB := b.WorldSupport(direction.Mul(-1))
	return SupportPoint{Minkowski: pointOnA.Sub(pointOnB), PointOnA: pointOnA}
}

// GJK tests whether the colliders of a and b overlap.
func GJK(a, b *body.CollisionObject) Result {
	seed := b.Transform.Position().Sub(a.Transform.Position())
	if seed.LenSqr() < 1e-16 {
		seed = geomath.Vec3{1, 0, 0}
	}
	d := seed.Normalize()

	s0 := MinkowskiSupport(a, b, d)
	d = s0.Minkowski.Mul(-1)

	if d.LenSqr() < 1e-16 {
		return Result{Hit: true, Simplex: Simplex{Points: [4]SupportPoint{s0}, Count: 1}}
	}

	s1 := MinkowskiSupport(a, b, d)
	if s1.Minkowski.Dot(d) < toleranceEps {
		return Result{Hit: false}
	}

	ab := s0.Minkowski.Sub(s1.Minkowski)
	ao := s1.Minkowski.Mul(-1)
	d = ab.Cross(ao).Cross(ab)
	if d.LenSqr() < 1e-16 {
		// s0, s1 and the origin are collinear: any perpendicular works.
		d = arbitraryPerpendicular(ab)
	}

	s2 := MinkowskiSupport(a, b, d)
	if s2.Minkowski.Dot(d) < toleranceEps {
		return Result{Hit: false}
	}

	simplex := Simplex{Points: [4]SupportPoint{s0, s1, s2}, Count: 3}
	refineTriangle(&simplex, &d)

	for i := 0; i < maxTetrahedronIterations; i++ {
		s3 := MinkowskiSupport(a, b, d)
		if s3.Minkowski.Dot(d) < toleranceEps {
			return Result{Hit: false, Iterations: i + 1}
		}

		simplex.Points[3] = s3
		simplex.Count = 4

		if enclosed := refineTetrahedron(&simplex, &d); enclosed {
			return Result{Hit: true, Simplex: simplex, Iterations: i + 1}
		}
	}

	log.Printf("gjk: tetrahedron refinement hit the %d-iteration cap, reporting no collision", maxTetrahedronIterations)
	return Result{Hit: false, Iterations: maxTetrahedronIterations, CapHit: true}
}

func arbitraryPerpendicular(v geomath.Vec3) geomath.Vec3 {
	axis := geomath.Vec3{1, 0, 0}
	if v.X() > 0.9 || v.X() < -0.9 {
		axis = geomath.Vec3{0, 1, 0}
	}
	return v.Cross(axis)
}

// refineTriangle reclassifies which Voronoi region of simplex.Points[0..2]
// the origin lies in: AB edge, AC edge, or the triangle's face (either
// side). The triangle case cannot itself contain the origin in 3-D, so it
// always leaves the simplex ready for the tetrahedron step and updates d to
// point back toward the origin.
func refineTriangle(simplex *Simplex, d *geomath.Vec3) {
	c, b, a := simplex.Points[0], simplex.Points[1], simplex.Points[2]

	ab := b.Minkowski.Sub(a.Minkowski)
	ac := c.Minkowski.Sub(a.Minkowski)
	ao := a.Minkowski.Mul(-1)
	abc := ab.Cross(ac)

	abPerp := ab.Cross(abc)
	if abPerp.Dot(ao) > toleranceEps {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*d = ab.Cross(ao).Cross(ab)
		return
	}

	acPerp := abc.Cross(ac)
	if acPerp.Dot(ao) > toleranceEps {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*d = ac.Cross(ao).Cross(ac)
		return
	}

	if abc.Dot(ao) > toleranceEps {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		*d = abc
	} else {
		simplex.Points[0] = b
		simplex.Points[1] = c
		simplex.Points[2] = a
		*d = abc.Mul(-1)
	}
	simplex.Count = 3
}

// refineTetrahedron tests whether the origin lies inside simplex.Points[0..3].
// If not, it drops the vertex opposite the violated face, reduces back to
// the triangle case via refineTriangle, and leaves the simplex and d ready
// for the next support query.
func refineTetrahedron(simplex *Simplex, d *geomath.Vec3) (enclosed bool) {
	a := simplex.Points[3]
	b := simplex.Points[2]
	c := simplex.Points[1]
	e := simplex.Points[0]

	ab := b.Minkowski.Sub(a.Minkowski)
	ac := c.Minkowski.Sub(a.Minkowski)
	ae := e.Minkowski.Sub(a.Minkowski)
	ao := a.Minkowski.Mul(-1)

	abc := ab.Cross(ac)
	if abc.Dot(ae) > 0 {
		abc = abc.Mul(-1)
	}
	ace := ac.Cross(ae)
	if ace.Dot(ab) > 0 {
		ace = ace.Mul(-1)
	}
	aeb := ae.Cross(ab)
	if aeb.Dot(ac) > 0 {
		aeb = aeb.Mul(-1)
	}

	if abc.Dot(ao) > toleranceEps {
		simplex.Points[0] = c
		simplex.Points[1] = b
		simplex.Points[2] = a
		simplex.Count = 3
		refineTriangle(simplex, d)
		return false
	}
	if ace.Dot(ao) > toleranceEps {
		simplex.Points[0] = e
		simplex.Points[1] = c
		simplex.Points[2] = a
		simplex.Count = 3
		refineTriangle(simplex, d)
		return false
	}
	if aeb.Dot(ao) > toleranceEps {
		simplex.Points[0] = b
		simplex.Points[1] = e
		simplex.Points[2] = a
		simplex.Count = 3
		refineTriangle(simplex, d)
		return false
	}

	return true
}
