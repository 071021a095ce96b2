package tics

import (
	"tics/body"
	"tics/collider"
	"tics/epa"
	"tics/geomath"
	"tics/gjk"
)

// NarrowPhase tests a single pair of collision objects for overlap and, if
// they overlap, returns the contact point pair, normal and depth between
// them.
//
// The dispatch table has exactly three entries - Sphere/Sphere and
// Sphere/Plane by closed form, Mesh/Mesh by GJK+EPA - matching
// function_table[2][2] in the original engine's collision test. Any pair
// whose kinds don't match one of those three entries has no table entry at
// all and reports no collision, by design, rather than falling back to a
// generalized query that was never asked for. Whenever the kinds arrive in
// the "wrong" order for the table, both objects are swapped and the
// resulting normal and contact points are swapped/negated back afterward -
// never one without the other, since a normal answers "which way is away
// from A" and that question only has one answer regardless of which object
// the caller happened to hand in as A.
func NarrowPhase(a, b *body.CollisionObject) (body.CollisionPoints, bool) {
	ka, kb := a.Collider.Kind(), b.Collider.Kind()
	swapped := ka > kb
	if swapped {
		a, b = b, a
		ka, kb = kb, ka
	}

	var points body.CollisionPoints
	var hit bool

	switch {
	case ka == collider.KindSphere && kb == collider.KindSphere:
		points, hit = sphereSphere(a, b)
	case ka == collider.KindSphere && kb == collider.KindPlane:
		points, hit = spherePlane(a, b)
	case ka == collider.KindMesh && kb == collider.KindMesh:
		points, hit = gjkEPA(a, b)
	default:
		return body.CollisionPoints{}, false
	}

	if !hit {
		return body.CollisionPoints{}, false
	}

	if swapped {
		points.A, points.B = points.B, points.A
		points.Normal = points.Normal.Mul(-1)
	}
	return points, true
}

func sphereSphere(a, b *body.CollisionObject) (body.CollisionPoints, bool) {
	sa := a.Collider.(*collider.Sphere)
	sb := b.Collider.(*collider.Sphere)

	ca := a.Transform.Position()
	cb := b.Transform.Position()

	toB := cb.Sub(ca)
	dist := toB.Len()
	depth := sa.Radius + sb.Radius - dist
	if depth < 0 {
		return body.CollisionPoints{}, false
	}

	var towardB geomath.Vec3
	if dist < 1e-9 {
		towardB = geomath.Vec3{0, 1, 0}
	} else {
		towardB = toB.Mul(1 / dist)
	}
	normal := towardB.Mul(-1)

	pointA := ca.Add(towardB.Mul(sa.Radius))
	pointB := cb.Sub(towardB.Mul(sb.Radius))

	return body.CollisionPoints{A: pointA, B: pointB, Normal: normal, Depth: depth, Hit: true}, true
}

func spherePlane(sphere, plane *body.CollisionObject) (body.CollisionPoints, bool) {
	s := sphere.Collider.(*collider.Sphere)
	p := plane.Collider.(*collider.Plane)

	worldNormal := plane.Transform.Rotation().Rotate(p.Normal)
	planePoint := plane.Transform.Position().Add(worldNormal.Mul(p.Distance))

	center := sphere.Transform.Position()
	signedDistance := center.Sub(planePoint).Dot(worldNormal)

	depth := s.Radius - signedDistance
	if depth < 0 {
		return body.CollisionPoints{}, false
	}

	pointOnSphere := center.Sub(worldNormal.Mul(s.Radius))
	pointOnPlane := center.Sub(worldNormal.Mul(signedDistance))

	return body.CollisionPoints{A: pointOnSphere, B: pointOnPlane, Normal: worldNormal, Depth: depth, Hit: true}, true
}

func gjkEPA(a, b *body.CollisionObject) (body.CollisionPoints, bool) {
	result := gjk.GJK(a, b)
	if !result.Hit {
		return body.CollisionPoints{}, false
	}

	points, err := epa.EPA(a, b, result)
	if err != nil {
		return body.CollisionPoints{}, false
	}
	return points, true
}
