// Package raycast implements the two ray/triangle-mesh intersection tests
// the module carries side by side: a plain scalar-triple-product test, and
// an equivalent formulation built on the projective-geometric-algebra
// primitives in package geomath. Both report hit-or-miss only; neither
// computes a hit location or distance, matching the narrow collision scope
// this module assigns to raycasting (the caller decides what, if anything,
// to do with a hit).
package raycast

import (
	"tics/body"
	"tics/collider"
	"tics/geomath"
)

// toLocal converts a world-space ray into the mesh's local space, where
// Mesh's vertices and precomputed edges already live.
func toLocal(t body.Transform, origin, direction geomath.Vec3) (geomath.Vec3, geomath.Vec3) {
	inverse := t.Rotation().Inverse()
	localOrigin := inverse.Rotate(origin.Sub(t.Position()))
	localDirection := inverse.Rotate(direction)
	return localOrigin, localDirection
}

// Triple tests a ray against a mesh using the scalar triple product: for
// each triangle translated so the ray origin sits at the local origin, the
// ray hits iff none of the three edge-to-ray triple products is positive.
func Triple(mesh *collider.Mesh, t body.Transform, origin, direction geomath.Vec3) bool {
	localOrigin, localDirection := toLocal(t, origin, direction)

	for _, tri := range mesh.Triangles {
		a := mesh.Vertices[tri.A].Sub(localOrigin)
		b := mesh.Vertices[tri.B].Sub(localOrigin)
		c := mesh.Vertices[tri.C].Sub(localOrigin)

		if a.Cross(b).Dot(localDirection) > 0 {
			continue
		}
		if b.Cross(c).Dot(localDirection) > 0 {
			continue
		}
		if c.Cross(a).Dot(localDirection) > 0 {
			continue
		}
		return true
	}
	return false
}

// PGA tests the same ray against the same mesh using the projective
// reciprocal product: the ray becomes a single Line, translated per
// triangle to put that triangle's first vertex at the origin, and tested
// against the triangle's three precomputed edge lines. The ray hits a
// triangle iff none of the three antiwedge results comes out negative.
func PGA(mesh *collider.Mesh, t body.Transform, origin, direction geomath.Vec3) bool {
	localOrigin, localDirection := toLocal(t, origin, direction)
	ray := geomath.LineThroughPoints(localOrigin, localOrigin.Add(localDirection))

	for i, tri := range mesh.Triangles {
		a := mesh.Vertices[tri.A]
		shifted := ray.Translate(a)
		edges := mesh.Edges[i]

		if geomath.Antiwedge(shifted, edges.K1) < 0 {
			continue
		}
		if geomath.Antiwedge(shifted, edges.K2) < 0 {
			continue
		}
		if geomath.Antiwedge(shifted, edges.K3) < 0 {
			continue
		}
		return true
	}
	return false
}
