// Package collider implements the convex shapes the narrow phase operates
// on: spheres, planes and triangle meshes, each exposing the support
// function GJK and EPA need and the primitives the two closed-form
// sphere/sphere and sphere/plane tests use directly.
package collider

import "tics/geomath"

// Kind tags which concrete shape a Collider is, replacing the virtual
// dispatch / dynamic_cast the original engine used to tell shapes apart.
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindMesh
)

// Collider is the tagged union of supported collision shapes. Sphere and
// Plane get closed-form narrow-phase tests; Mesh (and any future convex
// shape) falls back to GJK+EPA via Support.
type Collider interface {
	Kind() Kind

	// Support returns the point of the shape, in the shape's own local
	// space, furthest along direction. GJK and EPA call this once per
	// Minkowski support query.
	Support(direction geomath.Vec3) geomath.Vec3
}
