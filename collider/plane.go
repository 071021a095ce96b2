package collider

import "tics/geomath"

// Plane is an infinite half-space boundary: Normal . p = Distance, with
// Normal pointing toward the region considered "above" the plane. Plane has
// no closed-form entry paired with Mesh or with itself in the narrow-phase
// dispatch table, and an infinite half-space has no well-defined support
// point in a bounded direction, so Plane/X pairs that aren't Sphere/Plane
// report no collision by design rather than through a GJK fallback.
type Plane struct {
	Normal   geomath.Vec3
	Distance float64
}

func (p *Plane) Kind() Kind { return KindPlane }

// Support is never called - NarrowPhase never routes a Plane into GJK - and
// exists only so Plane satisfies the Collider interface.
func (p *Plane) Support(direction geomath.Vec3) geomath.Vec3 {
	panic("collider: Plane.Support is not meaningful and must never be called")
}
