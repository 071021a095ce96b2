package collider

import "tics/geomath"

// Sphere is a ball of the given radius, centered on its body's transform.
type Sphere struct {
	Radius float64
}

func (s *Sphere) Kind() Kind { return KindSphere }

func (s *Sphere) Support(direction geomath.Vec3) geomath.Vec3 {
	if direction.LenSqr() < 1e-16 {
		return geomath.Vec3{s.Radius, 0, 0}
	}
	return direction.Normalize().Mul(s.Radius)
}
