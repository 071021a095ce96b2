package geomath

import "github.com/go-gl/mathgl/mgl64"

// RotorFromAxisAngle builds the rotor that rotates by angle radians around
// axis. A near-zero axis (no rotation to apply) returns the identity rotor
// rather than propagating a NaN from normalizing a zero vector. It panics if
// axis or angle is already NaN or infinite - a non-finite input is a
// programmer error upstream, not a condition this constructor can recover
// from.
func RotorFromAxisAngle(axis Vec3, angle float64) Rotor {
	if !FiniteVec3(axis) || !isFinite(angle) {
		panic("geomath: RotorFromAxisAngle given a non-finite axis or angle")
	}
	if axis.LenSqr() < 1e-16 {
		return IdentityRotor()
	}
	return mgl64.QuatRotate(angle, axis.Normalize())
}
