// Package geomath provides the vector, rotor and projective-geometric-algebra
// primitives shared by the collision and dynamics packages.
//
// Vec3 and Rotor are thin aliases over github.com/go-gl/mathgl/mgl64 so that
// every package in this module speaks the same linear-algebra vocabulary
// without re-declaring arithmetic. Motor, Line and the wedge/antiwedge
// operators are new: nothing in the retrieved reference material ships a
// projective-geometric-algebra layer, so they are built here from scratch,
// grounded on the raycast formulas they exist to serve.
package geomath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or free vector in 3-space.
type Vec3 = mgl64.Vec3

// Rotor is a unit quaternion representing an orientation or rotation.
type Rotor = mgl64.Quat

// IdentityRotor returns the rotor that applies no rotation.
func IdentityRotor() Rotor {
	return mgl64.QuatIdent()
}

// FiniteVec3 reports whether every component of v is finite. A NaN or
// infinite component almost always means a divide-by-zero or an unnormalized
// degenerate direction slipped through earlier, and letting it reach
// integration would silently corrupt every body it subsequently touches
// through contact resolution.
func FiniteVec3(v Vec3) bool {
	return isFinite(v.X()) && isFinite(v.Y()) && isFinite(v.Z())
}

// FiniteRotor reports whether every component of r is finite.
func FiniteRotor(r Rotor) bool {
	return isFinite(r.W) && isFinite(r.V.X()) && isFinite(r.V.Y()) && isFinite(r.V.Z())
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ScaleRotor approximates slerp(Identity, r, s) by linearly interpolating the
// quaternion components and renormalizing. This is a deliberate
// approximation, not a shortcut awaiting replacement: callers that need the
// rotor "dialed down" toward identity (air friction damping, easing an
// angular impulse into a body's orientation) use this cheap form, and the
// module's integration tests are tuned against its drift, not against true
// spherical interpolation.
func ScaleRotor(r Rotor, s float64) Rotor {
	identity := IdentityRotor()
	lerped := Rotor{
		W: identity.W*(1-s) + r.W*s,
		V: identity.V.Mul(1 - s).Add(r.V.Mul(s)),
	}
	return lerped.Normalize()
}
