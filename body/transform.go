// Package body implements the simulation's moving parts: the dual
// classical/motor transform configurations, and the tagged union of static
// bodies, rigid bodies and collision-area triggers that the world steps.
package body

import "tics/geomath"

// Transform exposes the position and orientation of a collision object
// without committing to how they are stored. ClassicalTransform keeps them
// as a separate position vector and rotor, the way most of this module's
// grounding material does; MotorTransform keeps them fused into a single
// rigid-motion object. Both satisfy identical Position/Rotation contracts so
// every other package (collider support wrapping, the solvers, the world
// loop) is written against the interface and never needs to know which
// configuration a given body uses.
type Transform interface {
	Position() geomath.Vec3
	Rotation() geomath.Rotor
	SetPosition(p geomath.Vec3)
	SetRotation(r geomath.Rotor)
	Translate(offset geomath.Vec3)
	// PremultiplyRotation composes delta . current, matching how an
	// angular-velocity rotor is applied on top of an existing orientation.
	PremultiplyRotation(delta geomath.Rotor)
}

// ClassicalTransform stores position and rotation as separate values.
type ClassicalTransform struct {
	Pos geomath.Vec3
	Rot geomath.Rotor
}

// NewClassicalTransform returns an identity classical transform.
func NewClassicalTransform() *ClassicalTransform {
	return &ClassicalTransform{Pos: geomath.Vec3{0, 0, 0}, Rot: geomath.IdentityRotor()}
}

func (t *ClassicalTransform) Position() geomath.Vec3 { return t.Pos }
func (t *ClassicalTransform) Rotation() geomath.Rotor { return t.Rot }
func (t *ClassicalTransform) SetPosition(p geomath.Vec3) { t.Pos = p }
func (t *ClassicalTransform) SetRotation(r geomath.Rotor) { t.Rot = r }
func (t *ClassicalTransform) Translate(offset geomath.Vec3) { t.Pos = t.Pos.Add(offset) }
func (t *ClassicalTransform) PremultiplyRotation(delta geomath.Rotor) {
	t.Rot = delta.Mul(t.Rot).Normalize()
}

// MotorTransform stores position and rotation fused into a single motor.
type MotorTransform struct {
	M geomath.Motor
}

// NewMotorTransform returns an identity motor transform.
func NewMotorTransform() *MotorTransform {
	return &MotorTransform{M: geomath.IdentityMotor()}
}

func (t *MotorTransform) Position() geomath.Vec3 { return t.M.Translation }
func (t *MotorTransform) Rotation() geomath.Rotor { return t.M.Rotation }

func (t *MotorTransform) SetPosition(p geomath.Vec3) { t.M.Translation = p }
func (t *MotorTransform) SetRotation(r geomath.Rotor) { t.M.Rotation = r }
func (t *MotorTransform) Translate(offset geomath.Vec3) {
	t.M.Translation = t.M.Translation.Add(offset)
}
func (t *MotorTransform) PremultiplyRotation(delta geomath.Rotor) {
	t.M.Rotation = delta.Mul(t.M.Rotation).Normalize()
}
