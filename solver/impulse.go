package solver

import (
	"tics/body"
	"tics/geomath"
)

// dynamicFrictionCoefficient is the Coulomb friction coefficient applied
// tangentially to every contact, regardless of material - the data model
// carries no per-material friction, only restitution (Elasticity).
const dynamicFrictionCoefficient = 0.07

// ImpulseSolver resolves contacts by applying an instantaneous impulse at
// the contact point along the normal (restitution) and along the tangent
// (Coulomb friction), with a scalar approximation of rotational inertia
// (1/(m*r^2)) standing in for a full inertia tensor - the data model has no
// per-body tensor, only a scalar mass.
type ImpulseSolver struct{}

func (ImpulseSolver) Solve(collisions []Collision, dt float64, bodies Accessor) {
	for _, c := range collisions {
		a, aok := bodies.Get(c.A)
		b, bok := bodies.Get(c.B)
		if !aok || !bok {
			continue
		}
		if a.Kind == body.KindArea || b.Kind == body.KindArea {
			continue
		}
		if a.Kind != body.KindRigid && b.Kind != body.KindRigid {
			continue
		}

		normal := c.Points.Normal
		contact := c.Points.A.Add(c.Points.B).Mul(0.5)

		rA := contact.Sub(a.Transform.Position())
		rB := contact.Sub(b.Transform.Position())

		relativeVelocity := a.PointVelocity(contact).Sub(b.PointVelocity(contact))
		closingSpeed := relativeVelocity.Dot(normal)
		if closingSpeed >= 0 {
			continue // separating or resting, nothing to resolve
		}

		cor := a.Elasticity * b.Elasticity

		invMassA := a.InverseMass()
		invMassB := b.InverseMass()

		angularTermA := angularInverseInertiaTerm(a, rA, normal)
		angularTermB := angularInverseInertiaTerm(b, rB, normal)

		denom := invMassA + invMassB + angularTermA + angularTermB
		if denom < 1e-12 {
			continue
		}

		j := -(1 + cor) * closingSpeed / denom

		tangentVelocity := relativeVelocity.Sub(normal.Mul(closingSpeed))
		var tangent geomath.Vec3
		var friction geomath.Vec3
		if tangentVelocity.LenSqr() > 1e-12 {
			tangent = tangentVelocity.Normalize()
			friction = tangent.Mul(j * dynamicFrictionCoefficient)
		}

		impulseOnA := normal.Mul(j).Sub(friction)
		impulseOnB := impulseOnA.Mul(-1)

		applyImpulse(a, rA, impulseOnA)
		applyImpulse(b, rB, impulseOnB)
	}
}

func angularInverseInertiaTerm(o *body.CollisionObject, r, normal geomath.Vec3) float64 {
	if o.Kind != body.KindRigid {
		return 0
	}
	rSq := r.LenSqr()
	if rSq < 1e-12 {
		return 0
	}
	rCrossN := r.Cross(normal)
	return rCrossN.LenSqr() / (o.Mass * rSq)
}

func applyImpulse(o *body.CollisionObject, r, impulse geomath.Vec3) {
	if o.Kind != body.KindRigid {
		return
	}
	o.Impulse = o.Impulse.Add(impulse)

	cross := r.Cross(impulse)
	rSq := r.LenSqr()
	if cross.LenSqr() < 1e-16 || rSq < 1e-12 {
		return
	}
	axis := cross.Normalize()
	angle := cross.Len() * 0.1 / rSq
	delta := geomath.RotorFromAxisAngle(axis, angle)
	o.AngularImpulseOverRSquared = delta.Mul(o.AngularImpulseOverRSquared).Normalize()
}
