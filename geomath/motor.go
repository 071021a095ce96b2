package geomath

// Motor is a combined rigid-motion representation: a single object carrying
// both the translational and rotational part of a transform, in the spirit
// of a geometric-algebra motor. It is stored here as a (translation, rotor)
// pair rather than as a literal dual quaternion - the data model only
// requires that it expose the same Position/Rotation contract as the
// classical (Vec3, Rotor) pair, and a pair composes and inverts without the
// extra bookkeeping a dual-quaternion encoding would add for no behavioral
// gain.
type Motor struct {
	Translation Vec3
	Rotation    Rotor
}

// IdentityMotor returns the motor that applies no rigid motion.
func IdentityMotor() Motor {
	return Motor{Translation: Vec3{0, 0, 0}, Rotation: IdentityRotor()}
}

// MotorFromTranslation builds a motor with no rotation.
func MotorFromTranslation(t Vec3) Motor {
	return Motor{Translation: t, Rotation: IdentityRotor()}
}

// MotorFromRotation builds a motor with no translation.
func MotorFromRotation(r Rotor) Motor {
	return Motor{Translation: Vec3{0, 0, 0}, Rotation: r}
}

// TransformPoint applies the motor to a point: rotate then translate.
func (m Motor) TransformPoint(p Vec3) Vec3 {
	return m.Rotation.Rotate(p).Add(m.Translation)
}

// TransformDirection applies only the rotational part of the motor.
func (m Motor) TransformDirection(d Vec3) Vec3 {
	return m.Rotation.Rotate(d)
}

// Compose returns the motor equivalent to applying m first, then other.
func (m Motor) Compose(other Motor) Motor {
	return Motor{
		Translation: other.Rotation.Rotate(m.Translation).Add(other.Translation),
		Rotation:    other.Rotation.Mul(m.Rotation).Normalize(),
	}
}

// Inverse returns the motor that undoes m.
func (m Motor) Inverse() Motor {
	invRotation := m.Rotation.Inverse()
	return Motor{
		Translation: invRotation.Rotate(m.Translation.Mul(-1)),
		Rotation:    invRotation,
	}
}
