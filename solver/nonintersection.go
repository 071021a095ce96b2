package solver

import "tics/body"

const (
	penetrationTolerance = 0.01
	correctionFactor     = 0.8
)

// NonIntersectionConstraintSolver pushes overlapping bodies apart directly
// along the contact normal, independent of velocity, so that residual
// penetration left over after the impulse solver doesn't accumulate tick
// over tick. It corrects at most 80% of the depth beyond a small tolerance
// band each step rather than all of it, which is what keeps the correction
// from overshooting into jitter.
type NonIntersectionConstraintSolver struct{}

func (NonIntersectionConstraintSolver) Solve(collisions []Collision, dt float64, bodies Accessor) {
	for _, c := range collisions {
		a, aok := bodies.Get(c.A)
		b, bok := bodies.Get(c.B)
		if !aok || !bok {
			continue
		}
		if a.Kind == body.KindArea || b.Kind == body.KindArea {
			continue
		}

		depth := c.Points.Depth - penetrationTolerance
		if depth <= 0 {
			continue
		}

		switch {
		case a.Kind == body.KindRigid && b.Kind == body.KindRigid:
			total := a.Mass + b.Mass
			shareA := b.Mass / total
			shareB := a.Mass / total
			a.Transform.Translate(c.Points.Normal.Mul(correctionFactor * depth * shareA))
			b.Transform.Translate(c.Points.Normal.Mul(-correctionFactor * depth * shareB))
		case a.Kind == body.KindRigid:
			a.Transform.Translate(c.Points.Normal.Mul(correctionFactor * depth))
		case b.Kind == body.KindRigid:
			b.Transform.Translate(c.Points.Normal.Mul(-correctionFactor * depth))
		}
	}
}
