package solver

import (
	"tics/arena"
	"tics/body"
)

type pairKey struct {
	area, other arena.Handle
}

// AreaTriggerSolver tracks, per area/other pair, whether the pair was
// colliding last tick and fires OnEnter/OnExit on the edges - never on
// every tick a pair stays in contact ("Stay" is deliberately not a
// first-class event here, unlike the collision/trigger bus this is
// descended from; the data model only calls for enter and exit).
type AreaTriggerSolver struct {
	previous map[pairKey]body.CollisionPoints
	current  map[pairKey]body.CollisionPoints
}

// NewAreaTriggerSolver returns a solver with empty enter/exit history.
func NewAreaTriggerSolver() *AreaTriggerSolver {
	return &AreaTriggerSolver{
		previous: make(map[pairKey]body.CollisionPoints),
		current:  make(map[pairKey]body.CollisionPoints),
	}
}

func (s *AreaTriggerSolver) Solve(collisions []Collision, dt float64, bodies Accessor) {
	for k := range s.current {
		delete(s.current, k)
	}

	for _, c := range collisions {
		a, aok := bodies.Get(c.A)
		b, bok := bodies.Get(c.B)
		if !aok || !bok {
			continue
		}

		var areaHandle, otherHandle arena.Handle
		var points body.CollisionPoints

		switch {
		case a.Kind == body.KindArea:
			areaHandle, otherHandle = c.A, c.B
			points = c.Points
		case b.Kind == body.KindArea:
			// The collision was recorded with the area as "b"; swap the
			// points and negate the normal so OnEnter always sees the area
			// as the implicit "self" side of the contact.
			areaHandle, otherHandle = c.B, c.A
			points = body.CollisionPoints{
				A:      c.Points.B,
				B:      c.Points.A,
				Normal: c.Points.Normal.Mul(-1),
				Depth:  c.Points.Depth,
				Hit:    c.Points.Hit,
			}
		default:
			continue
		}

		s.current[pairKey{area: areaHandle, other: otherHandle}] = points
	}

	for key, points := range s.current {
		if _, wasActive := s.previous[key]; !wasActive {
			if area, ok := bodies.Get(key.area); ok && area.OnEnter != nil {
				area.OnEnter(key.other, points)
			}
		}
	}
	for key := range s.previous {
		if _, stillActive := s.current[key]; !stillActive {
			if area, ok := bodies.Get(key.area); ok && area.OnExit != nil {
				area.OnExit(key.other)
			}
		}
	}

	s.previous, s.current = s.current, s.previous
}
