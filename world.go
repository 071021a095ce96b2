// Package tics is the collision detection and rigid-body dynamics core:
// narrow-phase tests (closed-form and GJK+EPA), dual-formulation
// raycasting, and a single-threaded per-tick simulation pipeline driven by
// a pluggable stack of solvers. It owns no renderer, no windowing, no
// input and no asset pipeline - those are external collaborators that call
// into this core once per frame and read back body transforms.
package tics

import (
	"tics/arena"
	"tics/body"
	"tics/geomath"
	"tics/solver"
)

// CollisionEvent is invoked once per overlapping pair found during a step,
// before any solver runs.
type CollisionEvent func(a, b arena.Handle, points body.CollisionPoints)

// World owns every collision object in the simulation, keyed by Handle so
// that cross-references (an area's "other" body, a saved contact pair) stay
// valid-or-silently-stale across removals instead of dangling.
type World struct {
	bodies  *arena.SlotMap[body.CollisionObject]
	gravity geomath.Vec3
	solvers []solver.Solver

	onCollision CollisionEvent
}

// NewWorld returns an empty world with Earth-like gravity pointing down the
// Y axis and no solvers registered.
func NewWorld() *World {
	return &World{
		bodies:  arena.NewSlotMap[body.CollisionObject](),
		gravity: geomath.Vec3{0, -9.8, 0},
	}
}

// AddBody takes ownership of o and returns a Handle for it. Callers keep
// interacting with the body through the Handle and World.Get, not through
// the pointer they passed in.
func (w *World) AddBody(o *body.CollisionObject) arena.Handle {
	return w.bodies.Insert(*o)
}

// RemoveBody drops a body from the world. Any Handle still referring to it
// (e.g. held by an area-trigger solver's enter/exit bookkeeping) silently
// stops resolving, the same way the rest of this module treats a stale
// reference.
func (w *World) RemoveBody(h arena.Handle) {
	w.bodies.Remove(h)
}

// Get resolves a Handle to its body. ok is false if the handle is stale or
// unknown. World satisfies solver.Accessor through this method.
func (w *World) Get(h arena.Handle) (*body.CollisionObject, bool) {
	return w.bodies.Get(h)
}

// SetGravity replaces the world's gravity acceleration.
func (w *World) SetGravity(g geomath.Vec3) {
	w.gravity = g
}

// AddSolver appends a solver to the end of the per-step solver chain.
func (w *World) AddSolver(s solver.Solver) {
	w.solvers = append(w.solvers, s)
}

// RemoveSolver removes the first registered solver equal to s.
func (w *World) RemoveSolver(s solver.Solver) {
	for i, existing := range w.solvers {
		if existing == s {
			w.solvers = append(w.solvers[:i], w.solvers[i+1:]...)
			return
		}
	}
}

// SetCollisionEvent installs the callback fired once per overlapping pair,
// each step, before the solver chain runs.
func (w *World) SetCollisionEvent(fn CollisionEvent) {
	w.onCollision = fn
}

// Step advances the simulation by dt seconds: it enumerates every pair of
// bodies once (skipping pairs that are both immovable), runs the
// narrow-phase test on each, fires the collision event for every overlap
// found, runs the registered solvers in order against the full batch, and
// finally integrates rigid bodies. Step is not reentrant and not safe to
// call from more than one goroutine - the whole pipeline assumes a single
// cooperative caller, matching the stepping model the rest of this core is
// built around.
func (w *World) Step(dt float64) {
	handles := make([]arena.Handle, 0, w.bodies.Len())
	w.bodies.Each(func(h arena.Handle, _ *body.CollisionObject) {
		handles = append(handles, h)
	})

	collisions := make([]solver.Collision, 0)
	for i := 0; i < len(handles); i++ {
		a, aok := w.Get(handles[i])
		if !aok {
			continue
		}
		for j := i + 1; j < len(handles); j++ {
			b, bok := w.Get(handles[j])
			if !bok {
				continue
			}
			if a.IsStatic() && b.IsStatic() {
				continue
			}

			points, hit := NarrowPhase(a, b)
			if !hit {
				continue
			}

			collisions = append(collisions, solver.Collision{A: handles[i], B: handles[j], Points: points})
			if w.onCollision != nil {
				w.onCollision(handles[i], handles[j], points)
			}
		}
	}

	for _, s := range w.solvers {
		s.Solve(collisions, dt, w)
	}

	w.integrate(dt)
}

// integrate advances every rigid body's velocity, angular velocity, position
// and orientation by one step, applies air friction, and clears the
// per-step impulse accumulators. Static bodies and areas never move here.
func (w *World) integrate(dt float64) {
	w.bodies.Each(func(_ arena.Handle, o *body.CollisionObject) {
		if o.Kind != body.KindRigid {
			return
		}

		if !geomath.FiniteVec3(o.Velocity) || !geomath.FiniteVec3(o.Impulse) || !geomath.FiniteRotor(o.AngularVelocity) {
			panic("tics: non-finite body state entering integration")
		}

		o.Impulse = o.Impulse.Add(w.gravity.Mul(o.Mass * dt * o.GravityScale))
		o.Velocity = o.Velocity.Add(o.Impulse.Mul(1 / o.Mass))
		o.Transform.Translate(o.Velocity.Mul(dt))

		angularDelta := geomath.ScaleRotor(o.AngularImpulseOverRSquared, 1/o.Mass)
		o.AngularVelocity = angularDelta.Mul(o.AngularVelocity).Normalize()

		orientationDelta := geomath.ScaleRotor(o.AngularVelocity, dt*10)
		o.Transform.PremultiplyRotation(orientationDelta)

		o.Velocity = o.Velocity.Mul(1 - 0.2*dt)
		o.AngularVelocity = geomath.ScaleRotor(o.AngularVelocity, 1-0.5*dt)

		o.Impulse = geomath.Vec3{0, 0, 0}
		o.AngularImpulseOverRSquared = geomath.IdentityRotor()
	})
}
