// Package solver implements the pluggable constraint-resolution stack that
// runs once per step against the full list of collisions the narrow phase
// found: an impulse-based velocity response, a positional
// non-intersection correction, and area-trigger enter/exit bookkeeping.
package solver

import (
	"tics/arena"
	"tics/body"
)

// Collision is a single narrow-phase result: two bodies and the contact
// point/normal/depth between them.
type Collision struct {
	A, B   arena.Handle
	Points body.CollisionPoints
}

// Accessor is the slice of World behavior a Solver needs: looking up a
// body by handle, silently failing on a stale one. Solvers depend on this
// narrow interface instead of the World type itself so that the world
// package can depend on solver without creating an import cycle.
type Accessor interface {
	Get(h arena.Handle) (*body.CollisionObject, bool)
}

// Solver resolves a batch of collisions found in the current step. Implementations
// run in the order they were registered with the world.
type Solver interface {
	Solve(collisions []Collision, dt float64, bodies Accessor)
}
