package raycast

import (
	"testing"

	"tics/body"
	"tics/collider"
	"tics/geomath"
)

func unitCube() *collider.Mesh {
	v := func(x, y, z float64) geomath.Vec3 { return geomath.Vec3{x, y, z} }
	vertices := []geomath.Vec3{
		v(-0.5, -0.5, -0.5), v(0.5, -0.5, -0.5),
		v(0.5, 0.5, -0.5), v(-0.5, 0.5, -0.5),
		v(-0.5, -0.5, 0.5), v(0.5, -0.5, 0.5),
		v(0.5, 0.5, 0.5), v(-0.5, 0.5, 0.5),
	}
	triangles := []collider.Triangle{
		{A: 0, B: 1, C: 2}, {A: 0, B: 2, C: 3},
		{A: 4, B: 6, C: 5}, {A: 4, B: 7, C: 6},
		{A: 0, B: 4, C: 5}, {A: 0, B: 5, C: 1},
		{A: 3, B: 2, C: 6}, {A: 3, B: 6, C: 7},
		{A: 0, B: 3, C: 7}, {A: 0, B: 7, C: 4},
		{A: 1, B: 5, C: 6}, {A: 1, B: 6, C: 2},
	}
	return collider.NewMesh(vertices, triangles)
}

// transformConfigs lets the scenario-level tests in this package run against
// both Transform implementations, per spec.md §9's requirement that the §8
// scenarios pass under either configuration.
var transformConfigs = []struct {
	name string
	new  func() body.Transform
}{
	{"classical", func() body.Transform { return body.NewClassicalTransform() }},
	{"motor", func() body.Transform { return body.NewMotorTransform() }},
}

// TestRaycast_CubeHit is the module's RM-2 scenario: a ray straight through
// the middle of a unit cube must hit under both formulations.
func TestRaycast_CubeHit(t *testing.T) {
	for _, c := range transformConfigs {
		t.Run(c.name, func(t *testing.T) {
			mesh := unitCube()
			transform := c.new()

			origin := geomath.Vec3{-5, 0, 0}
			direction := geomath.Vec3{1, 0, 0}

			if !Triple(mesh, transform, origin, direction) {
				t.Errorf("Triple: expected a hit on the cube")
			}
			if !PGA(mesh, transform, origin, direction) {
				t.Errorf("PGA: expected a hit on the cube")
			}
		})
	}
}

// TestRaycast_Miss is the module's RM-1 scenario: a ray that passes well
// clear of the shape must miss under both formulations.
func TestRaycast_Miss(t *testing.T) {
	for _, c := range transformConfigs {
		t.Run(c.name, func(t *testing.T) {
			mesh := unitCube()
			transform := c.new()

			origin := geomath.Vec3{-5, 10, 0}
			direction := geomath.Vec3{1, 0, 0}

			if Triple(mesh, transform, origin, direction) {
				t.Errorf("Triple: expected a miss")
			}
			if PGA(mesh, transform, origin, direction) {
				t.Errorf("PGA: expected a miss")
			}
		})
	}
}

// TestRaycast_FormulationsAgree checks the invariant that the scalar-triple
// and PGA formulations report the same hit/miss outcome across a spread of
// rays, not just the two canonical scenarios above.
func TestRaycast_FormulationsAgree(t *testing.T) {
	for _, c := range transformConfigs {
		t.Run(c.name, func(t *testing.T) {
			mesh := unitCube()
			transform := c.new()
			transform.SetPosition(geomath.Vec3{1, 2, -1})

			rays := []struct {
				origin, direction geomath.Vec3
			}{
				{geomath.Vec3{1, 2, -6}, geomath.Vec3{0, 0, 1}},
				{geomath.Vec3{1, 2.4, -6}, geomath.Vec3{0, 0, 1}},
				{geomath.Vec3{-10, 2, -1}, geomath.Vec3{1, 0, 0}},
				{geomath.Vec3{-10, 20, -1}, geomath.Vec3{1, 0, 0}},
				{geomath.Vec3{1, 2, -1}, geomath.Vec3{1, 1, 1}},
			}

			for i, r := range rays {
				triple := Triple(mesh, transform, r.origin, r.direction)
				pga := PGA(mesh, transform, r.origin, r.direction)
				if triple != pga {
					t.Errorf("ray %d: Triple=%v PGA=%v, expected agreement", i, triple, pga)
				}
			}
		})
	}
}
