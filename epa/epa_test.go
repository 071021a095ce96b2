package epa

import (
	"math"
	"testing"

	"tics/body"
	"tics/collider"
	"tics/geomath"
	"tics/gjk"
)

func cubeMesh(half float64) *collider.Mesh {
	v := func(x, y, z float64) geomath.Vec3 { return geomath.Vec3{x, y, z} }
	vertices := []geomath.Vec3{
		v(-half, -half, -half), v(half, -half, -half),
		v(half, half, -half), v(-half, half, -half),
		v(-half, -half, half), v(half, -half, half),
		v(half, half, half), v(-half, half, half),
	}
	triangles := []collider.Triangle{
		{A: 0, B: 1, C: 2}, {A: 0, B: 2, C: 3}, // back
		{A: 4, B: 6, C: 5}, {A: 4, B: 7, C: 6}, // front
		{A: 0, B: 4, C: 5}, {A: 0, B: 5, C: 1}, // bottom
		{A: 3, B: 2, C: 6}, {A: 3, B: 6, C: 7}, // top
		{A: 0, B: 3, C: 7}, {A: 0, B: 7, C: 4}, // left
		{A: 1, B: 5, C: 6}, {A: 1, B: 6, C: 2}, // right
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

func cubeBodyWith(newTransform func() body.Transform, pos geomath.Vec3, half float64) *body.CollisionObject {
	t := newTransform()
	t.SetPosition(pos)
	return body.NewRigidBody(cubeMesh(half), t, 1.0, 0.5, 1.0)
}

func cubeBody(pos geomath.Vec3, half float64) *body.CollisionObject {
	return cubeBodyWith(func() body.Transform { return body.NewClassicalTransform() }, pos, half)
}

// TestEPA_CubeOnCube reproduces the module's canonical mesh/mesh scenario:
// two unit cubes (half-extent 0.5) overlapping by half a unit along X, run
// under both Transform configurations.
func TestEPA_CubeOnCube(t *testing.T) {
	for _, c := range transformConfigs {
		t.Run(c.name, func(t *testing.T) {
			a := cubeBodyWith(c.new, geomath.Vec3{0, 0, 0}, 0.5)
			b := cubeBodyWith(c.new, geomath.Vec3{0.5, 0, 0}, 0.5)

			result := gjk.GJK(a, b)
			if !result.Hit {
				t.Fatalf("expected overlapping cubes to be detected by GJK")
			}

			contact, err := EPA(a, b, result)
			if err != nil {
				t.Fatalf("EPA returned an error: %v", err)
			}

			const tolerance = 1e-3
			if math.Abs(contact.Depth-0.5) > tolerance {
				t.Errorf("depth = %v, want ~0.5", contact.Depth)
			}

			wantNormal := geomath.Vec3{-1, 0, 0}
			if contact.Normal.Sub(wantNormal).Len() > tolerance {
				t.Errorf("normal = %v, want %v", contact.Normal, wantNormal)
			}

			if math.Abs(contact.A.Sub(contact.B).Len()-contact.Depth) > tolerance {
				t.Errorf("|a-b| = %v should equal depth %v", contact.A.Sub(contact.B).Len(), contact.Depth)
			}
		})
	}
}
