package collider

import (
	"testing"

	"tics/geomath"
)

func TestSphere_Support(t *testing.T) {
	s := &Sphere{Radius: 2}
	got := s.Support(geomath.Vec3{1, 0, 0})
	want := geomath.Vec3{2, 0, 0}
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("Support = %v, want %v", got, want)
	}
}

func TestSphere_SupportDegenerateDirection(t *testing.T) {
	s := &Sphere{Radius: 1}
	got := s.Support(geomath.Vec3{0, 0, 0})
	if got.Len() < 0.999 || got.Len() > 1.001 {
		t.Errorf("Support(0) = %v, want a point on the sphere", got)
	}
}

// TestPlane_SupportPanics checks that Plane.Support refuses every query: a
// plane has no bounded support point, and NarrowPhase never routes a Plane
// into GJK.
func TestPlane_SupportPanics(t *testing.T) {
	p := &Plane{Normal: geomath.Vec3{0, 1, 0}, Distance: 0}
	panics := func(direction geomath.Vec3) (panicked bool) {
		defer func() { panicked = recover() != nil }()
		p.Support(direction)
		return false
	}

	if !panics(geomath.Vec3{0, 1, 0}) {
		t.Errorf("support toward +normal should panic")
	}
	if !panics(geomath.Vec3{0, -1, 0}) {
		t.Errorf("support toward -normal should panic")
	}
}

// tetrahedronAroundOrigin returns a tetrahedron with vertices spread evenly
// around the origin, rather than meeting at it, so it satisfies the
// origin-strictly-inside-the-hull precondition NewMesh enforces.
func tetrahedronAroundOrigin() ([]geomath.Vec3, []Triangle) {
	vertices := []geomath.Vec3{
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	}
	triangles := []Triangle{
		{A: 0, B: 1, C: 2}, {A: 0, B: 2, C: 3}, {A: 0, B: 3, C: 1}, {A: 1, B: 2, C: 3},
	}
	return vertices, triangles
}

func TestMesh_SupportPicksFarthestVertex(t *testing.T) {
	vertices, triangles := tetrahedronAroundOrigin()
	m := NewMesh(vertices, triangles)

	got := m.Support(geomath.Vec3{1, 1, 1})
	want := geomath.Vec3{1, 1, 1}
	if got.Sub(want).Len() > 1e-9 {
		t.Errorf("Support = %v, want %v", got, want)
	}
}

func TestMesh_PrecomputesEdgesPerTriangle(t *testing.T) {
	vertices, triangles := tetrahedronAroundOrigin()
	m := NewMesh(vertices, triangles)

	if len(m.Edges) != len(triangles) {
		t.Fatalf("len(Edges) = %d, want %d", len(m.Edges), len(triangles))
	}
}

func TestNewMesh_PanicsOnOutOfRangeIndex(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic on an out-of-range triangle index")
		}
	}()
	NewMesh([]geomath.Vec3{{0, 0, 0}}, []Triangle{{A: 0, B: 1, C: 2}})
}

func TestNewMesh_PanicsOnNoVertices(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected a panic on an empty vertex set")
		}
	}()
	NewMesh(nil, nil)
}
