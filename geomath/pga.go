package geomath

// Line is a 3-D projective-geometric-algebra line (bivector), represented by
// its Plücker coordinates: a direction and a moment. For a line through
// points p and q, Direction = q - p and Moment = p x q.
//
// With this layout the moment of a line through p is p x Direction, so
// translating a line by -a updates the moment as
//
//	Moment += Direction x a
//
// (equivalently Moment -= a x Direction), which reconstructs the line
// through the translated points p-a and q-a.
type Line struct {
	Direction Vec3
	Moment    Vec3
}

// LineThroughPoints builds the PGA line passing through p and q.
func LineThroughPoints(p, q Vec3) Line {
	return Line{
		Direction: q.Sub(p),
		Moment:    p.Cross(q),
	}
}

// Translate returns the line shifted by -offset, i.e. the line that would
// result from translating both of its defining points by -offset.
func (l Line) Translate(offset Vec3) Line {
	return Line{
		Direction: l.Direction,
		Moment:    l.Moment.Add(l.Direction.Cross(offset)),
	}
}

// Wedge computes the join of two points, producing the line through both.
// It is provided for completeness alongside Antiwedge; LineThroughPoints is
// the form actually used by the raycast code since it avoids an extra
// Vec3-to-Line promotion step.
func Wedge(p, q Vec3) Line {
	return LineThroughPoints(p, q)
}

// Antiwedge computes the meet of two lines: the Plücker reciprocal product
// used to test whether a ray and a triangle edge pass on the same side of
// each other. A negative result means the ray line passes behind the edge
// line with respect to the triangle's winding; three non-negative results
// across a triangle's three edges mean the ray crosses the triangle.
func Antiwedge(a, b Line) float64 {
	return a.Direction.Dot(b.Moment) + b.Direction.Dot(a.Moment)
}
