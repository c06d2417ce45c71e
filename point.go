package meshgo

// Point is a position in 3D space.
type Point struct {
	X, Y, Z float64
}

// Lerp returns the point at parameter t on the segment from p to q.
// t=0 yields p, t=1 yields q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// Midpoint returns the midpoint of the segment from p to q.
func (p Point) Midpoint(q Point) Point {
	return p.Lerp(q, 0.5)
}

// Centroid returns the arithmetic mean of the given points.
// The zero Point is returned for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range points {
		c.X += p.X
		c.Y += p.Y
		c.Z += p.Z
	}
	n := float64(len(points))
	return Point{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}
