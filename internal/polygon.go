package internal

// IsClockwise checks the winding of the polygon using the trapezoid form of
// the shoelace formula. The sum is twice the clockwise-signed area, so a
// positive sum means the points wind clockwise. A degenerate polygon (zero
// area, e.g. all points collinear or coincident) sums to exactly zero and is
// reported as counterclockwise; Triangulate depends on that convention, so
// this must stay a strict comparison rather than a tolerance-based one.
func (poly *Polygon) IsClockwise() bool {
	sum := 0.0
	for i, current := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += (next.X - current.X) * (next.Y + current.Y)
	}
	return sum > 0
}

// Reverse flips the winding in place.
func (poly *Polygon) Reverse() {
	points := poly.Points
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// SignedArea is positive for counterclockwise polygons and negative for
// clockwise ones.
func (poly *Polygon) SignedArea() float64 {
	sum := 0.0
	for i, current := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += current.Cross(next)
	}
	return sum / 2
}

func (t *Triangle) SignedArea() float64 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)) / 2
}
