package internal

// The ear clipping triangulator. A vertex is an "ear tip" if it forms a
// convex corner and the triangle it spans with its two neighbors contains no
// other vertex of the polygon; such a triangle can be cut off without
// introducing a self-intersection. Clipping ears one at a time until three
// vertices remain triangulates any simple polygon.
//
// All predicates are strict sign tests on cross products. There is no
// epsilon anywhere: an exactly collinear corner is not convex, and a point
// exactly on a triangle edge counts as contained. Inputs within a rounding
// error of those boundaries inherit the usual floating-point fragility.

// IsConvex reports whether current is a convex corner, given its neighbors
// on a clockwise polygon. The sign convention only holds for clockwise
// winding; Triangulate normalizes the polygon before relying on this. A
// collinear triple has a zero cross product and counts as non-convex.
func IsConvex(prev, current, next Point) bool {
	prevEdge := prev.Sub(current)
	nextEdge := next.Sub(current)
	return prevEdge.Cross(nextEdge) > 0
}

// IsPointInsideTriangle is a barycentric sign test: one cross product per
// edge tells which side of that edge the point falls on. The point is
// outside as soon as any sign is strictly positive, so a point exactly on an
// edge or corner counts as inside. That inclusive boundary is load-bearing:
// it is what rejects ears that would shave off another vertex sitting on the
// candidate triangle's rim.
func IsPointInsideTriangle(point, prev, current, next Point) bool {
	prevToCurrent := current.Sub(prev)
	currentToNext := next.Sub(current)
	nextToPrev := prev.Sub(next)

	alpha := prevToCurrent.Cross(point.Sub(prev))
	beta := currentToNext.Cross(point.Sub(current))
	gamma := nextToPrev.Cross(point.Sub(next))

	if alpha > 0 || beta > 0 || gamma > 0 {
		return false
	}
	return true
}

// IsEar reports whether the triangle spanned by the three indices contains
// no other vertex of the polygon. Exclusion is by index, not by coordinate:
// a coincident duplicate point at some other index still disqualifies the
// ear.
func IsEar(points []Point, prevIndex, currentIndex, nextIndex int) bool {
	prev := points[prevIndex]
	current := points[currentIndex]
	next := points[nextIndex]

	for j := range points {
		if j == prevIndex || j == currentIndex || j == nextIndex {
			continue
		}
		if IsPointInsideTriangle(points[j], prev, current, next) {
			return false
		}
	}
	return true
}

// Triangulate consumes the polygon: the point slice is reversed in place if
// it winds counterclockwise, then shrunk by one as each ear is clipped.
// Callers keeping the original must copy first.
//
// The returned bool reports whether the polygon was fully clipped. A
// non-simple or degenerate polygon can reach a state where no vertex is an
// ear; the loop then gives up rather than spin forever, and the final
// triangle is built from the first three leftover points, silently dropping
// the rest. That truncation is an inherited limit of plain ear clipping,
// not something this package tries to detect or repair.
func (poly *Polygon) Triangulate() (TriangleList, bool) {
	if len(poly.Points) < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", len(poly.Points))
	}

	// IsConvex assumes clockwise winding.
	if !poly.IsClockwise() {
		poly.Reverse()
	}

	triangles := make(TriangleList, 0, len(poly.Points)-2)
	for len(poly.Points) > 3 {
		earFound := false
		for i := range poly.Points {
			prevIndex := CircularIndex(i-1, len(poly.Points))
			nextIndex := CircularIndex(i+1, len(poly.Points))

			prev := poly.Points[prevIndex]
			current := poly.Points[i]
			next := poly.Points[nextIndex]

			if IsConvex(prev, current, next) && IsEar(poly.Points, prevIndex, i, nextIndex) {
				triangles = append(triangles, Triangle{prev, current, next})
				// Removing the ear tip invalidates every index, so the scan
				// restarts from the top of the shorter polygon.
				poly.Points = append(poly.Points[:i], poly.Points[i+1:]...)
				earFound = true
				break
			}
		}
		if !earFound {
			break
		}
	}

	complete := len(poly.Points) == 3
	triangles = append(triangles, Triangle{poly.Points[0], poly.Points[1], poly.Points[2]})
	return triangles, complete
}
