// Package earclip triangulates simple polygons.
//
// A polygon is given as an ordered point sequence and converted into
// triangles whose corners are a subset of the input points, using the
// classic ear clipping algorithm. Polygons may be non-convex, and may wind
// in either direction, but must be simple: no holes, no self-intersections,
// no repeated points. Violating that yields an incomplete or wrong
// triangulation rather than an error.
package earclip

import "github.com/4iwen/earclip/internal"

type Point = internal.Point
type Triangle = internal.Triangle
type Polygon = internal.Polygon

// Triangulate converts a simple polygon of n points into n-2 triangles.
//
// The point slice itself is left untouched: the triangulator works on its
// own copy, so callers keep their original polygon. Polygons with fewer
// than three points are rejected with an error.
func Triangulate(points []Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandleEarClipPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	poly := internal.Polygon{Points: append([]internal.Point(nil), points...)}
	triangles, _ := poly.Triangulate()
	return []Triangle(triangles), nil
}
