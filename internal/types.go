package internal

// Points are plain values with no identity beyond their coordinates. The
// result never aliases the input polygon: triangles copy the coordinates of
// the corners at clip time.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Cross is the 2D cross product (the z component of the 3D one). Its sign
// gives the turn direction from p to other, which makes it double as a
// side-of-edge test.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

type Polygon struct {
	Points []Point
}

// A triangle's corners are ordered (prev, current, next) as the ear was
// found on the clockwise-normalized polygon.
type Triangle struct {
	A, B, C Point
}

type TriangleList []Triangle
