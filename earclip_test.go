package earclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}
	pristine := append([]Point(nil), points...)

	triangles, err := Triangulate(points)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)

	// The caller's slice is copied before clipping, not consumed.
	assert.Equal(t, pristine, points)
}

func TestTriangulate_TooFewPoints(t *testing.T) {
	triangles, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Error(t, err)
	assert.Nil(t, triangles)
}
