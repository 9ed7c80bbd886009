package internal

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/4iwen/earclip/dbg"
)

// This is for debugging purposes only. The render goes to a temp file and
// is catted to the terminal (iTerm only).

const dbgDrawPadding = 20

// Helper to draw and print a triangulation in the terminal for debugging.
// Each triangle gets a readable name at its centroid so it can be matched
// against trace output.
func (list TriangleList) dbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, t := range list {
		for _, p := range []Point{t.A, t.B, t.C} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, t := range list {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	// gg has no way to read the context matrix back, so the labels are
	// placed by redoing the point transform by hand under the identity
	// matrix. Text would come out mirrored under the flipped matrix above.
	c.Identity()
	c.SetRGB(1, 1, 1)
	for i := range list {
		t := &list[i]
		cx := (t.A.X + t.B.X + t.C.X) / 3
		cy := (t.A.Y + t.B.Y + t.C.Y) / 3
		sx := (cx-minX)*scale + dbgDrawPadding
		sy := float64(height) - ((cy-minY)*scale + dbgDrawPadding)
		c.DrawStringAnchored(dbg.Name(t), sx, sy, 0.5, 0.5)
	}

	c.SavePNG("/tmp/earclip_triangles.png")
	imgcat.CatFile("/tmp/earclip_triangles.png", os.Stdout)
}

// One line per vertex with its classification: ear tips green, plain convex
// corners cyan, reflex corners red. Only meaningful on a clockwise polygon.
func (poly *Polygon) dbgDump() {
	for i, current := range poly.Points {
		prevIndex := CircularIndex(i-1, len(poly.Points))
		nextIndex := CircularIndex(i+1, len(poly.Points))

		var label string
		switch {
		case !IsConvex(poly.Points[prevIndex], current, poly.Points[nextIndex]):
			label = aurora.Red("reflex").String()
		case IsEar(poly.Points, prevIndex, i, nextIndex):
			label = aurora.Green("ear").String()
		default:
			label = aurora.Cyan("convex").String()
		}
		fmt.Printf("%3d (%f, %f) %s\n", i, current.X, current.Y, label)
	}
}
