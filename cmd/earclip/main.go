package main

import (
	"bufio"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/4iwen/earclip"
)

// Demo of ear clipping triangulation. By default it triangulates a built-in
// example polygon and prints one line per triangle. With --stdin it instead
// reads newline separated points in the form "x y" from standard input; a
// blank line or EOF ends the polygon. The polygon should be simple; winding
// order does not matter. With --png the triangulation is also rendered to an
// image.

var (
	useStdin = kingpin.Flag("stdin", "Read the polygon from stdin as \"x y\" lines.").Bool()
	pngPath  = kingpin.Flag("png", "Render the triangulation to this PNG file.").String()
	scale    = kingpin.Flag("scale", "Pixels per polygon unit in the PNG.").Default("50").Float64()
)

var examplePolygon = []earclip.Point{
	{X: -1, Y: -1},
	{X: -2, Y: 1},
	{X: 1, Y: 1},
	{X: 0, Y: 0},
	{X: 3, Y: -1},
}

func main() {
	kingpin.Parse()

	points := examplePolygon
	if *useStdin {
		points = readPolygon(os.Stdin)
	}

	triangles, err := earclip.Triangulate(points)
	if err != nil {
		log.Fatal(err)
	}

	for _, triangle := range triangles {
		fmt.Printf("Triangle: ")
		for _, point := range []earclip.Point{triangle.A, triangle.B, triangle.C} {
			fmt.Printf("(%f, %f) ", point.X, point.Y)
		}
		fmt.Printf("\n")
	}

	if *pngPath != "" {
		if err := writePNG(*pngPath, triangles, *scale); err != nil {
			log.Fatal(err)
		}
	}
}

func readPolygon(in *os.File) []earclip.Point {
	points := []earclip.Point{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()

		// An empty line after any points ends the polygon
		if line == "" {
			if len(points) > 0 {
				break
			}
			continue
		}

		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) earclip.Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		log.Fatalf("Invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		log.Fatalf("Invalid x value %q: %v", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		log.Fatalf("Invalid y value %q: %v", parts[1], err)
	}
	return earclip.Point{X: x, Y: y}
}

const pngPadding = 20

func writePNG(path string, triangles []earclip.Triangle, scale float64) error {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, t := range triangles {
		for _, p := range []earclip.Point{t.A, t.B, t.C} {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + pngPadding*2
	height := int(scale*(maxY-minY)) + pngPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(pngPadding, pngPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
	}
	c.SetRGB(0.85, 0.93, 1)
	c.FillPreserve()
	c.SetRGB(0.1, 0.3, 0.8)
	c.Stroke()

	return c.SavePNG(path)
}
