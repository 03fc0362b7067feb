package detection

import (
	"image"

	"github.com/ironsheep/circle-census/internal/imaging"
)

// Point is a pixel coordinate in (row, col) order.
type Point struct {
	Row int `json:"row"` // Vertical position (0 = topmost)
	Col int `json:"col"` // Horizontal position (0 = leftmost)
}

// Component is a maximal 4-connected set of foreground pixels.
//
// A Component is built once by ExtractComponents and never modified. It is
// always non-empty.
type Component struct {
	points  []Point
	members map[Point]struct{}
}

// Points returns the component's pixels in breadth-first discovery order.
// The returned slice must not be modified.
func (c *Component) Points() []Point { return c.points }

// Size returns the number of pixels in the component.
func (c *Component) Size() int { return len(c.points) }

// Contains reports whether p belongs to the component.
func (c *Component) Contains(p Point) bool {
	_, ok := c.members[p]
	return ok
}

// Centroid returns the mean row and mean column of the component's pixels,
// each rounded down to an integer.
func (c *Component) Centroid() Point {
	var sumRow, sumCol int
	for _, p := range c.points {
		sumRow += p.Row
		sumCol += p.Col
	}
	n := len(c.points)
	// Coordinates are non-negative, so integer division is a floor.
	return Point{Row: sumRow / n, Col: sumCol / n}
}

// Bounds returns the bounding box in image coordinates (X = col, Y = row)
// with an exclusive Max.
func (c *Component) Bounds() image.Rectangle {
	first := c.points[0]
	r := image.Rect(first.Col, first.Row, first.Col+1, first.Row+1)
	for _, p := range c.points[1:] {
		r = r.Union(image.Rect(p.Col, p.Row, p.Col+1, p.Row+1))
	}
	return r
}

// searchDirs is the 4-neighbourhood: left, right, up, down.
var searchDirs = [4]Point{
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
}

// ExtractComponents partitions the foreground of grid into connected components.
//
// The background is the color of the top-left pixel; every pixel whose color
// differs from it in any channel is foreground. Two foreground pixels are
// connected when they are horizontally or vertically adjacent (diagonals do
// not connect).
//
// # Algorithm
//
//  1. Scan the grid in row-major order.
//  2. At each foreground pixel not yet visited, run a breadth-first search
//     from it and collect every reachable foreground pixel as one component.
//  3. Continue the scan, skipping visited pixels.
//
// Components are returned in the order their first pixel is met by the scan.
// Every foreground pixel belongs to exactly one component; a grid with no
// foreground yields an empty slice.
func ExtractComponents(grid *imaging.PixelGrid) []Component {
	height, width := grid.Height(), grid.Width()
	bg := grid.Background()

	seen := make([][]bool, height)
	for row := range seen {
		seen[row] = make([]bool, width)
	}

	components := make([]Component, 0)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if seen[row][col] || grid.At(row, col) == bg {
				continue
			}
			components = append(components, extractComponent(grid, Point{Row: row, Col: col}, bg, seen))
		}
	}
	return components
}

// extractComponent collects the component containing start.
//
// The members set guards the queue so every pixel is enqueued at most once.
// A pixel is marked in seen only when it is dequeued; the outer scan uses seen
// to avoid starting a second search inside a finished component.
func extractComponent(grid *imaging.PixelGrid, start Point, bg imaging.RGB, seen [][]bool) Component {
	members := map[Point]struct{}{start: {}}
	points := []Point{start}
	queue := []Point{start}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		seen[p.Row][p.Col] = true

		for _, d := range searchDirs {
			n := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if !grid.InBounds(n.Row, n.Col) || grid.At(n.Row, n.Col) == bg {
				continue
			}
			if _, ok := members[n]; ok {
				continue
			}
			members[n] = struct{}{}
			points = append(points, n)
			queue = append(queue, n)
		}
	}

	return Component{points: points, members: members}
}
