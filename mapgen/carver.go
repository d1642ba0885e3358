package mapgen

import (
	"github.com/Chris3606/gogue"
)

// DirectLineCarver mutates a SettableGridView[bool] so that a straight
// line of true cells joins start and end (spec §4.6). It rasterizes
// orthogonally (Manhattan step order) when Distance is Manhattan, and
// with Bresenham's algorithm otherwise.
type DirectLineCarver struct {
	Distance gogue.DistanceMetric
	// WidenVertical additionally sets the cell one column to the right
	// of every vertical step, staying inside the grid, producing a
	// visually wider vertical corridor (spec §4.6).
	WidenVertical bool
}

// Carve draws the line into grid.
func (c DirectLineCarver) Carve(grid gogue.SettableGridView[bool], start, end gogue.Point) {
	if c.Distance == gogue.Manhattan {
		c.carveOrthogonal(grid, start, end)
		return
	}
	c.carveBresenham(grid, start, end)
}

func (c DirectLineCarver) carveOrthogonal(grid gogue.SettableGridView[bool], start, end gogue.Point) {
	x, y := start.X, start.Y
	for x != end.X {
		c.setWidened(grid, gogue.Point{X: x, Y: y}, false)
		if x < end.X {
			x++
		} else {
			x--
		}
	}
	for y != end.Y {
		c.setWidened(grid, gogue.Point{X: x, Y: y}, true)
		if y < end.Y {
			y++
		} else {
			y--
		}
	}
	c.setWidened(grid, gogue.Point{X: x, Y: y}, false)
}

func (c DirectLineCarver) carveBresenham(grid gogue.SettableGridView[bool], start, end gogue.Point) {
	x0, y0 := start.X, start.Y
	x1, y1 := end.X, end.Y

	dx := abs(x1 - x0)
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	dy := -abs(y1 - y0)
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		prevY := y
		c.setWidened(grid, gogue.Point{X: x, Y: y}, false)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		if y != prevY {
			c.setWidened(grid, gogue.Point{X: x, Y: y}, true)
		}
	}
}

func (c DirectLineCarver) setWidened(grid gogue.SettableGridView[bool], p gogue.Point, verticalStep bool) {
	grid.Set(p, true)
	if c.WidenVertical && verticalStep {
		right := gogue.Point{X: p.X + 1, Y: p.Y}
		if right.In(grid.Bounds()) {
			grid.Set(right, true)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// LShapedCarver carves two straight legs joined at a random elbow: either
// horizontal-then-vertical or vertical-then-horizontal, chosen by a coin
// flip on RNG (spec §4.6).
type LShapedCarver struct {
	Distance gogue.DistanceMetric
	RNG      gogue.RNG
}

// Carve draws both legs, inclusive of the elbow point.
func (c LShapedCarver) Carve(grid gogue.SettableGridView[bool], start, end gogue.Point) {
	line := DirectLineCarver{Distance: c.Distance}

	var elbow gogue.Point
	if c.RNG.Intn(2) == 0 {
		elbow = gogue.Point{X: end.X, Y: start.Y} // horizontal, then vertical
	} else {
		elbow = gogue.Point{X: start.X, Y: end.Y} // vertical, then horizontal
	}
	line.Carve(grid, start, elbow)
	line.Carve(grid, elbow, end)
}
