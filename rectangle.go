package gogue

// Rectangle is an axis-aligned (X, Y, W, H) region with width and height
// greater than or equal to zero. A rectangle with W == 0 or H == 0 is
// empty and contains no points.
type Rectangle struct {
	X, Y, W, H int
}

// NewRectangle builds a Rectangle from its top-left corner and dimensions.
// Negative width or height are clamped to zero, producing the empty
// rectangle at (x, y).
func NewRectangle(x, y, w, h int) Rectangle {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// Empty reports whether r contains no points.
func (r Rectangle) Empty() bool {
	return r.W == 0 || r.H == 0
}

// MinX, MaxX, MinY, MaxY give the rectangle's bounds; Max is exclusive.
func (r Rectangle) MinX() int { return r.X }
func (r Rectangle) MinY() int { return r.Y }
func (r Rectangle) MaxX() int { return r.X + r.W }
func (r Rectangle) MaxY() int { return r.Y + r.H }

// Center returns the rectangle's center point, rounded towards the
// top-left corner for even dimensions.
func (r Rectangle) Center() Point {
	if r.Empty() {
		return Point{r.X, r.Y}
	}
	return Point{r.X + (r.W-1)/2, r.Y + (r.H-1)/2}
}

// Contains reports whether p lies within r.
func (r Rectangle) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ContainsRectangle reports whether every point of q also lies in r.
func (r Rectangle) ContainsRectangle(q Rectangle) bool {
	if q.Empty() {
		return true
	}
	return q.X >= r.X && q.Y >= r.Y && q.MaxX() <= r.MaxX() && q.MaxY() <= r.MaxY()
}

// Overlaps reports whether r and q share at least one point.
func (r Rectangle) Overlaps(q Rectangle) bool {
	if r.Empty() || q.Empty() {
		return false
	}
	return r.X < q.MaxX() && q.X < r.MaxX() && r.Y < q.MaxY() && q.Y < r.MaxY()
}

// Union returns the smallest rectangle containing both r and q. Union with
// an empty rectangle returns the other operand unchanged.
func (r Rectangle) Union(q Rectangle) Rectangle {
	if r.Empty() {
		return q
	}
	if q.Empty() {
		return r
	}
	minX, minY := min(r.X, q.X), min(r.Y, q.Y)
	maxX, maxY := max(r.MaxX(), q.MaxX()), max(r.MaxY(), q.MaxY())
	return Rectangle{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Corners returns the four corner points of r in clockwise order starting
// at the top-left: top-left, top-right, bottom-right, bottom-left. The
// "right" and "bottom" corners are the last contained row/column, i.e.
// (MaxX-1, MaxY-1), not the exclusive bound.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.MaxX() - 1, r.Y},
		{r.MaxX() - 1, r.MaxY() - 1},
		{r.X, r.MaxY() - 1},
	}
}

// Side identifies one of the four outer sides of a rectangle.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// SidePositions returns every point along the given outer side of r, in
// increasing coordinate order.
func (r Rectangle) SidePositions(s Side) []Point {
	if r.Empty() {
		return nil
	}
	var pts []Point
	switch s {
	case SideTop:
		for x := r.X; x < r.MaxX(); x++ {
			pts = append(pts, Point{x, r.Y})
		}
	case SideBottom:
		for x := r.X; x < r.MaxX(); x++ {
			pts = append(pts, Point{x, r.MaxY() - 1})
		}
	case SideLeft:
		for y := r.Y; y < r.MaxY(); y++ {
			pts = append(pts, Point{r.X, y})
		}
	case SideRight:
		for y := r.Y; y < r.MaxY(); y++ {
			pts = append(pts, Point{r.MaxX() - 1, y})
		}
	}
	return pts
}

// Perimeter iterates every point on the outer boundary of r exactly once,
// in clockwise order starting from the top-left corner.
func (r Rectangle) Perimeter(fn func(Point)) {
	if r.Empty() {
		return
	}
	if r.W == 1 || r.H == 1 {
		for y := r.Y; y < r.MaxY(); y++ {
			for x := r.X; x < r.MaxX(); x++ {
				fn(Point{x, y})
			}
		}
		return
	}
	for x := r.X; x < r.MaxX(); x++ {
		fn(Point{x, r.Y})
	}
	for y := r.Y + 1; y < r.MaxY(); y++ {
		fn(Point{r.MaxX() - 1, y})
	}
	for x := r.MaxX() - 2; x >= r.X; x-- {
		fn(Point{x, r.MaxY() - 1})
	}
	for y := r.MaxY() - 2; y > r.Y; y-- {
		fn(Point{r.X, y})
	}
}
