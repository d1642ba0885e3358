package gogue

// GridView is the uniform, bounded, read-only 2D surface every algorithm in
// this module consumes: width and height are fixed for the lifetime of the
// view, and the three lookup forms (Point, (x, y), packed index) always
// agree (spec §4.1).
type GridView[T any] interface {
	// Width, Height, and Count describe the view's fixed dimensions.
	Width() int
	Height() int
	Count() int

	// At, AtXY, and AtIdx are equivalent lookups; implementations define
	// two of them in terms of the third. Out-of-range positions panic
	// with a *BoundsError.
	At(p Point) T
	AtXY(x, y int) T
	AtIdx(idx int) T

	// Bounds returns the rectangle covering the whole view, i.e.
	// NewRectangle(0, 0, Width(), Height()).
	Bounds() Rectangle
}

// SettableGridView adds write access, fill, and clear to GridView.
type SettableGridView[T any] interface {
	GridView[T]

	Set(p Point, v T)
	SetXY(x, y int, v T)
	SetIdx(idx int, v T)

	// Fill sets every cell to v. Clear sets every cell to the zero value
	// of T. Both are O(Width * Height).
	Fill(v T)
	Clear()
}

// idx packs an (x, y) position into a row-major index for a view of the
// given width, and pos unpacks it. Every concrete GridView in this package
// derives its three lookup forms from one of these two primitives, per the
// "define the other two given one" contract in spec §4.1/§9.
func idx(x, y, width int) int {
	return y*width + x
}

func idxToXY(i, width int) (x, y int) {
	return i - (i/width)*width, i / width
}

func checkBounds(p Point, w, h int) {
	if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
		panic(newBoundsError(p, w, h))
	}
}

func checkBoundsXY(x, y, w, h int) {
	if x < 0 || x >= w || y < 0 || y >= h {
		panic(newBoundsError(Point{x, y}, w, h))
	}
}

func checkBoundsIdx(i, w, h int) {
	if i < 0 || i >= w*h {
		x, y := idxToXY(i, w)
		panic(newBoundsError(Point{x, y}, w, h))
	}
}

// Iter calls fn once for every position of a GridView, in row-major order
// (y ascending, then x ascending within each row), with the value found at
// that position.
func Iter[T any](v GridView[T], fn func(Point, T)) {
	w, h := v.Width(), v.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := Point{x, y}
			fn(p, v.AtXY(x, y))
		}
	}
}

// Positions returns every position of a GridView in row-major order.
func Positions[T any](v GridView[T]) []Point {
	w, h := v.Width(), v.Height()
	pts := make([]Point, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pts = append(pts, Point{x, y})
		}
	}
	return pts
}
