package gogue

// DenseGrid is a SettableGridView backed by a flat owned slice of T, one
// element per cell. It is the general-purpose realization of a Grid View:
// suitable for any value type, at the cost of Width*Height*sizeof(T)
// memory (spec §3: "Dense array view — owns or borrows a linear array of
// T").
type DenseGrid[T any] struct {
	width, height int
	cells         []T
}

var (
	_ SettableGridView[int] = (*DenseGrid[int])(nil)
)

// NewDenseGrid returns a DenseGrid of the given dimensions, filled with the
// zero value of T. Negative width or height is an InvalidDimensions error.
func NewDenseGrid[T any](width, height int) (*DenseGrid[T], error) {
	if width < 0 || height < 0 {
		return nil, invalidDimensions(width, height)
	}
	return &DenseGrid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}, nil
}

// NewDenseGridFrom wraps an existing slice as a DenseGrid without copying.
// The slice must have exactly width*height elements; otherwise
// InvalidDimensions is returned. Ownership of the slice passes to the
// returned DenseGrid (spec §3: "Ownership of the backing storage ... is
// by-value; borrowed views do not extend the borrow beyond the lifetime of
// the source" — callers must not keep mutating cells through the original
// slice header concurrently with the grid).
func NewDenseGridFrom[T any](width, height int, cells []T) (*DenseGrid[T], error) {
	if width < 0 || height < 0 || len(cells) != width*height {
		return nil, invalidDimensions(width, height)
	}
	return &DenseGrid[T]{width: width, height: height, cells: cells}, nil
}

func (g *DenseGrid[T]) Width() int  { return g.width }
func (g *DenseGrid[T]) Height() int { return g.height }
func (g *DenseGrid[T]) Count() int  { return g.width * g.height }

func (g *DenseGrid[T]) Bounds() Rectangle {
	return NewRectangle(0, 0, g.width, g.height)
}

func (g *DenseGrid[T]) At(p Point) T {
	checkBounds(p, g.width, g.height)
	return g.cells[idx(p.X, p.Y, g.width)]
}

func (g *DenseGrid[T]) AtXY(x, y int) T {
	checkBoundsXY(x, y, g.width, g.height)
	return g.cells[idx(x, y, g.width)]
}

func (g *DenseGrid[T]) AtIdx(i int) T {
	checkBoundsIdx(i, g.width, g.height)
	return g.cells[i]
}

func (g *DenseGrid[T]) Set(p Point, v T) {
	checkBounds(p, g.width, g.height)
	g.cells[idx(p.X, p.Y, g.width)] = v
}

func (g *DenseGrid[T]) SetXY(x, y int, v T) {
	checkBoundsXY(x, y, g.width, g.height)
	g.cells[idx(x, y, g.width)] = v
}

func (g *DenseGrid[T]) SetIdx(i int, v T) {
	checkBoundsIdx(i, g.width, g.height)
	g.cells[i] = v
}

// Fill sets every cell to v.
func (g *DenseGrid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clear sets every cell to the zero value of T.
func (g *DenseGrid[T]) Clear() {
	var zero T
	g.Fill(zero)
}
