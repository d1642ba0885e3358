package gogue

// LambdaView is a GridView constructed from a callable. The callable is
// invoked on every access — there is no caching, so performance scales
// linearly with the cost of the callable per access (spec §4.1). Supplying
// a setter makes it a SettableGridView; without one, writes are not
// available (there is no SettableLambdaView type — Settable is checked at
// the call site via the optional setter).
type LambdaView[T any] struct {
	width, height int
	read          func(Point) T
	write         func(Point, T) // nil if read-only
}

var (
	_ GridView[int] = (*LambdaView[int])(nil)
)

// NewLambdaView returns a read-only GridView of the given dimensions that
// computes each cell by calling read.
func NewLambdaView[T any](width, height int, read func(Point) T) (*LambdaView[T], error) {
	if width < 0 || height < 0 {
		return nil, invalidDimensions(width, height)
	}
	return &LambdaView[T]{width: width, height: height, read: read}, nil
}

// NewSettableLambdaView returns a SettableGridView of the given dimensions
// backed by a read and a write callable. Fill and Clear are expressed in
// terms of write, applied to every position.
func NewSettableLambdaView[T any](width, height int, read func(Point) T, write func(Point, T)) (*LambdaView[T], error) {
	lv, err := NewLambdaView[T](width, height, read)
	if err != nil {
		return nil, err
	}
	lv.write = write
	return lv, nil
}

func (v *LambdaView[T]) Width() int  { return v.width }
func (v *LambdaView[T]) Height() int { return v.height }
func (v *LambdaView[T]) Count() int  { return v.width * v.height }

func (v *LambdaView[T]) Bounds() Rectangle {
	return NewRectangle(0, 0, v.width, v.height)
}

func (v *LambdaView[T]) At(p Point) T {
	checkBounds(p, v.width, v.height)
	return v.read(p)
}

func (v *LambdaView[T]) AtXY(x, y int) T {
	return v.At(Point{x, y})
}

func (v *LambdaView[T]) AtIdx(i int) T {
	checkBoundsIdx(i, v.width, v.height)
	x, y := idxToXY(i, v.width)
	return v.read(Point{x, y})
}

// Settable reports whether this view was constructed with a setter.
func (v *LambdaView[T]) Settable() bool {
	return v.write != nil
}

func (v *LambdaView[T]) Set(p Point, val T) {
	checkBounds(p, v.width, v.height)
	v.mustWrite()(p, val)
}

func (v *LambdaView[T]) SetXY(x, y int, val T) {
	v.Set(Point{x, y}, val)
}

func (v *LambdaView[T]) SetIdx(i int, val T) {
	checkBoundsIdx(i, v.width, v.height)
	x, y := idxToXY(i, v.width)
	v.mustWrite()(Point{x, y}, val)
}

// Fill calls the setter for every position with v. Panics if the view has
// no setter.
func (v *LambdaView[T]) Fill(val T) {
	w := v.mustWrite()
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			w(Point{x, y}, val)
		}
	}
}

// Clear fills every position with the zero value of T.
func (v *LambdaView[T]) Clear() {
	var zero T
	v.Fill(zero)
}

func (v *LambdaView[T]) mustWrite() func(Point, T) {
	if v.write == nil {
		panic("gogue: LambdaView has no setter; construct with NewSettableLambdaView")
	}
	return v.write
}
