package gogue

// Viewport wraps a source GridView[T] and a Rectangle, exposing the
// rectangle's area as a grid in its own (0,0)-origin coordinate space: a
// local (x, y) position maps to src[(rect.X+x, rect.Y+y)] (spec §4.1).
//
// Two out-of-bounds policies are available for local positions outside
// [0, W) x [0, H), or whose mapped source position falls outside src:
// Strict (the default from NewViewport) panics with a *BoundsError, like
// every other GridView; Lenient (from NewLenientViewport) returns a
// configured default value instead (spec §3: "two variants").
//
// A Viewport never resizes: the source's dimensions are fixed for the
// lifetime of every view built over it (spec §9, Open Questions).
type Viewport[T any] struct {
	src     GridView[T]
	rect    Rectangle
	lenient bool
	def     T
}

var _ GridView[int] = (*Viewport[int])(nil)

// NewViewport returns a strict Viewport: local accesses outside the
// rectangle, or whose mapped position falls outside src, panic with
// *BoundsError.
func NewViewport[T any](src GridView[T], rect Rectangle) *Viewport[T] {
	return &Viewport[T]{src: src, rect: rect}
}

// NewLenientViewport returns a Viewport that returns def instead of
// panicking for any local position outside the rectangle or whose mapped
// source position is out of range.
func NewLenientViewport[T any](src GridView[T], rect Rectangle, def T) *Viewport[T] {
	return &Viewport[T]{src: src, rect: rect, lenient: true, def: def}
}

func (v *Viewport[T]) Width() int  { return v.rect.W }
func (v *Viewport[T]) Height() int { return v.rect.H }
func (v *Viewport[T]) Count() int  { return v.rect.W * v.rect.H }

func (v *Viewport[T]) Bounds() Rectangle {
	return NewRectangle(0, 0, v.rect.W, v.rect.H)
}

func (v *Viewport[T]) mapped(local Point) (Point, bool) {
	if local.X < 0 || local.X >= v.rect.W || local.Y < 0 || local.Y >= v.rect.H {
		return Point{}, false
	}
	src := Point{v.rect.X + local.X, v.rect.Y + local.Y}
	if src.X < 0 || src.X >= v.src.Width() || src.Y < 0 || src.Y >= v.src.Height() {
		return Point{}, false
	}
	return src, true
}

func (v *Viewport[T]) At(p Point) T {
	src, ok := v.mapped(p)
	if !ok {
		if v.lenient {
			return v.def
		}
		panic(newBoundsError(p, v.rect.W, v.rect.H))
	}
	return v.src.At(src)
}

func (v *Viewport[T]) AtXY(x, y int) T {
	return v.At(Point{x, y})
}

func (v *Viewport[T]) AtIdx(i int) T {
	x, y := idxToXY(i, v.rect.W)
	return v.At(Point{x, y})
}

func (v *Viewport[T]) settableSrc() SettableGridView[T] {
	s, ok := v.src.(SettableGridView[T])
	if !ok {
		panic("gogue: Viewport source is not settable")
	}
	return s
}

func (v *Viewport[T]) Set(p Point, val T) {
	src, ok := v.mapped(p)
	if !ok {
		if v.lenient {
			return
		}
		panic(newBoundsError(p, v.rect.W, v.rect.H))
	}
	v.settableSrc().Set(src, val)
}

func (v *Viewport[T]) SetXY(x, y int, val T) {
	v.Set(Point{x, y}, val)
}

func (v *Viewport[T]) SetIdx(i int, val T) {
	x, y := idxToXY(i, v.rect.W)
	v.Set(Point{x, y}, val)
}

func (v *Viewport[T]) Fill(val T) {
	s := v.settableSrc()
	for y := 0; y < v.rect.H; y++ {
		for x := 0; x < v.rect.W; x++ {
			if src, ok := v.mapped(Point{x, y}); ok {
				s.Set(src, val)
			}
		}
	}
}

func (v *Viewport[T]) Clear() {
	var zero T
	v.Fill(zero)
}
