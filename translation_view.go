package gogue

// TranslationView wraps a source GridView[U] and a total mapping
// (Point, U) -> T. Reads are deferred to the source and mapped on every
// access; the derived view shares the source's dimensions (spec §4.1).
//
// Supplying a reverse mapping whose composition with the forward mapping
// is the identity on the relevant value subset makes the view settable:
// writes translate T back to U and apply to the source (spec §4.1:
// "implementations must not silently drop information").
type TranslationView[T, U any] struct {
	src     GridView[U]
	forward func(Point, U) T
	reverse func(Point, T) U // nil if read-only
}

var _ GridView[int] = (*TranslationView[int, bool])(nil)

// NewTranslationView returns a read-only TranslationView over src.
func NewTranslationView[T, U any](src GridView[U], forward func(Point, U) T) *TranslationView[T, U] {
	return &TranslationView[T, U]{src: src, forward: forward}
}

// NewSettableTranslationView returns a TranslationView over a
// SettableGridView[U], made settable via reverse.
func NewSettableTranslationView[T, U any](src SettableGridView[U], forward func(Point, U) T, reverse func(Point, T) U) *TranslationView[T, U] {
	return &TranslationView[T, U]{src: src, forward: forward, reverse: reverse}
}

func (v *TranslationView[T, U]) Width() int  { return v.src.Width() }
func (v *TranslationView[T, U]) Height() int { return v.src.Height() }
func (v *TranslationView[T, U]) Count() int  { return v.src.Count() }

func (v *TranslationView[T, U]) Bounds() Rectangle {
	return v.src.Bounds()
}

func (v *TranslationView[T, U]) At(p Point) T {
	return v.forward(p, v.src.At(p))
}

func (v *TranslationView[T, U]) AtXY(x, y int) T {
	return v.forward(Point{x, y}, v.src.AtXY(x, y))
}

func (v *TranslationView[T, U]) AtIdx(i int) T {
	x, y := idxToXY(i, v.src.Width())
	return v.forward(Point{x, y}, v.src.AtIdx(i))
}

// Settable reports whether this view was constructed with a reverse
// mapping and therefore supports writes.
func (v *TranslationView[T, U]) Settable() bool {
	return v.reverse != nil
}

func (v *TranslationView[T, U]) settableSrc() SettableGridView[U] {
	s, ok := v.src.(SettableGridView[U])
	if !ok || v.reverse == nil {
		panic("gogue: TranslationView is not settable; construct with NewSettableTranslationView over a SettableGridView")
	}
	return s
}

func (v *TranslationView[T, U]) Set(p Point, val T) {
	v.settableSrc().Set(p, v.reverse(p, val))
}

func (v *TranslationView[T, U]) SetXY(x, y int, val T) {
	v.Set(Point{x, y}, val)
}

func (v *TranslationView[T, U]) SetIdx(i int, val T) {
	x, y := idxToXY(i, v.src.Width())
	v.Set(Point{x, y}, val)
}

func (v *TranslationView[T, U]) Fill(val T) {
	s := v.settableSrc()
	Iter[U](v.src, func(p Point, _ U) {
		s.Set(p, v.reverse(p, val))
	})
}

func (v *TranslationView[T, U]) Clear() {
	var zero T
	v.Fill(zero)
}
