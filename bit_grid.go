package gogue

import "math/bits"

const wordBits = 64

// BitGrid is a SettableGridView[bool] backed by a packed array of uint64
// words, one bit per cell (spec §3: "Bit-packed view — boolean view backed
// by a bit array; 1 bit per cell"). It is the storage used for the
// boolean-primary FOV result and for component-finder visited sets, where
// a full byte (or machine word) per cell would be wasteful.
type BitGrid struct {
	width, height int
	words         []uint64
}

var _ SettableGridView[bool] = (*BitGrid)(nil)

// NewBitGrid returns a BitGrid of the given dimensions, with every bit
// initially false.
func NewBitGrid(width, height int) (*BitGrid, error) {
	if width < 0 || height < 0 {
		return nil, invalidDimensions(width, height)
	}
	n := width * height
	return &BitGrid{
		width:  width,
		height: height,
		words:  make([]uint64, (n+wordBits-1)/wordBits),
	}, nil
}

func (g *BitGrid) Width() int  { return g.width }
func (g *BitGrid) Height() int { return g.height }
func (g *BitGrid) Count() int  { return g.width * g.height }

func (g *BitGrid) Bounds() Rectangle {
	return NewRectangle(0, 0, g.width, g.height)
}

func (g *BitGrid) At(p Point) bool {
	checkBounds(p, g.width, g.height)
	return g.bitAt(idx(p.X, p.Y, g.width))
}

func (g *BitGrid) AtXY(x, y int) bool {
	checkBoundsXY(x, y, g.width, g.height)
	return g.bitAt(idx(x, y, g.width))
}

func (g *BitGrid) AtIdx(i int) bool {
	checkBoundsIdx(i, g.width, g.height)
	return g.bitAt(i)
}

func (g *BitGrid) Set(p Point, v bool) {
	checkBounds(p, g.width, g.height)
	g.setBit(idx(p.X, p.Y, g.width), v)
}

func (g *BitGrid) SetXY(x, y int, v bool) {
	checkBoundsXY(x, y, g.width, g.height)
	g.setBit(idx(x, y, g.width), v)
}

func (g *BitGrid) SetIdx(i int, v bool) {
	checkBoundsIdx(i, g.width, g.height)
	g.setBit(i, v)
}

// Fill sets every cell to v.
func (g *BitGrid) Fill(v bool) {
	var w uint64
	if v {
		w = ^uint64(0)
	}
	for i := range g.words {
		g.words[i] = w
	}
}

// Clear sets every cell to false.
func (g *BitGrid) Clear() {
	g.Fill(false)
}

// Count1 returns the number of true bits currently set.
func (g *BitGrid) Count1() int {
	n := 0
	for _, w := range g.words {
		n += bits.OnesCount64(w)
	}
	return n
}

func (g *BitGrid) bitAt(i int) bool {
	return g.words[i/wordBits]&(uint64(1)<<(uint(i)%wordBits)) != 0
}

func (g *BitGrid) setBit(i int, v bool) {
	word := i / wordBits
	mask := uint64(1) << (uint(i) % wordBits)
	if v {
		g.words[word] |= mask
	} else {
		g.words[word] &^= mask
	}
}
