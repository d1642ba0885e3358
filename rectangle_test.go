package gogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleCenter(t *testing.T) {
	r := NewRectangle(0, 0, 4, 4)
	assert.Equal(t, Point{1, 1}, r.Center())
	r = NewRectangle(10, 10, 5, 5)
	assert.Equal(t, Point{12, 12}, r.Center())
}

func TestRectangleContains(t *testing.T) {
	r := NewRectangle(1, 1, 3, 3)
	assert.True(t, r.Contains(Point{1, 1}))
	assert.True(t, r.Contains(Point{3, 3}))
	assert.False(t, r.Contains(Point{4, 1}))
	assert.False(t, r.Contains(Point{0, 1}))
}

func TestRectangleEmpty(t *testing.T) {
	r := NewRectangle(0, 0, -1, 5)
	assert.True(t, r.Empty())
	assert.False(t, r.Contains(Point{0, 0}))
}

func TestRectangleOverlapsUnion(t *testing.T) {
	a := NewRectangle(0, 0, 4, 4)
	b := NewRectangle(2, 2, 4, 4)
	assert.True(t, a.Overlaps(b))
	u := a.Union(b)
	assert.Equal(t, NewRectangle(0, 0, 6, 6), u)

	c := NewRectangle(10, 10, 2, 2)
	assert.False(t, a.Overlaps(c))
}

func TestRectangleContainsRectangle(t *testing.T) {
	outer := NewRectangle(0, 0, 20, 10)
	a := NewRectangle(1, 1, 4, 4)
	b := NewRectangle(15, 5, 4, 4)
	assert.True(t, outer.ContainsRectangle(a))
	assert.True(t, outer.ContainsRectangle(b))
	assert.False(t, a.ContainsRectangle(outer))
}

func TestRectanglePerimeter(t *testing.T) {
	r := NewRectangle(0, 0, 3, 3)
	var pts []Point
	r.Perimeter(func(p Point) { pts = append(pts, p) })
	// perimeter of a 3x3 square should visit every cell except the center
	assert.Len(t, pts, 8)
	for _, p := range pts {
		assert.NotEqual(t, Point{1, 1}, p)
	}
	seen := map[Point]bool{}
	for _, p := range pts {
		assert.False(t, seen[p], "perimeter visited %v twice", p)
		seen[p] = true
	}
}

func TestRectangleSidePositions(t *testing.T) {
	r := NewRectangle(0, 0, 3, 2)
	assert.Equal(t, []Point{{0, 0}, {1, 0}, {2, 0}}, r.SidePositions(SideTop))
	assert.Equal(t, []Point{{0, 1}, {1, 1}, {2, 1}}, r.SidePositions(SideBottom))
	assert.Equal(t, []Point{{0, 0}, {0, 1}}, r.SidePositions(SideLeft))
	assert.Equal(t, []Point{{2, 0}, {2, 1}}, r.SidePositions(SideRight))
}

func TestRectangleCorners(t *testing.T) {
	r := NewRectangle(0, 0, 4, 3)
	assert.Equal(t, [4]Point{{0, 0}, {3, 0}, {3, 2}, {0, 2}}, r.Corners())
}
