package mapgen

import (
	"testing"

	"github.com/Chris3606/gogue"
	"github.com/stretchr/testify/assert"
)

func TestAreaAddDeduplicatesAndTracksBounds(t *testing.T) {
	a := NewArea()
	assert.Equal(t, gogue.Rectangle{}, a.Bounds())

	a.Add(gogue.Point{X: 1, Y: 1}, gogue.Point{X: 1, Y: 1}, gogue.Point{X: 4, Y: 3})
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, gogue.NewRectangle(1, 1, 4, 3), a.Bounds())
}

func TestAreaRemoveNonMemberIsNoop(t *testing.T) {
	a := NewAreaFrom(gogue.Point{X: 0, Y: 0})
	a.Remove(gogue.Point{X: 9, Y: 9})
	assert.Equal(t, 1, a.Len())
	assert.True(t, a.Contains(gogue.Point{X: 0, Y: 0}))
}

func TestAreaBoundsEmptyIffAreaEmpty(t *testing.T) {
	a := NewAreaFrom(gogue.Point{X: 2, Y: 2})
	a.Remove(gogue.Point{X: 2, Y: 2})
	assert.True(t, a.Bounds().Empty())
}

func TestAreaRandomPointIsAMember(t *testing.T) {
	a := NewAreaFrom(gogue.Point{X: 0, Y: 0}, gogue.Point{X: 1, Y: 1}, gogue.Point{X: 2, Y: 2})
	rng := gogue.NewRNG(7)
	for i := 0; i < 10; i++ {
		assert.True(t, a.Contains(a.RandomPoint(rng)))
	}
}
