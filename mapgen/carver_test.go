package mapgen

import (
	"testing"

	"github.com/Chris3606/gogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectLineCarverOrthogonalJoinsEndpoints(t *testing.T) {
	g, err := gogue.NewDenseGrid[bool](10, 10)
	require.NoError(t, err)
	c := DirectLineCarver{Distance: gogue.Manhattan}
	c.Carve(g, gogue.Point{X: 1, Y: 1}, gogue.Point{X: 7, Y: 4})

	comps := FindComponents(g, gogue.Manhattan)
	require.Len(t, comps, 1)
	assert.True(t, comps[0].Contains(gogue.Point{X: 1, Y: 1}))
	assert.True(t, comps[0].Contains(gogue.Point{X: 7, Y: 4}))
}

func TestDirectLineCarverBresenhamJoinsEndpoints(t *testing.T) {
	g, err := gogue.NewDenseGrid[bool](10, 10)
	require.NoError(t, err)
	c := DirectLineCarver{Distance: gogue.Chebyshev}
	c.Carve(g, gogue.Point{X: 0, Y: 0}, gogue.Point{X: 9, Y: 5})

	comps := FindComponents(g, gogue.Chebyshev)
	require.Len(t, comps, 1)
	assert.True(t, comps[0].Contains(gogue.Point{X: 0, Y: 0}))
	assert.True(t, comps[0].Contains(gogue.Point{X: 9, Y: 5}))
}

func TestDirectLineCarverWidenVerticalStaysInBounds(t *testing.T) {
	g, err := gogue.NewDenseGrid[bool](3, 5)
	require.NoError(t, err)
	c := DirectLineCarver{Distance: gogue.Manhattan, WidenVertical: true}
	c.Carve(g, gogue.Point{X: 2, Y: 0}, gogue.Point{X: 2, Y: 4})
	assert.NotPanics(t, func() {
		gogue.Iter[bool](g, func(gogue.Point, bool) {})
	})
}

func TestLShapedCarverJoinsEndpoints(t *testing.T) {
	g, err := gogue.NewDenseGrid[bool](10, 10)
	require.NoError(t, err)
	c := LShapedCarver{Distance: gogue.Manhattan, RNG: gogue.NewRNG(42)}
	c.Carve(g, gogue.Point{X: 1, Y: 1}, gogue.Point{X: 8, Y: 8})

	comps := FindComponents(g, gogue.Manhattan)
	require.Len(t, comps, 1)
	assert.True(t, comps[0].Contains(gogue.Point{X: 1, Y: 1}))
	assert.True(t, comps[0].Contains(gogue.Point{X: 8, Y: 8}))
}
