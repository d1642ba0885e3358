package mapgen

import (
	"testing"

	"github.com/Chris3606/gogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTCorridor lays floor at (1,1)..(1,5) and (2,3)..(5,3), a T lying
// on its side (an arm running east from the middle of a vertical bar), on
// an otherwise all-wall grid (spec scenario 5).
func buildTCorridor(t *testing.T) (*gogue.DenseGrid[bool], *Area) {
	t.Helper()
	g, err := gogue.NewDenseGrid[bool](8, 8)
	require.NoError(t, err)
	area := NewArea()
	for y := 1; y <= 5; y++ {
		p := gogue.Point{X: 1, Y: y}
		g.Set(p, true)
		area.Add(p)
	}
	for x := 2; x <= 5; x++ {
		p := gogue.Point{X: x, Y: 3}
		g.Set(p, true)
		area.Add(p)
	}
	return g, area
}

func TestDeadEndTrimmerScenario(t *testing.T) {
	g, area := buildTCorridor(t)
	trimmer := DeadEndTrimmer{SaveChance: 0, IterationCap: -1, RNG: gogue.NewRNG(1)}
	trimmer.Trim(g, []*Area{area})

	area.Each(func(p gogue.Point) {
		assert.False(t, isDeadEnd(g, p), "no remaining cell should satisfy the dead-end predicate: %v", p)
	})
}

func TestDeadEndTrimmerSaveChanceHundredKeepsEverything(t *testing.T) {
	g, area := buildTCorridor(t)
	before := area.Len()
	trimmer := DeadEndTrimmer{SaveChance: 100, IterationCap: -1, RNG: gogue.NewRNG(1)}
	trimmer.Trim(g, []*Area{area})
	assert.Equal(t, before, area.Len())
}

func TestIsDeadEndDetectsSingleFloorNeighborWithWallU(t *testing.T) {
	g, err := gogue.NewDenseGrid[bool](5, 5)
	require.NoError(t, err)
	g.Set(gogue.Point{X: 2, Y: 2}, true)
	g.Set(gogue.Point{X: 2, Y: 1}, true) // only floor neighbor: north
	assert.True(t, isDeadEnd(g, gogue.Point{X: 2, Y: 2}))
}

func TestIsDeadEndFalseWithTwoFloorNeighbors(t *testing.T) {
	g, err := gogue.NewDenseGrid[bool](5, 5)
	require.NoError(t, err)
	g.Set(gogue.Point{X: 2, Y: 2}, true)
	g.Set(gogue.Point{X: 2, Y: 1}, true)
	g.Set(gogue.Point{X: 3, Y: 2}, true)
	assert.False(t, isDeadEnd(g, gogue.Point{X: 2, Y: 2}))
}
