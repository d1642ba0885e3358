package mapgen

import (
	"sort"
	"testing"

	"github.com/Chris3606/gogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFromRows builds a DenseGrid[bool] from a slice of equal-length
// strings where '#' is wall (false) and '.' is floor (true).
func gridFromRows(t *testing.T, rows []string) *gogue.DenseGrid[bool] {
	t.Helper()
	h := len(rows)
	w := len(rows[0])
	g, err := gogue.NewDenseGrid[bool](w, h)
	require.NoError(t, err)
	for y, row := range rows {
		for x, c := range row {
			g.Set(gogue.Point{X: x, Y: y}, c == '.')
		}
	}
	return g
}

func TestComponentFinderScenario(t *testing.T) {
	g := gridFromRows(t, []string{
		"#####",
		"#.#.#",
		"#..##",
		"#####",
	})

	fourWay := FindComponents(g, gogue.Manhattan)
	sizes := componentSizes(fourWay)
	assert.ElementsMatch(t, []int{1, 3}, sizes)

	eightWay := FindComponents(g, gogue.Chebyshev)
	sizes = componentSizes(eightWay)
	assert.Equal(t, []int{4}, sizes)
}

func TestComponentFinderAllFalseYieldsNone(t *testing.T) {
	g, err := gogue.NewDenseGrid[bool](4, 4)
	require.NoError(t, err)
	assert.Empty(t, FindComponents(g, gogue.Chebyshev))
}

func TestComponentFinderAllTrueYieldsOneComponent(t *testing.T) {
	g, err := gogue.NewDenseGrid[bool](4, 5)
	require.NoError(t, err)
	g.Fill(true)
	comps := FindComponents(g, gogue.Chebyshev)
	require.Len(t, comps, 1)
	assert.Equal(t, 20, comps[0].Len())
}

func TestComponentFinderAreasArePairwiseDisjointAndCoverGrid(t *testing.T) {
	g := gridFromRows(t, []string{
		"#####",
		"#.#.#",
		"#...#",
		"#####",
	})
	comps := FindComponents(g, gogue.Manhattan)

	seen := make(map[gogue.Point]bool)
	for _, c := range comps {
		c.Each(func(p gogue.Point) {
			assert.False(t, seen[p], "point %v claimed by more than one Area", p)
			seen[p] = true
		})
	}
	gogue.Iter[bool](g, func(p gogue.Point, v bool) {
		assert.Equal(t, v, seen[p])
	})
}

func componentSizes(areas []*Area) []int {
	out := make([]int, len(areas))
	for i, a := range areas {
		out[i] = a.Len()
	}
	sort.Ints(out)
	return out
}
