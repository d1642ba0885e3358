package fov

import (
	"testing"

	"github.com/Chris3606/gogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allOpen(t *testing.T, w, h int) *gogue.DenseGrid[bool] {
	t.Helper()
	g, err := gogue.NewDenseGrid[bool](w, h)
	require.NoError(t, err)
	g.Fill(true)
	return g
}

func TestAllOpenGridSeesEveryCell(t *testing.T) {
	g := allOpen(t, 11, 11)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)

	require.NoError(t, f.Calculate(gogue.Point{X: 5, Y: 5}, 10, gogue.Chebyshev))

	assert.Equal(t, 121, len(f.CurrentFOV()))
	gogue.Iter[bool](g, func(p gogue.Point, _ bool) {
		assert.True(t, f.BooleanResult().At(p), "expected %v visible", p)
	})
}

func TestWallCastsShadow(t *testing.T) {
	g := allOpen(t, 11, 11)
	g.Set(gogue.Point{X: 5, Y: 5}, false)

	f, err := NewScalarPrimary(g)
	require.NoError(t, err)
	require.NoError(t, f.Calculate(gogue.Point{X: 4, Y: 5}, 10, gogue.Chebyshev))

	assert.Equal(t, 1.0, f.ScalarResult().At(gogue.Point{X: 4, Y: 5}))
	assert.Equal(t, 0.0, f.ScalarResult().At(gogue.Point{X: 6, Y: 5}))
	assert.False(t, f.BooleanResult().At(gogue.Point{X: 6, Y: 5}))
}

func TestCalculateAppendAccumulatesAndTracksDeltas(t *testing.T) {
	g := allOpen(t, 11, 11)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)

	require.NoError(t, f.CalculateAppend(gogue.Point{X: 2, Y: 5}, 3, gogue.Chebyshev))
	firstFOV := make(map[gogue.Point]struct{}, len(f.CurrentFOV()))
	for p := range f.CurrentFOV() {
		firstFOV[p] = struct{}{}
	}

	require.NoError(t, f.CalculateAppend(gogue.Point{X: 8, Y: 5}, 3, gogue.Chebyshev))

	assert.Equal(t, 2, len(f.Calculations()))

	second, err2 := NewBooleanPrimary(g)
	require.NoError(t, err2)
	require.NoError(t, second.Calculate(gogue.Point{X: 8, Y: 5}, 3, gogue.Chebyshev))

	var expectedNewlySeen []gogue.Point
	for p := range second.CurrentFOV() {
		if _, ok := firstFOV[p]; !ok {
			expectedNewlySeen = append(expectedNewlySeen, p)
		}
	}
	assert.ElementsMatch(t, expectedNewlySeen, f.NewlySeen())
}

func TestResetClearsStateAndFiresCallback(t *testing.T) {
	g := allOpen(t, 5, 5)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	require.NoError(t, f.Calculate(gogue.Point{X: 2, Y: 2}, 2, gogue.Chebyshev))

	fired := false
	f.OnVisibilityReset(func() { fired = true })
	f.Reset()

	assert.True(t, fired)
	assert.Empty(t, f.CurrentFOV())
	assert.Empty(t, f.Calculations())
	gogue.Iter[bool](g, func(p gogue.Point, _ bool) {
		assert.False(t, f.BooleanResult().At(p))
	})
}

func TestResetTwiceEqualsOnce(t *testing.T) {
	g := allOpen(t, 7, 7)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	require.NoError(t, f.Calculate(gogue.Point{X: 3, Y: 3}, 2, gogue.Chebyshev))
	f.Reset()
	firstNewlyUnseen := append([]gogue.Point(nil), f.NewlyUnseen()...)
	f.Reset()
	assert.ElementsMatch(t, firstNewlyUnseen, f.NewlyUnseen())
	assert.Empty(t, f.CurrentFOV())
}

func TestOriginAlwaysInCurrentFOV(t *testing.T) {
	g := allOpen(t, 9, 9)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	origin := gogue.Point{X: 4, Y: 4}
	require.NoError(t, f.Calculate(origin, 3, gogue.Euclidean))
	_, ok := f.CurrentFOV()[origin]
	assert.True(t, ok)
}

func TestScalarResultDecaysForBooleanPrimary(t *testing.T) {
	g := allOpen(t, 21, 21)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	origin := gogue.Point{X: 10, Y: 10}
	require.NoError(t, f.Calculate(origin, 10, gogue.Chebyshev))

	near := f.ScalarResult().At(gogue.Point{X: 11, Y: 10})
	far := f.ScalarResult().At(gogue.Point{X: 19, Y: 10})
	assert.Equal(t, 1.0, f.ScalarResult().At(origin))
	assert.Less(t, far, near, "level should decrease with distance from origin even for BooleanPrimary")
	assert.Greater(t, far, 0.0)
}

func TestScalarResultUsesCalculationMetric(t *testing.T) {
	g := allOpen(t, 25, 25)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	origin := gogue.Point{X: 12, Y: 12}
	require.NoError(t, f.Calculate(origin, 10, gogue.Chebyshev))

	p := gogue.Point{X: 15, Y: 15}
	want := 1.0 - gogue.Chebyshev.Calculate(gogue.Point{}, gogue.Point{X: 3, Y: 3})/11.0
	assert.InDelta(t, want, f.ScalarResult().At(p), 1e-9)
}

func TestBooleanAndScalarResultsAgree(t *testing.T) {
	g := allOpen(t, 9, 9)
	g.Set(gogue.Point{X: 4, Y: 3}, false)

	bf, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	require.NoError(t, bf.Calculate(gogue.Point{X: 4, Y: 4}, 4, gogue.Chebyshev))

	gogue.Iter[bool](g, func(p gogue.Point, _ bool) {
		assert.Equal(t, bf.BooleanResult().At(p), bf.ScalarResult().At(p) > 0)
	})
}

func TestOriginOutOfBoundsErrors(t *testing.T) {
	g := allOpen(t, 5, 5)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	err = f.Calculate(gogue.Point{X: 10, Y: 10}, 3, gogue.Chebyshev)
	assert.ErrorIs(t, err, gogue.ErrOutOfBounds)
}

func TestRadiusBelowOneIsClamped(t *testing.T) {
	g := allOpen(t, 5, 5)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	require.NoError(t, f.Calculate(gogue.Point{X: 2, Y: 2}, 0, gogue.Chebyshev))
	assert.Equal(t, 1.0, f.Calculations()[0].Radius)
}

// TestFOVConeConvention pins the chosen compass-to-raw-angle convention
// (0 degrees = north/up, clockwise): a cone pointed due north with a
// narrow span sees the cell directly above the origin but not the cell
// directly to its east.
func TestFOVConeConvention(t *testing.T) {
	g := allOpen(t, 11, 11)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	origin := gogue.Point{X: 5, Y: 5}
	require.NoError(t, f.CalculateCone(origin, 4, gogue.Chebyshev, 0, 30))

	assert.True(t, f.BooleanResult().At(gogue.Point{X: 5, Y: 2}), "north of origin should be visible")
	assert.False(t, f.BooleanResult().At(gogue.Point{X: 8, Y: 5}), "east of origin should be outside a narrow north cone")
}

func TestInvalidSpanErrors(t *testing.T) {
	g := allOpen(t, 5, 5)
	f, err := NewBooleanPrimary(g)
	require.NoError(t, err)
	err = f.CalculateCone(gogue.Point{X: 2, Y: 2}, 3, gogue.Chebyshev, 0, 400)
	assert.ErrorIs(t, err, gogue.ErrInvalidParameter)
}
