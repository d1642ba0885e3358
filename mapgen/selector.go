package mapgen

import (
	"github.com/Chris3606/gogue"
	"github.com/pkg/errors"
)

// ErrEmptyArea is returned by a selector asked to pick a point from an
// Area with no members (spec §8, error kind "EmptyArea").
var ErrEmptyArea = errors.New("mapgen: selector invoked on empty Area")

// Selector chooses one connection point from each of a pair of Areas
// (spec §4.5).
type Selector interface {
	Select(a, b *Area) (pa, pb gogue.Point, err error)
}

// RandomSelector picks a uniformly random point from each Area.
type RandomSelector struct {
	RNG gogue.RNG
}

func (s RandomSelector) Select(a, b *Area) (gogue.Point, gogue.Point, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return gogue.Point{}, gogue.Point{}, ErrEmptyArea
	}
	return a.RandomPoint(s.RNG), b.RandomPoint(s.RNG), nil
}

// ClosestSelector performs an exhaustive O(|A|*|B|) search for the pair
// minimizing Distance.Calculate, breaking ties by Area iteration order.
type ClosestSelector struct {
	Distance gogue.DistanceMetric
}

func (s ClosestSelector) Select(a, b *Area) (gogue.Point, gogue.Point, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return gogue.Point{}, gogue.Point{}, ErrEmptyArea
	}
	bestDist := -1.0
	var bestA, bestB gogue.Point
	aPoints, bPoints := a.Points(), b.Points()
	for _, pa := range aPoints {
		for _, pb := range bPoints {
			d := s.Distance.Calculate(pa, pb)
			if bestDist < 0 || d < bestDist {
				bestDist = d
				bestA, bestB = pa, pb
			}
		}
	}
	return bestA, bestB, nil
}

// CenterOfBoundsSelector returns each Area's bounding-rectangle center,
// without regard for whether that point lies inside the Area (spec
// §4.5: "the caller is responsible for recognizing that the center of a
// concave Area may be outside it").
type CenterOfBoundsSelector struct{}

func (s CenterOfBoundsSelector) Select(a, b *Area) (gogue.Point, gogue.Point, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return gogue.Point{}, gogue.Point{}, ErrEmptyArea
	}
	return a.Bounds().Center(), b.Bounds().Center(), nil
}
