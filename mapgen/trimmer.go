package mapgen

import "github.com/Chris3606/gogue"

// perpendicularCardinals maps each cardinal direction to the two
// cardinal directions orthogonal to its axis (N/S <-> E/W).
var perpendicularCardinals = map[gogue.Direction][2]gogue.Direction{
	gogue.N: {gogue.E, gogue.W},
	gogue.S: {gogue.E, gogue.W},
	gogue.E: {gogue.N, gogue.S},
	gogue.W: {gogue.N, gogue.S},
}

// DeadEndTrimmer repeatedly erases floor cells that have exactly one
// cardinal floor neighbor and are otherwise boxed in by the exact
// five-wall "U" pattern described in spec §4.8.
type DeadEndTrimmer struct {
	// SaveChance, 0-100, is the percent chance a detected dead end is
	// spared (added to a permanent saved set) rather than removed.
	SaveChance int
	// IterationCap bounds how many trim passes run per Area; -1 means
	// unbounded (run until no candidates remain).
	IterationCap int
	RNG          gogue.RNG
}

// Trim mutates grid and the given Areas in place, removing dead-end
// cells from both (spec §4.8). Returns the set of cells spared by the
// save-chance roll across all Areas and passes.
func (t DeadEndTrimmer) Trim(grid gogue.SettableGridView[bool], areas []*Area) map[gogue.Point]struct{} {
	saved := make(map[gogue.Point]struct{})
	for _, area := range areas {
		t.trimArea(grid, area, saved)
	}
	return saved
}

func (t DeadEndTrimmer) trimArea(grid gogue.SettableGridView[bool], area *Area, saved map[gogue.Point]struct{}) {
	for pass := 0; t.IterationCap < 0 || pass < t.IterationCap; pass++ {
		var candidates []gogue.Point
		area.Each(func(p gogue.Point) {
			if isDeadEnd(grid, p) {
				candidates = append(candidates, p)
			}
		})

		var remaining []gogue.Point
		for _, p := range candidates {
			if _, ok := saved[p]; ok {
				continue
			}
			remaining = append(remaining, p)
		}
		if len(remaining) == 0 {
			return
		}

		for _, p := range remaining {
			if t.RNG.Float64() < float64(t.SaveChance)/100.0 {
				saved[p] = struct{}{}
				continue
			}
			grid.Set(p, false)
			area.Remove(p)
		}
	}
}

// isDeadEnd reports whether p has exactly one cardinal floor neighbor D
// and the five cells in directions -D, -D+45, -D-45, and D's two
// perpendicular cardinals are all walls (spec §4.8).
func isDeadEnd(grid gogue.SettableGridView[bool], p gogue.Point) bool {
	var floorDir gogue.Direction
	floorCount := 0
	for _, d := range gogue.Cardinals {
		q := p.To(d)
		if q.In(grid.Bounds()) && grid.At(q) {
			floorCount++
			floorDir = d
		}
	}
	if floorCount != 1 {
		return false
	}

	opposite := floorDir.Opposite()
	diag1 := opposite.Clockwise()
	diag2 := opposite.CounterClockwise()
	perp := perpendicularCardinals[floorDir]

	for _, d := range []gogue.Direction{opposite, diag1, diag2, perp[0], perp[1]} {
		q := p.To(d)
		if q.In(grid.Bounds()) && grid.At(q) {
			return false // not a wall
		}
	}
	return true
}
