package mapgen

import "github.com/Chris3606/gogue"

var sideOutward = map[gogue.Side]gogue.Point{
	gogue.SideTop:    {X: 0, Y: -1},
	gogue.SideRight:  {X: 1, Y: 0},
	gogue.SideBottom: {X: 0, Y: 1},
	gogue.SideLeft:   {X: -1, Y: 0},
}

var allSides = [4]gogue.Side{gogue.SideTop, gogue.SideRight, gogue.SideBottom, gogue.SideLeft}

// RoomDoors is the per-room result of RoomDoorConnector.PlaceDoors: the
// placed door positions grouped by the side they were cut into (spec
// §4.6, "Room-door connector").
type RoomDoors struct {
	Room  gogue.Rectangle
	Doors map[gogue.Side][]gogue.Point
}

// RoomDoorConnector cuts door openings into room perimeters, favoring
// sides that face open space and spacing doors apart on the side they
// land on (spec §4.6).
type RoomDoorConnector struct {
	// MaxSides caps how many of a room's four sides may receive doors;
	// excess valid sides are dropped at random.
	MaxSides int
	// MinSides is the floor below which a valid side is never dropped
	// by the probabilistic discard pass.
	MinSides int
	// DropProbability is the per-side chance (0..1) of discarding an
	// eligible side once more than MinSides remain valid.
	DropProbability float64
	// StopProbabilityStep is added to the chance of halting door
	// placement on a side after each door accepted on it.
	StopProbabilityStep float64
	RNG                 gogue.RNG
}

// PlaceDoors inspects every room's perimeter and cuts door openings into
// grid, returning the doors placed per room, grouped by side.
func (c RoomDoorConnector) PlaceDoors(grid gogue.SettableGridView[bool], rooms []gogue.Rectangle) []RoomDoors {
	results := make([]RoomDoors, 0, len(rooms))
	for _, room := range rooms {
		results = append(results, c.placeDoorsForRoom(grid, room))
	}
	return results
}

func (c RoomDoorConnector) placeDoorsForRoom(grid gogue.SettableGridView[bool], room gogue.Rectangle) RoomDoors {
	candidatesBySide := make(map[gogue.Side][]gogue.Point)
	var validSides []gogue.Side

	for _, side := range allSides {
		dir := sideOutward[side]
		var candidates []gogue.Point
		for _, pos := range room.SidePositions(side) {
			outward := gogue.Point{X: pos.X + 2*dir.X, Y: pos.Y + 2*dir.Y}
			if !outward.In(grid.Bounds()) || !pos.In(grid.Bounds()) {
				continue
			}
			if grid.At(outward) && !grid.At(pos) {
				candidates = append(candidates, pos)
			}
		}
		if len(candidates) > 0 {
			candidatesBySide[side] = candidates
			validSides = append(validSides, side)
		}
	}

	if c.MaxSides > 0 && len(validSides) > c.MaxSides {
		c.RNG.Shuffle(len(validSides), func(i, j int) { validSides[i], validSides[j] = validSides[j], validSides[i] })
		validSides = validSides[:c.MaxSides]
	}

	if len(validSides) > c.MinSides {
		c.RNG.Shuffle(len(validSides), func(i, j int) { validSides[i], validSides[j] = validSides[j], validSides[i] })
		validSides = c.dropExcessSides(validSides)
	}

	doors := make(map[gogue.Side][]gogue.Point)
	for _, side := range validSides {
		doors[side] = c.placeDoorsOnSide(grid, candidatesBySide[side])
	}
	return RoomDoors{Room: room, Doors: doors}
}

// dropExcessSides independently discards sides beyond MinSides with
// probability DropProbability, stopping once MinSides remain (spec
// §4.6).
func (c RoomDoorConnector) dropExcessSides(sides []gogue.Side) []gogue.Side {
	kept := make([]gogue.Side, 0, len(sides))
	for _, side := range sides {
		remainingAfter := len(sides) - len(kept) - 1 // sides left to consider after this one
		canAffordToDrop := len(kept)+remainingAfter >= c.MinSides
		if canAffordToDrop && c.RNG.Float64() < c.DropProbability {
			continue // discarded
		}
		kept = append(kept, side)
	}
	return kept
}

// placeDoorsOnSide iterates candidate cells in random order, accepting a
// cell as a door iff it has at least two orthogonal neighbors that are
// still walls (keeps openings from landing adjacent to each other), and
// increasingly likely to stop after each accepted door (spec §4.6).
func (c RoomDoorConnector) placeDoorsOnSide(grid gogue.SettableGridView[bool], candidates []gogue.Point) []gogue.Point {
	order := make([]gogue.Point, len(candidates))
	copy(order, candidates)
	c.RNG.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	var placed []gogue.Point
	stopProb := 0.0
	for _, cell := range order {
		if wallOrthogonalNeighbors(grid, cell) < 2 {
			continue
		}
		grid.Set(cell, true)
		placed = append(placed, cell)
		stopProb += c.StopProbabilityStep
		if c.RNG.Float64() < stopProb {
			break
		}
	}
	return placed
}

func wallOrthogonalNeighbors(grid gogue.SettableGridView[bool], p gogue.Point) int {
	count := 0
	for _, d := range gogue.Cardinals {
		q := p.To(d)
		if q.In(grid.Bounds()) && !grid.At(q) {
			count++
		}
	}
	return count
}
