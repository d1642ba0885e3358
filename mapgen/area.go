// Package mapgen implements the map-generation connectivity kernel: a
// connected-component finder, connection-point selectors, tunnel carvers,
// an area connector, and a dead-end trimmer, all operating over
// gogue.GridView[bool] (true = floor/passable).
package mapgen

import (
	"github.com/Chris3606/gogue"
)

// Area is a mutable, unordered set of Points with O(1) membership and a
// lazily recomputed bounding rectangle (spec §4.3). The zero value is not
// usable; construct with NewArea.
type Area struct {
	members    map[gogue.Point]struct{}
	boundsOK   bool
	cachedRect gogue.Rectangle
}

// NewArea returns an empty Area.
func NewArea() *Area {
	return &Area{members: make(map[gogue.Point]struct{})}
}

// NewAreaFrom returns an Area containing exactly the given points,
// deduplicated.
func NewAreaFrom(points ...gogue.Point) *Area {
	a := NewArea()
	a.Add(points...)
	return a
}

// Len returns the number of distinct points in the Area.
func (a *Area) Len() int { return len(a.members) }

// Contains reports whether p is a member.
func (a *Area) Contains(p gogue.Point) bool {
	_, ok := a.members[p]
	return ok
}

// Add inserts one or more points. Duplicates, including points already
// present, are a no-op for that point.
func (a *Area) Add(points ...gogue.Point) {
	if len(points) == 0 {
		return
	}
	for _, p := range points {
		a.members[p] = struct{}{}
	}
	a.boundsOK = false
}

// Remove deletes one or more points. Removing a non-member is a no-op.
func (a *Area) Remove(points ...gogue.Point) {
	if len(points) == 0 {
		return
	}
	for _, p := range points {
		delete(a.members, p)
	}
	a.boundsOK = false
}

// Points returns a snapshot slice of all member points in unspecified
// order.
func (a *Area) Points() []gogue.Point {
	out := make([]gogue.Point, 0, len(a.members))
	for p := range a.members {
		out = append(out, p)
	}
	return out
}

// Each calls fn for every member point, in unspecified order.
func (a *Area) Each(fn func(gogue.Point)) {
	for p := range a.members {
		fn(p)
	}
}

// RandomPoint returns a uniformly chosen member point using rng. Panics
// if the Area is empty, mirroring the standard library's convention for
// operating on an empty collection without a meaningful result.
func (a *Area) RandomPoint(rng gogue.RNG) gogue.Point {
	if len(a.members) == 0 {
		panic("mapgen: RandomPoint on empty Area")
	}
	n := rng.Intn(len(a.members))
	i := 0
	for p := range a.members {
		if i == n {
			return p
		}
		i++
	}
	panic("unreachable")
}

// Bounds returns the tightest rectangle enclosing every member point, or
// the empty Rectangle if the Area has none (spec §4.3, "Bounds
// invariant"). The result is cached and only recomputed after a mutation.
func (a *Area) Bounds() gogue.Rectangle {
	if a.boundsOK {
		return a.cachedRect
	}
	a.cachedRect = a.recomputeBounds()
	a.boundsOK = true
	return a.cachedRect
}

func (a *Area) recomputeBounds() gogue.Rectangle {
	if len(a.members) == 0 {
		return gogue.Rectangle{}
	}
	first := true
	var minX, minY, maxX, maxY int
	for p := range a.members {
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
			continue
		}
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return gogue.NewRectangle(minX, minY, maxX-minX+1, maxY-minY+1)
}
