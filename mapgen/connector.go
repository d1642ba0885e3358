package mapgen

import "github.com/Chris3606/gogue"

// Carver is the shape both DirectLineCarver and LShapedCarver satisfy:
// mutate grid so a path of true cells joins start and end.
type Carver interface {
	Carve(grid gogue.SettableGridView[bool], start, end gogue.Point)
}

// AreaConnector joins a set of Areas into a single connected whole by
// repeatedly selecting a connection point pair and carving a tunnel
// between them (spec §4.7).
type AreaConnector struct {
	Selector Selector
	Carver   Carver
}

// ConnectClosest runs closest-area mode: while more than one disjoint
// set of Areas remains, each Area is joined to its nearest neighbor (by
// bounds-center distance) not already in its set, until all Areas share
// one component. Guarantees global connectivity (spec §4.7).
func (c AreaConnector) ConnectClosest(grid gogue.SettableGridView[bool], areas []*Area, distance gogue.DistanceMetric) error {
	if len(areas) == 0 {
		return nil
	}
	ds := newDisjointSet(len(areas))
	centers := make([]gogue.Point, len(areas))
	for i, a := range areas {
		centers[i] = a.Bounds().Center()
	}

	for ds.numSets() > 1 {
		for i := range areas {
			j := -1
			best := -1.0
			for k := range areas {
				if ds.find(i) == ds.find(k) {
					continue
				}
				d := distance.Calculate(centers[i], centers[k])
				if best < 0 || d < best {
					best = d
					j = k
				}
			}
			if j < 0 {
				continue // i's set already merged with everything found so far
			}
			pa, pb, err := c.Selector.Select(areas[i], areas[j])
			if err != nil {
				return err
			}
			c.Carver.Carve(grid, pa, pb)
			ds.union(i, j)
		}
	}
	return nil
}

// ConnectOrdered runs ordered mode: walks the given Area sequence and
// connects each Area to its predecessor, producing a linear connectivity
// spine (spec §4.7). Shuffle areas beforehand for a random order.
func (c AreaConnector) ConnectOrdered(grid gogue.SettableGridView[bool], areas []*Area) error {
	for i := 1; i < len(areas); i++ {
		pa, pb, err := c.Selector.Select(areas[i-1], areas[i])
		if err != nil {
			return err
		}
		c.Carver.Carve(grid, pa, pb)
	}
	return nil
}

// disjointSet is a union-find over Area indices, used to track which
// Areas already share a connected component during closest-area mode.
type disjointSet struct {
	parent []int
	rank   []int
	sets   int
}

func newDisjointSet(n int) *disjointSet {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &disjointSet{parent: parent, rank: make([]int, n), sets: n}
}

func (d *disjointSet) find(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}
	return i
}

func (d *disjointSet) union(i, j int) {
	ri, rj := d.find(i), d.find(j)
	if ri == rj {
		return
	}
	if d.rank[ri] < d.rank[rj] {
		ri, rj = rj, ri
	}
	d.parent[rj] = ri
	if d.rank[ri] == d.rank[rj] {
		d.rank[ri]++
	}
	d.sets--
}

func (d *disjointSet) numSets() int { return d.sets }
