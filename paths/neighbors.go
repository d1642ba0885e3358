package paths

import "github.com/Chris3606/gogue"

// GridNeighbors returns a neighbor function suitable for BreadthFirstMap,
// DijkstraMap, and AstarPath: it walks distance.Neighbors() (4-way for
// Manhattan, 8-way otherwise, per gogue.DistanceMetric) from a position,
// keeping only positions where passable reports true. A single reusable
// backing slice avoids an allocation per call (adapted from the
// teacher's cached-slice NeighborFinder).
func GridNeighbors(passable gogue.GridView[bool], distance gogue.DistanceMetric) func(gogue.Point) []gogue.Point {
	dirs := distance.Neighbors()
	buf := make([]gogue.Point, 0, len(dirs))
	return func(p gogue.Point) []gogue.Point {
		buf = buf[:0]
		for _, d := range dirs {
			np := p.To(d)
			if np.In(passable.Bounds()) && passable.At(np) {
				buf = append(buf, np)
			}
		}
		return buf
	}
}
