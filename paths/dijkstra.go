package paths

import "github.com/Chris3606/gogue"

// DijkstraNode is one entry of a computed Dijkstra map: a position and
// its minimal cost from the nearest source.
type DijkstraNode struct {
	Pos  gogue.Point
	Cost int
}

// DijkstraMap computes minimal costs from sources to every reachable
// position within maxCost, using neighbors(p) to expand a position and
// cost(a, b) for the edge weight from a to one of its neighbors b.
// Returns nodes in increasing cost order (adapted from the teacher's
// PathRange.DijkstraMap, generalized over an explicit cost function
// rather than a bespoke interface per caller).
func (f *Finder) DijkstraMap(sources []gogue.Point, maxCost int, neighbors func(gogue.Point) []gogue.Point, cost func(a, b gogue.Point) int) []DijkstraNode {
	f.newGeneration()
	pq := f.queue[:0]
	seq := 0

	for _, p := range sources {
		if !p.In(f.bounds) {
			continue
		}
		n := f.nodeAt(p)
		n.open = true
		n.seq = seq
		seq++
		pqPush(&pq, n)
	}

	var result []DijkstraNode
	for pq.Len() > 0 {
		n := pqPop(&pq)
		n.open = false
		n.closed = true
		result = append(result, DijkstraNode{Pos: n.pos, Cost: n.cost})

		for _, np := range neighbors(n.pos) {
			if !np.In(f.bounds) {
				continue
			}
			c := n.cost + cost(n.pos, np)
			nn := f.nodeAt(np)
			if c < nn.cost {
				if nn.open {
					pqRemove(&pq, nn.queueIndex)
				}
				nn.open = false
				nn.closed = false
			}
			if !nn.open && !nn.closed {
				nn.cost = c
				if c <= maxCost {
					nn.open = true
					nn.rank = c
					nn.seq = seq
					seq++
					pqPush(&pq, nn)
				}
			}
		}
	}
	f.queue = pq
	return result
}
