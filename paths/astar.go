package paths

import "github.com/Chris3606/gogue"

// AstarPath finds a minimal-cost path from `from` to `to`, inclusive of
// both endpoints, using neighbors(p) to expand a position, cost(a, b)
// for the edge weight, and estimate(p, to) as an admissible heuristic
// (never overestimating the true remaining cost). Returns nil if no path
// exists. Adapted from the teacher's beefsack/go-astar-derived A*,
// generalized over gogue.Point and explicit cost/estimate functions.
func (f *Finder) AstarPath(from, to gogue.Point, neighbors func(gogue.Point) []gogue.Point, cost func(a, b gogue.Point) int, estimate func(a, b gogue.Point) int) []gogue.Point {
	if !from.In(f.bounds) || !to.In(f.bounds) {
		return nil
	}

	f.newGeneration()
	pq := f.queue[:0]
	seq := 0

	fromNode := f.nodeAt(from)
	fromNode.open = true
	fromNode.seq = seq
	seq++
	pqPush(&pq, fromNode)

	for pq.Len() > 0 {
		current := pqPop(&pq)
		current.open = false
		current.closed = true

		if current.pos == to {
			var path []gogue.Point
			for n := current; ; {
				path = append(path, n.pos)
				if !n.hasParent {
					break
				}
				n, _ = f.touchedNode(n.parent)
			}
			reverse(path)
			f.queue = pq
			return path
		}

		for _, np := range neighbors(current.pos) {
			if !np.In(f.bounds) {
				continue
			}
			c := current.cost + cost(current.pos, np)
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
				nn.open = true
				nn.rank = c + estimate(np, to)
				nn.parent = current.pos
				nn.hasParent = true
				nn.seq = seq
				seq++
				pqPush(&pq, nn)
			}
		}
	}
	f.queue = pq
	return nil
}

func reverse(p []gogue.Point) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
