package paths

import "github.com/Chris3606/gogue"

// BreadthFirstMap computes, for every position reachable from sources
// within maxCost steps, the minimal number of steps to reach it, using
// neighbors(p) to expand each position. Unreached positions (including
// those outside the Finder's bounds) are absent from the result.
//
// This is a special case of DijkstraMap with a uniform edge cost of 1,
// kept separate because the uniform-cost case needs no priority queue —
// a plain index queue suffices and is materially cheaper (adapted from
// the teacher's index-queue breadth-first map).
func (f *Finder) BreadthFirstMap(sources []gogue.Point, maxCost int, neighbors func(gogue.Point) []gogue.Point) map[gogue.Point]int {
	f.ensureCache()
	n := f.size()
	if f.bfVisited == nil {
		f.bfVisited = make([]bool, n)
		f.bfQueue = make([]int, n)
		f.bfCost = make([]int, n)
	}
	for i := 0; i < n; i++ {
		f.bfVisited[i] = false
	}

	result := make(map[gogue.Point]int)
	var qstart, qend int

	for _, p := range sources {
		if !p.In(f.bounds) {
			continue
		}
		i := f.idx(p)
		if f.bfVisited[i] {
			continue
		}
		f.bfVisited[i] = true
		f.bfCost[i] = 0
		f.bfQueue[qend] = i
		qend++
		result[p] = 0
	}

	for qstart < qend {
		ci := f.bfQueue[qstart]
		qstart++
		ccost := f.bfCost[ci]
		if ccost == maxCost {
			continue
		}
		cpos := f.posAt(ci)
		for _, np := range neighbors(cpos) {
			if !np.In(f.bounds) {
				continue
			}
			ni := f.idx(np)
			if f.bfVisited[ni] {
				continue
			}
			f.bfVisited[ni] = true
			f.bfCost[ni] = ccost + 1
			f.bfQueue[qend] = ni
			qend++
			result[np] = ccost + 1
		}
	}
	return result
}

func (f *Finder) posAt(i int) gogue.Point {
	return gogue.Point{X: f.bounds.X + i%f.bounds.W, Y: f.bounds.Y + i/f.bounds.W}
}
