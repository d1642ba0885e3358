// Package paths provides supplementary pathfinding helpers (breadth-first,
// Dijkstra, and A* maps) over a gogue.Rectangle-bounded coordinate range,
// reusing the grid-algorithms package's Point and DistanceMetric types.
package paths

import "github.com/Chris3606/gogue"

// Finder computes breadth-first, Dijkstra, and A* maps within a fixed
// rectangle of positions. A single Finder amortizes its internal node
// cache across repeated calls instead of reallocating per call; reuse one
// per bounded area rather than constructing a fresh Finder each query.
type Finder struct {
	bounds gogue.Rectangle

	nodes   []pathNode
	nodeGen int
	queue   priorityQueue

	bfVisited []bool
	bfQueue   []int
	bfCost    []int
}

// NewFinder returns a Finder over all positions contained in bounds.
func NewFinder(bounds gogue.Rectangle) *Finder {
	return &Finder{bounds: bounds}
}

func (f *Finder) idx(p gogue.Point) int {
	return (p.Y-f.bounds.Y)*f.bounds.W + (p.X - f.bounds.X)
}

func (f *Finder) size() int { return f.bounds.W * f.bounds.H }

// pathNode is one position's bookkeeping in the node cache, tagged with
// the generation it was last touched in so a new map can be started
// without rezeroing the whole cache (spec §4.6/§4.7 neighbor algorithm
// idiom — amortized allocation across calls).
type pathNode struct {
	pos        gogue.Point
	cost       int
	rank       int
	parent     gogue.Point
	hasParent  bool
	open       bool
	closed     bool
	queueIndex int
	seq        int
	generation int
}

func (f *Finder) nodeAt(p gogue.Point) *pathNode {
	i := f.idx(p)
	n := &f.nodes[i]
	if n.generation != f.nodeGen {
		*n = pathNode{pos: p, generation: f.nodeGen}
	}
	return n
}

func (f *Finder) touchedNode(p gogue.Point) (*pathNode, bool) {
	i := f.idx(p)
	n := &f.nodes[i]
	if n.generation != f.nodeGen {
		return nil, false
	}
	return n, true
}

func (f *Finder) ensureCache() {
	if f.nodes == nil {
		f.nodes = make([]pathNode, f.size())
		f.queue = make(priorityQueue, 0, f.size())
	}
}

func (f *Finder) newGeneration() {
	f.ensureCache()
	f.nodeGen++
}
