package mapgen

import "github.com/Chris3606/gogue"

// FindComponents enumerates the maximal connected components of true
// cells in grid under the adjacency implied by distance (4-way for
// Manhattan, 8-way otherwise, per gogue.DistanceMetric.Neighbors),
// returning one Area per component in the deterministic order their
// first cell is visited under a row-major (y ascending, x ascending)
// scan (spec §4.4).
//
// Grounded on the row-major-scan-plus-BFS-over-a-visited-bitset shape
// used for component discovery in graph libraries in the wider corpus,
// adapted here onto gogue.GridView[bool]/gogue.BitGrid instead of an
// explicit graph/edge-list representation.
func FindComponents(grid gogue.GridView[bool], distance gogue.DistanceMetric) []*Area {
	w, h := grid.Width(), grid.Height()
	visited, err := gogue.NewBitGrid(w, h)
	if err != nil {
		panic(err) // w, h come from an already-valid GridView; cannot fail
	}

	neighbors := distance.Neighbors()
	var components []*Area

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			origin := gogue.Point{X: x, Y: y}
			if !grid.At(origin) || visited.At(origin) {
				continue
			}

			area := NewArea()
			queue := []gogue.Point{origin}
			visited.Set(origin, true)

			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				area.Add(p)

				for _, d := range neighbors {
					q := p.To(d)
					if !q.In(grid.Bounds()) || visited.At(q) || !grid.At(q) {
						continue
					}
					visited.Set(q, true)
					queue = append(queue, q)
				}
			}
			components = append(components, area)
		}
	}
	return components
}
