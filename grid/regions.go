package grid

// RegionLabels assigns every cell the number of its 8-connected walkable
// region, using the same adjacency as Neighbors. Regions are numbered from 0
// in row-major order of their first cell; blocked cells get -1. The result is
// indexed like Index.
//
// Time:   O(W·H·8).
// Memory: O(W·H).
func (g *Grid) RegionLabels() []int {
	labels := make([]int, len(g.cells))
	for i := range labels {
		labels[i] = -1
	}
	next := 0
	queue := make([]int, 0, len(g.cells))
	buf := make([]Coordinate, 0, len(neighborOffsets))
	for i, v := range g.cells {
		if labels[i] >= 0 || v == Blocked {
			continue
		}
		labels[i] = next
		queue = append(queue[:0], i)
		for qi := 0; qi < len(queue); qi++ {
			buf = g.AppendNeighbors(buf[:0], g.Coordinate(queue[qi]))
			for _, n := range buf {
				ni := g.Index(n)
				if labels[ni] < 0 {
					labels[ni] = next
					queue = append(queue, ni)
				}
			}
		}
		next++
	}

	return labels
}

// Regions groups the walkable cells by RegionLabels. Region i holds the
// cells labelled i, in row-major order.
func (g *Grid) Regions() [][]Coordinate {
	var regions [][]Coordinate
	for i, label := range g.RegionLabels() {
		if label < 0 {
			continue
		}
		if label == len(regions) {
			regions = append(regions, nil)
		}
		regions[label] = append(regions[label], g.Coordinate(i))
	}

	return regions
}

// Connected reports whether b can be reached from a by walking through
// non-blocked cells. It is false when either cell is blocked or out of bounds.
func (g *Grid) Connected(a, b Coordinate) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	labels := g.RegionLabels()
	la := labels[g.Index(a)]

	return la >= 0 && la == labels[g.Index(b)]
}
