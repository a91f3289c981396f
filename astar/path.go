package astar

// reconstruct walks parent links from idx back to the start node and returns
// the steps in start→idx order. Parents always precede their children in the
// arena, so the walk terminates.
func (e *Engine) reconstruct(idx int32) []Step {
	var path []Step
	for at := idx; at >= 0; at = e.nodes[at].Parent {
		path = append(path, e.nodes[at].step())
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
