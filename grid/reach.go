package grid

// neighborOffsets is the 4-directional connectivity used throughout:
// a path step moves N, E, S, W, or stays in place.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Distances computes BFS distances (number of moves) from the given
// position to every free cell, honoring obstacles and 4-connectivity.
// Returns a row-major slice with −1 for unreachable or obstacle cells.
// A BFS from an obstacle or out-of-bounds position yields all −1.
//
// Time:   O(W·H).
// Memory: O(W·H) for distances and the queue.
func (g *Grid) Distances(from Position) []int {
	total := g.Width * g.Height
	dist := make([]int, total)
	for i := range dist {
		dist[i] = -1
	}
	if !g.InBounds(from) || g.IsObstacle(from) {
		return dist
	}

	start := g.index(from)
	dist[start] = 0
	queue := []int{start}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		up := g.coordinate(u)
		for _, d := range neighborOffsets {
			vp := Position{X: up.X + d[0], Y: up.Y + d[1]}
			if !g.InBounds(vp) || g.IsObstacle(vp) {
				continue
			}
			vi := g.index(vp)
			if dist[vi] == -1 {
				dist[vi] = dist[u] + 1
				queue = append(queue, vi)
			}
		}
	}

	return dist
}

// MinSteps returns the minimal number of moves from Start to Destination
// and whether the destination is reachable at all. Because a path may wait
// in place, a fixed-endpoint horizon T is feasible exactly when
// MinSteps ≤ T−1.
//
// Time: O(W·H).
func (g *Grid) MinSteps() (int, bool) {
	dist := g.Distances(g.Start())
	d := dist[g.index(g.Destination())]
	if d < 0 {
		return 0, false
	}

	return d, true
}
