package temporal

// IsConnected reports whether the graph is connected when every edge is
// considered present regardless of its timestamps (the any-time neighbor
// union). Empty graphs and single-vertex graphs are connected; isolated
// vertices in a larger graph make it disconnected.
func (g *Graph) IsConnected() bool {
	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return true
	}
	if g.EdgeCount() == 0 {
		return false
	}

	start := vertices[0]
	visited := map[VertexID]struct{}{start: {}}
	queue := []VertexID{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g.AllNeighbors(current) {
			if _, seen := visited[neighbor]; seen {
				continue
			}
			visited[neighbor] = struct{}{}
			queue = append(queue, neighbor)
		}
	}

	return len(visited) == len(vertices)
}
