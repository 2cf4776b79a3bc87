// File: bridge.go — the masked-edge reachability test gating the delete
// branch. Grounded on lvlath/dfs's traversal shape, specialised to a
// single source/target pair with one edge instance removed.
package spantree

// isBridge reports whether edge mask (one specific {i,j} instance, by
// position in edges) is a bridge: i.e. whether removing just that one
// edge instance (other parallel i-j edges, if any, are left in place)
// disconnects i from j.
func isBridge(edges []Edge, mask int, i, j int) bool {
	adj := make(map[int][]int, len(edges))
	for idx, e := range edges {
		if idx == mask {
			continue
		}
		adj[e.A] = append(adj[e.A], e.B)
		adj[e.B] = append(adj[e.B], e.A)
	}

	visited := map[int]bool{i: true}
	stack := []int{i}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if v == j {
			return false
		}
		for _, n := range adj[v] {
			if !visited[n] {
				visited[n] = true
				stack = append(stack, n)
			}
		}
	}
	return true
}
