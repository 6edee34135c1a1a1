package analyzer

import "sort"

// DetectCycles enumerates directed cycles in the graph via depth-first
// traversal with a recursion stack. When a neighbor is already on the stack,
// the slice of the current path from that neighbor's first occurrence to the
// current node is recorded as one cycle. This is not a minimal-cycle
// algorithm: the same underlying cycle can be recorded more than once when
// reached through different entry nodes, and that duplication is accepted;
// scoring bands only on the count. Each node enters the outer traversal at
// most once, so termination is guaranteed even on cyclic graphs.
func DetectCycles(g DependencyGraph) []Cycle {
	visited := make(map[string]bool, len(g))
	onPath := make(map[string]int)
	var path []string
	var cycles []Cycle

	var dfs func(node string)
	dfs = func(node string) {
		visited[node] = true
		onPath[node] = len(path)
		path = append(path, node)

		for _, next := range g[node] {
			if idx, ok := onPath[next]; ok {
				cycle := make(Cycle, len(path)-idx)
				copy(cycle, path[idx:])
				cycles = append(cycles, cycle)
				continue
			}
			if !visited[next] {
				dfs(next)
			}
		}

		path = path[:len(path)-1]
		delete(onPath, node)
	}

	for _, node := range sortedNodes(g) {
		if !visited[node] {
			dfs(node)
		}
	}
	return cycles
}

// sortedNodes returns the graph's node names in lexical order, giving the
// traversal (and therefore finding order) a deterministic starting sequence.
func sortedNodes(g DependencyGraph) []string {
	nodes := make([]string, 0, len(g))
	for node := range g {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}
