package analyzer

// Depths computes, for every node, the length in edges of the longest
// acyclic import chain starting at that node. A node with no outgoing edges
// has depth 0.
//
// Rather than re-exploring shared subgraphs with per-branch visited sets
// (exponential in branching graphs), this condenses the graph into strongly
// connected components with Tarjan's algorithm and memoizes the longest path
// over the component DAG, which is O(V+E). A node inside a cycle is assigned
// depth through its component: the component's internal chain plus the
// longest chain leaving it.
func Depths(g DependencyGraph) map[string]int {
	comps, compOf := tarjanSCC(g)

	// Component sizes and deduplicated inter-component edges. Tarjan emits
	// components in reverse topological order, so every edge from comps[i]
	// points at some comps[j] with j < i and a single forward pass suffices.
	compDepth := make([]int, len(comps))
	for i, comp := range comps {
		internal := len(comp) - 1
		best := 0
		seen := make(map[int]bool)
		for _, node := range comp {
			for _, next := range g[node] {
				j, ok := compOf[next]
				if !ok || j == i || seen[j] {
					continue
				}
				seen[j] = true
				if d := 1 + compDepth[j]; d > best {
					best = d
				}
			}
		}
		compDepth[i] = internal + best
	}

	depths := make(map[string]int, len(g))
	for node := range g {
		depths[node] = compDepth[compOf[node]]
	}
	return depths
}

// tarjanSCC returns the strongly connected components of g in reverse
// topological order, plus each node's component index. All nodes are
// covered, including those with no outgoing edges.
func tarjanSCC(g DependencyGraph) ([][]string, map[string]int) {
	index := 0
	indices := make(map[string]int, len(g))
	lowlinks := make(map[string]int, len(g))
	onStack := make(map[string]bool, len(g))
	var stack []string
	var comps [][]string
	compOf := make(map[string]int, len(g))

	var strongConnect func(v string)
	strongConnect = func(v string) {
		indices[v] = index
		lowlinks[v] = index
		index++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range g[v] {
			if _, seen := indices[w]; !seen {
				strongConnect(w)
				if lowlinks[w] < lowlinks[v] {
					lowlinks[v] = lowlinks[w]
				}
			} else if onStack[w] {
				if indices[w] < lowlinks[v] {
					lowlinks[v] = indices[w]
				}
			}
		}

		if lowlinks[v] == indices[v] {
			var comp []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				compOf[w] = len(comps)
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			comps = append(comps, comp)
		}
	}

	for _, v := range sortedNodes(g) {
		if _, seen := indices[v]; !seen {
			strongConnect(v)
		}
	}
	return comps, compOf
}
