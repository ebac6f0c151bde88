package graph

// RootNodes returns edges without parents
func RootNodes(g Graph) []Edge {
	var result []Edge
	for _, edge := range g {
		if edge.IsRoot() {
			result = append(result, edge)
		}
	}
	return result
}

// DisjointNodes returns root edges that are not referenced as a parent by any other edge
func DisjointNodes(g Graph) []Edge {
	referenced := map[string]bool{}
	for _, edge := range g {
		for _, parent := range edge.ParentNodes {
			referenced[parent] = true
		}
	}
	var result []Edge
	for _, edge := range g {
		if edge.IsRoot() && !referenced[edge.NodeName] {
			result = append(result, edge)
		}
	}
	return result
}
