package graph

// Merge combines graphs into a single graph, parents of nodes present in more than one graph are unioned.
// Node and parent order follows first occurrence across graphs.
func Merge(graphs ...Graph) Graph {
	var result = Graph{}
	positions := map[string]int{}
	for _, g := range graphs {
		for _, edge := range g {
			if idx, ok := positions[edge.NodeName]; ok {
				result[idx].ParentNodes = appendUnique(result[idx].ParentNodes, edge.ParentNodes...)
				continue
			}
			positions[edge.NodeName] = len(result)
			result = append(result, NewEdge(edge.NodeName, edge.ParentNodes...))
		}
	}
	return result
}
