package graph

import "fmt"

// JoinToNode returns a new graph where node names of concatenated edges are appended as parents of the named node
func JoinToNode(name string, concatenated []Edge, g Graph) (Graph, error) {
	idx := g.index(name)
	if idx == -1 {
		return nil, fmt.Errorf("failed to join to %v: %w", name, ErrNodeNotFound)
	}
	result := g.Clone()
	for _, edge := range concatenated {
		result[idx].ParentNodes = appendUnique(result[idx].ParentNodes, edge.NodeName)
	}
	return result, nil
}
