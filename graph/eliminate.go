package graph

import "fmt"

// RemoveNode returns a new graph without the named node, every edge that listed the node as a parent
// inherits the removed node's parents instead. Removing an absent node returns an unchanged copy.
func RemoveNode(name string, g Graph) (Graph, error) {
	removed, ok := g.Lookup(name)
	if !ok {
		return g.Clone(), nil
	}
	if removed.HasParent(name) {
		return nil, fmt.Errorf("failed to remove %v: %w", name, ErrCyclicGraph)
	}
	result := make(Graph, 0, len(g)-1)
	for _, edge := range g {
		if edge.NodeName == name {
			continue
		}
		parents := make([]string, 0, len(edge.ParentNodes))
		for _, parent := range edge.ParentNodes {
			if parent == name {
				parents = appendUnique(parents, removed.ParentNodes...)
				continue
			}
			parents = appendUnique(parents, parent)
		}
		if edge.HasParent(name) && contains(parents, edge.NodeName) {
			return nil, fmt.Errorf("failed to remove %v: %w through %v", name, ErrCyclicGraph, edge.NodeName)
		}
		result = append(result, Edge{NodeName: edge.NodeName, ParentNodes: parents})
	}
	return result, nil
}

// RemoveNodes removes all named nodes at once, each surviving edge has its parents resolved
// through removed nodes transitively. The result is set-equivalent to calling RemoveNode for each name.
// A surviving node that ends up as its own parent is reported as ErrCyclicGraph.
func RemoveNodes(names []string, g Graph) (Graph, error) {
	index := make(map[string][]string, len(g))
	for _, edge := range g {
		index[edge.NodeName] = edge.ParentNodes
	}
	removable := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := index[name]; ok {
			removable[name] = true
		}
	}
	r := &resolver{index: index, removable: removable, resolved: map[string][]string{}, visiting: map[string]bool{}}
	result := make(Graph, 0, len(g)-len(removable))
	for _, edge := range g {
		if removable[edge.NodeName] {
			if _, err := r.resolve(edge.NodeName); err != nil {
				return nil, err
			}
			continue
		}
		parents, err := r.expand(edge.ParentNodes)
		if err != nil {
			return nil, err
		}
		if contains(parents, edge.NodeName) {
			return nil, fmt.Errorf("failed to remove nodes: %w through %v", ErrCyclicGraph, edge.NodeName)
		}
		result = append(result, Edge{NodeName: edge.NodeName, ParentNodes: parents})
	}
	return result, nil
}

type resolver struct {
	index     map[string][]string
	removable map[string]bool
	resolved  map[string][]string
	visiting  map[string]bool
}

func (r *resolver) expand(parents []string) ([]string, error) {
	var result = []string{}
	for _, parent := range parents {
		if !r.removable[parent] {
			result = appendUnique(result, parent)
			continue
		}
		inherited, err := r.resolve(parent)
		if err != nil {
			return nil, err
		}
		result = appendUnique(result, inherited...)
	}
	return result, nil
}

// resolve returns the non removable ancestors the removed node stands for
func (r *resolver) resolve(name string) ([]string, error) {
	if parents, ok := r.resolved[name]; ok {
		return parents, nil
	}
	if r.visiting[name] {
		return nil, fmt.Errorf("failed to remove %v: %w", name, ErrCyclicGraph)
	}
	r.visiting[name] = true
	parents, err := r.expand(r.index[name])
	if err != nil {
		return nil, err
	}
	delete(r.visiting, name)
	r.resolved[name] = parents
	return parents, nil
}
