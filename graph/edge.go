package graph

import (
	"sort"
)

// Edge represents a node and its direct parents
type Edge struct {
	NodeName    string   `json:"node_name" yaml:"node_name"`
	ParentNodes []string `json:"parent_nodes" yaml:"parent_nodes"`
}

// NewEdge creates an edge, parent names are deduplicated in first-seen order
func NewEdge(nodeName string, parentNodes ...string) Edge {
	return Edge{NodeName: nodeName, ParentNodes: appendUnique([]string{}, parentNodes...)}
}

// IsRoot returns true if edge has no parents
func (e Edge) IsRoot() bool {
	return len(e.ParentNodes) == 0
}

// HasParent returns true if name is one of edge parents
func (e Edge) HasParent(name string) bool {
	for _, parent := range e.ParentNodes {
		if parent == name {
			return true
		}
	}
	return false
}

// Clone creates a copy of the edge with its own parent slice
func (e Edge) Clone() Edge {
	return Edge{NodeName: e.NodeName, ParentNodes: append([]string{}, e.ParentNodes...)}
}

// Graph represents a directed graph as a collection of edges, for each edge there is an arc parent -> node
type Graph []Edge

// New creates a graph from edges, edges sharing a node name are combined
func New(edges ...Edge) Graph {
	result := make(Graph, 0, len(edges))
	for _, edge := range edges {
		result = result.Insert(edge)
	}
	return result
}

func (g Graph) index(name string) int {
	for i := range g {
		if g[i].NodeName == name {
			return i
		}
	}
	return -1
}

// Has returns true if graph has an edge for the node
func (g Graph) Has(name string) bool {
	return g.index(name) != -1
}

// Lookup returns an edge for supplied node name
func (g Graph) Lookup(name string) (Edge, bool) {
	if idx := g.index(name); idx != -1 {
		return g[idx], true
	}
	return Edge{}, false
}

// Insert returns a new graph with the edge added, if the node already exists its parents are unioned
func (g Graph) Insert(edge Edge) Graph {
	result := g.Clone()
	if idx := result.index(edge.NodeName); idx != -1 {
		result[idx].ParentNodes = appendUnique(result[idx].ParentNodes, edge.ParentNodes...)
		return result
	}
	return append(result, NewEdge(edge.NodeName, edge.ParentNodes...))
}

// Names returns node names in graph order
func (g Graph) Names() []string {
	var result = make([]string, 0, len(g))
	for _, edge := range g {
		result = append(result, edge.NodeName)
	}
	return result
}

// Clone creates a deep copy of the graph
func (g Graph) Clone() Graph {
	result := make(Graph, len(g))
	for i, edge := range g {
		result[i] = edge.Clone()
	}
	return result
}

// Equivalent returns true if both graphs have the same nodes with the same parent sets, order is ignored
func (g Graph) Equivalent(other Graph) bool {
	left, right := g.sets(), other.sets()
	if len(left) != len(right) {
		return false
	}
	for name, parents := range left {
		candidate, ok := right[name]
		if !ok || len(candidate) != len(parents) {
			return false
		}
		for parent := range parents {
			if _, ok := candidate[parent]; !ok {
				return false
			}
		}
	}
	return true
}

func (g Graph) sets() map[string]map[string]struct{} {
	var result = make(map[string]map[string]struct{}, len(g))
	for _, edge := range g {
		parents, ok := result[edge.NodeName]
		if !ok {
			parents = map[string]struct{}{}
			result[edge.NodeName] = parents
		}
		for _, parent := range edge.ParentNodes {
			parents[parent] = struct{}{}
		}
	}
	return result
}

// Sorted returns a copy of the graph ordered by node name with sorted parents
func (g Graph) Sorted() Graph {
	result := g.Clone()
	for i := range result {
		sort.Strings(result[i].ParentNodes)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].NodeName < result[j].NodeName
	})
	return result
}

func appendUnique(dest []string, names ...string) []string {
	if dest == nil {
		dest = []string{}
	}
	for _, name := range names {
		if contains(dest, name) {
			continue
		}
		dest = append(dest, name)
	}
	return dest
}

func contains(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
