package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootNodes(t *testing.T) {
	var testCases = []struct {
		description    string
		graph          string
		expectRoot     []string
		expectDisjoint []string
	}{
		{
			description: "root referenced by child is not disjoint",
			graph: `
- node_name: A
- node_name: B
  parent_nodes: [A]
- node_name: C`,
			expectRoot:     []string{"A", "C"},
			expectDisjoint: []string{"C"},
		},
		{
			description: "dangling parent reference",
			graph: `
- node_name: A
  parent_nodes: [X]
- node_name: B`,
			expectRoot:     []string{"B"},
			expectDisjoint: []string{"B"},
		},
		{
			description:    "empty graph",
			graph:          `[]`,
			expectRoot:     []string{},
			expectDisjoint: []string{},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			g := loadGraph(t, testCase.graph)
			assert.EqualValues(t, testCase.expectRoot, Graph(RootNodes(g)).Names())
			assert.EqualValues(t, testCase.expectDisjoint, Graph(DisjointNodes(g)).Names())
		})
	}
}
