package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func removeEach(names []string, g Graph) (Graph, error) {
	var err error
	for _, name := range names {
		if g, err = RemoveNode(name, g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func TestRemoveNode(t *testing.T) {
	var testCases = []struct {
		description string
		graph       string
		remove      string
		expect      string
	}{
		{
			description: "chain bypass",
			graph: `
- node_name: A
  parent_nodes: [B]
- node_name: B
  parent_nodes: [C]
- node_name: C`,
			remove: "B",
			expect: `
- node_name: A
  parent_nodes: [C]
- node_name: C`,
		},
		{
			description: "missing node",
			graph: `
- node_name: A
  parent_nodes: [B]
- node_name: B`,
			remove: "X",
			expect: `
- node_name: A
  parent_nodes: [B]
- node_name: B`,
		},
		{
			description: "removed root",
			graph: `
- node_name: A
  parent_nodes: [B, C]
- node_name: B
- node_name: C`,
			remove: "B",
			expect: `
- node_name: A
  parent_nodes: [C]
- node_name: C`,
		},
		{
			description: "inherited parents deduplicated",
			graph: `
- node_name: A
  parent_nodes: [B, C]
- node_name: B
  parent_nodes: [C, D]
- node_name: C
- node_name: D`,
			remove: "B",
			expect: `
- node_name: A
  parent_nodes: [C, D]
- node_name: C
- node_name: D`,
		},
		{
			description: "dangling parent kept",
			graph: `
- node_name: A
  parent_nodes: [B]
- node_name: B
  parent_nodes: [X]`,
			remove: "B",
			expect: `
- node_name: A
  parent_nodes: [X]`,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			g := loadGraph(t, testCase.graph)
			actual, err := RemoveNode(testCase.remove, g)
			require.NoError(t, err)
			assert.EqualValues(t, loadGraph(t, testCase.expect), actual)
			assert.True(t, g.Equivalent(loadGraph(t, testCase.graph)), "input must not be modified")
		})
	}
}

func TestRemoveNode_SelfParent(t *testing.T) {
	_, err := RemoveNode("A", New(NewEdge("A", "A")))
	assert.ErrorIs(t, err, ErrCyclicGraph)
}

func TestRemoveNodes(t *testing.T) {
	var testCases = []struct {
		description string
		graph       string
		remove      []string
		expect      string
	}{
		{
			description: "diamond",
			graph: `
- node_name: D
  parent_nodes: [B, C]
- node_name: B
  parent_nodes: [A]
- node_name: C
  parent_nodes: [A]
- node_name: A`,
			remove: []string{"B", "C"},
			expect: `
- node_name: D
  parent_nodes: [A]
- node_name: A`,
		},
		{
			description: "interleaved chain",
			graph: `
- node_name: E
  parent_nodes: [D]
- node_name: D
  parent_nodes: [C]
- node_name: C
  parent_nodes: [B]
- node_name: B
  parent_nodes: [A]
- node_name: A`,
			remove: []string{"D", "B"},
			expect: `
- node_name: E
  parent_nodes: [C]
- node_name: C
  parent_nodes: [A]
- node_name: A`,
		},
		{
			description: "removed chain collapses to root",
			graph: `
- node_name: C
  parent_nodes: [B]
- node_name: B
  parent_nodes: [A]
- node_name: A`,
			remove: []string{"A", "B"},
			expect: `
- node_name: C`,
		},
		{
			description: "everything removed",
			graph: `
- node_name: B
  parent_nodes: [A]
- node_name: A`,
			remove: []string{"A", "B"},
			expect: `[]`,
		},
		{
			description: "unknown names ignored",
			graph: `
- node_name: B
  parent_nodes: [A]
- node_name: A`,
			remove: []string{"X"},
			expect: `
- node_name: B
  parent_nodes: [A]
- node_name: A`,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			g := loadGraph(t, testCase.graph)
			expect := loadGraph(t, testCase.expect)
			batch, err := RemoveNodes(testCase.remove, g)
			require.NoError(t, err)
			assert.True(t, expect.Equivalent(batch), "batch: %v", batch)

			for _, order := range [][]string{testCase.remove, reversed(testCase.remove)} {
				sequential, err := removeEach(order, g)
				require.NoError(t, err)
				assert.True(t, expect.Equivalent(sequential), "sequential %v: %v", order, sequential)
			}
		})
	}
}

func TestRemoveNodes_Cycle(t *testing.T) {
	g := New(NewEdge("A", "B"), NewEdge("B", "A"), NewEdge("C", "A"))
	_, err := RemoveNodes([]string{"A", "B"}, g)
	assert.ErrorIs(t, err, ErrCyclicGraph)

	_, err = RemoveNodes([]string{"A", "B"}, New(NewEdge("A", "B"), NewEdge("B", "A")))
	assert.ErrorIs(t, err, ErrCyclicGraph)

	_, err = removeEach([]string{"A", "B"}, g)
	assert.ErrorIs(t, err, ErrCyclicGraph)

	throughSurvivor := New(NewEdge("c", "w"), NewEdge("w", "c"))
	_, err = RemoveNodes([]string{"w"}, throughSurvivor)
	assert.ErrorIs(t, err, ErrCyclicGraph)
	_, err = RemoveNode("w", throughSurvivor)
	assert.ErrorIs(t, err, ErrCyclicGraph)

	_, err = RemoveNodes(nil, New(NewEdge("c", "c")))
	assert.ErrorIs(t, err, ErrCyclicGraph)
}

func reversed(names []string) []string {
	result := make([]string, len(names))
	for i, name := range names {
		result[len(names)-1-i] = name
	}
	return result
}
