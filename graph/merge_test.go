package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	var testCases = []struct {
		description string
		graphs      []string
		expect      string
	}{
		{
			description: "parents unioned",
			graphs: []string{`
- node_name: A
  parent_nodes: [B]`, `
- node_name: A
  parent_nodes: [C]`},
			expect: `
- node_name: A
  parent_nodes: [B, C]`,
		},
		{
			description: "disjoint nodes pass through",
			graphs: []string{`
- node_name: A
  parent_nodes: [B, B]`, `
- node_name: P`},
			expect: `
- node_name: A
  parent_nodes: [B]
- node_name: P`,
		},
		{
			description: "duplicates within one graph",
			graphs: []string{`
- node_name: A
  parent_nodes: [B]
- node_name: A
  parent_nodes: [C]`},
			expect: `
- node_name: A
  parent_nodes: [B, C]`,
		},
		{
			description: "no graphs",
			expect:      `[]`,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			var graphs []Graph
			for _, source := range testCase.graphs {
				graphs = append(graphs, loadGraph(t, source))
			}
			actual := Merge(graphs...)
			assert.True(t, loadGraph(t, testCase.expect).Equivalent(actual), "actual: %v", actual)
		})
	}
}

func TestMerge_Associative(t *testing.T) {
	g1 := New(NewEdge("A", "B"), NewEdge("C"))
	g2 := New(NewEdge("A", "D"), NewEdge("E", "C"))
	g3 := New(NewEdge("E", "A"), NewEdge("C", "F"))

	expect := Merge(g1, g2, g3)
	assert.True(t, expect.Equivalent(Merge(Merge(g1, g2), g3)))
	assert.True(t, expect.Equivalent(Merge(g1, Merge(g2, g3))))
	assert.True(t, expect.Equivalent(Merge(g3, g1, g2)))
	assert.EqualValues(t, []string{"A", "C", "E"}, expect.Names())
}

func TestFingerprint(t *testing.T) {
	left, err := Fingerprint(New(NewEdge("A", "B", "C"), NewEdge("B")))
	assert.NoError(t, err)
	right, err := Fingerprint(New(NewEdge("B"), NewEdge("A", "C", "B")))
	assert.NoError(t, err)
	other, err := Fingerprint(New(NewEdge("A", "B"), NewEdge("B")))
	assert.NoError(t, err)
	assert.Equal(t, left, right)
	assert.NotEqual(t, left, other)
}
