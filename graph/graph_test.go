package graph

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func loadGraph(t *testing.T, source string) Graph {
	t.Helper()
	var result Graph
	require.NoError(t, yaml.Unmarshal([]byte(source), &result))
	for i := range result {
		if result[i].ParentNodes == nil {
			result[i].ParentNodes = []string{}
		}
	}
	return result
}

func TestNew(t *testing.T) {
	g := New(NewEdge("a", "b", "b"), NewEdge("c"), Edge{NodeName: "a", ParentNodes: []string{"c"}})
	assert.EqualValues(t, Graph{
		{NodeName: "a", ParentNodes: []string{"b", "c"}},
		{NodeName: "c", ParentNodes: []string{}},
	}, g)
}

func TestGraph_Insert(t *testing.T) {
	g := New(NewEdge("a"))
	updated := g.Insert(NewEdge("b", "a"))
	assert.False(t, g.Has("b"), "insert must not modify receiver")
	assert.True(t, updated.Has("b"))

	updated = updated.Insert(NewEdge("b", "a", "c"))
	edge, ok := updated.Lookup("b")
	assert.True(t, ok)
	assert.EqualValues(t, []string{"a", "c"}, edge.ParentNodes)

	_, ok = updated.Lookup("x")
	assert.False(t, ok)
}

func TestGraph_Equivalent(t *testing.T) {
	var testCases = []struct {
		description string
		left        string
		right       string
		expect      bool
	}{
		{
			description: "parent order ignored",
			left: `
- node_name: a
  parent_nodes: [b, c]`,
			right: `
- node_name: a
  parent_nodes: [c, b]`,
			expect: true,
		},
		{
			description: "different parents",
			left: `
- node_name: a
  parent_nodes: [b]`,
			right: `
- node_name: a
  parent_nodes: [c]`,
			expect: false,
		},
		{
			description: "different nodes",
			left: `
- node_name: a
- node_name: b`,
			right: `
- node_name: a`,
			expect: false,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			left, right := loadGraph(t, testCase.left), loadGraph(t, testCase.right)
			assert.Equal(t, testCase.expect, left.Equivalent(right))
		})
	}
}

func TestEdge_JSONShape(t *testing.T) {
	data, err := json.Marshal(New(NewEdge("a"), NewEdge("b", "a")))
	require.NoError(t, err)
	assert.Equal(t, `[{"node_name":"a","parent_nodes":[]},{"node_name":"b","parent_nodes":["a"]}]`, string(data))
}
