package lineage

import (
	"github.com/viant/pipelinager/graph"
	"github.com/viant/pipelinager/pipeline"
)

// Activity represents a pipeline step reduced to its lineage relevant attributes
type Activity struct {
	Name                string   `json:"name" yaml:"name"`
	Parents             []string `json:"parents" yaml:"parents"`
	IsExecutePipeline   bool     `json:"isExecutePipeline" yaml:"isExecutePipeline"`
	ExecutePipelineName string   `json:"executePipelineName,omitempty" yaml:"executePipelineName,omitempty"`
}

// Activities extracts activities from a pipeline resource
func Activities(resource *pipeline.Resource) []*Activity {
	var result = make([]*Activity, 0, len(resource.Activities()))
	for _, activity := range resource.Activities() {
		if activity == nil {
			continue
		}
		item := &Activity{
			Name:              activity.Name,
			Parents:           activity.Dependencies(),
			IsExecutePipeline: activity.IsExecutePipeline(),
		}
		if item.IsExecutePipeline {
			item.ExecutePipelineName = activity.PipelineReference()
		}
		result = append(result, item)
	}
	return result
}

// ActivityGraph creates a graph with one edge per activity
func ActivityGraph(activities []*Activity) graph.Graph {
	var edges = make([]graph.Edge, 0, len(activities))
	for _, activity := range activities {
		edges = append(edges, graph.NewEdge(activity.Name, activity.Parents...))
	}
	return graph.New(edges...)
}

// Reduce removes every activity that does not invoke another pipeline, dependencies are preserved transitively
func Reduce(activities []*Activity) (graph.Graph, error) {
	var removable []string
	for _, activity := range activities {
		if !activity.IsExecutePipeline {
			removable = append(removable, activity.Name)
		}
	}
	return graph.RemoveNodes(removable, ActivityGraph(activities))
}

// JoinAsParent adds node as a parent of every root and disjoint node
func JoinAsParent(nodeName string, g graph.Graph) (graph.Graph, error) {
	var targets []string
	seen := map[string]bool{}
	for _, candidates := range [][]graph.Edge{graph.RootNodes(g), graph.DisjointNodes(g)} {
		for _, edge := range candidates {
			if seen[edge.NodeName] {
				continue
			}
			seen[edge.NodeName] = true
			targets = append(targets, edge.NodeName)
		}
	}
	parent := []graph.Edge{graph.NewEdge(nodeName)}
	result := g
	var err error
	for _, target := range targets {
		if result, err = graph.JoinToNode(target, parent, result); err != nil {
			return nil, err
		}
	}
	return result.Clone(), nil
}

// renameToTarget replaces call activity names with invoked pipeline names
func renameToTarget(activities []*Activity, g graph.Graph) graph.Graph {
	targets := map[string]string{}
	for _, activity := range activities {
		if activity.IsExecutePipeline && activity.ExecutePipelineName != "" {
			targets[activity.Name] = activity.ExecutePipelineName
		}
	}
	rename := func(name string) string {
		if target, ok := targets[name]; ok {
			return target
		}
		return name
	}
	var edges = make(graph.Graph, 0, len(g))
	for _, edge := range g {
		name := rename(edge.NodeName)
		parents := make([]string, 0, len(edge.ParentNodes))
		for _, parent := range edge.ParentNodes {
			if parent = rename(parent); parent != name {
				parents = append(parents, parent)
			}
		}
		edges = append(edges, graph.NewEdge(name, parents...))
	}
	return graph.Merge(edges)
}
