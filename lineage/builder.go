package lineage

import (
	"context"
	"fmt"

	"github.com/viant/pipelinager/graph"
	"github.com/viant/pipelinager/pipeline"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Builder builds cross pipeline lineage graph
type Builder struct {
	logger      *zap.Logger
	naming      NodeNaming
	concurrency int
}

// New creates a builder
func New(options ...Option) *Builder {
	ret := &Builder{
		logger:      zap.NewNop(),
		naming:      NodeNamingActivity,
		concurrency: 1,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Build reduces each pipeline to its call activities, attaches the pipeline as their parent and merges all results.
// Any structural error aborts the build, no partial graph is returned.
func (b *Builder) Build(ctx context.Context, resources []*pipeline.Resource) (graph.Graph, error) {
	if len(resources) == 0 {
		b.logger.Info("no pipelines to process")
		return graph.Graph{}, nil
	}
	graphs := make([]graph.Graph, len(resources))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(b.concurrency)
	for i, resource := range resources {
		if resource == nil {
			b.logger.Debug("skipped empty pipeline record", zap.Int("index", i))
			continue
		}
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := b.PipelineGraph(resource)
			if err != nil {
				return err
			}
			graphs[i] = g
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	result := graph.Merge(graphs...)
	b.logger.Info("built lineage", zap.Int("pipelines", len(resources)), zap.Int("nodes", len(result)))
	return result, nil
}

// PipelineGraph returns lineage graph of a single pipeline
func (b *Builder) PipelineGraph(resource *pipeline.Resource) (graph.Graph, error) {
	activities := Activities(resource)
	b.checkReferences(resource.Name, activities)
	reduced, err := Reduce(activities)
	if err != nil {
		return nil, fmt.Errorf("failed to reduce pipeline %v: %w", resource.Name, err)
	}
	if len(reduced) == 0 {
		return graph.New(graph.NewEdge(resource.Name)), nil
	}
	if b.naming == NodeNamingTarget {
		reduced = renameToTarget(activities, reduced)
	}
	result, err := JoinAsParent(resource.Name, reduced)
	if err != nil {
		return nil, fmt.Errorf("failed to join pipeline %v: %w", resource.Name, err)
	}
	b.logger.Debug("reduced pipeline",
		zap.String("pipeline", resource.Name),
		zap.Int("activities", len(activities)),
		zap.Strings("nodes", result.Names()))
	return result, nil
}

// checkReferences logs dependencies on activities missing from the pipeline, they are kept as opaque parents
func (b *Builder) checkReferences(pipelineName string, activities []*Activity) {
	names := make(map[string]bool, len(activities))
	for _, activity := range activities {
		names[activity.Name] = true
	}
	for _, activity := range activities {
		for _, parent := range activity.Parents {
			if !names[parent] {
				b.logger.Debug("dangling activity reference",
					zap.String("pipeline", pipelineName),
					zap.String("activity", activity.Name),
					zap.String("dependency", parent))
			}
		}
	}
}
