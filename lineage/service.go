package lineage

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/pipelinager/artifact"
	"github.com/viant/pipelinager/graph"
	"github.com/viant/pipelinager/pipeline"
	"go.uber.org/zap"
)

// Service lists pipelines, builds lineage and publishes the artifact
type Service struct {
	Source    pipeline.Source
	Builder   *Builder
	Publisher *artifact.Publisher
	// Strict makes listing failure fatal, otherwise it yields an empty lineage
	Strict bool
	Logger *zap.Logger
}

// Result represents lineage run outcome
type Result struct {
	Pipelines int
	Graph     graph.Graph
	URL       string
	Manifest  *artifact.Manifest
}

// Run executes a full lineage run, nothing is published when building fails
func (s *Service) Run(ctx context.Context) (*Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	resources, err := s.Source.ListPipelines(ctx)
	if err != nil {
		if s.Strict || !errors.Is(err, pipeline.ErrServiceUnavailable) {
			return nil, fmt.Errorf("failed to list pipelines: %w", err)
		}
		logger.Warn("pipeline listing failed, publishing empty lineage", zap.Error(err))
		resources = nil
	}
	builder := s.Builder
	if builder == nil {
		builder = New(WithLogger(logger))
	}
	g, err := builder.Build(ctx, resources)
	if err != nil {
		return nil, err
	}
	result := &Result{Pipelines: len(resources), Graph: g}
	if s.Publisher == nil {
		return result, nil
	}
	if result.URL, result.Manifest, err = s.Publisher.Publish(ctx, g, len(resources)); err != nil {
		return nil, err
	}
	return result, nil
}
