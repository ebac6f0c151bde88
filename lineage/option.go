package lineage

import (
	"fmt"

	"go.uber.org/zap"
)

// NodeNaming controls how surviving call activities are named in lineage graph
type NodeNaming string

const (
	// NodeNamingActivity keeps call activity name
	NodeNamingActivity NodeNaming = "activity"
	// NodeNamingTarget replaces call activity name with invoked pipeline name
	NodeNamingTarget NodeNaming = "target"
)

// ParseNodeNaming parses node naming mode, empty text defaults to NodeNamingActivity
func ParseNodeNaming(text string) (NodeNaming, error) {
	switch NodeNaming(text) {
	case "", NodeNamingActivity:
		return NodeNamingActivity, nil
	case NodeNamingTarget:
		return NodeNamingTarget, nil
	}
	return "", fmt.Errorf("unsupported node naming: %v", text)
}

// Option represents builder option
type Option func(b *Builder)

// WithLogger sets builder logger
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithNodeNaming sets call node naming mode
func WithNodeNaming(naming NodeNaming) Option {
	return func(b *Builder) {
		b.naming = naming
	}
}

// WithConcurrency sets max number of pipelines reduced in parallel
func WithConcurrency(concurrency int) Option {
	return func(b *Builder) {
		if concurrency > 0 {
			b.concurrency = concurrency
		}
	}
}
