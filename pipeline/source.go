package pipeline

import (
	"context"
	"errors"
)

// ErrServiceUnavailable is returned when pipelines can not be listed
var ErrServiceUnavailable = errors.New("pipeline service unavailable")

// Source lists pipeline definitions
type Source interface {
	ListPipelines(ctx context.Context) ([]*Resource, error)
}

// Static represents in memory source
type Static []*Resource

// ListPipelines returns static resources
func (s Static) ListPipelines(ctx context.Context) ([]*Resource, error) {
	return s, nil
}
