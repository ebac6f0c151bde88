package graph

import "errors"

var (
	// ErrNodeNotFound is returned when an operation targets a node absent from the graph
	ErrNodeNotFound = errors.New("node not found")
	// ErrCyclicGraph is returned when node elimination detects a cycle
	ErrCyclicGraph = errors.New("cyclic graph detected")
)
