package graph

import (
	"errors"
	"sync"

	"github.com/routegraph/steinergrid/grid"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
	// ErrNotAxisAligned indicates an edge's endpoints do not differ on
	// exactly one axis, violating the spec's edge invariant.
	ErrNotAxisAligned = errors.New("graph: edge endpoints are not axis-aligned")
	// ErrBadWeight indicates an edge weight does not equal the Manhattan
	// distance between its endpoints along the aligned axis.
	ErrBadWeight = errors.New("graph: weight does not match endpoint distance")
)

// Edge is an undirected connection between two vertex indices, weighted
// by the Manhattan distance between their coordinates along the single
// axis on which they differ.
type Edge struct {
	From, To int
	Weight   int
}

// Graph is the undirected weighted adjacency structure produced by the
// Transformer: vertices 0..V-1 each carry a grid.Coordinate, a subset
// of vertices are Terminals, and edges are deduplicated per unordered
// pair.
type Graph struct {
	mu sync.RWMutex

	coords    []grid.Coordinate
	adjacency [][]Edge
	// edgeIndex[u][v] is true when an edge between u and v already
	// exists, in either direction; used to keep insertion idempotent.
	edgeIndex []map[int]bool
	terminals map[int]bool
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{terminals: make(map[int]bool)}
}
