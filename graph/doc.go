// Package graph provides the undirected, weighted graph that the
// Transformer extracts from a painted grid.Grid and that the Steiner
// solver reads back.
//
// Vertices are addressed by a 0-based int index (the single convention
// used at the Graph boundary; any external id mapping happens only at
// serialization) and each carries its originating grid.Coordinate.
// Edges are undirected, parallel-edge insertion is idempotent, and a
// distinguished Terminals subset marks the original terminal cells.
//
// Concurrency: a single sync.RWMutex guards vertices, edges, and the
// terminal set. Every graph.Graph in this pipeline has exactly one
// writer — the Transformer, inside one worker's single-threaded
// sample — so one lock is enough; it is kept for the same defensive-
// correctness reason any shared mutable struct gets one, not because
// this pipeline needs cross-goroutine graph sharing.
package graph
