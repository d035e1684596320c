// Package steiner approximates a minimum rectilinear Steiner tree over
// a graph.Graph's Terminals subset, using a two-phase shortest-
// paths-then-MST algorithm:
//
//   - Phase A runs a binary-heap Dijkstra from every terminal (a min-
//     heap of (vertex, dist) pairs, parent tracking, first-relaxation
//     tie-breaking) and records, for every unordered terminal pair, a
//     short path (weight + endpoints) and its full underlying edge
//     path.
//   - Phase B builds an auxiliary graph over the terminals from those
//     short paths and runs Kruskal with a priority queue ordered by
//     weight, promoting any non-terminal vertex visited by two
//     different accepted paths to a Steiner terminal, then re-running
//     Kruskal over the refined paths to produce the final tree.
package steiner
