package graph

import (
	"sort"

	"github.com/routegraph/steinergrid/grid"
)

// AddVertex appends a new vertex at coord and returns its index.
// Vertex indices are assigned densely in insertion order, starting
// at 0.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(coord grid.Coordinate) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.coords)
	g.coords = append(g.coords, coord)
	g.adjacency = append(g.adjacency, nil)
	g.edgeIndex = append(g.edgeIndex, make(map[int]bool))

	return id
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.coords)
}

// Coordinate returns the grid coordinate associated with vertex v.
func (g *Graph) Coordinate(v int) (grid.Coordinate, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.coords) {
		return grid.Coordinate{}, ErrVertexNotFound
	}

	return g.coords[v], nil
}

// MarkTerminal adds v to the Terminals subset.
func (g *Graph) MarkTerminal(v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if v < 0 || v >= len(g.coords) {
		return ErrVertexNotFound
	}
	g.terminals[v] = true

	return nil
}

// IsTerminal reports whether v belongs to the Terminals subset.
func (g *Graph) IsTerminal(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.terminals[v]
}

// Terminals returns the Terminals subset as a sorted slice of vertex
// indices.
func (g *Graph) Terminals() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.terminals))
	for v := range g.terminals {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// AddEdge inserts an undirected edge between u and v with the given
// weight, into both adjacency lists. The weight must equal the
// Manhattan distance between the endpoints' coordinates along exactly
// one axis; violating that is a programmer error reported as
// ErrNotAxisAligned/ErrBadWeight rather than silently accepted.
//
// Inserting an edge between a pair that already has one (in either
// direction) is a no-op: parallel edges are disallowed, and duplicate
// insertions are idempotent.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v, weight int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 0 || u >= len(g.coords) || v < 0 || v >= len(g.coords) {
		return ErrVertexNotFound
	}

	axis, dist := manhattanAxis(g.coords[u], g.coords[v])
	if axis < 0 {
		return ErrNotAxisAligned
	}
	if dist != weight {
		return ErrBadWeight
	}
	if g.edgeIndex[u][v] || g.edgeIndex[v][u] {
		return nil
	}

	g.adjacency[u] = append(g.adjacency[u], Edge{From: u, To: v, Weight: weight})
	g.adjacency[v] = append(g.adjacency[v], Edge{From: v, To: u, Weight: weight})
	g.edgeIndex[u][v] = true
	g.edgeIndex[v][u] = true

	return nil
}

// HasEdge reports whether an edge exists between u and v, in either
// direction.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if u < 0 || u >= len(g.edgeIndex) {
		return false
	}

	return g.edgeIndex[u][v]
}

// Neighbors returns the edges incident to v, From always equal to v.
func (g *Graph) Neighbors(v int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v < 0 || v >= len(g.adjacency) {
		return nil
	}
	out := make([]Edge, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out
}

// Edges returns every edge once, with From < To, sorted by (From, To)
// for deterministic iteration.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.coords))
	for u, adj := range g.adjacency {
		for _, e := range adj {
			if e.From < e.To {
				out = append(out, e)
			}
		}
		_ = u
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// manhattanAxis returns the axis index (0=x, 1=y, 2=z) on which a and b
// differ, and the Manhattan distance along it. Returns axis -1 if a
// and b differ on more than one axis (or are identical).
func manhattanAxis(a, b grid.Coordinate) (axis int, dist int) {
	dx, dy, dz := abs(a.X-b.X), abs(a.Y-b.Y), abs(a.Z-b.Z)
	switch {
	case dx > 0 && dy == 0 && dz == 0:
		return 0, dx
	case dy > 0 && dx == 0 && dz == 0:
		return 1, dy
	case dz > 0 && dx == 0 && dy == 0:
		return 2, dz
	default:
		return -1, 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
