package transform

import (
	"github.com/routegraph/steinergrid/graph"
	"github.com/routegraph/steinergrid/grid"
)

// direction offsets for the six axis-aligned probes, in the order the
// spec enumerates them: +x, -x, +y, -y, +z, -z.
var directions = [6][3]int{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// walker holds the BFS discovery state for ToGraph: a FIFO queue of
// vertex ids to expand and a coordinate->vertex lookup so repeated
// probes landing on an already-discovered cell don't create a second
// vertex.
type walker struct {
	src   *grid.Grid
	g     *graph.Graph
	index map[grid.Coordinate]int
	queue []int
}

// ToGraph extracts the undirected weighted graph reachable from
// (0,0,0) by walking straight axis-aligned runs of non-empty cells.
// Vertex 0 is always the origin (it always qualifies as an
// Intersection by construction, since the painter always traces the
// grid's border corners).
//
// Complexity: O(W*H*D) — each cell is visited by at most one probe per
// incident vertex.
func ToGraph(src *grid.Grid) (*graph.Graph, error) {
	origin := grid.Coordinate{}
	w := &walker{
		src:   src,
		g:     graph.New(),
		index: make(map[grid.Coordinate]int),
	}
	v0 := w.g.AddVertex(origin)
	w.index[origin] = v0
	w.queue = append(w.queue, v0)

	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.expand(u); err != nil {
			return nil, err
		}
	}

	return w.g, nil
}

// expand emits the six directional probes from vertex u and records
// any edges they discover.
func (w *walker) expand(u int) error {
	uc, err := w.g.Coordinate(u)
	if err != nil {
		return err
	}

	for _, dir := range directions {
		dest, steps, found, err := probe(w.src, uc, dir)
		if err != nil {
			return err
		}
		if !found {
			continue
		}

		vid, known := w.index[dest]
		if !known {
			vid = w.g.AddVertex(dest)
			w.index[dest] = vid
			w.queue = append(w.queue, vid)
		}
		if err := w.g.AddEdge(u, vid, steps); err != nil {
			return err
		}

		cell, err := w.src.Get(dest.X, dest.Y, dest.Z)
		if err != nil {
			return err
		}
		if cell == grid.Terminal {
			if err := w.g.MarkTerminal(vid); err != nil {
				return err
			}
		}
	}

	return nil
}

// probe walks one step at a time from "from" along dir until it
// leaves the grid (found=false) or lands on a cell whose code is one
// of Intersection, Via, Terminal (found=true), returning the landing
// coordinate and the number of steps taken — which equals the edge's
// Manhattan weight along the single axis dir moves on.
func probe(src *grid.Grid, from grid.Coordinate, dir [3]int) (dest grid.Coordinate, steps int, found bool, err error) {
	cur := from
	for {
		cur = grid.Coordinate{X: cur.X + dir[0], Y: cur.Y + dir[1], Z: cur.Z + dir[2]}
		steps++
		if !src.InBounds(cur.X, cur.Y, cur.Z) {
			return grid.Coordinate{}, 0, false, nil
		}
		cell, err := src.Get(cur.X, cur.Y, cur.Z)
		if err != nil {
			return grid.Coordinate{}, 0, false, err
		}
		if cell == grid.Intersection || cell == grid.Via || cell == grid.Terminal {
			return cur, steps, true, nil
		}
	}
}

// Render paints the given MST edges back onto a fresh (w, h, d) canvas:
// for each edge, the two endpoints differ on exactly one axis
// (invariant from ToGraph), and every cell from one endpoint to the
// other inclusive is written Path.
func Render(w, h, d int, mst []graph.Edge, coordOf func(v int) (grid.Coordinate, error)) (*grid.Grid, error) {
	target, err := grid.New(w, h, d)
	if err != nil {
		return nil, err
	}

	for _, e := range mst {
		from, err := coordOf(e.From)
		if err != nil {
			return nil, err
		}
		to, err := coordOf(e.To)
		if err != nil {
			return nil, err
		}
		if err := paintSegment(target, from, to); err != nil {
			return nil, err
		}
	}

	return target, nil
}

// paintSegment writes Path into every cell on the straight axis-aligned
// run between a and b, inclusive of both endpoints.
func paintSegment(g *grid.Grid, a, b grid.Coordinate) error {
	switch {
	case a.X != b.X:
		lo, hi := orderedPair(a.X, b.X)
		for x := lo; x <= hi; x++ {
			if err := g.Set(x, a.Y, a.Z, grid.Path); err != nil {
				return err
			}
		}
	case a.Y != b.Y:
		lo, hi := orderedPair(a.Y, b.Y)
		for y := lo; y <= hi; y++ {
			if err := g.Set(a.X, y, a.Z, grid.Path); err != nil {
				return err
			}
		}
	case a.Z != b.Z:
		lo, hi := orderedPair(a.Z, b.Z)
		for z := lo; z <= hi; z++ {
			if err := g.Set(a.X, a.Y, z, grid.Path); err != nil {
				return err
			}
		}
	default:
		// a == b: a degenerate zero-length edge; nothing to paint
		// beyond the single cell, which is already on the tree.
		return g.Set(a.X, a.Y, a.Z, grid.Path)
	}

	return nil
}

func orderedPair(p, q int) (lo, hi int) {
	if p <= q {
		return p, q
	}

	return q, p
}
