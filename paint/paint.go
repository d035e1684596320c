// Package paint implements the canvas painter: given an ordered list of
// terminal coordinates, it marks an empty grid.Grid with border traces,
// per-terminal axis-aligned traces, intersections, and vias, producing
// the pipeline's source canvas.
package paint

import "github.com/routegraph/steinergrid/grid"

// Terminals paints the borders, corners, and per-terminal axis traces
// of an empty Grid, in place.
//
// Steps:
//  1. For every layer z, mark the four borders as Trace and the four
//     corners as Intersection.
//  2. For each terminal, in the given order: mark it Terminal, then
//     paint its X, Y, and Z axis traces — but only along an axis whose
//     line still has at least one Empty cell at the moment that
//     terminal is processed (a saturated line is left untouched; the
//     terminal is attached only through traces already present).
//
// Complexity: O(W*H*D) for the border pass, O(k*(W+H+D)) for terminals.
func Terminals(g *grid.Grid, terminals []grid.Coordinate) error {
	w, h, d := g.Shape()

	if err := paintBordersAndCorners(g, w, h, d); err != nil {
		return err
	}

	for _, t := range terminals {
		if err := g.Set(t.X, t.Y, t.Z, grid.Terminal); err != nil {
			return err
		}
		if err := paintXTrace(g, t, w); err != nil {
			return err
		}
		if err := paintYTrace(g, t, h); err != nil {
			return err
		}
		if err := paintZTrace(g, t, d); err != nil {
			return err
		}
	}

	return nil
}

func paintBordersAndCorners(g *grid.Grid, w, h, d int) error {
	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			if err := g.Set(x, 0, z, grid.Trace); err != nil {
				return err
			}
			if err := g.Set(x, h-1, z, grid.Trace); err != nil {
				return err
			}
		}
		for y := 0; y < h; y++ {
			if err := g.Set(0, y, z, grid.Trace); err != nil {
				return err
			}
			if err := g.Set(w-1, y, z, grid.Trace); err != nil {
				return err
			}
		}
		for _, c := range [4]grid.Coordinate{
			{X: 0, Y: 0, Z: z}, {X: w - 1, Y: 0, Z: z},
			{X: 0, Y: h - 1, Z: z}, {X: w - 1, Y: h - 1, Z: z},
		} {
			if err := g.Set(c.X, c.Y, c.Z, grid.Intersection); err != nil {
				return err
			}
		}
	}

	return nil
}

// lineHasEmpty reports whether any cell yielded by at(i) for i in
// [0, n) is Empty.
func lineHasEmpty(n int, at func(i int) (grid.Cell, error)) (bool, error) {
	for i := 0; i < n; i++ {
		c, err := at(i)
		if err != nil {
			return false, err
		}
		if c == grid.Empty {
			return true, nil
		}
	}

	return false, nil
}

func paintXTrace(g *grid.Grid, t grid.Coordinate, w int) error {
	hasEmpty, err := lineHasEmpty(w, func(x int) (grid.Cell, error) { return g.Get(x, t.Y, t.Z) })
	if err != nil || !hasEmpty {
		return err
	}
	onBorderRow := t.Y == 0
	_, h, _ := g.Shape()
	onBorderRow = onBorderRow || t.Y == h-1

	for x := 0; x < w; x++ {
		c, err := g.Get(x, t.Y, t.Z)
		if err != nil {
			return err
		}
		switch {
		case c == grid.Empty:
			if err := g.Set(x, t.Y, t.Z, grid.Trace); err != nil {
				return err
			}
		case c != grid.Terminal && !onBorderRow:
			if err := g.Set(x, t.Y, t.Z, grid.Intersection); err != nil {
				return err
			}
		}
	}

	return nil
}

func paintYTrace(g *grid.Grid, t grid.Coordinate, h int) error {
	hasEmpty, err := lineHasEmpty(h, func(y int) (grid.Cell, error) { return g.Get(t.X, y, t.Z) })
	if err != nil || !hasEmpty {
		return err
	}
	w, _, _ := g.Shape()
	onBorderCol := t.X == 0 || t.X == w-1

	for y := 0; y < h; y++ {
		c, err := g.Get(t.X, y, t.Z)
		if err != nil {
			return err
		}
		switch {
		case c == grid.Empty:
			if err := g.Set(t.X, y, t.Z, grid.Trace); err != nil {
				return err
			}
		case c != grid.Terminal && !onBorderCol:
			if err := g.Set(t.X, y, t.Z, grid.Intersection); err != nil {
				return err
			}
		}
	}

	return nil
}

func paintZTrace(g *grid.Grid, t grid.Coordinate, d int) error {
	hasEmpty, err := lineHasEmpty(d, func(z int) (grid.Cell, error) { return g.Get(t.X, t.Y, z) })
	if err != nil || !hasEmpty {
		return err
	}

	for z := 0; z < d; z++ {
		c, err := g.Get(t.X, t.Y, z)
		if err != nil {
			return err
		}
		switch {
		case c == grid.Empty:
			if err := g.Set(t.X, t.Y, z, grid.Trace); err != nil {
				return err
			}
		case c != grid.Terminal:
			if err := g.Set(t.X, t.Y, z, grid.Via); err != nil {
				return err
			}
		}
	}

	return nil
}
