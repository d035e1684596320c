package paint_test

import (
	"testing"

	"github.com/routegraph/steinergrid/grid"
	"github.com/routegraph/steinergrid/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPainted(t *testing.T, w, h, d int, terms []grid.Coordinate) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h, d)
	require.NoError(t, err)
	require.NoError(t, paint.Terminals(g, terms))
	return g
}

func TestBordersAndCorners(t *testing.T) {
	g := newPainted(t, 5, 5, 1, nil)
	for x := 0; x < 5; x++ {
		c, _ := g.Get(x, 0, 0)
		assert.Contains(t, []grid.Cell{grid.Trace, grid.Intersection}, c)
		c, _ = g.Get(x, 4, 0)
		assert.Contains(t, []grid.Cell{grid.Trace, grid.Intersection}, c)
	}
	corner, _ := g.Get(0, 0, 0)
	assert.Equal(t, grid.Intersection, corner)
	corner, _ = g.Get(4, 4, 0)
	assert.Equal(t, grid.Intersection, corner)
}

func TestTerminalCellIsMarked(t *testing.T) {
	g := newPainted(t, 5, 5, 1, []grid.Coordinate{{X: 1, Y: 1, Z: 0}, {X: 3, Y: 3, Z: 0}})
	v, _ := g.Get(1, 1, 0)
	assert.Equal(t, grid.Terminal, v)
	v, _ = g.Get(3, 3, 0)
	assert.Equal(t, grid.Terminal, v)
}

// TestTerminalHasNeighborAlongEachAxis checks invariant 1 from spec §8:
// every terminal has at least one non-empty neighbour along each axis.
func TestTerminalHasNeighborAlongEachAxis(t *testing.T) {
	terms := []grid.Coordinate{{X: 2, Y: 2, Z: 0}, {X: 5, Y: 5, Z: 0}, {X: 2, Y: 5, Z: 0}}
	g := newPainted(t, 8, 8, 1, terms)

	for _, term := range terms {
		for _, axis := range [3][2]int{{-1, 0}, {1, 0}, {0, -1}} {
			_ = axis
		}
		// X axis neighbours
		leftOK := term.X > 0
		rightOK := term.X < 7
		if leftOK {
			c, err := g.Get(term.X-1, term.Y, term.Z)
			require.NoError(t, err)
			assert.NotEqual(t, grid.Empty, c)
		}
		if rightOK {
			c, err := g.Get(term.X+1, term.Y, term.Z)
			require.NoError(t, err)
			assert.NotEqual(t, grid.Empty, c)
		}
		// Y axis neighbours
		if term.Y > 0 {
			c, err := g.Get(term.X, term.Y-1, term.Z)
			require.NoError(t, err)
			assert.NotEqual(t, grid.Empty, c)
		}
		if term.Y < 7 {
			c, err := g.Get(term.X, term.Y+1, term.Z)
			require.NoError(t, err)
			assert.NotEqual(t, grid.Empty, c)
		}
	}
}

func TestZStackedTerminalsStayTerminal(t *testing.T) {
	g := newPainted(t, 3, 3, 2, []grid.Coordinate{{X: 1, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 1}})
	v, err := g.Get(1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Terminal, v)
	v, err = g.Get(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Terminal, v)
}

func TestSaturatedLineIsNotOverwritten(t *testing.T) {
	// On a 3-wide row, the first terminal's X pass (at x=0) fills the
	// only empty cell, saturating the row; the second terminal (at x=2)
	// then finds no empty cell on that row and must leave it untouched.
	terms := []grid.Coordinate{{X: 0, Y: 1, Z: 0}, {X: 2, Y: 1, Z: 0}}
	g := newPainted(t, 3, 3, 1, terms)
	mid, err := g.Get(1, 1, 0)
	require.NoError(t, err)
	// The middle cell was traced by the first terminal's X pass; a second
	// pass over the row would have turned it into an Intersection.
	assert.Equal(t, grid.Trace, mid)
}
