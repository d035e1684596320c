package transform_test

import (
	"testing"

	"github.com/routegraph/steinergrid/graph"
	"github.com/routegraph/steinergrid/grid"
	"github.com/routegraph/steinergrid/paint"
	"github.com/routegraph/steinergrid/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGraphOriginIsVertexZero(t *testing.T) {
	g, err := grid.New(5, 5, 1)
	require.NoError(t, err)
	require.NoError(t, paint.Terminals(g, []grid.Coordinate{{X: 2, Y: 2, Z: 0}}))

	gr, err := transform.ToGraph(g)
	require.NoError(t, err)
	c, err := gr.Coordinate(0)
	require.NoError(t, err)
	assert.Equal(t, grid.Coordinate{}, c)
}

func TestToGraphEdgeWeightsAreAxisAligned(t *testing.T) {
	g, err := grid.New(8, 8, 1)
	require.NoError(t, err)
	terms := []grid.Coordinate{{X: 2, Y: 2, Z: 0}, {X: 5, Y: 5, Z: 0}, {X: 2, Y: 5, Z: 0}}
	require.NoError(t, paint.Terminals(g, terms))

	gr, err := transform.ToGraph(g)
	require.NoError(t, err)

	for _, e := range gr.Edges() {
		cf, err := gr.Coordinate(e.From)
		require.NoError(t, err)
		ct, err := gr.Coordinate(e.To)
		require.NoError(t, err)
		diffs := 0
		dist := 0
		if cf.X != ct.X {
			diffs++
			dist = abs(cf.X - ct.X)
		}
		if cf.Y != ct.Y {
			diffs++
			dist = abs(cf.Y - ct.Y)
		}
		if cf.Z != ct.Z {
			diffs++
			dist = abs(cf.Z - ct.Z)
		}
		assert.Equal(t, 1, diffs)
		assert.Equal(t, e.Weight, dist)
	}

	// at least one intersection vertex at (2,5) or (5,2)
	found := false
	for v := 0; v < gr.VertexCount(); v++ {
		c, _ := gr.Coordinate(v)
		if (c == grid.Coordinate{X: 2, Y: 5, Z: 0}) || (c == grid.Coordinate{X: 5, Y: 2, Z: 0}) {
			found = true
		}
	}
	assert.True(t, found)
}

func TestToGraphMarksTerminals(t *testing.T) {
	g, err := grid.New(5, 5, 1)
	require.NoError(t, err)
	terms := []grid.Coordinate{{X: 1, Y: 1, Z: 0}, {X: 3, Y: 3, Z: 0}}
	require.NoError(t, paint.Terminals(g, terms))

	gr, err := transform.ToGraph(g)
	require.NoError(t, err)

	termCoords := map[grid.Coordinate]bool{}
	for _, v := range gr.Terminals() {
		c, err := gr.Coordinate(v)
		require.NoError(t, err)
		termCoords[c] = true
	}
	for _, tc := range terms {
		assert.True(t, termCoords[tc])
	}
}

func TestRenderPaintsStaircaseInclusive(t *testing.T) {
	coords := []grid.Coordinate{{X: 1, Y: 1, Z: 0}, {X: 1, Y: 3, Z: 0}}
	mst := []graph.Edge{{From: 0, To: 1, Weight: 2}}
	coordOf := func(v int) (grid.Coordinate, error) { return coords[v], nil }

	target, err := transform.Render(5, 5, 1, mst, coordOf)
	require.NoError(t, err)

	for y := 1; y <= 3; y++ {
		c, err := target.Get(1, y, 0)
		require.NoError(t, err)
		assert.Equal(t, grid.Path, c)
	}
	c, err := target.Get(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, grid.Empty, c)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
