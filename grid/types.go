// Package grid defines the dense 3D cell array that backs both the
// painted source canvas and the rendered target canvas, plus the fixed
// cell-code vocabulary shared across the pipeline.
//
// Storage is layer-major: a single contiguous []Cell ordered (z, y, x),
// matching the NPY shape tuple (D, H, W) the array sink later writes.
// Grid never exposes that backing slice for mutation past its own
// lifetime — callers get a read-only copy via RawBytes.
package grid

import "errors"

// Cell is one of the fixed cell codes painted or rendered onto a Grid.
// Values are stable: they are serialized verbatim into output files.
type Cell byte

const (
	// Empty marks an untouched cell.
	Empty Cell = 0
	// Path marks a cell that belongs to the rendered target tree.
	Path Cell = 1
	// Via marks a vertical (z-axis) connection between layers.
	Via Cell = 2
	// Intersection marks an in-plane crossing of two traces.
	Intersection Cell = 3
	// Terminal marks a required routing endpoint.
	Terminal Cell = 4
	// Trace marks a candidate routing segment cell.
	Trace Cell = 5
)

// ErrOutOfBounds is returned when a coordinate falls outside the grid's
// shape. This is a programmer error: callers are expected to keep
// coordinates within [0,W)×[0,H)×[0,D).
var ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

// ErrInvalidShape is returned by New when any dimension is outside the
// inclusive [1, 255] range the spec's data model allows.
var ErrInvalidShape = errors.New("grid: shape dimensions must be in [1, 255]")

// Coordinate is a triple (x, y, z) addressing a single cell.
type Coordinate struct {
	X, Y, Z int
}

// Grid is a bounds-checked, layer-major dense 3D array of Cell values.
//
// Complexity: Get/Set are O(1). New allocates and zeroes in O(W*H*D).
type Grid struct {
	w, h, d int
	cells   []Cell
}
