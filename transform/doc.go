// Package transform converts between a painted grid.Grid and the
// graph.Graph the Steiner solver operates on, in both directions.
//
// ToGraph discovers vertices and edges from a painted source canvas by
// breadth-first search along straight axis-aligned runs of non-empty
// cells. Render walks a solved MST's edges back onto an empty canvas.
package transform
