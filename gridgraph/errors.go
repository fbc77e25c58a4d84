package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no columns or no rows.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one column and one row")
	// ErrNonRectangular indicates columns of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all columns must have the same length")
	// ErrUnknownTopology indicates a Topology value outside {Square, Hexagon}.
	ErrUnknownTopology = errors.New("gridgraph: unknown topology")
	// ErrCoordMismatch indicates a node whose coordinate does not match its table slot.
	ErrCoordMismatch = errors.New("gridgraph: node coordinate does not match its slot")
	// ErrNegativeWeight indicates a tile weight below zero or NaN.
	ErrNegativeWeight = errors.New("gridgraph: tile weight must be non-negative")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
)
