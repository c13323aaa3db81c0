package raster

import "errors"

var (
	// ErrEmptyGrid indicates a grid must have at least one row and one column.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrCellSize indicates a non-positive cell length.
	ErrCellSize = errors.New("raster: cell lengths must be positive")
)
