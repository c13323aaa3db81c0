// Package raster provides the rectangular grid type shared by all terrain
// algorithms in relief.
//
// What:
//
//   - Grid[T] wraps a dense, row-major backing slice with width/height,
//     bounds checks and linear-index conversion.
//   - An optional no-data sentinel marks cells excluded from computation
//     (outside the valid extent of a DEM, masked water bodies, ...).
//   - Cell geometry (lengths, area) supports measurement utilities; it
//     defaults to unit cells and never affects the graph algorithms.
//
// Why:
//
//   - Digital elevation models, flow-direction grids, accumulation grids and
//     label grids all share the same shape; a single generic container keeps
//     paired-grid code honest via SameShape.
//   - Linear indices (Index/Coordinate) let algorithms store per-cell state
//     in flat slices without per-cell allocations.
//
// Complexity:
//
//   - All accessors are O(1); constructors are O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: a dimension is zero or negative.
//   - ErrNonRectangular: rows of a 2D source have differing lengths.
//   - ErrCellSize: a non-positive cell length was supplied.
//
// Grid is not safe for concurrent mutation; algorithms own their grids
// exclusively while running.
package raster
