// Package accum defines options and error types for flow accumulation.
package accum

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/relief/raster"
)

// AccumNoData is the reserved accumulation value stamped onto cells that were
// no-data in the input. Valid totals are always non-negative, so -1 can never
// collide with a legitimate count.
const AccumNoData int64 = -1

// ErrShapeMismatch indicates paired grids (flow directions and weights, or
// flow directions and dependency counts) of differing dimensions.
var ErrShapeMismatch = errors.New("accum: paired grids must have the same dimensions")

// DirectionError reports a flow-direction code outside the closed D8
// enumeration, with the offending cell's coordinates.
type DirectionError struct {
	X, Y int
	Code uint8
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("accum: invalid flow-direction code %d at (%d,%d)", e.Code, e.X, e.Y)
}

// CycleError reports a dependency count falling below zero at the given cell
// during propagation. This is a data or programmer defect — a cycle in the
// flow directions or a miscounted dependency grid — not a recoverable
// runtime condition.
type CycleError struct {
	X, Y int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("accum: dependency count below zero at (%d,%d): cycle or inconsistent flow directions", e.X, e.Y)
}

// Option configures Dependencies and FlowAccumulation via functional
// arguments.
type Option func(*options)

// options holds tunables shared by the dependency scan and the propagation.
type options struct {
	weights *raster.Grid[int64]   // per-cell base weight; nil means 1 per cell
	workers int                   // goroutines for the dependency scan; <=1 is serial
	onCell  func(done, total int) // progress hook, invoked per finalized cell
}

// defaultOptions returns the defaults: unit weights, serial scan, no hook.
func defaultOptions() options {
	return options{workers: 1}
}

// WithWeights supplies a per-cell base weight grid instead of the default
// 1 unit of contributing area per cell. The grid must match the
// flow-direction grid's dimensions or FlowAccumulation fails with
// ErrShapeMismatch before any work is done.
func WithWeights(w *raster.Grid[int64]) Option {
	return func(o *options) {
		o.weights = w
	}
}

// WithWorkers runs the dependency scan across n goroutines with a barrier
// before propagation starts. Values below 2 keep the scan serial.
// Propagation itself always runs sequentially.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 1 {
			o.workers = n
		}
	}
}

// WithOnCell registers a progress hook called after each cell is finalized,
// with the number of cells processed so far and the grid's total cell count.
func WithOnCell(fn func(done, total int)) Option {
	return func(o *options) {
		if fn != nil {
			o.onCell = fn
		}
	}
}
