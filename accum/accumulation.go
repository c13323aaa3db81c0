package accum

import (
	"github.com/katalvlaran/relief/d8"
	"github.com/katalvlaran/relief/raster"
)

// FlowAccumulation computes D8 flow accumulation for fdr: for every interior
// cell, the total upstream contributing weight (1 per cell by default, or a
// caller-supplied weight grid) that drains through it.
//
// The returned grid shares fdr's shape, carries AccumNoData as its no-data
// sentinel, and holds AccumNoData wherever fdr was no-data. Border-ring
// cells are never processed and read 0.
//
// Steps:
//  1. Validate options (ErrShapeMismatch before any work).
//  2. Count dependencies (in-degrees) — see Dependencies.
//  3. Seed a FIFO queue with every ready interior cell (count == 0).
//  4. Propagate in topological order: finalize each dequeued cell's total,
//     add it to the downstream neighbor, decrement that neighbor's count,
//     enqueue the neighbor when its count reaches exactly zero.
//  5. Re-stamp originally no-data cells with AccumNoData.
//
// Every eligible cell is enqueued and finalized exactly once. A dependency
// count falling below zero aborts with a CycleError naming the cell.
//
// Complexity: O(W×H) time and memory.
func FlowAccumulation(fdr *raster.Grid[d8.Direction], opts ...Option) (*raster.Grid[int64], error) {
	deps, err := Dependencies(fdr, opts...)
	if err != nil {
		return nil, err
	}

	return FlowAccumulationFrom(fdr, deps, opts...)
}

// FlowAccumulationFrom runs the propagation phase against a precomputed
// dependency grid. It exists so a caller can build dependencies in parallel
// (Dependencies with WithWorkers) and then run the strictly sequential
// propagation, and so the two phases stay independently testable.
//
// deps is consumed: its counts are decremented in place and read 0 for every
// processed cell on success.
//
// Returns ErrShapeMismatch if deps or a weights grid differs in shape from
// fdr, and a CycleError if any count falls below zero.
func FlowAccumulationFrom(fdr *raster.Grid[d8.Direction], deps *raster.Grid[int32], opts ...Option) (*raster.Grid[int64], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Fail fast on shape mismatches before any mutation.
	if !raster.SameShape(fdr, deps) {
		return nil, ErrShapeMismatch
	}
	if o.weights != nil && !raster.SameShape(fdr, o.weights) {
		return nil, ErrShapeMismatch
	}

	acc := raster.NewLike[int64](fdr)
	acc.SetNoData(AccumNoData)

	// 2. Seed: every interior, non-no-data cell with no unfinalized upstream
	// contributors is ready.
	queue := make([]int, 0, fdr.Size()/4)
	for y := 1; y < fdr.Height()-1; y++ {
		for x := 1; x < fdr.Width()-1; x++ {
			if deps.At(x, y) == 0 && !fdr.IsNoData(x, y) {
				queue = append(queue, fdr.Index(x, y))
			}
		}
	}

	// 3. Kahn propagation. The queue is FIFO: cells are appended as they
	// become ready and read in arrival order via the qi cursor.
	total := fdr.Size()
	done := 0
	for qi := 0; qi < len(queue); qi++ {
		ci := queue[qi]
		cx, cy := fdr.Coordinate(ci)

		// Finalize this cell: its own base weight lands on top of whatever
		// its upstream contributors already deposited.
		w := int64(1)
		if o.weights != nil {
			w = o.weights.AtIndex(ci)
		}
		cAccum := acc.AtIndex(ci) + w
		acc.SetIndex(ci, cAccum)

		done++
		if o.onCell != nil {
			o.onCell(done, total)
		}

		dir := fdr.AtIndex(ci)
		if dir == d8.NoFlow {
			continue
		}
		dx, dy := dir.Offset()
		nx, ny := cx+dx, cy+dy

		// Flow leaving the grid, entering the unprocessed boundary ring or
		// hitting a no-data cell is simply lost.
		if !fdr.InBounds(nx, ny) || fdr.IsEdgeCell(nx, ny) || fdr.IsNoData(nx, ny) {
			continue
		}

		ni := fdr.Index(nx, ny)
		acc.SetIndex(ni, acc.AtIndex(ni)+cAccum)
		nd := deps.AtIndex(ni) - 1
		deps.SetIndex(ni, nd)
		switch {
		case nd == 0:
			queue = append(queue, ni)
		case nd < 0:
			return nil, &CycleError{X: nx, Y: ny}
		}
	}

	// 4. Re-stamp the no-data mask, overwriting any transient zero.
	for i := 0; i < fdr.Size(); i++ {
		if fdr.IsNoDataIndex(i) {
			acc.SetIndex(i, AccumNoData)
		}
	}

	return acc, nil
}
