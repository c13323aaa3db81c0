package accum

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/relief/d8"
	"github.com/katalvlaran/relief/raster"
)

// Dependencies computes, for every cell, the number of upstream neighbors
// that flow into it — the cell's in-degree in the implicit flow graph.
// Only interior cells are scanned as sources; border cells can appear as
// destinations only, through bounds checks. No-data and NoFlow cells
// contribute no edge.
//
// Returns a DirectionError on the first code outside the closed D8
// enumeration.
//
// Pass WithWorkers(n) to run the scan across n goroutines; the per-cell
// reads are independent and destination counters are incremented atomically,
// with a full barrier before the function returns.
//
// Complexity: O(W×H) time, O(W×H) memory.
func Dependencies(fdr *raster.Grid[d8.Direction], opts ...Option) (*raster.Grid[int32], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Closed-enumeration guard: validate every interior code before counting,
	// so a malformed grid mutates nothing.
	for y := 1; y < fdr.Height()-1; y++ {
		for x := 1; x < fdr.Width()-1; x++ {
			if fdr.IsNoData(x, y) {
				continue
			}
			if dir := fdr.At(x, y); !dir.Valid() {
				return nil, &DirectionError{X: x, Y: y, Code: uint8(dir)}
			}
		}
	}

	deps := raster.NewLike[int32](fdr)
	if o.workers > 1 {
		parallelScan(fdr, deps, o.workers)
	} else {
		serialScan(fdr, deps)
	}

	return deps, nil
}

// serialScan counts in-degrees in a single pass over the interior.
func serialScan(fdr *raster.Grid[d8.Direction], deps *raster.Grid[int32]) {
	for y := 1; y < fdr.Height()-1; y++ {
		for x := 1; x < fdr.Width()-1; x++ {
			if ni, ok := downstream(fdr, x, y); ok {
				deps.SetIndex(ni, deps.AtIndex(ni)+1)
			}
		}
	}
}

// parallelScan splits the interior rows into stripes, one goroutine per
// stripe, incrementing destination counters atomically. Neighboring stripes
// may target the same destination cell, hence the atomics; the WaitGroup is
// the barrier required before propagation may start.
func parallelScan(fdr *raster.Grid[d8.Direction], deps *raster.Grid[int32], workers int) {
	counts := make([]int32, fdr.Size())
	rows := fdr.Height() - 2
	if workers > rows {
		workers = rows
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := 1 + w*rows/workers
		y1 := 1 + (w+1)*rows/workers
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				for x := 1; x < fdr.Width()-1; x++ {
					if ni, ok := downstream(fdr, x, y); ok {
						atomic.AddInt32(&counts[ni], 1)
					}
				}
			}
		}(y0, y1)
	}
	wg.Wait()

	for i, c := range counts {
		deps.SetIndex(i, c)
	}
}

// downstream resolves the in-grid downstream neighbor of (x,y), if any.
// No-data cells, NoFlow cells and edges leaving the grid yield ok=false.
func downstream(fdr *raster.Grid[d8.Direction], x, y int) (ni int, ok bool) {
	if fdr.IsNoData(x, y) {
		return 0, false
	}
	dir := fdr.At(x, y)
	if dir == d8.NoFlow {
		return 0, false
	}
	dx, dy := dir.Offset()
	nx, ny := x+dx, y+dy
	if !fdr.InBounds(nx, ny) {
		return 0, false
	}

	return fdr.Index(nx, ny), true
}
