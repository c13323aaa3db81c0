// Package accum computes D8 flow accumulation over a flow-direction grid.
//
// What:
//
//   - Dependencies derives each cell's in-degree in the implicit flow graph:
//     the number of upstream neighbors draining into it.
//   - FlowAccumulation propagates contributing weight downstream in
//     topological order (Kahn's algorithm fused with additive propagation):
//     cells become ready when their dependency count reaches zero, are
//     processed exactly once, and pass their finalized total to their single
//     downstream neighbor.
//
// Why:
//
//   - Flow accumulation (upstream contributing area) is the basic derived
//     quantity of hydrological terrain analysis: stream extraction, wetness
//     indices and erosion models all start from it.
//   - Dependency counting gives a linear-time topological order without
//     sorting, and makes cyclic or inconsistent direction data detectable.
//
// The outermost ring of the grid is an unprocessed boundary: border cells are
// never scanned as flow sources and never receive flow, only bounds checks
// ever look at them. Input grids should carry a one-cell border (as DEM
// processing chains conventionally do).
//
// Complexity:
//
//   - Dependencies:     O(W×H) time, O(W×H) memory. The scan is independent
//     per cell; WithWorkers runs it across row stripes with atomic
//     increments and a barrier before returning.
//   - FlowAccumulation: O(W×H) time, O(W×H) memory. Propagation is strictly
//     sequential: the add/decrement/enqueue step is not commutative under
//     races.
//
// Options:
//
//   - WithWeights: per-cell base weight grid (default: 1 per cell).
//   - WithWorkers: parallel dependency scan across n goroutines.
//   - WithOnCell: progress hook invoked per finalized cell.
//
// Errors:
//
//   - DirectionError: a code outside the closed D8 enumeration.
//   - ErrShapeMismatch: a weights or dependency grid of different dimensions.
//   - CycleError: a dependency count fell below zero during propagation,
//     implying a cycle or a miscounted dependency grid; the offending cell's
//     coordinates are reported and the operation aborts.
//
// Numeric note: accumulation totals share int64 with the base weights and
// overflow is not guarded; size weights so the maximum upstream total fits.
// AccumNoData (-1) is re-stamped onto every originally no-data cell after the
// queue drains and is distinct from any valid total.
package accum
