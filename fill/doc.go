// Package fill provides bucket-fill (flood-fill) painting of one raster
// driven by the values of another.
//
// What:
//
//   - BucketFill paints setValue into a target grid everywhere a seed-reachable
//     region of the check grid holds checkValue, under D4 or D8 connectivity.
//   - BucketFillFromEdges seeds the fill with the entire border ring — the
//     usual way to mark everything connected to the grid edge (oceans,
//     exterior no-data halos).
//
// Why:
//
//   - Depression filling and masking pipelines repeatedly need "paint raster B
//     wherever raster A looks like X, starting from these cells". Keeping the
//     operation generic over both value types avoids one-off copies.
//
// The target grid doubles as the visited set: a cell already holding setValue
// is never revisited, so no separate mask is allocated.
//
// Complexity: O(W×H×d) time, O(W×H) memory for the seed stack, d = 4 or 8.
//
// Errors:
//
//   - ErrShapeMismatch: check and set grids differ in dimensions.
//   - ErrUnknownTopology: a topology outside {TopoD4, TopoD8}.
//
// Both fail fast, before any cell is painted.
package fill
