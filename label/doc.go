// Package label assigns dense region labels to connected cells of equal
// value, merging provisional labels with a disjoint-set forest.
//
// What:
//
//   - Regions scans a grid once, handing each data cell either the label of
//     an equal-valued, already-visited neighbor or a fresh provisional label;
//     provisional labels that meet across a region are merged via UnionSet.
//     A resolve pass rewrites every cell to a dense final label 1..count.
//   - No-data cells receive label 0.
//
// Why:
//
//   - Watershed, depression and land-cover processing all start from "which
//     cells form one region"; the two-pass union-find formulation does it in
//     linear time without recursion or a BFS frontier.
//
// Complexity: O(W×H×d·α(L)) time with d = 4 or 8 and L provisional labels;
// O(W×H) memory.
//
// Errors:
//
//   - ErrUnknownTopology: a topology outside {TopoD4, TopoD8}; fails fast.
package label
