// Package d8 defines the closed flow-direction enumeration and neighbor
// topologies used by the terrain algorithms in relief.
//
// What:
//
//   - Direction: a single-flow-direction code per cell — NoFlow or one of the
//     eight compass neighbors, mapped to fixed (dx,dy) offsets via the DX/DY
//     lookup tables indexed 1..8.
//   - Topology: 4- or 8-connected neighborhoods for fill and labeling.
//
// Why:
//
//   - Every cell of a D8 flow-direction grid has at most one outgoing edge;
//     keeping the code→offset mapping in one place lets the dependency
//     counter, the accumulation engine and the utilities agree on geometry.
//
// The y axis grows downward (row index), so North is (0,-1) and South (0,1).
//
// Errors: none; malformed codes are detected by Direction.Valid and surfaced
// by the consuming packages.
package d8
