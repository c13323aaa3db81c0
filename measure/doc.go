// Package measure computes scalar summary quantities of a DEM: topographic
// surface area and perimeter.
//
// What:
//
//   - SurfaceArea estimates the 3D surface area of an elevation grid by the
//     triangle method of Jenness (2004): eight triangles per cell, each
//     clipped to the focal cell, summed with a float64 accumulator.
//   - Perimeter measures the DEM boundary, either as a count of cells
//     touching the grid edge (PerimCellCount) or as the total length of cell
//     edges bordering the grid edge or no-data cells (PerimSquareEdge).
//
// Why:
//
//   - Surface-to-planar area ratios quantify terrain ruggedness; perimeter
//     supports shape metrics of masked extents (lakes, basins, burn scars).
//
// Complexity: O(W×H×8) time, O(1) extra memory for both.
//
// Errors:
//
//   - ErrUnknownPerimMode: an unrecognized perimeter mode; fails fast before
//     any work.
//   - ErrAreaBelowPlanar: a cell's computed surface area fell below its
//     planar area by more than a small tolerance, indicating corrupt input.
//
// Reference: Jenness, J.S., 2004. Calculating landscape surface area from
// digital elevation models. Wildlife Society Bulletin 32, 829-839.
package measure
