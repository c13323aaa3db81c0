// Package relief is an in-memory toolkit for terrain raster analysis —
// from the grid primitives up to flow accumulation and region labeling.
//
// 🚀 What is relief?
//
//	A pure-Go library for working with digital elevation models (DEMs)
//	represented as regular grids:
//		• raster  — generic rectangular grids with no-data handling
//		• d8      — the closed flow-direction enumeration and neighborhoods
//		• accum   — dependency counting + topological flow accumulation
//		• dset    — a dense disjoint-set (union-find) forest, two merge policies
//		• fill    — bucket-fill painting of one raster driven by another
//		• label   — dense region labeling via union-find
//		• measure — topographic surface area and perimeter
//
// ✨ Why choose relief?
//
//   - Algorithm-first – no raster file I/O, no CRS machinery, just the math
//   - Predictable – explicit error contracts, deterministic outputs
//   - Extensible – progress hooks and functional options on the long scans
//
// Quick ASCII example — a 4×4 interior draining uniformly south
// (border ring elided):
//
//	flow directions        accumulation
//	  S S S S                1 1 1 1
//	  S S S S                2 2 2 2
//	  S S S S                3 3 3 3
//	  S S S S                4 4 4 4
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/katalvlaran/relief
package relief
