package measure

import (
	"errors"
	"math"

	"github.com/katalvlaran/relief/d8"
	"github.com/katalvlaran/relief/raster"
)

// ErrAreaBelowPlanar indicates a cell whose computed topographic surface area
// fell below its planar area beyond the clamping tolerance.
var ErrAreaBelowPlanar = errors.New("measure: cell surface area below planar cell area")

// areaFudge absorbs floating-point undershoot: a cell area within areaFudge
// below the planar area is clamped up silently; anything further is an error.
const areaFudge = 1e-4

// SurfaceArea calculates the topographic surface area of elev by the Jenness
// (2004) triangle method. Each cell contributes eight triangles formed with
// consecutive neighbor pairs, shrunk by half to stay within the focal cell.
// Missing or no-data neighbors are treated as lying at the focal elevation.
// Elevations are scaled by zscale before use.
//
// Cells holding the no-data sentinel contribute nothing. If the total falls
// below the planar area of the data cells, the planar area is returned.
//
// The accumulator is float64 throughout; float32 accumulation carries
// unacceptable uncertainty at DEM scale.
//
// Complexity: O(W×H×8) time.
func SurfaceArea(elev *raster.Grid[float64], zscale float64) (float64, error) {
	eucDist := func(a, b float64) float64 { return math.Hypot(a, b) }

	xdist := elev.CellLengthX()
	ydist := elev.CellLengthY()
	planarDiagDist := eucDist(xdist, ydist)

	area := 0.0
	for y := 0; y < elev.Height(); y++ {
		for x := 0; x < elev.Width(); x++ {
			if elev.IsNoData(x, y) {
				continue
			}

			// Summing into cellArea first keeps the per-triangle terms from
			// being swallowed by the running total.
			cellArea := 0.0
			myElev := zscale * elev.At(x, y)

			for n := d8.Direction(1); n <= d8.SouthWest; n++ {
				// Consecutive neighbor, wrapping 8 back to 1.
				nn := n + 1
				if nn > d8.SouthWest {
					nn = 1
				}

				// Each triangle pairs one diagonal and one orthogonal
				// neighbor; half the time the walk order has them swapped.
				dn, ndn := n, nn
				if !dn.IsDiagonal() {
					dn, ndn = ndn, dn
				}

				dnElev := neighborElev(elev, x, y, dn, zscale, myElev)
				ndnElev := neighborElev(elev, x, y, ndn, zscale, myElev)

				planarDistDN := planarDiagDist
				planarDistNDN := ydist
				planarDistBN := xdist
				if _, dy := ndn.Offset(); dy == 0 {
					planarDistNDN = xdist
					planarDistBN = ydist
				}

				// Halved similar-triangle distances constrain the triangle
				// to the focal cell's quarter.
				surfDN := eucDist(planarDistDN, dnElev-myElev) / 2
				surfNDN := eucDist(planarDistNDN, ndnElev-myElev) / 2
				surfBN := eucDist(planarDistBN, ndnElev-dnElev) / 2

				// Heron's formula.
				s := (surfDN + surfNDN + surfBN) / 2
				cellArea += math.Sqrt(s * (s - surfDN) * (s - surfNDN) * (s - surfBN))
			}

			if cellArea < elev.CellArea() {
				if cellArea+areaFudge >= elev.CellArea() {
					cellArea = elev.CellArea()
				} else {
					return 0, ErrAreaBelowPlanar
				}
			}
			area += cellArea
		}
	}

	// A topographic surface can never undercut its planar footprint.
	if planar := float64(elev.NumDataCells()) * elev.CellArea(); area < planar {
		return planar, nil
	}

	return area, nil
}

// neighborElev returns the scaled elevation of (x,y)'s neighbor in direction
// d, or fallback when the neighbor is outside the grid or no-data.
func neighborElev(elev *raster.Grid[float64], x, y int, d d8.Direction, zscale, fallback float64) float64 {
	dx, dy := d.Offset()
	nx, ny := x+dx, y+dy
	if !elev.InBounds(nx, ny) || elev.IsNoData(nx, ny) {
		return fallback
	}

	return zscale * elev.At(nx, ny)
}
