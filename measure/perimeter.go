package measure

import (
	"errors"

	"github.com/katalvlaran/relief/d8"
	"github.com/katalvlaran/relief/raster"
)

// PerimMode selects how Perimeter measures the DEM boundary.
type PerimMode int

const (
	// PerimCellCount counts data cells with at least one neighbor outside
	// the grid.
	PerimCellCount PerimMode = iota
	// PerimSquareEdge sums the lengths of cell edges bordering the grid edge
	// or no-data cells.
	PerimSquareEdge
)

// ErrUnknownPerimMode indicates an unrecognized PerimMode; no work is
// performed.
var ErrUnknownPerimMode = errors.New("measure: unknown perimeter mode")

// Perimeter measures the boundary of g's data cells according to mode.
//
//   - PerimCellCount returns the number of data cells touching the grid edge.
//   - PerimSquareEdge returns horizontal-edge count × CellLengthX plus
//     vertical-edge count × CellLengthY, counting every cell edge that faces
//     the outside of the grid or a no-data cell.
//
// Complexity: O(W×H×8) time.
func Perimeter[T comparable](g *raster.Grid[T], mode PerimMode) (float64, error) {
	if mode != PerimCellCount && mode != PerimSquareEdge {
		return 0, ErrUnknownPerimMode
	}

	var cellEdges, horizontalEdges, verticalEdges int
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsNoData(x, y) {
				continue
			}
			for n := d8.Direction(1); n <= d8.SouthWest; n++ {
				dx, dy := n.Offset()
				nx, ny := x+dx, y+dy
				if mode == PerimCellCount {
					if !g.InBounds(nx, ny) {
						cellEdges++
						break
					}
					continue
				}
				// PerimSquareEdge: diagonal neighbors share no edge.
				if !g.InBounds(nx, ny) || g.IsNoData(nx, ny) {
					if dx == 0 {
						horizontalEdges++
					} else if dy == 0 {
						verticalEdges++
					}
				}
			}
		}
	}

	if mode == PerimCellCount {
		return float64(cellEdges), nil
	}

	return float64(horizontalEdges)*g.CellLengthX() + float64(verticalEdges)*g.CellLengthY(), nil
}
