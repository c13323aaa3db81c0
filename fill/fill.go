package fill

import (
	"errors"

	"github.com/katalvlaran/relief/d8"
	"github.com/katalvlaran/relief/raster"
)

var (
	// ErrShapeMismatch indicates check and set grids of differing dimensions.
	ErrShapeMismatch = errors.New("fill: check and set grids must have the same dimensions")
	// ErrUnknownTopology indicates a topology outside {TopoD4, TopoD8}.
	ErrUnknownTopology = errors.New("fill: unknown topology")
)

// BucketFill paints setValue into set wherever a region of check holding
// checkValue is reachable from the seed cells (linear indices) under the
// given topology. Cells of set already holding setValue act as barriers, so
// the fill needs no separate visited mask.
//
// The seeds slice is not modified; an internal LIFO stack drives the fill.
//
// Complexity: O(W×H×d) time, d = 4 or 8.
func BucketFill[T, U comparable](
	check *raster.Grid[T],
	set *raster.Grid[U],
	checkValue T,
	setValue U,
	seeds []int,
	topo d8.Topology,
) error {
	if !raster.SameShape(check, set) {
		return ErrShapeMismatch
	}
	if !topo.Valid() {
		return ErrUnknownTopology
	}
	offsets := topo.Offsets()

	stack := append(make([]int, 0, len(seeds)), seeds...)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if check.AtIndex(c) != checkValue || set.AtIndex(c) == setValue {
			continue
		}
		set.SetIndex(c, setValue)

		cx, cy := check.Coordinate(c)
		for _, d := range offsets {
			nx, ny := cx+d[0], cy+d[1]
			if !check.InBounds(nx, ny) {
				continue
			}
			ni := check.Index(nx, ny)
			if check.AtIndex(ni) == checkValue && set.AtIndex(ni) != setValue {
				stack = append(stack, ni)
			}
		}
	}

	return nil
}

// BucketFillFromEdges runs BucketFill seeded with every cell of the border
// ring, painting everything connected to the grid edge.
func BucketFillFromEdges[T, U comparable](
	check *raster.Grid[T],
	set *raster.Grid[U],
	checkValue T,
	setValue U,
	topo d8.Topology,
) error {
	if !raster.SameShape(check, set) {
		return ErrShapeMismatch
	}

	seeds := make([]int, 0, 2*check.Width()+2*check.Height())
	for y := 0; y < check.Height(); y++ {
		seeds = append(seeds, check.Index(0, y), check.Index(check.Width()-1, y))
	}
	for x := 0; x < check.Width(); x++ {
		seeds = append(seeds, check.Index(x, 0), check.Index(x, check.Height()-1))
	}

	return BucketFill(check, set, checkValue, setValue, seeds, topo)
}
