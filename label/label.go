package label

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/relief/d8"
	"github.com/katalvlaran/relief/dset"
	"github.com/katalvlaran/relief/raster"
)

// ErrUnknownTopology indicates a topology outside {TopoD4, TopoD8}.
var ErrUnknownTopology = errors.New("label: unknown topology")

// Regions labels every maximal connected region of equal-valued data cells
// with a dense id 1..count, in first-encounter (row-major) order. No-data
// cells receive label 0, which is also the returned grid's no-data sentinel.
//
// The first pass assigns provisional labels and records label adjacencies in
// a disjoint-set forest; the second pass resolves each cell's provisional
// label to its representative and renumbers representatives densely.
//
// Complexity: O(W×H×d·α(L)), Memory: O(W×H).
func Regions[T comparable](g *raster.Grid[T], topo d8.Topology) (*raster.Grid[int32], int, error) {
	if !topo.Valid() {
		return nil, 0, ErrUnknownTopology
	}

	// Only neighbors already visited in row-major order matter during the
	// first pass: the row above plus the cell to the left.
	prior := make([][2]int, 0, 4)
	for _, d := range topo.Offsets() {
		if d[1] < 0 || (d[1] == 0 && d[0] < 0) {
			prior = append(prior, d)
		}
	}

	labels := raster.NewLike[int32](g)
	labels.SetNoData(0)
	ds := dset.NewDisjointDenseIntSet()
	ds.MakeSet(0) // label 0 is reserved for no-data
	next := uint32(0)

	// Pass 1: provisional labels + adjacency unions.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsNoData(x, y) {
				continue
			}
			v := g.At(x, y)
			cell := uint32(0)
			for _, d := range prior {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) || g.IsNoData(nx, ny) || g.At(nx, ny) != v {
					continue
				}
				nl := uint32(labels.At(nx, ny))
				if cell == 0 {
					cell = nl
				} else if nl != cell {
					// Two provisional labels meet: same region after all.
					_ = ds.UnionSet(cell, nl)
				}
			}
			if cell == 0 {
				next++
				ds.MakeSet(next)
				cell = next
			}
			labels.Set(x, y, int32(cell))
		}
	}

	// Pass 2: resolve provisional labels and renumber densely in
	// first-encounter order.
	numbered := bitset.New(uint(next + 1))
	remap := make([]int32, next+1)
	count := int32(0)
	for i := 0; i < g.Size(); i++ {
		l := labels.AtIndex(i)
		if l == 0 {
			continue
		}
		root, _ := ds.FindSet(uint32(l))
		if !numbered.Test(uint(root)) {
			numbered.Set(uint(root))
			count++
			remap[root] = count
		}
		labels.SetIndex(i, remap[root])
	}

	return labels, int(count), nil
}
