// File: fill/fill_test.go
package fill_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relief/d8"
	"github.com/katalvlaran/relief/fill"
	"github.com/katalvlaran/relief/raster"
)

// TestBucketFill_Validation checks both fail-fast paths: mismatched shapes
// and an unknown topology, neither of which may touch a cell.
func TestBucketFill_Validation(t *testing.T) {
	check, _ := raster.New[int](5, 4)
	set, _ := raster.New[uint8](4, 4)

	err := fill.BucketFill(check, set, 0, 1, []int{0}, d8.TopoD4)
	assert.ErrorIs(t, err, fill.ErrShapeMismatch)
	err = fill.BucketFillFromEdges(check, set, 0, uint8(1), d8.TopoD4)
	assert.ErrorIs(t, err, fill.ErrShapeMismatch)

	set2 := raster.NewLike[uint8](check)
	err = fill.BucketFill(check, set2, 0, 1, []int{0}, d8.Topology(9))
	assert.ErrorIs(t, err, fill.ErrUnknownTopology)
	for i := 0; i < set2.Size(); i++ {
		require.Zero(t, set2.AtIndex(i), "no cell may be painted on a failed call")
	}
}

// TestBucketFillFromEdges_OceanAndLake paints everything edge-connected
// through value 0, leaving an enclosed lake of zeros untouched.
//
// Check grid (0 = water, 1 = land), the center 0 is landlocked:
//
//	0 0 0 0 0
//	0 1 1 1 0
//	0 1 0 1 0
//	0 1 1 1 0
//	0 0 0 0 0
func TestBucketFillFromEdges_OceanAndLake(t *testing.T) {
	check, err := raster.From2D([][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	sea := raster.NewLike[uint8](check)

	require.NoError(t, fill.BucketFillFromEdges(check, sea, 0, uint8(1), d8.TopoD4))

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := uint8(0)
			if check.At(x, y) == 0 && !(x == 2 && y == 2) {
				want = 1
			}
			assert.Equal(t, want, sea.At(x, y), "(%d,%d)", x, y)
		}
	}
}

// TestBucketFill_DiagonalLeak shows TopoD8 crossing a diagonal gap that
// TopoD4 cannot.
//
//	0 1
//	1 0
func TestBucketFill_DiagonalLeak(t *testing.T) {
	check, _ := raster.From2D([][]int{
		{0, 1},
		{1, 0},
	})

	set4 := raster.NewLike[uint8](check)
	require.NoError(t, fill.BucketFill(check, set4, 0, uint8(1), []int{check.Index(0, 0)}, d8.TopoD4))
	assert.Equal(t, uint8(1), set4.At(0, 0))
	assert.Equal(t, uint8(0), set4.At(1, 1), "D4 must not leak diagonally")

	set8 := raster.NewLike[uint8](check)
	require.NoError(t, fill.BucketFill(check, set8, 0, uint8(1), []int{check.Index(0, 0)}, d8.TopoD8))
	assert.Equal(t, uint8(1), set8.At(1, 1), "D8 reaches the diagonal cell")
}

// TestBucketFill_SetValueBarrier verifies the target grid doubles as the
// visited mask: pre-painted cells block the fill.
func TestBucketFill_SetValueBarrier(t *testing.T) {
	check, _ := raster.From2D([][]int{
		{0, 0, 0},
	})
	set := raster.NewLike[int](check)
	set.Set(1, 0, 9) // barrier in the middle of an otherwise fillable row

	require.NoError(t, fill.BucketFill(check, set, 0, 9, []int{check.Index(0, 0)}, d8.TopoD4))
	assert.Equal(t, 9, set.At(0, 0))
	assert.Equal(t, 9, set.At(1, 0), "barrier keeps its value")
	assert.Equal(t, 0, set.At(2, 0), "fill must not pass a painted cell")
}

// TestBucketFill_SeedsUntouched ensures the caller's seed slice survives.
func TestBucketFill_SeedsUntouched(t *testing.T) {
	check, _ := raster.From2D([][]int{{0, 0, 0, 0}})
	set := raster.NewLike[int](check)
	seeds := []int{0, 3}

	require.NoError(t, fill.BucketFill(check, set, 0, 1, seeds, d8.TopoD4))
	assert.Equal(t, []int{0, 3}, seeds)
}
