// File: accum/example_test.go
package accum_test

import (
	"fmt"

	"github.com/katalvlaran/relief/accum"
	"github.com/katalvlaran/relief/d8"
	"github.com/katalvlaran/relief/raster"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FlowAccumulation
////////////////////////////////////////////////////////////////////////////////

// ExampleFlowAccumulation demonstrates D8 flow accumulation over a 6×6 grid
// whose 4×4 interior drains uniformly south. Each column accumulates
// independently: 1, 2, 3, 4 from top to bottom of the interior.
//
// Complexity: O(W×H), Memory: O(W×H)
func ExampleFlowAccumulation() {
	fdr, _ := raster.New[d8.Direction](6, 6)
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			fdr.Set(x, y, d8.South)
		}
	}

	acc, _ := accum.FlowAccumulation(fdr)
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			fmt.Printf(" %d", acc.At(x, y))
		}
		fmt.Println()
	}

	// Output:
	//  1 1 1 1
	//  2 2 2 2
	//  3 3 3 3
	//  4 4 4 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: Dependencies
////////////////////////////////////////////////////////////////////////////////

// ExampleDependencies shows the in-degree grid behind the same scenario:
// every interior cell below the first interior row waits on exactly one
// upstream neighbor before it may be processed.
func ExampleDependencies() {
	fdr, _ := raster.New[d8.Direction](6, 6)
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			fdr.Set(x, y, d8.South)
		}
	}

	deps, _ := accum.Dependencies(fdr)
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			fmt.Printf(" %d", deps.At(x, y))
		}
		fmt.Println()
	}

	// Output:
	//  0 0 0 0
	//  1 1 1 1
	//  1 1 1 1
	//  1 1 1 1
}
