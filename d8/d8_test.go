// File: d8/d8_test.go
package d8

import "testing"

// TestDirection_Offsets verifies the code→offset table against the compass
// meaning of each direction (y grows downward).
func TestDirection_Offsets(t *testing.T) {
	want := map[Direction][2]int{
		NoFlow:    {0, 0},
		West:      {-1, 0},
		NorthWest: {-1, -1},
		North:     {0, -1},
		NorthEast: {1, -1},
		East:      {1, 0},
		SouthEast: {1, 1},
		South:     {0, 1},
		SouthWest: {-1, 1},
	}
	for d, w := range want {
		dx, dy := d.Offset()
		if dx != w[0] || dy != w[1] {
			t.Errorf("%s.Offset() = (%d,%d); want (%d,%d)", d, dx, dy, w[0], w[1])
		}
	}
}

// TestDirection_ClosedEnumeration checks Valid at the enumeration boundary.
func TestDirection_ClosedEnumeration(t *testing.T) {
	for d := NoFlow; d <= SouthWest; d++ {
		if !d.Valid() {
			t.Errorf("%d should be valid", d)
		}
	}
	if Direction(9).Valid() || Direction(255).Valid() {
		t.Error("codes outside 0..8 must be invalid")
	}
	if got := Direction(9).String(); got != "Direction(?)" {
		t.Errorf("invalid String() = %q", got)
	}
}

// TestDirection_Diagonals checks the diagonal markers used by the surface
// area triangles.
func TestDirection_Diagonals(t *testing.T) {
	diag := map[Direction]bool{
		NorthWest: true, NorthEast: true, SouthEast: true, SouthWest: true,
		West: false, North: false, East: false, South: false, NoFlow: false,
	}
	for d, w := range diag {
		if d.IsDiagonal() != w {
			t.Errorf("%s.IsDiagonal() = %v; want %v", d, !w, w)
		}
	}
}

// TestTopology_Offsets checks neighborhood sizes and the unknown-topology
// guard.
func TestTopology_Offsets(t *testing.T) {
	if got := len(TopoD8.Offsets()); got != 8 {
		t.Errorf("TopoD8 offsets = %d; want 8", got)
	}
	if got := len(TopoD4.Offsets()); got != 4 {
		t.Errorf("TopoD4 offsets = %d; want 4", got)
	}
	if !TopoD8.Valid() || !TopoD4.Valid() {
		t.Error("known topologies reported invalid")
	}
	if Topology(9).Valid() || Topology(9).Offsets() != nil {
		t.Error("unknown topology must be invalid with nil offsets")
	}
	// Every D4 offset must be orthogonal.
	for _, d := range TopoD4.Offsets() {
		if d[0] != 0 && d[1] != 0 {
			t.Errorf("TopoD4 contains diagonal offset %v", d)
		}
	}
}
