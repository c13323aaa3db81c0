package d8

// Topology selects neighbor connectivity for fill and labeling operations:
// orthogonal only (TopoD4) or including diagonals (TopoD8).
type Topology int

const (
	// TopoD8 uses all eight neighbors.
	TopoD8 Topology = iota
	// TopoD4 uses the orthogonal neighbors only: W, N, E, S.
	TopoD4
)

var (
	offsetsD8 = [][2]int{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}}
	offsetsD4 = [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
)

// Valid reports whether t is a known topology.
func (t Topology) Valid() bool { return t == TopoD8 || t == TopoD4 }

// Offsets returns the neighbor offsets for t, in direction-table order.
// Returns nil for an unknown topology; callers should check Valid first.
func (t Topology) Offsets() [][2]int {
	switch t {
	case TopoD8:
		return offsetsD8
	case TopoD4:
		return offsetsD4
	default:
		return nil
	}
}
