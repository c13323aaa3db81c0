package d8

// Direction encodes the single downstream neighbor of a cell.
// NoFlow marks cells with no outgoing edge (pits, flats, outlets).
// Codes 1..8 walk counterclockwise from West, matching the DX/DY tables.
type Direction uint8

const (
	// NoFlow marks a cell with no outgoing edge.
	NoFlow Direction = iota
	// West is offset (-1,0).
	West
	// NorthWest is offset (-1,-1).
	NorthWest
	// North is offset (0,-1).
	North
	// NorthEast is offset (1,-1).
	NorthEast
	// East is offset (1,0).
	East
	// SouthEast is offset (1,1).
	SouthEast
	// South is offset (0,1).
	South
	// SouthWest is offset (-1,1).
	SouthWest
)

// DX maps a direction code 1..8 to its x offset. Index 0 (NoFlow) is zero.
var DX = [9]int{0, -1, -1, 0, 1, 1, 1, 0, -1}

// DY maps a direction code 1..8 to its y offset. Index 0 (NoFlow) is zero.
var DY = [9]int{0, 0, -1, -1, -1, 0, 1, 1, 1}

// diagonal marks which of the codes 1..8 are diagonal neighbors.
var diagonal = [9]bool{false, false, true, false, true, false, true, false, true}

var names = [9]string{"NoFlow", "W", "NW", "N", "NE", "E", "SE", "S", "SW"}

// Valid reports whether d belongs to the closed enumeration {NoFlow, 1..8}.
func (d Direction) Valid() bool { return d <= SouthWest }

// Offset returns the (dx,dy) neighbor offset for d. NoFlow yields (0,0).
func (d Direction) Offset() (dx, dy int) { return DX[d], DY[d] }

// IsDiagonal reports whether d points at a diagonal neighbor.
func (d Direction) IsDiagonal() bool { return diagonal[d] }

// String returns the compass name of d, or a placeholder for invalid codes.
func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(?)"
	}

	return names[d]
}
