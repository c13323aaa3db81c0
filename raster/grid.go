package raster

// Grid is a rectangular, row-major array of cells of type T.
// Width and height are fixed at construction. A Grid optionally carries a
// no-data sentinel value and per-cell geometry (lengths along x and y).
type Grid[T comparable] struct {
	width, height  int
	cells          []T
	noData         T
	hasNoData      bool
	cellDX, cellDY float64
}

// New constructs a zero-valued Grid of the given dimensions with unit cells.
// Returns ErrEmptyGrid if width or height is less than one.
// Complexity: O(W×H).
func New[T comparable](width, height int) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}

	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
		cellDX: 1,
		cellDY: 1,
	}, nil
}

// From2D constructs a Grid from a non-empty, rectangular 2D slice,
// deep-copying the input so the Grid owns its cells exclusively.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func From2D[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := &Grid[T]{
		width:  w,
		height: h,
		cells:  make([]T, w*h),
		cellDX: 1,
		cellDY: 1,
	}
	for y := 0; y < h; y++ {
		copy(g.cells[y*w:(y+1)*w], rows[y])
	}

	return g, nil
}

// NewLike constructs a zero-valued Grid of type U sharing tpl's shape and
// cell geometry. The no-data sentinel is not carried over: it belongs to the
// value type, and U's must be set explicitly via SetNoData.
// Complexity: O(W×H).
func NewLike[U, T comparable](tpl *Grid[T]) *Grid[U] {
	return &Grid[U]{
		width:  tpl.width,
		height: tpl.height,
		cells:  make([]U, tpl.width*tpl.height),
		cellDX: tpl.cellDX,
		cellDY: tpl.cellDY,
	}
}

// SameShape reports whether two grids have identical dimensions.
// Paired-grid operations (check/fill, weights) must verify this before
// touching any cell.
func SameShape[T, U comparable](a *Grid[T], b *Grid[U]) bool {
	return a.width == b.width && a.height == b.height
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Size returns the total number of cells (Width × Height).
func (g *Grid[T]) Size() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid[T]) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsEdgeCell reports whether (x,y) lies on the outermost ring of the grid.
func (g *Grid[T]) IsEdgeCell(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// Index maps (x,y) to a row-major linear index: y*Width + x.
func (g *Grid[T]) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major linear index back to (x,y).
func (g *Grid[T]) Coordinate(i int) (x, y int) {
	return i % g.width, i / g.width
}

// At returns the value at (x,y). The caller must ensure (x,y) is in bounds.
func (g *Grid[T]) At(x, y int) T { return g.cells[y*g.width+x] }

// AtIndex returns the value at linear index i.
func (g *Grid[T]) AtIndex(i int) T { return g.cells[i] }

// Set stores v at (x,y). The caller must ensure (x,y) is in bounds.
func (g *Grid[T]) Set(x, y int, v T) { g.cells[y*g.width+x] = v }

// SetIndex stores v at linear index i.
func (g *Grid[T]) SetIndex(i int, v T) { g.cells[i] = v }

// Fill stores v in every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// SetNoData declares v as the grid's no-data sentinel.
// Cells holding exactly v are treated as excluded from computation.
func (g *Grid[T]) SetNoData(v T) {
	g.noData = v
	g.hasNoData = true
}

// NoData returns the currently declared no-data sentinel.
// Meaningful only when HasNoData reports true.
func (g *Grid[T]) NoData() T { return g.noData }

// HasNoData reports whether a no-data sentinel has been declared.
func (g *Grid[T]) HasNoData() bool { return g.hasNoData }

// IsNoData reports whether the cell at (x,y) holds the no-data sentinel.
// Always false when no sentinel has been declared.
func (g *Grid[T]) IsNoData(x, y int) bool {
	return g.hasNoData && g.cells[y*g.width+x] == g.noData
}

// IsNoDataIndex reports whether the cell at linear index i holds the
// no-data sentinel.
func (g *Grid[T]) IsNoDataIndex(i int) bool {
	return g.hasNoData && g.cells[i] == g.noData
}

// NumDataCells counts cells not holding the no-data sentinel.
// Complexity: O(W×H).
func (g *Grid[T]) NumDataCells() int {
	if !g.hasNoData {
		return len(g.cells)
	}
	n := 0
	for i := range g.cells {
		if g.cells[i] != g.noData {
			n++
		}
	}

	return n
}

// SetCellSize declares the physical lengths of a cell along x and y,
// used by measurement utilities. Returns ErrCellSize unless both are positive.
func (g *Grid[T]) SetCellSize(dx, dy float64) error {
	if dx <= 0 || dy <= 0 {
		return ErrCellSize
	}
	g.cellDX = dx
	g.cellDY = dy

	return nil
}

// CellLengthX returns the physical length of a cell along x (default 1).
func (g *Grid[T]) CellLengthX() float64 { return g.cellDX }

// CellLengthY returns the physical length of a cell along y (default 1).
func (g *Grid[T]) CellLengthY() float64 { return g.cellDY }

// CellArea returns the planar area of a single cell.
func (g *Grid[T]) CellArea() float64 { return g.cellDX * g.cellDY }
