package grid

// Status is a cell's evaluation status.
type Status int

const (
	OK Status = iota
	ERROR
)

// Cell is the unit of storage at each (row, col). DependsOn and
// DependedBy store flat grid indices rather than pointers: the grid
// owns every cell for its lifetime, so an index is cheaper to keep
// consistent across resizes than a raw reference (see DESIGN.md).
type Cell struct {
	Value   int32
	Formula string
	HasFormula bool
	Status  Status

	DependsOn  map[int]struct{}
	DependedBy map[int]struct{}
}

func newCell() Cell {
	return Cell{
		Status:     OK,
		DependsOn:  make(map[int]struct{}),
		DependedBy: make(map[int]struct{}),
	}
}

// Grid is a dense R×C matrix of Cells, owned exclusively by the engine
// that created it (see the single-threaded concurrency model).
type Grid struct {
	Rows, Cols int
	cells      []Cell
}

// New allocates a Grid with R, C >= 1. Every cell starts at
// value=0, status=OK, formula=none, with empty edge sets.
func New(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic("grid: rows and cols must be >= 1")
	}
	g := &Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
	for i := range g.cells {
		g.cells[i] = newCell()
	}
	return g
}

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index computes the flat index of (row, col). Callers must bounds-check
// first; Index itself does not.
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coords is the inverse of Index.
func (g *Grid) Coords(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// At returns a pointer to the cell at (row, col). It does no bounds
// check of its own (an out-of-range column can land on a cell of another
// row); callers at the coordinator boundary are expected to have already
// bounds-checked.
func (g *Grid) At(row, col int) *Cell {
	return &g.cells[g.Index(row, col)]
}

// Cell returns a pointer to the cell at a flat index.
func (g *Grid) Cell(idx int) *Cell {
	return &g.cells[idx]
}

// AddEdge records that the cell at src depends on the cell at dst,
// maintaining both sides of the symmetric-inverse invariant.
func (g *Grid) AddEdge(src, dst int) {
	g.cells[src].DependsOn[dst] = struct{}{}
	g.cells[dst].DependedBy[src] = struct{}{}
}

// ClearForward removes src from the DependedBy set of every cell it
// depends on, then empties src's DependsOn set.
func (g *Grid) ClearForward(src int) {
	c := &g.cells[src]
	for dst := range c.DependsOn {
		delete(g.cells[dst].DependedBy, src)
	}
	c.DependsOn = make(map[int]struct{})
}
