package parse

import (
	"errors"
	"fmt"
)

// ErrRagged is returned when grid rows do not all share the same length.
var ErrRagged = errors.New("parse: ragged grid rows")

// Cell addresses a grid cell in (row, column) order. This matches array
// indexing: row 0 is the top line of the input. The geometry helpers in
// pkg/tools use (x, y) order instead; the two conventions are intentionally
// kept on separate types.
type Cell struct {
	Row, Col int
}

// Grid is a rectangular 2D container with bounds-checked access and
// neighbor queries. Its shape is fixed at construction; only individual
// cells may be rewritten.
type Grid[T any] struct {
	cells  [][]T
	height int
	width  int
}

// NewGrid builds a grid from equal-length rows. The rows are copied, so the
// grid does not alias the caller's slices. Ragged input returns ErrRagged.
func NewGrid[T any](rows [][]T) (*Grid[T], error) {
	g := &Grid[T]{height: len(rows)}
	if g.height > 0 {
		g.width = len(rows[0])
	}
	g.cells = make([][]T, g.height)
	for r, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRagged, r, len(row), g.width)
		}
		g.cells[r] = make([]T, g.width)
		copy(g.cells[r], row)
	}
	return g, nil
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// InBounds reports whether (r, c) addresses a cell.
func (g *Grid[T]) InBounds(r, c int) bool {
	return r >= 0 && r < g.height && c >= 0 && c < g.width
}

// Get returns the cell at (r, c), or def when the coordinate is out of
// bounds. Probing past an edge is not an error; solver code does it
// constantly.
func (g *Grid[T]) Get(r, c int, def T) T {
	if !g.InBounds(r, c) {
		return def
	}
	return g.cells[r][c]
}

// At returns the cell at (r, c) and whether the coordinate was in bounds.
func (g *Grid[T]) At(r, c int) (T, bool) {
	if !g.InBounds(r, c) {
		var zero T
		return zero, false
	}
	return g.cells[r][c], true
}

// Set rewrites the cell at (r, c). It reports whether the coordinate was in
// bounds; out-of-bounds writes are dropped.
func (g *Grid[T]) Set(r, c int, v T) bool {
	if !g.InBounds(r, c) {
		return false
	}
	g.cells[r][c] = v
	return true
}

var (
	orthoDeltas = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagDeltas  = [4]Cell{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Neighbors returns the in-bounds neighbors of (r, c) as a map from
// coordinate to cell value. The four orthogonal offsets are always
// candidates; the four diagonals additionally when diagonals is true.
// Out-of-bounds candidates are silently dropped.
func (g *Grid[T]) Neighbors(r, c int, diagonals bool) map[Cell]T {
	out := make(map[Cell]T, 8)
	g.addNeighbors(out, r, c, orthoDeltas)
	if diagonals {
		g.addNeighbors(out, r, c, diagDeltas)
	}
	return out
}

func (g *Grid[T]) addNeighbors(out map[Cell]T, r, c int, deltas [4]Cell) {
	for _, d := range deltas {
		nr, nc := r+d.Row, c+d.Col
		if g.InBounds(nr, nc) {
			out[Cell{nr, nc}] = g.cells[nr][nc]
		}
	}
}

// Transpose returns a new grid with rows and columns swapped.
func (g *Grid[T]) Transpose() *Grid[T] {
	cells := make([][]T, g.width)
	for c := 0; c < g.width; c++ {
		cells[c] = make([]T, g.height)
		for r := 0; r < g.height; r++ {
			cells[c][r] = g.cells[r][c]
		}
	}
	return &Grid[T]{cells: cells, height: g.width, width: g.height}
}

// Rows returns a fresh copy of the grid's rows. Each call allocates anew,
// so callers may reorder or consume the result freely.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.height)
	for r := range g.cells {
		rows[r] = make([]T, g.width)
		copy(rows[r], g.cells[r])
	}
	return rows
}

// Cols returns a fresh copy of the grid's columns, in column order.
func (g *Grid[T]) Cols() [][]T {
	cols := make([][]T, g.width)
	for c := 0; c < g.width; c++ {
		cols[c] = make([]T, g.height)
		for r := 0; r < g.height; r++ {
			cols[c][r] = g.cells[r][c]
		}
	}
	return cols
}

// Find returns the coordinate of the first cell (scanning rows top to
// bottom, cells left to right) for which match returns true.
func (g *Grid[T]) Find(match func(T) bool) (Cell, bool) {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if match(g.cells[r][c]) {
				return Cell{r, c}, true
			}
		}
	}
	return Cell{}, false
}

func (g *Grid[T]) String() string {
	return fmt.Sprintf("<Grid height=%d width=%d>", g.height, g.width)
}
