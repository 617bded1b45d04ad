// Package tools is a grab bag of helpers for puzzle solvers: an (x, y)
// addressed board, 2D/3D points, geometry, graph search, interval and
// modular-arithmetic utilities.
//
// Note the coordinate convention: tools addresses cells as (x, y) with x
// growing rightward and y growing downward, matching how puzzle geometry is
// usually described. The parser-built parse.Grid addresses cells as
// (row, col) instead. The two are deliberately separate types; pick the one
// whose convention your call site thinks in.
package tools

// Pt is a 2D point in (x, y) order.
type Pt struct {
	X, Y int
}

// Pt3 is a 3D point.
type Pt3 struct {
	X, Y, Z int
}

// Add returns the vector sum of p and q.
func (p Pt) Add(q Pt) Pt { return Pt{p.X + q.X, p.Y + q.Y} }

// Manhattan returns the manhattan distance between p and q.
func (p Pt) Manhattan(q Pt) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Board is a 2D cell container addressed in (x, y) order. Unlike
// parse.Grid it trusts the caller on bounds for direct access and is meant
// as pathfinding scaffolding.
type Board[T any] struct {
	cells  [][]T // row-major: cells[y][x]
	width  int
	height int
}

// NewBoard builds a board from row-major data (outer index y, inner x).
// Width is taken from the first row.
func NewBoard[T any](rows [][]T) *Board[T] {
	b := &Board[T]{cells: rows, height: len(rows)}
	if b.height > 0 {
		b.width = len(rows[0])
	}
	return b
}

// Width returns the number of columns.
func (b *Board[T]) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board[T]) Height() int { return b.height }

// InBounds reports whether (x, y) addresses a cell.
func (b *Board[T]) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y).
func (b *Board[T]) At(x, y int) T { return b.cells[y][x] }

// Set rewrites the cell at (x, y).
func (b *Board[T]) Set(x, y int, v T) { b.cells[y][x] = v }

// Neighbors returns the in-bounds neighbor coordinates of (x, y): the four
// orthogonal candidates, plus the four diagonals when diagonal is true.
func (b *Board[T]) Neighbors(x, y int, diagonal bool) []Pt {
	deltas := []Pt{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	if diagonal {
		deltas = append(deltas, Pt{-1, -1}, Pt{-1, 1}, Pt{1, -1}, Pt{1, 1})
	}
	out := make([]Pt, 0, len(deltas))
	for _, d := range deltas {
		nx, ny := x+d.X, y+d.Y
		if b.InBounds(nx, ny) {
			out = append(out, Pt{nx, ny})
		}
	}
	return out
}

// Each calls fn for every cell in reading order (y outer, x inner).
func (b *Board[T]) Each(fn func(x, y int, v T)) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			fn(x, y, b.cells[y][x])
		}
	}
}

// ShoelaceArea returns the area of the simple polygon described by
// vertices, via the shoelace formula.
func ShoelaceArea(vertices []Pt) float64 {
	area := 0
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += vertices[i].X * vertices[j].Y
		area -= vertices[j].X * vertices[i].Y
	}
	return float64(abs(area)) / 2
}

// BresenhamLine returns the raster points of the line from p1 to p2,
// endpoints included.
func BresenhamLine(p1, p2 Pt) []Pt {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y
	dx, dy := abs(x2-x1), -abs(y2-y1)
	sx, sy := 1, 1
	if x1 >= x2 {
		sx = -1
	}
	if y1 >= y2 {
		sy = -1
	}
	err := dx + dy

	var points []Pt
	for {
		points = append(points, Pt{x1, y1})
		if x1 == x2 && y1 == y2 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}
