package xlquick

import "fmt"

// Grid is a rectangular block of cell values, rows outer and columns inner.
type Grid [][]Value

// NewGrid returns a rows×cols grid of Empty values.
func NewGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]Value, cols)
	}
	return g
}

// GridOf builds a grid from plain Go values (nil, strings, numbers). Handy for callers and tests.
func GridOf(rows ...[]any) Grid {
	g := make(Grid, len(rows))
	for r, row := range rows {
		g[r] = make([]Value, len(row))
		for c, x := range row {
			g[r][c] = ValueOf(x)
		}
	}
	return g.Normalize()
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the widest row length.
func (g Grid) Cols() int {
	cols := 0
	for _, row := range g {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// Size returns the grid dimensions.
func (g Grid) Size() Size {
	return Size{Width: g.Cols(), Height: g.Rows()}
}

// At returns the value at (row, col), or Empty when the coordinate is out of bounds.
func (g Grid) At(row, col int) Value {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return Empty()
	}
	return g[row][col]
}

// Normalize pads ragged rows with Empty so every row has the same width.
// The receiver is not modified.
func (g Grid) Normalize() Grid {
	cols := g.Cols()
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Value, cols)
		copy(out[r], row)
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]Value(nil), row...)
	}
	return out
}

// Equal reports whether two grids have the same shape and values.
func (g Grid) Equal(o Grid) bool {
	if len(g) != len(o) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(o[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// CellFunc transforms one cell value. It must not depend on neighbouring cells.
type CellFunc func(Value) (Value, error)

// MapGrid applies f to every cell and returns a new grid of identical shape.
// The first error aborts the transform; the input grid is never modified.
func MapGrid(g Grid, f CellFunc) (Grid, error) {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Value, len(row))
		for c, v := range row {
			nv, err := f(v)
			if err != nil {
				return nil, fmt.Errorf("transform cell %s: %w", CellName(r, c), err)
			}
			out[r][c] = nv
		}
	}
	return out, nil
}

// Pure lifts an error-free per-cell function into a CellFunc.
func Pure(f func(Value) Value) CellFunc {
	return func(v Value) (Value, error) { return f(v), nil }
}

// FillDown fills blank cells with the nearest non-blank value above them.
// Row 0 never changes. The number of filled cells is returned alongside the new grid.
func FillDown(g Grid) (Grid, int) {
	out := g.Clone()
	filled := 0
	for r := 1; r < len(out); r++ {
		for c := range out[r] {
			if !IsBlank(out[r][c]) {
				continue
			}
			above := valueRow(out[r-1]).at(c)
			if IsBlank(above) {
				continue
			}
			out[r][c] = above
			filled++
		}
	}
	return out, filled
}

type valueRow []Value

func (row valueRow) at(c int) Value {
	if c < len(row) {
		return row[c]
	}
	return Empty()
}

// Flatten returns every value in row-major order.
func (g Grid) Flatten() []Value {
	var out []Value
	for _, row := range g {
		out = append(out, row...)
	}
	return out
}

// Strings renders every cell with Value.String.
func (g Grid) Strings() [][]string {
	out := make([][]string, len(g))
	for r, row := range g {
		out[r] = make([]string, len(row))
		for c, v := range row {
			out[r][c] = v.String()
		}
	}
	return out
}
