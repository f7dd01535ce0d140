// Package grid holds the in-memory table model and the controllers that
// operate on it.
//
// The model is deliberately small: a Grid is an ordered list of rows, a Row
// is a fixed-width list of cells and a Cell is a piece of text. Rows and
// cells are referenced by pointer, so reordering the grid moves a row rather
// than relabelling it, and anything holding a *Row or *Cell keeps pointing at
// the same logical entry across sorts.
//
// # Controllers
//
//   - [SortController] reorders rows when a column header is activated and
//     remembers a direction per column.
//   - [CellEditController] owns the single active [EditSession].
//   - [RowSelection] tracks the highlighted row.
//
// None of the controllers lock. Callers deliver events one at a time and
// every operation completes before it returns.
package grid

import (
	"errors"
	"fmt"
)

// ErrColumnCount is returned when a row does not match the grid's width.
var ErrColumnCount = errors.New("column count mismatch")

// Cell is a single text value in the grid.
type Cell struct {
	Text string
}

// Row is an ordered, fixed-width sequence of cells.
type Row struct {
	Cells []*Cell
}

// Cell returns the cell at column index, or nil when out of range.
func (r *Row) Cell(index int) *Cell {
	if r == nil || index < 0 || index >= len(r.Cells) {
		return nil
	}
	return r.Cells[index]
}

// Texts returns a copy of the row's cell values.
func (r *Row) Texts() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Text
	}
	return out
}

// Grid is the ordered set of rows rendered top to bottom.
type Grid struct {
	headers []string
	rows    []*Row
}

// New creates an empty grid with the given column headers.
// The column count is fixed for the lifetime of the grid.
func New(headers ...string) *Grid {
	h := make([]string, len(headers))
	copy(h, headers)
	return &Grid{headers: h}
}

// Headers returns a copy of the column headers.
func (g *Grid) Headers() []string {
	h := make([]string, len(g.headers))
	copy(h, g.headers)
	return h
}

// Columns returns the fixed column count.
func (g *Grid) Columns() int {
	return len(g.headers)
}

// Len returns the number of rows.
func (g *Grid) Len() int {
	return len(g.rows)
}

// Rows returns the rows in display order. The slice is a copy; the rows
// themselves are shared.
func (g *Grid) Rows() []*Row {
	out := make([]*Row, len(g.rows))
	copy(out, g.rows)
	return out
}

// Row returns the row at display position index, or nil when out of range.
func (g *Grid) Row(index int) *Row {
	if index < 0 || index >= len(g.rows) {
		return nil
	}
	return g.rows[index]
}

// Append adds a row built from texts to the end of the grid.
func (g *Grid) Append(texts ...string) (*Row, error) {
	if len(texts) != len(g.headers) {
		return nil, fmt.Errorf("append row: %w: got %d, want %d",
			ErrColumnCount, len(texts), len(g.headers))
	}

	row := &Row{Cells: make([]*Cell, len(texts))}
	for i, t := range texts {
		row.Cells[i] = &Cell{Text: t}
	}
	g.rows = append(g.rows, row)
	return row, nil
}

// IndexOf returns the display position of row, or -1 if it is not in the grid.
func (g *Grid) IndexOf(row *Row) int {
	for i, r := range g.rows {
		if r == row {
			return i
		}
	}
	return -1
}

// Locate returns the display position of cell.
func (g *Grid) Locate(cell *Cell) (row, col int, ok bool) {
	for i, r := range g.rows {
		for j, c := range r.Cells {
			if c == cell {
				return i, j, true
			}
		}
	}
	return -1, -1, false
}

// CellAt returns the cell at display position (row, col), or nil.
func (g *Grid) CellAt(row, col int) *Cell {
	return g.Row(row).Cell(col)
}

// Snapshot returns the cell values in display order.
func (g *Grid) Snapshot() [][]string {
	out := make([][]string, len(g.rows))
	for i, r := range g.rows {
		out[i] = r.Texts()
	}
	return out
}
