package grid

// RowSelection tracks the single highlighted row of a grid.
type RowSelection struct {
	grid     *Grid
	selected *Row
}

// NewRowSelection returns a selection with nothing highlighted.
func NewRowSelection(g *Grid) *RowSelection {
	return &RowSelection{grid: g}
}

// Select highlights row, replacing any previous selection.
// Rows that are not part of the grid are ignored.
func (s *RowSelection) Select(row *Row) bool {
	if row == nil || s.grid.IndexOf(row) < 0 {
		return false
	}
	s.selected = row
	return true
}

// Selected returns the highlighted row, or nil.
func (s *RowSelection) Selected() *Row {
	return s.selected
}

// IsSelected reports whether row is the highlighted row.
func (s *RowSelection) IsSelected(row *Row) bool {
	return row != nil && s.selected == row
}

// Clear removes the highlight.
func (s *RowSelection) Clear() {
	s.selected = nil
}
