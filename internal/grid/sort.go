package grid

// sort.go implements column sorting.
//
// Each column remembers the direction its next activation will use. The
// direction starts Ascending and flips after every sort of that column;
// other columns keep their own state.
//
// Cell text is compared through a SortKey:
//   - text containing at least one digit sorts by the number formed from all
//     of its digits ("$1,200" -> 1200, "1,234 USD" -> 1234)
//   - text without digits sorts as a plain string
//
// When a column mixes both kinds, numeric keys order before text keys.

import (
	"sort"
	"strings"
)

// Direction is a column's sort order.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// multiplier is applied to every non-equal comparison.
func (d Direction) multiplier() int {
	if d == Descending {
		return -1
	}
	return 1
}

func (d Direction) toggle() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// SortKey is the comparable value derived from a cell's text.
type SortKey struct {
	numeric bool
	value   string // digits without leading zeros, or the raw text
}

// KeyOf extracts the sort key for text.
func KeyOf(text string) SortKey {
	var digits strings.Builder
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			digits.WriteByte(c)
		}
	}
	if digits.Len() == 0 {
		return SortKey{value: text}
	}

	d := strings.TrimLeft(digits.String(), "0")
	if d == "" {
		d = "0"
	}
	return SortKey{numeric: true, value: d}
}

// IsNumeric reports whether the key came from digit characters.
func (k SortKey) IsNumeric() bool {
	return k.numeric
}

// String returns the key's value: the digits for a numeric key, otherwise
// the original text.
func (k SortKey) String() string {
	return k.value
}

// Compare returns -1, 0 or +1 ordering k against other.
// Numeric keys compare by magnitude without overflow; any numeric key
// orders before any text key.
func (k SortKey) Compare(other SortKey) int {
	switch {
	case k.numeric && !other.numeric:
		return -1
	case !k.numeric && other.numeric:
		return 1
	case k.numeric:
		if len(k.value) != len(other.value) {
			if len(k.value) < len(other.value) {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(k.value, other.value)
}

// SortController reorders a grid's rows by column.
type SortController struct {
	grid       *Grid
	directions []Direction
}

// NewSortController creates a controller with every column Ascending.
func NewSortController(g *Grid) *SortController {
	return &SortController{
		grid:       g,
		directions: make([]Direction, g.Columns()),
	}
}

// Direction returns the direction the next activation of column will use.
func (s *SortController) Direction(column int) Direction {
	if column < 0 || column >= len(s.directions) {
		return Ascending
	}
	return s.directions[column]
}

// ActivateColumn sorts all rows by the text in column using the column's
// current direction, then flips that direction for the next activation.
// The sort is stable. An out-of-range column is ignored.
func (s *SortController) ActivateColumn(column int) {
	if column < 0 || column >= len(s.directions) {
		return
	}

	dir := s.directions[column]
	rows := s.grid.rows

	keys := make(map[*Row]SortKey, len(rows))
	for _, r := range rows {
		keys[r] = KeyOf(r.Cells[column].Text)
	}

	mult := dir.multiplier()
	sort.SliceStable(rows, func(i, j int) bool {
		return keys[rows[i]].Compare(keys[rows[j]])*mult < 0
	})

	s.directions[column] = dir.toggle()
}
