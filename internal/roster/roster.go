// Package roster defines the employee table: its columns, the seed data
// shown on startup, the form used to add employees and the rules that
// validate it.
//
// The package only produces values. It never touches the grid's sort or
// edit state; the widget appends the row once a form passes validation.
package roster

import (
	"strconv"
	"strings"

	"github.com/JonMunkholm/employee-table/internal/grid"
)

// Column indexes in display order.
const (
	ColName = iota
	ColPosition
	ColOffice
	ColAge
	ColSalary
)

// Columns are the table headers.
var Columns = []string{"Name", "Position", "Office", "Age", "Salary"}

// ColumnIndex resolves a column by header name, ignoring case, or by its
// zero-based index.
func ColumnIndex(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, c := range Columns {
		if strings.EqualFold(c, name) {
			return i, true
		}
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < len(Columns) {
		return i, true
	}
	return 0, false
}

// Offices are the values offered by the office select.
var Offices = []string{
	"Tokyo",
	"Singapore",
	"London",
	"New York",
	"Edinburgh",
	"San Francisco",
}

// seed is the table content shown before any edits.
var seed = [][]string{
	{"Tiger Nixon", "System Architect", "Edinburgh", "61", "$320,800"},
	{"Garrett Winters", "Accountant", "Tokyo", "63", "$170,750"},
	{"Ashton Cox", "Junior Technical Author", "San Francisco", "66", "$86,000"},
	{"Cedric Kelly", "Senior Javascript Developer", "Edinburgh", "22", "$433,060"},
	{"Airi Satou", "Accountant", "Tokyo", "33", "$162,700"},
	{"Brielle Williamson", "Integration Specialist", "New York", "61", "$372,000"},
	{"Herrod Chandler", "Sales Assistant", "San Francisco", "59", "$137,500"},
	{"Rhona Davidson", "Integration Specialist", "Tokyo", "55", "$327,900"},
	{"Colleen Hurst", "Javascript Developer", "San Francisco", "39", "$205,500"},
	{"Sonya Frost", "Software Engineer", "Edinburgh", "23", "$103,600"},
	{"Jena Gaines", "Office Manager", "London", "30", "$90,560"},
	{"Quinn Flynn", "Support Lead", "Edinburgh", "22", "$342,000"},
	{"Charde Marshall", "Regional Director", "San Francisco", "36", "$470,600"},
	{"Haley Kennedy", "Senior Marketing Designer", "London", "43", "$313,500"},
	{"Tatyana Fitzpatrick", "Regional Director", "London", "19", "$385,750"},
	{"Michael Silva", "Marketing Designer", "London", "66", "$198,500"},
}

// Seed returns a copy of the startup rows.
func Seed() [][]string {
	out := make([][]string, len(seed))
	for i, r := range seed {
		out[i] = append([]string(nil), r...)
	}
	return out
}

// NewGrid returns an employee grid, filled with the seed rows when withSeed
// is set.
func NewGrid(withSeed bool) *grid.Grid {
	g := grid.New(Columns...)
	if !withSeed {
		return g
	}
	for _, r := range seed {
		// Seed rows always match Columns.
		_, _ = g.Append(r...)
	}
	return g
}

// Form holds the raw values submitted by the add-employee form.
type Form struct {
	Name     string
	Position string
	Office   string
	Age      string
	Salary   string
}

// Fields returns the form values in column order.
func (f Form) Fields() []string {
	return []string{f.Name, f.Position, f.Office, f.Age, f.Salary}
}

// Cells returns the row to append for a validated form.
// The salary is rendered as currency.
func (f Form) Cells() []string {
	return []string{
		f.Name,
		f.Position,
		f.Office,
		strings.TrimSpace(f.Age),
		FormatSalary(f.Salary),
	}
}

// FormatSalary renders a digit string as dollars with thousands separators:
// "320800" becomes "$320,800".
func FormatSalary(digits string) string {
	digits = strings.TrimSpace(digits)

	var b strings.Builder
	b.WriteByte('$')
	for i := 0; i < len(digits); i++ {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
