package roster

import (
	"reflect"
	"testing"
)

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "5", want: "$5"},
		{in: "500", want: "$500"},
		{in: "1200", want: "$1,200"},
		{in: "10000", want: "$10,000"},
		{in: "320800", want: "$320,800"},
		{in: "1234567", want: "$1,234,567"},
		{in: " 86000 ", want: "$86,000"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FormatSalary(tt.in); got != tt.want {
				t.Errorf("FormatSalary(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestForm_Cells(t *testing.T) {
	f := Form{Name: "Joe Black", Position: "Manager", Office: "Tokyo", Age: " 40", Salary: "99000"}
	want := []string{"Joe Black", "Manager", "Tokyo", "40", "$99,000"}
	if got := f.Cells(); !reflect.DeepEqual(got, want) {
		t.Errorf("Cells() = %v, want %v", got, want)
	}
}

func TestNewGrid(t *testing.T) {
	empty := NewGrid(false)
	if empty.Len() != 0 {
		t.Errorf("NewGrid(false).Len() = %d, want 0", empty.Len())
	}
	if empty.Columns() != len(Columns) {
		t.Errorf("Columns() = %d, want %d", empty.Columns(), len(Columns))
	}

	seeded := NewGrid(true)
	if seeded.Len() != len(Seed()) {
		t.Errorf("NewGrid(true).Len() = %d, want %d", seeded.Len(), len(Seed()))
	}
}

func TestSeed_IsCopy(t *testing.T) {
	s := Seed()
	s[0][0] = "changed"
	if Seed()[0][0] == "changed" {
		t.Error("Seed() should return a copy")
	}
}

func TestColumnIndex(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"Name", ColName, true},
		{"salary", ColSalary, true},
		{" Office ", ColOffice, true},
		{"3", ColAge, true},
		{"5", 0, false},
		{"-1", 0, false},
		{"Department", 0, false},
	}

	for _, tt := range tests {
		got, ok := ColumnIndex(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ColumnIndex(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
