package grid

import (
	"errors"
	"reflect"
	"testing"
)

func TestGrid_Append(t *testing.T) {
	g := New("Name", "Age")

	row, err := g.Append("Airi Satou", "33")
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, want 1", g.Len())
	}
	if g.Row(0) != row {
		t.Error("Row(0) should return the appended row")
	}

	if _, err := g.Append("too", "many", "cells"); !errors.Is(err, ErrColumnCount) {
		t.Errorf("Append() with 3 cells error = %v, want ErrColumnCount", err)
	}
	if g.Len() != 1 {
		t.Errorf("Len() after failed append = %d, want 1", g.Len())
	}
}

func TestGrid_Lookups(t *testing.T) {
	g := newGrid(t, []string{"Name", "Office"},
		[]string{"Tiger Nixon", "Edinburgh"},
		[]string{"Ashton Cox", "Tokyo"},
	)

	cell := g.CellAt(1, 1)
	if cell == nil || cell.Text != "Tokyo" {
		t.Fatalf("CellAt(1, 1) = %v, want Tokyo", cell)
	}

	row, col, ok := g.Locate(cell)
	if !ok || row != 1 || col != 1 {
		t.Errorf("Locate() = (%d, %d, %v), want (1, 1, true)", row, col, ok)
	}

	if _, _, ok := g.Locate(&Cell{Text: "Tokyo"}); ok {
		t.Error("Locate() of a foreign cell should fail")
	}

	if g.CellAt(5, 0) != nil || g.CellAt(0, 5) != nil || g.CellAt(-1, 0) != nil {
		t.Error("CellAt() out of range should return nil")
	}

	if got := g.IndexOf(&Row{}); got != -1 {
		t.Errorf("IndexOf(foreign) = %d, want -1", got)
	}

	want := [][]string{{"Tiger Nixon", "Edinburgh"}, {"Ashton Cox", "Tokyo"}}
	if got := g.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

func TestGrid_HeadersAreCopies(t *testing.T) {
	g := New("Name")
	h := g.Headers()
	h[0] = "changed"
	if g.Headers()[0] != "Name" {
		t.Error("Headers() should return a copy")
	}
}

func TestRowSelection(t *testing.T) {
	g := newGrid(t, []string{"Name", "Age"},
		[]string{"b", "2"},
		[]string{"a", "1"},
	)
	sel := NewRowSelection(g)

	if sel.Selected() != nil {
		t.Error("Selected() should start nil")
	}

	first, second := g.Row(0), g.Row(1)
	if !sel.Select(first) {
		t.Fatal("Select(first) = false, want true")
	}
	if !sel.Select(second) {
		t.Fatal("Select(second) = false, want true")
	}
	if sel.IsSelected(first) {
		t.Error("previous selection should be cleared")
	}
	if !sel.IsSelected(second) {
		t.Error("second row should be selected")
	}

	// Selection follows the row through a sort.
	NewSortController(g).ActivateColumn(1)
	if g.Row(0) != second || sel.Selected() != second {
		t.Error("selected row should move with the sort")
	}

	if sel.Select(&Row{}) {
		t.Error("Select() of a foreign row = true, want false")
	}
	if sel.Selected() != second {
		t.Error("failed Select() should keep the existing selection")
	}

	sel.Clear()
	if sel.Selected() != nil {
		t.Error("Clear() should remove the selection")
	}
}
