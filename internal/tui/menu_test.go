package tui

import (
	"testing"

	"github.com/JonMunkholm/employee-table/internal/roster"
)

func TestLinkParents(t *testing.T) {
	m := newModel(t)
	root := m.menuRoot

	if root.Parent != nil {
		t.Error("root menu should have no parent")
	}
	sortMenu := root.Items[0].Submenu
	if sortMenu == nil || sortMenu.Parent != root {
		t.Fatal("sort submenu should point back at root")
	}
	back := sortMenu.Items[len(sortMenu.Items)-1]
	if back.Label != "Back" || back.Submenu != root {
		t.Errorf("Back item = %+v, want submenu root", back)
	}
	if len(sortMenu.Items) != len(roster.Columns)+1 {
		t.Errorf("sort items = %d, want one per column plus Back", len(sortMenu.Items))
	}
}

func TestMenu_SortByAge(t *testing.T) {
	m := newModel(t)

	press(m, runes("m"))
	if m.mode != modeMenu {
		t.Fatalf("mode = %v, want menu", m.mode)
	}

	// Sort by -> Age
	press(m, keyEnter, keyDown, keyDown, keyDown, keyEnter)
	if m.mode != modeTable {
		t.Fatalf("mode = %v, want table after an action", m.mode)
	}
	if got := m.widget.Grid.CellAt(0, roster.ColAge).Text; got != "19" {
		t.Errorf("youngest first = %q, want 19", got)
	}
}

func TestMenu_BackAndClose(t *testing.T) {
	m := newModel(t)

	press(m, runes("m"), keyEnter)
	if m.menu == m.menuRoot {
		t.Fatal("enter on Sort by should open the submenu")
	}

	// Last item is Back.
	for range roster.Columns {
		press(m, keyDown)
	}
	press(m, keyEnter)
	if m.menu != m.menuRoot {
		t.Error("Back should return to the root menu")
	}

	press(m, keyEsc)
	if m.mode != modeTable {
		t.Error("esc should close the menu")
	}
}

func TestMenu_ClearSelection(t *testing.T) {
	m := newModel(t)

	press(m, keySpace)
	if m.widget.Selection.Selected() == nil {
		t.Fatal("space should select the row")
	}

	press(m, runes("m"), keyDown, keyEnter)
	if m.widget.Selection.Selected() != nil {
		t.Error("Clear selection should drop the selected row")
	}
}
