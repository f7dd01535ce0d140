package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JonMunkholm/employee-table/internal/roster"
)

/* ----------------------------------------
	MENU TREE
---------------------------------------- */

type MenuItem struct {
	Label   string
	Submenu *Menu
	Action  func() tea.Cmd
}

type Menu struct {
	Title  string
	Items  []MenuItem
	Parent *Menu
}

// linkParents points every submenu at its parent and every "Back" item at
// the menu above it. Back on the root menu closes the menu.
func linkParents(menu *Menu, parent *Menu) {
	menu.Parent = parent

	for i := range menu.Items {
		item := &menu.Items[i]

		if item.Label == "Back" {
			item.Submenu = parent
			continue
		}

		if item.Submenu != nil {
			linkParents(item.Submenu, menu)
		}
	}
}

/* ----------------------------------------
	MENU TREE DEFINITION
---------------------------------------- */

func buildMenuTree(m *Model) *Menu {
	root := &Menu{
		Title: "Table",
		Items: []MenuItem{
			{Label: "Sort by ->", Submenu: loadSortMenu(m)},
			{Label: "Clear selection", Action: func() tea.Cmd {
				m.widget.Selection.Clear()
				return nil
			}},
			{Label: "New employee", Action: m.openForm},
			{Label: "Back"},
		},
	}

	linkParents(root, nil)

	return root
}

func loadSortMenu(m *Model) *Menu {
	items := make([]MenuItem, 0, len(roster.Columns)+1)
	for i, label := range roster.Columns {
		col := i
		items = append(items, MenuItem{Label: label, Action: func() tea.Cmd {
			m.sortColumn(col)
			return nil
		}})
	}
	items = append(items, MenuItem{Label: "Back"})

	return &Menu{Title: "Sort by", Items: items}
}

/* ----------------------------------------
	MENU NAVIGATION
---------------------------------------- */

func (m *Model) openMenu() tea.Cmd {
	m.menu = m.menuRoot
	m.menuCursor = 0
	m.mode = modeMenu
	return nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) tea.Cmd {
	switch {
	case matches(msg, keys.Cancel, keys.Menu):
		m.closeMenu()
	case matches(msg, keys.Up):
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case matches(msg, keys.Down):
		if m.menuCursor < len(m.menu.Items)-1 {
			m.menuCursor++
		}
	case matches(msg, keys.Submit):
		return m.chooseMenuItem(m.menu.Items[m.menuCursor])
	}
	return nil
}

func (m *Model) chooseMenuItem(item MenuItem) tea.Cmd {
	switch {
	case item.Submenu != nil:
		m.menu = item.Submenu
		m.menuCursor = 0
		return nil
	case item.Action != nil:
		m.closeMenu()
		return item.Action()
	case item.Label == "Back":
		m.closeMenu()
	}
	return nil
}

func (m *Model) closeMenu() {
	if m.mode == modeMenu {
		m.mode = modeTable
	}
}
