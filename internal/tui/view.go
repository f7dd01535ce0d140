package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/JonMunkholm/employee-table/internal/notify"
	"github.com/JonMunkholm/employee-table/internal/roster"
)

func (m *Model) View() string {
	var sections []string
	sections = append(sections, titleStyle.Render("Employees"))

	switch m.mode {
	case modeForm:
		sections = append(sections, m.formView())
	case modeMenu:
		sections = append(sections, m.tableView(), m.menuView())
	default:
		sections = append(sections, m.tableView())
	}

	if toasts := toastsView(m.notes.Active()); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, m.helpView())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) tableView() string {
	g := m.widget.Grid
	headers := g.Headers()
	rows := g.Rows()

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h) + 2 // sort arrow
	}
	for _, row := range rows {
		for i, c := range row.Cells {
			widths[i] = max(widths[i], lipgloss.Width(c.Text))
		}
	}
	if sess := m.widget.Edit.Session(); sess != nil {
		if _, col, ok := g.Locate(sess.Cell()); ok {
			widths[col] = max(widths[col], lipgloss.Width(m.editor.Value())+1)
		}
	}

	lines := make([]string, 0, len(rows)+1)

	cells := make([]string, len(headers))
	for i, h := range headers {
		label := h + " " + arrow(m.widget.Sort.Direction(i).String())
		style := headerStyle
		if i == m.col {
			style = headerCursorStyle
		}
		cells[i] = style.Width(widths[i] + 2).Render(label)
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))

	for r, row := range rows {
		selected := m.widget.Selection.IsSelected(row)
		cells := make([]string, len(row.Cells))
		for c, cell := range row.Cells {
			text := cell.Text
			style := cellStyle
			switch {
			case m.widget.Edit.Editing(cell):
				text = m.editor.View()
				style = editingStyle
			case m.mode == modeTable && r == m.row && c == m.col:
				style = cursorStyle
			case selected:
				style = selectedStyle
			}
			cells[c] = style.Width(widths[c] + 2).Render(text)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return strings.Join(lines, "\n")
}

// arrow shows which way the next activation will sort.
func arrow(next string) string {
	if next == "desc" {
		return "↓"
	}
	return "↑"
}

func (m *Model) formView() string {
	lines := []string{menuTitleStyle.Render("New employee")}
	for i, label := range roster.Columns {
		lines = append(lines, labelStyle.Render(label)+m.form.inputs[i].View())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) menuView() string {
	lines := []string{menuTitleStyle.Render(m.menu.Title)}
	for i, item := range m.menu.Items {
		if i == m.menuCursor {
			lines = append(lines, menuCursorStyle.Render("> "+item.Label))
			continue
		}
		lines = append(lines, menuItemStyle.Render("  "+item.Label))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(strings.Join(lines, "\n"))
}

func toastsView(notes []notify.Notification) string {
	if len(notes) == 0 {
		return ""
	}
	boxes := make([]string, len(notes))
	for i, n := range notes {
		style := toastStyle.BorderForeground(toastColors[string(n.Kind)])
		boxes[i] = style.Render(lipgloss.NewStyle().Bold(true).Render(n.Title) + "\n" + n.Description)
	}
	return lipgloss.JoinVertical(lipgloss.Left, boxes...)
}

func (m *Model) helpView() string {
	switch m.mode {
	case modeEdit:
		return helpLine(keys.Blur)
	case modeForm:
		return helpLine(keys.Next, keys.Prev, keys.Submit, keys.Cancel)
	case modeMenu:
		return helpLine(keys.Up, keys.Down, keys.Submit, keys.Cancel)
	default:
		return helpLine(keys.Up, keys.Down, keys.Left, keys.Right, keys.Sort, keys.Select, keys.Edit, keys.New, keys.Menu, keys.Quit)
	}
}
