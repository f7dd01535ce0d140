// Package tui is a terminal front end for the employee table.
//
// Key presses are translated into widget events exactly as the browser's
// clicks are: s activates the cursor column's header, space activates the
// row, enter activates the cell and the editor's enter, tab or esc blurs it.
// Notifications pushed by the widget are drawn under the table until their
// TTL removes them.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JonMunkholm/employee-table/internal/notify"
	"github.com/JonMunkholm/employee-table/internal/widget"
)

// refreshInterval is how often the view redraws to drop expired toasts.
const refreshInterval = 200 * time.Millisecond

type mode int

const (
	modeTable mode = iota
	modeEdit
	modeForm
	modeMenu
)

type tickMsg time.Time

// Model is the bubbletea model for one table.
type Model struct {
	widget *widget.Widget
	notes  *notify.Presenter

	mode     mode
	row, col int

	editor textinput.Model
	form   form

	menuRoot   *Menu
	menu       *Menu
	menuCursor int

	lastSubmit widget.SubmitResult
}

// New creates a model over w. Notifications pushed by w must go to notes.
func New(w *widget.Widget, notes *notify.Presenter) *Model {
	m := &Model{
		widget: w,
		notes:  notes,
		editor: textinput.New(),
		form:   newForm(),
	}
	m.editor.Prompt = ""
	m.menuRoot = buildMenuTree(m)

	w.Submitted.Subscribe(func(res widget.SubmitResult) { m.lastSubmit = res })
	return m
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m, m.updateEdit(msg)
		case modeForm:
			return m, m.updateForm(msg)
		case modeMenu:
			return m, m.updateMenu(msg)
		default:
			return m, m.updateTable(msg)
		}
	}
	return m, nil
}

func (m *Model) updateTable(msg tea.KeyMsg) tea.Cmd {
	g := m.widget.Grid

	switch {
	case matches(msg, keys.Quit):
		return tea.Quit
	case matches(msg, keys.Up):
		if m.row > 0 {
			m.row--
		}
	case matches(msg, keys.Down):
		if m.row < g.Len()-1 {
			m.row++
		}
	case matches(msg, keys.Left):
		if m.col > 0 {
			m.col--
		}
	case matches(msg, keys.Right):
		if m.col < g.Columns()-1 {
			m.col++
		}
	case matches(msg, keys.Sort):
		m.sortColumn(m.col)
	case matches(msg, keys.Select):
		if row := g.Row(m.row); row != nil {
			m.widget.Events.RowActivated.Emit(row)
		}
	case matches(msg, keys.Edit):
		return m.beginEdit()
	case matches(msg, keys.New):
		return m.openForm()
	case matches(msg, keys.Menu):
		return m.openMenu()
	}
	return nil
}

// sortColumn activates col's header and keeps the cursor on the same row.
func (m *Model) sortColumn(col int) {
	g := m.widget.Grid
	row := g.Row(m.row)

	m.widget.Events.HeaderActivated.Emit(col)

	if idx := g.IndexOf(row); idx >= 0 {
		m.row = idx
	}
}

func (m *Model) beginEdit() tea.Cmd {
	cell := m.widget.Grid.CellAt(m.row, m.col)
	if cell == nil {
		return nil
	}

	m.widget.Events.CellActivated.Emit(cell)
	if !m.widget.Edit.Editing(cell) {
		return nil
	}

	m.mode = modeEdit
	m.editor.SetValue(cell.Text)
	m.editor.CursorEnd()
	return m.editor.Focus()
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	if matches(msg, keys.Blur) {
		m.widget.Events.EditBlurred.Emit(m.editor.Value())
		m.editor.Blur()
		m.mode = modeTable
		return nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.widget.Events.EditInput.Emit(m.editor.Value())
	return cmd
}

func (m *Model) openForm() tea.Cmd {
	m.mode = modeForm
	return m.form.focusField(0)
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case matches(msg, keys.Cancel):
		m.form.blur()
		m.mode = modeTable
		return nil
	case matches(msg, keys.Next):
		return m.form.focusField(m.form.focus + 1)
	case matches(msg, keys.Prev):
		return m.form.focusField(m.form.focus - 1)
	case matches(msg, keys.Submit):
		m.widget.Events.FormSubmitted.Emit(m.form.values())
		if m.lastSubmit.Err != nil {
			return nil
		}
		m.form.reset()
		m.mode = modeTable
		m.row = m.widget.Grid.Len() - 1
		return nil
	}
	return m.form.update(msg)
}

func matches(msg tea.KeyMsg, bindings ...key.Binding) bool {
	return key.Matches(msg, bindings...)
}

