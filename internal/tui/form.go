package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JonMunkholm/employee-table/internal/roster"
)

// Form field order; it matches the table columns.
const (
	fieldName = iota
	fieldPosition
	fieldOffice
	fieldAge
	fieldSalary
	fieldCount
)

// form is the add-employee form: one text input per column.
type form struct {
	inputs []textinput.Model
	focus  int
}

func newForm() form {
	placeholders := [fieldCount]string{
		fieldName:     "Tiger Nixon",
		fieldPosition: "System Architect",
		fieldOffice:   "Edinburgh",
		fieldAge:      "61",
		fieldSalary:   "320800",
	}

	f := form{inputs: make([]textinput.Model, fieldCount)}
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		f.inputs[i] = in
	}
	f.inputs[fieldName].CharLimit = 30
	f.inputs[fieldPosition].CharLimit = 50
	f.inputs[fieldOffice].ShowSuggestions = true
	f.inputs[fieldOffice].SetSuggestions(roster.Offices)
	f.inputs[fieldAge].CharLimit = 3
	return f
}

// focusField moves focus to field i, wrapping at both ends.
func (f *form) focusField(i int) tea.Cmd {
	i = (i + fieldCount) % fieldCount
	f.blur()
	f.focus = i
	return f.inputs[i].Focus()
}

func (f *form) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.blur()
	f.focus = 0
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) values() roster.Form {
	return roster.Form{
		Name:     f.inputs[fieldName].Value(),
		Position: f.inputs[fieldPosition].Value(),
		Office:   f.inputs[fieldOffice].Value(),
		Age:      f.inputs[fieldAge].Value(),
		Salary:   f.inputs[fieldSalary].Value(),
	}
}
