// Package templates renders the employee table page and its htmx fragments
// as templ components.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/JonMunkholm/employee-table/internal/notify"
)

// HeaderView is one column header.
type HeaderView struct {
	Index int
	Label string
	Next  string // direction the next click sorts by: "asc" or "desc"
}

// CellView is one table cell.
type CellView struct {
	Row     int
	Col     int
	Text    string
	Editing bool
	Input   string
}

// RowView is one table row in display order.
type RowView struct {
	Index    int
	Selected bool
	Editing  bool // a cell of this row is under edit
	Cells    []CellView
}

// TableView is everything needed to draw the table.
type TableView struct {
	Headers []HeaderView
	Rows    []RowView
}

// FormView describes the add-employee form.
type FormView struct {
	Offices []string
}

// html accumulates output and keeps the first write error.
type html struct {
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *html) int(i int) {
	h.raw(strconv.Itoa(i))
}

func component(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		fn(h)
		return h.err
	})
}

// Page renders the full document.
func Page(title string, table TableView, form FormView, notes []notify.Notification) templ.Component {
	return component(func(h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		h.raw(`<style>` + pageStyle + `</style>`)
		h.raw(`</head><body>`)
		writeTable(h, table)
		writeForm(h, form)
		writeNotifications(h, notes)
		h.raw(`</body></html>`)
	})
}

// Table renders the table element swapped in by every table interaction.
func Table(table TableView) templ.Component {
	return component(func(h *html) { writeTable(h, table) })
}

// Notifications renders the toast container, which polls for expiry.
func Notifications(notes []notify.Notification) templ.Component {
	return component(func(h *html) { writeNotifications(h, notes) })
}

// ErrorAlert renders an error message fragment for htmx requests.
func ErrorAlert(message, action, code string) templ.Component {
	return component(func(h *html) {
		h.raw(`<div class="notification error" role="alert"><h2 class="title">`)
		h.text(message)
		h.raw(`</h2><p>`)
		h.text(action)
		h.raw(` (`)
		h.text(code)
		h.raw(`)</p></div>`)
	})
}

const swapTable = ` hx-target="#employees" hx-swap="outerHTML"`

func writeTable(h *html, t TableView) {
	h.raw(`<table id="employees"><thead><tr>`)
	for _, hd := range t.Headers {
		h.raw(`<th data-next="`)
		h.text(hd.Next)
		h.raw(`" hx-post="/columns/`)
		h.int(hd.Index)
		h.raw(`/sort"` + swapTable + `>`)
		h.text(hd.Label)
		h.raw(`</th>`)
	}
	h.raw(`</tr></thead><tbody>`)

	for _, row := range t.Rows {
		h.raw(`<tr`)
		if row.Selected {
			h.raw(` class="active"`)
		}
		// Clicks inside the editor must not select and re-render the row.
		if !row.Editing {
			h.raw(` hx-post="/rows/`)
			h.int(row.Index)
			h.raw(`/select" hx-trigger="click delay:250ms"` + swapTable)
		}
		h.raw(`>`)
		for _, c := range row.Cells {
			writeCell(h, c)
		}
		h.raw(`</tr>`)
	}
	h.raw(`</tbody></table>`)
}

func writeCell(h *html, c CellView) {
	if c.Editing {
		h.raw(`<td hx-post="/edit/input" hx-trigger="input delay:200ms" hx-include="find .cell-input" hx-swap="none">`)
		h.raw(`<input class="cell-input" name="value" autofocus value="`)
		h.text(c.Input)
		h.raw(`" hx-post="/edit/end" hx-trigger="blur"` + swapTable + `></td>`)
		return
	}

	h.raw(`<td hx-post="/cells/`)
	h.int(c.Row)
	h.raw(`/`)
	h.int(c.Col)
	h.raw(`/edit" hx-trigger="dblclick"` + swapTable + `>`)
	h.text(c.Text)
	h.raw(`</td>`)
}

func writeForm(h *html, f FormView) {
	h.raw(`<form class="new-employee-form" hx-post="/employees"` + swapTable)
	h.raw(` hx-on::after-request="if (event.detail.successful) this.reset()">`)

	writeInput(h, "Name", "name", "text", "Joe Black")
	writeInput(h, "Position", "position", "text", "Employee position")

	h.raw(`<label>Office: <select name="office" data-qa="office" required>`)
	for _, o := range f.Offices {
		h.raw(`<option value="`)
		h.text(o)
		h.raw(`">`)
		h.text(o)
		h.raw(`</option>`)
	}
	h.raw(`</select></label>`)

	writeInput(h, "Age", "age", "number", "Employee age")
	writeInput(h, "Salary", "salary", "number", "Employee salary")

	h.raw(`<button type="submit" class="validate__btn" value="Submit">Save to table</button></form>`)
}

func writeInput(h *html, label, name, typ, placeholder string) {
	h.raw(`<label>`)
	h.text(label)
	h.raw(`: <input name="`)
	h.text(name)
	h.raw(`" type="`)
	h.text(typ)
	h.raw(`" data-qa="`)
	h.text(name)
	h.raw(`" placeholder="`)
	h.text(placeholder)
	h.raw(`"></label>`)
}

func writeNotifications(h *html, notes []notify.Notification) {
	h.raw(`<div id="notifications" hx-get="/notifications" hx-trigger="every 500ms" hx-swap="outerHTML">`)
	for _, n := range notes {
		h.raw(`<div class="notification `)
		h.text(string(n.Kind))
		h.raw(`" data-qa="notification" id="n-`)
		h.text(n.ID)
		h.raw(`"><h2 class="title">`)
		h.text(n.Title)
		h.raw(`</h2><p>`)
		h.text(n.Description)
		h.raw(`</p></div>`)
	}
	h.raw(`</div>`)
}

const pageStyle = `
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th { cursor: pointer; user-select: none; }
th[data-next="desc"]::after { content: " \25B2"; }
th, td { padding: .4rem .8rem; border-bottom: 1px solid #ddd; text-align: left; }
tr.active { background: #dbeafe; }
.cell-input { width: 100%; }
.new-employee-form { display: flex; flex-direction: column; gap: .5rem; max-width: 20rem; margin-top: 2rem; }
#notifications { position: fixed; top: 1rem; right: 1rem; }
.notification { padding: .5rem 1rem; margin-bottom: .5rem; border-radius: 4px; color: #fff; }
.notification.error { background: #dc2626; }
.notification.success { background: #16a34a; }
.notification.warning { background: #d97706; }
`
