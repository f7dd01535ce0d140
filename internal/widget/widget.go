// Package widget assembles the employee table: the grid, its controllers,
// the add-employee form and the notification presenter.
//
// Rendering adapters never call the controllers directly. They emit events
// on [Widget.Events] and read state back for display; the widget subscribes
// the controllers to those events when it is created:
//
//	w := widget.New(roster.NewGrid(true), notify.NewPresenter(ttl))
//	w.Events.HeaderActivated.Emit(roster.ColSalary)
//	w.Events.CellActivated.Emit(w.Grid.CellAt(0, roster.ColPosition))
//	w.Events.EditBlurred.Emit("Lead Manager")
//
// A Widget is not safe for concurrent use. Adapters that receive input on
// several goroutines must deliver events one at a time.
package widget

import (
	"log/slog"

	"github.com/JonMunkholm/employee-table/internal/event"
	"github.com/JonMunkholm/employee-table/internal/grid"
	"github.com/JonMunkholm/employee-table/internal/notify"
	"github.com/JonMunkholm/employee-table/internal/roster"
)

// Notifier displays a notification. Implementations must not block.
type Notifier interface {
	Push(n notify.Notification) notify.Notification
}

// Events are the inputs a rendering surface produces.
type Events struct {
	// HeaderActivated carries the index of the clicked column header.
	HeaderActivated event.Source[int]

	// RowActivated carries the clicked row.
	RowActivated event.Source[*grid.Row]

	// CellActivated carries the double-clicked cell.
	CellActivated event.Source[*grid.Cell]

	// EditInput carries the edit input's contents as the user types.
	EditInput event.Source[string]

	// EditBlurred carries the edit input's final contents when it loses focus.
	EditBlurred event.Source[string]

	// FormSubmitted carries the add-employee form values.
	FormSubmitted event.Source[roster.Form]
}

// SubmitResult reports what happened to a submitted form.
type SubmitResult struct {
	Form   roster.Form
	Row    *grid.Row // Appended row; nil when validation failed
	Err    error     // Validation failure; nil on success
	Notice notify.Notification
}

// Widget is one interactive employee table.
type Widget struct {
	Grid      *grid.Grid
	Sort      *grid.SortController
	Edit      *grid.CellEditController
	Selection *grid.RowSelection

	// Events receives input from the rendering surface.
	Events Events

	// Submitted fires after every form submission, valid or not.
	Submitted event.Source[SubmitResult]

	notifier Notifier
	logger   *slog.Logger
}

// Option configures a Widget.
type Option func(*Widget)

// WithLogger sets the logger used for event tracing.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a widget over g and wires its controllers to Events.
func New(g *grid.Grid, n Notifier, opts ...Option) *Widget {
	w := &Widget{
		Grid:      g,
		Sort:      grid.NewSortController(g),
		Edit:      grid.NewCellEditController(),
		Selection: grid.NewRowSelection(g),
		notifier:  n,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.bind()
	return w
}

func (w *Widget) bind() {
	w.Events.HeaderActivated.Subscribe(w.sortColumn)
	w.Events.RowActivated.Subscribe(w.selectRow)
	w.Events.CellActivated.Subscribe(w.beginEdit)
	w.Events.EditInput.Subscribe(w.Edit.SetInput)
	w.Events.EditBlurred.Subscribe(w.endEdit)
	w.Events.FormSubmitted.Subscribe(w.submit)
}

func (w *Widget) sortColumn(col int) {
	dir := w.Sort.Direction(col)
	w.Sort.ActivateColumn(col)
	w.logger.Debug("column sorted",
		"column", col,
		"direction", dir.String(),
		"rows", w.Grid.Len(),
	)
}

func (w *Widget) selectRow(row *grid.Row) {
	if w.Selection.Select(row) {
		w.logger.Debug("row selected", "row", w.Grid.IndexOf(row))
	}
}

func (w *Widget) beginEdit(cell *grid.Cell) {
	if !w.Edit.BeginEdit(cell) {
		w.logger.Debug("edit ignored", "reason", "session active or no cell")
		return
	}
	row, col, _ := w.Grid.Locate(cell)
	w.logger.Debug("edit started", "row", row, "column", col)
}

func (w *Widget) endEdit(input string) {
	w.Edit.SetInput(input)
	outcome := w.Edit.EndEdit()
	if outcome != grid.EditNone {
		w.logger.Debug("edit finished", "outcome", outcome.String())
	}
}

func (w *Widget) submit(f roster.Form) {
	res := SubmitResult{Form: f}

	if err := roster.Validate(f); err != nil {
		res.Err = err
		w.logger.Debug("employee rejected",
			"reason", roster.ReasonOf(err).String(),
			"error", err,
		)
	} else if row, err := w.Grid.Append(f.Cells()...); err != nil {
		// Form.Cells always matches the roster columns.
		res.Err = err
		w.logger.Error("append employee", "error", err)
	} else {
		res.Row = row
		w.logger.Debug("employee added", "rows", w.Grid.Len())
	}

	res.Notice = roster.Notice(res.Err)
	if w.notifier != nil {
		res.Notice = w.notifier.Push(res.Notice)
	}

	w.Submitted.Emit(res)
}
