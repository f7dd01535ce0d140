package web

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/employee-table/internal/logging"
	"github.com/JonMunkholm/employee-table/internal/roster"
	"github.com/JonMunkholm/employee-table/internal/web/templates"
)

const pageTitle = "Employees"

// handleIndex renders the full page. An edit left open by a page that was
// closed or reloaded is ended with its last reported input, so the fresh
// page is never locked out of editing.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	if sess := s.widget.Edit.Session(); sess != nil {
		s.widget.Events.EditBlurred.Emit(sess.Input())
		logging.FromContext(r.Context()).Info("stale edit ended")
	}
	table := s.tableView()
	s.mu.Unlock()

	form := templates.FormView{Offices: roster.Offices}
	s.render(w, r, http.StatusOK, templates.Page(pageTitle, table, form, s.notes.Active()))
}

// handleNotifications renders the toast container polled by the page.
func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, templates.Notifications(s.notes.Active()))
}

// handleSortColumn activates a column header.
func (s *Server) handleSortColumn(w http.ResponseWriter, r *http.Request) {
	col, err := pathIndex(r, "col")
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if col >= s.widget.Grid.Columns() {
		s.mu.Unlock()
		respondError(w, r, fmt.Errorf("sort column %d: %w", col, errColumnNotFound), http.StatusNotFound)
		return
	}
	dir := s.widget.Sort.Direction(col)
	s.widget.Events.HeaderActivated.Emit(col)
	table := s.tableView()
	s.mu.Unlock()

	logging.FromContext(r.Context()).Info("column sorted", "column", col, "direction", dir.String())
	s.render(w, r, http.StatusOK, templates.Table(table))
}

// handleSelectRow highlights the row at the given display position.
func (s *Server) handleSelectRow(w http.ResponseWriter, r *http.Request) {
	idx, err := pathIndex(r, "row")
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	row := s.widget.Grid.Row(idx)
	if row == nil {
		s.mu.Unlock()
		respondError(w, r, fmt.Errorf("select row %d: %w", idx, errRowNotFound), http.StatusNotFound)
		return
	}
	s.widget.Events.RowActivated.Emit(row)
	table := s.tableView()
	s.mu.Unlock()

	s.render(w, r, http.StatusOK, templates.Table(table))
}

// handleBeginEdit opens the inline editor on a cell. If another cell is
// already being edited the request changes nothing and the current table
// is returned.
func (s *Server) handleBeginEdit(w http.ResponseWriter, r *http.Request) {
	rowIdx, err := pathIndex(r, "row")
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}
	colIdx, err := pathIndex(r, "col")
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	cell := s.widget.Grid.CellAt(rowIdx, colIdx)
	if cell == nil {
		s.mu.Unlock()
		respondError(w, r, fmt.Errorf("edit cell %d/%d: %w", rowIdx, colIdx, errRowNotFound), http.StatusNotFound)
		return
	}
	s.widget.Events.CellActivated.Emit(cell)
	table := s.tableView()
	s.mu.Unlock()

	s.render(w, r, http.StatusOK, templates.Table(table))
}

// handleEditInput records the edit input's contents while the user types.
func (s *Server) handleEditInput(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, fmt.Errorf("edit input: %w: %v", errBadRequest, err), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.widget.Events.EditInput.Emit(r.PostForm.Get("value"))
	s.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// handleEndEdit is posted when the edit input loses focus.
func (s *Server) handleEndEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, fmt.Errorf("end edit: %w: %v", errBadRequest, err), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.widget.Events.EditBlurred.Emit(r.PostForm.Get("value"))
	table := s.tableView()
	s.mu.Unlock()

	s.render(w, r, http.StatusOK, templates.Table(table))
}

// handleAddEmployee validates the form and appends a row. Rejected forms
// answer 422 with the notifications so htmx leaves the table and form alone.
func (s *Server) handleAddEmployee(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, fmt.Errorf("add employee: %w: %v", errBadRequest, err), http.StatusBadRequest)
		return
	}

	form := roster.Form{
		Name:     r.PostForm.Get("name"),
		Position: r.PostForm.Get("position"),
		Office:   r.PostForm.Get("office"),
		Age:      r.PostForm.Get("age"),
		Salary:   r.PostForm.Get("salary"),
	}

	s.mu.Lock()
	s.widget.Events.FormSubmitted.Emit(form)
	res := s.lastSubmit
	table := s.tableView()
	s.mu.Unlock()

	logger := logging.WithFields(r.Context(), "notice", res.Notice.Title)
	if res.Err != nil {
		logger.Info("employee rejected", "reason", roster.ReasonOf(res.Err).String())
		s.render(w, r, http.StatusUnprocessableEntity, templates.Notifications(s.notes.Active()))
		return
	}

	logger.Info("employee added", "rows", len(table.Rows))
	s.render(w, r, http.StatusOK, templates.Table(table))
}

// gridResponse is the JSON snapshot of the table.
type gridResponse struct {
	Headers    []string     `json:"headers"`
	Directions []string     `json:"directions"`
	Rows       [][]string   `json:"rows"`
	Selected   *int         `json:"selected"`
	Editing    *editingJSON `json:"editing"`
}

type editingJSON struct {
	Row      int    `json:"row"`
	Column   int    `json:"column"`
	Snapshot string `json:"snapshot"`
	Input    string `json:"input"`
}

// handleGridJSON returns the table state as JSON.
func (s *Server) handleGridJSON(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	g := s.widget.Grid
	resp := gridResponse{
		Headers: g.Headers(),
		Rows:    g.Snapshot(),
	}
	for i := 0; i < g.Columns(); i++ {
		resp.Directions = append(resp.Directions, s.widget.Sort.Direction(i).String())
	}
	if sel := s.widget.Selection.Selected(); sel != nil {
		idx := g.IndexOf(sel)
		resp.Selected = &idx
	}
	if sess := s.widget.Edit.Session(); sess != nil {
		row, col, _ := g.Locate(sess.Cell())
		resp.Editing = &editingJSON{Row: row, Column: col, Snapshot: sess.Snapshot(), Input: sess.Input()}
	}
	s.mu.Unlock()

	writeJSON(w, resp)
}

// tableView builds the render model. Callers hold s.mu.
func (s *Server) tableView() templates.TableView {
	g := s.widget.Grid
	var view templates.TableView

	for i, h := range g.Headers() {
		view.Headers = append(view.Headers, templates.HeaderView{
			Index: i,
			Label: h,
			Next:  s.widget.Sort.Direction(i).String(),
		})
	}

	for i, row := range g.Rows() {
		rv := templates.RowView{
			Index:    i,
			Selected: s.widget.Selection.IsSelected(row),
		}
		for j, cell := range row.Cells {
			cv := templates.CellView{Row: i, Col: j, Text: cell.Text}
			if s.widget.Edit.Editing(cell) {
				cv.Editing = true
				rv.Editing = true
				cv.Input = s.widget.Edit.Session().Input()
			}
			rv.Cells = append(rv.Cells, cv)
		}
		view.Rows = append(view.Rows, rv)
	}
	return view
}

// render writes an HTML component with the given status.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render failed", "error", err)
	}
}

// pathIndex parses a non-negative integer URL parameter.
func pathIndex(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("%s %q: %w", name, raw, errBadRequest)
	}
	return i, nil
}
