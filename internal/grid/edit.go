package grid

import "strings"

// EditSession is the single in-progress edit of one cell.
type EditSession struct {
	cell     *Cell
	snapshot string
	input    string
}

// Cell returns the cell under edit.
func (s *EditSession) Cell() *Cell { return s.cell }

// Snapshot returns the cell's text from before the edit began.
func (s *EditSession) Snapshot() string { return s.snapshot }

// Input returns the current contents of the edit input.
func (s *EditSession) Input() string { return s.input }

// EditOutcome reports how an edit ended.
type EditOutcome int

const (
	// EditNone means no session was active.
	EditNone EditOutcome = iota
	// EditCommitted means the trimmed input replaced the cell text.
	EditCommitted
	// EditRestored means the input was blank and the snapshot was kept.
	EditRestored
)

func (o EditOutcome) String() string {
	switch o {
	case EditCommitted:
		return "committed"
	case EditRestored:
		return "restored"
	default:
		return "none"
	}
}

// CellEditController owns at most one EditSession at a time.
//
// States: Idle -> Editing on BeginEdit, Editing -> Idle on EndEdit.
// BeginEdit while Editing does nothing; the first request wins until
// that session ends.
type CellEditController struct {
	session *EditSession
}

// NewCellEditController returns an idle controller.
func NewCellEditController() *CellEditController {
	return &CellEditController{}
}

// Active reports whether an edit session is in progress.
func (c *CellEditController) Active() bool {
	return c.session != nil
}

// Session returns the active session, or nil when idle.
func (c *CellEditController) Session() *EditSession {
	return c.session
}

// Editing reports whether cell is the one under edit.
func (c *CellEditController) Editing(cell *Cell) bool {
	return c.session != nil && c.session.cell == cell
}

// BeginEdit starts editing cell with the input pre-filled from its text.
// It returns false, leaving everything untouched, when a session is already
// active or cell is nil.
func (c *CellEditController) BeginEdit(cell *Cell) bool {
	if c.session != nil || cell == nil {
		return false
	}
	c.session = &EditSession{
		cell:     cell,
		snapshot: cell.Text,
		input:    cell.Text,
	}
	return true
}

// SetInput replaces the edit input's contents. It does nothing when idle.
func (c *CellEditController) SetInput(text string) {
	if c.session == nil {
		return
	}
	c.session.input = text
}

// EndEdit finishes the active session. Input that is blank after trimming
// restores the snapshot; anything else is committed trimmed. Either way the
// session is released so a new edit can begin.
func (c *CellEditController) EndEdit() EditOutcome {
	s := c.session
	if s == nil {
		return EditNone
	}

	outcome := EditCommitted
	if value := strings.TrimSpace(s.input); value == "" {
		s.cell.Text = s.snapshot
		outcome = EditRestored
	} else {
		s.cell.Text = value
	}

	c.session = nil
	return outcome
}
