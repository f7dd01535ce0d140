package templates

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/JonMunkholm/employee-table/internal/notify"
)

func TestTable_Render(t *testing.T) {
	view := TableView{
		Headers: []HeaderView{{Index: 0, Label: "Name", Next: "asc"}},
		Rows: []RowView{
			{Index: 0, Selected: true, Cells: []CellView{{Row: 0, Col: 0, Text: "<b>Tiger</b>"}}},
			{Index: 1, Editing: true, Cells: []CellView{{Row: 1, Col: 0, Text: "Garrett", Editing: true, Input: `Gar"rett`}}},
		},
	}

	var buf bytes.Buffer
	if err := Table(view).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	checks := []string{
		`<table id="employees">`,
		`hx-post="/columns/0/sort"`,
		`class="active"`,
		`hx-post="/rows/0/select"`,
		`hx-post="/cells/0/0/edit"`,
		`&lt;b&gt;Tiger&lt;/b&gt;`,
		`class="cell-input"`,
		`value="Gar&#34;rett"`,
		`hx-post="/edit/end"`,
	}
	for _, want := range checks {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, `/rows/1/select`) {
		t.Error("row under edit should not be selectable")
	}
	if strings.Contains(out, "<b>Tiger</b>") {
		t.Error("cell text should be escaped")
	}
	if strings.Contains(out, `/cells/1/0/edit`) {
		t.Error("cell under edit should not offer another edit")
	}
	if !strings.Contains(out, `hx-post="/edit/input"`) {
		t.Error("cell under edit should report typed input")
	}
}

func TestNotifications_Render(t *testing.T) {
	notes := []notify.Notification{
		{ID: "1", Title: "Wrong Age!", Description: "The employee must be over 18 and under 90!", Kind: notify.KindError},
	}

	var buf bytes.Buffer
	if err := Notifications(notes).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{`id="notifications"`, `class="notification error"`, `data-qa="notification"`, "Wrong Age!"} {
		if !strings.Contains(out, want) {
			t.Errorf("notifications missing %q\n%s", want, out)
		}
	}
}

func TestPage_Render(t *testing.T) {
	var buf bytes.Buffer
	err := Page("Employees", TableView{}, FormView{Offices: []string{"Tokyo", "London"}}, nil).
		Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{"<title>Employees</title>", `class="new-employee-form"`, `<option value="London">`, `data-qa="salary"`} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
