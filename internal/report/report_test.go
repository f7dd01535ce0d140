package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/JonMunkholm/employee-table/internal/grid"
	"github.com/JonMunkholm/employee-table/internal/notify"
	"github.com/JonMunkholm/employee-table/internal/roster"
)

func TestWrite(t *testing.T) {
	g := roster.NewGrid(true)
	grid.NewSortController(g).ActivateColumn(roster.ColAge)

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	if !strings.Contains(strings.ToUpper(out), "SALARY") {
		t.Errorf("output missing header:\n%s", out)
	}
	first := strings.Index(out, "Tatyana Fitzpatrick")
	last := strings.Index(out, "Garrett Winters")
	if first < 0 || last < 0 || first > last {
		t.Errorf("rows not in display order:\n%s", out)
	}
	if !strings.Contains(out, "$385,750") {
		t.Errorf("output missing salary cell:\n%s", out)
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, roster.NewGrid(false)); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if strings.Contains(buf.String(), "Tiger") {
		t.Error("empty grid should have no rows")
	}
}

func TestWriteNotice(t *testing.T) {
	var buf bytes.Buffer
	n := notify.Notification{Title: "Wrong Age!", Description: "The employee must be over 18 and under 90!", Kind: notify.KindError}
	if err := WriteNotice(&buf, n); err != nil {
		t.Fatalf("WriteNotice() error = %v", err)
	}
	want := "[error] Wrong Age! The employee must be over 18 and under 90!\n"
	if buf.String() != want {
		t.Errorf("WriteNotice() = %q, want %q", buf.String(), want)
	}
}
