// Package report prints the employee table as plain text.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/JonMunkholm/employee-table/internal/grid"
	"github.com/JonMunkholm/employee-table/internal/notify"
)

// Write renders g as a bordered text table in display order.
func Write(w io.Writer, g *grid.Grid) error {
	t := tablewriter.NewWriter(w)
	t.Header(g.Headers())
	for _, row := range g.Rows() {
		if err := t.Append(row.Texts()); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
	}
	if err := t.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}

// WriteNotice prints a notification as "[kind] Title Description".
func WriteNotice(w io.Writer, n notify.Notification) error {
	_, err := fmt.Fprintf(w, "[%s] %s %s\n", n.Kind, n.Title, n.Description)
	return err
}
