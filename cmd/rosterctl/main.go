// Command rosterctl prints the employee table from the command line.
//
//	rosterctl print
//	rosterctl sort salary salary        # descending by salary
//	rosterctl add --name "John Smith" --position Engineer --office London --age 30 --salary 250000
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/employee-table/internal/logging"
	"github.com/JonMunkholm/employee-table/internal/report"
	"github.com/JonMunkholm/employee-table/internal/roster"
	"github.com/JonMunkholm/employee-table/internal/widget"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	seed     bool
	logLevel string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Print, sort and extend the employee table",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupTo(errOut, opts.logLevel, "text")
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVar(&opts.seed, "seed", true, "start from the sample employees")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newPrintCmd(opts), newSortCmd(opts), newAddCmd(opts))
	return root
}

func newTable(opts *options) *widget.Widget {
	return widget.New(roster.NewGrid(opts.seed), nil, widget.WithLogger(slog.Default()))
}

func newPrintCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report.Write(cmd.OutOrStdout(), newTable(opts).Grid)
		},
	}
}

func newSortCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sort <column>...",
		Short: "Activate column headers in order and print the result",
		Long: "Each argument is a column name or index and counts as one header click,\n" +
			"so naming a column twice sorts it descending.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cols := make([]int, 0, len(args))
			for _, a := range args {
				col, ok := roster.ColumnIndex(a)
				if !ok {
					return fmt.Errorf("unknown column %q", a)
				}
				cols = append(cols, col)
			}

			w := newTable(opts)
			for _, col := range cols {
				w.Events.HeaderActivated.Emit(col)
			}
			return report.Write(cmd.OutOrStdout(), w.Grid)
		},
	}
}

func newAddCmd(opts *options) *cobra.Command {
	var f roster.Form

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Validate a new employee, add it and print the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := newTable(opts)

			var res widget.SubmitResult
			w.Submitted.Subscribe(func(r widget.SubmitResult) { res = r })
			w.Events.FormSubmitted.Emit(f)

			if err := report.WriteNotice(cmd.OutOrStdout(), res.Notice); err != nil {
				return err
			}
			if res.Err != nil {
				return fmt.Errorf("employee rejected: %w", res.Err)
			}
			return report.Write(cmd.OutOrStdout(), w.Grid)
		},
	}

	cmd.Flags().StringVar(&f.Name, "name", "", "employee name")
	cmd.Flags().StringVar(&f.Position, "position", "", "job position")
	cmd.Flags().StringVar(&f.Office, "office", "", "office location")
	cmd.Flags().StringVar(&f.Age, "age", "", "age in years")
	cmd.Flags().StringVar(&f.Salary, "salary", "", "yearly salary in whole dollars")
	return cmd
}
