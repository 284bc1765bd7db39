package commands

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/salesplot-dev/salesplot/internal/ingest"
	"github.com/salesplot-dev/salesplot/internal/report"
)

func newSummaryCommand() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "summary <input.csv>",
		Short: "Print monthly and product totals without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.OutOrStdout(), args[0], lenient)
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "skip invalid rows instead of aborting")

	return cmd
}

func runSummary(w io.Writer, input string, lenient bool) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	rows, err := ingest.ReadRows(f)
	if err != nil {
		return err
	}

	res, err := report.NewService(lenient).Build(rows)
	if err != nil {
		return err
	}

	if res.RowCount == 0 {
		fmt.Fprintln(w, "no data")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MONTH\tTOTAL")
	for _, e := range res.Monthly {
		fmt.Fprintf(tw, "%s\t%s\n", e.Key, e.Total.StringFixed(2))
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "PRODUCT\tTOTAL")
	for _, e := range res.Products {
		fmt.Fprintf(tw, "%s\t%s\n", e.Key, e.Total.StringFixed(2))
	}
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "TOTAL\t%s\n", res.Monthly.Sum().StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintf(w, "\nskipped %d invalid rows\n", len(res.Skipped))
	}
	return nil
}
