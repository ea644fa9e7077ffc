package cli

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/render"
)

func newMonthlyCmd(open Opener) *cobra.Command {
	var (
		year, month int
		out         outputFlags
	)
	cmd := &cobra.Command{
		Use:   "monthly",
		Short: "Write the report of one calendar month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(out.format)
			if err != nil {
				return err
			}
			return withReporter(cmd, open, func(ctx context.Context, r Reporter) error {
				report, err := r.Monthly(ctx, year, month)
				if err != nil {
					return err
				}
				return emit(cmd, &out, report, format)
			})
		},
	}
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Report year")
	cmd.Flags().IntVar(&month, "month", 0, "Report month (1-12)")
	_ = cmd.MarkFlagRequired("month")
	out.register(cmd)
	return cmd
}

func newRangeCmd(open Opener) *cobra.Command {
	var (
		start, end string
		out        outputFlags
	)
	cmd := &cobra.Command{
		Use:   "range",
		Short: "Write the report of an inclusive date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := parseDay("start", start)
			if err != nil {
				return err
			}
			to, err := parseDay("end", end)
			if err != nil {
				return err
			}
			format, err := render.ParseFormat(out.format)
			if err != nil {
				return err
			}
			return withReporter(cmd, open, func(ctx context.Context, r Reporter) error {
				report, err := r.Range(ctx, from, to)
				if err != nil {
					return err
				}
				return emit(cmd, &out, report, format)
			})
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "First day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "Last day, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	out.register(cmd)
	return cmd
}

func newMonthsCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List the months that hold freights, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withReporter(cmd, open, func(ctx context.Context, r Reporter) error {
				months, err := r.MonthsWithData(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, m := range months {
					fmt.Fprintf(tw, "%04d-%02d\t%s\n", m.Year, m.Month, m.Label)
				}
				return tw.Flush()
			})
		},
	}
}

func emit(cmd *cobra.Command, out *outputFlags, report domain.Report, format render.Format) error {
	path, err := out.writeReport(cmd.OutOrStdout(), report, format)
	if err != nil {
		return err
	}
	slog.InfoContext(cmd.Context(), "report written",
		"report_id", report.ID,
		"kind", report.Kind,
		"rows", len(report.Rows),
		"path", path,
	)
	return nil
}

func parseDay(flag, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: --%s must be YYYY-MM-DD, got %q", domain.ErrValidation, flag, value)
	}
	return t, nil
}
