package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/render"
)

// exportWorkers bounds the monthly reports built at once; each holds a pool
// connection while it reads its month.
const exportWorkers = 4

func newExportCmd(open Opener) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the monthly report of every month that holds freights",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(out.format)
			if err != nil {
				return err
			}
			if out.out == "-" {
				return fmt.Errorf("%w: export writes one file per month; --out must be a directory", domain.ErrValidation)
			}
			if err := os.MkdirAll(out.out, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", out.out, err)
			}
			return withReporter(cmd, open, func(ctx context.Context, r Reporter) error {
				months, err := r.MonthsWithData(ctx)
				if err != nil {
					return err
				}
				if err := exportMonths(ctx, cmd, r, &out, months, format); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d reports written to %s\n", len(months), filepath.Clean(out.out))
				return nil
			})
		},
	}
	out.register(cmd)
	return cmd
}

// exportMonths writes one monthly report per entry of months. The first
// failure cancels the reports still pending.
func exportMonths(ctx context.Context, cmd *cobra.Command, r Reporter, out *outputFlags, months []domain.MonthWithData, format render.Format) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(exportWorkers)

	for _, m := range months {
		m := m
		g.Go(func() error {
			report, err := r.Monthly(ctx, m.Year, m.Month)
			if err != nil {
				return fmt.Errorf("%s: %w", m.Label, err)
			}
			if err := emit(cmd, out, report, format); err != nil {
				return fmt.Errorf("%s: %w", m.Label, err)
			}
			return nil
		})
	}
	return g.Wait()
}
