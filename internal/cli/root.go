// Package cli implements the fletes-report command line, which writes the
// monthly and range reports to files without going through the HTTP API.
package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/embarques/fletes/internal/domain"
	"github.com/embarques/fletes/internal/render"
)

// Reporter is the report surface the commands need. *service.ReportService
// satisfies it.
type Reporter interface {
	Monthly(ctx context.Context, year, month int) (domain.Report, error)
	Range(ctx context.Context, start, end time.Time) (domain.Report, error)
	MonthsWithData(ctx context.Context) ([]domain.MonthWithData, error)
}

// Opener connects to storage and returns a Reporter plus a function that
// releases it. Commands call it only once their flags are valid, so --help
// never touches the database.
type Opener func(ctx context.Context) (Reporter, func(), error)

const commandTimeout = 2 * time.Minute

// NewRootCmd builds the fletes-report command tree.
func NewRootCmd(open Opener) *cobra.Command {
	root := &cobra.Command{
		Use:           "fletes-report",
		Short:         "Generate freight cost reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMonthlyCmd(open),
		newRangeCmd(open),
		newMonthsCmd(open),
		newExportCmd(open),
	)
	return root
}

// outputFlags are shared by the commands that produce a document.
type outputFlags struct {
	format string
	out    string
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.format, "format", string(render.FormatXLSX), "Output format: xlsx, csv or json")
	cmd.Flags().StringVarP(&o.out, "out", "o", ".", `Output directory, file path, or "-" for stdout`)
}

// withReporter opens a Reporter for the duration of fn.
func withReporter(cmd *cobra.Command, open Opener, fn func(ctx context.Context, r Reporter) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
	defer cancel()

	reporter, closeFn, err := open(ctx)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer closeFn()

	return fn(ctx, reporter)
}

// writeReport renders report in the requested format and writes it to the
// --out destination. It returns the path written, or "-" for stdout.
func (o *outputFlags) writeReport(stdout io.Writer, report domain.Report, format render.Format) (string, error) {
	var buf bytes.Buffer
	if err := format.Write(&buf, report); err != nil {
		return "", err
	}

	if o.out == "-" {
		_, err := buf.WriteTo(stdout)
		return "-", err
	}

	path := o.out
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, format.FileName(report))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
