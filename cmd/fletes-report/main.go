// Command fletes-report writes freight cost reports straight from the database.
//
//	fletes-report monthly --year 2024 --month 3 --out ./reportes
//	fletes-report range --start 2024-03-01 --end 2024-03-31 --format csv
//	fletes-report months
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/embarques/fletes/internal/cli"
	"github.com/embarques/fletes/internal/config"
	"github.com/embarques/fletes/internal/repo"
	"github.com/embarques/fletes/internal/service"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so "--out -" can stream the document on stdout.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	open := func(ctx context.Context) (cli.Reporter, func(), error) {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return service.NewReportService(repo.NewFreightRepo(pool)), pool.Close, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(open).ExecuteContext(ctx); err != nil {
		slog.Error("fletes-report failed", "error", err)
		stop()
		os.Exit(1)
	}
}
