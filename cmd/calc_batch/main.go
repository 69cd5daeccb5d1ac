// Command calc_batch evaluates every expression of a YAML suite and reports
// which ones produced the expected value or error.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DjordjeVuckovic/rpncalc/internal/batch/report"
	"github.com/DjordjeVuckovic/rpncalc/internal/batch/runner"
	"github.com/DjordjeVuckovic/rpncalc/internal/batch/suite"
	"github.com/DjordjeVuckovic/rpncalc/internal/history/factory"
	"github.com/DjordjeVuckovic/rpncalc/pkg/config/env"
)

func main() {
	slog.SetLogLoggerLevel(env.LogLevel())

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/calc_batch/.env"); err != nil {
		slog.Debug("No .env loaded, continuing with existing environment variables", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	cfg, err := parseFlags(args)
	if err != nil {
		slog.Error("Invalid arguments", "error", err)
		return 2
	}

	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		return 1
	}

	var opts []runner.Option
	if cfg.Record {
		storeCfg, err := factory.LoadEnv()
		if err != nil {
			slog.Error("Failed to load history configuration", "error", err)
			return 1
		}

		setupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		store, err := factory.NewStore(setupCtx, *storeCfg)
		cancel()
		if err != nil {
			slog.Error("Failed to create history store", "type", storeCfg.Type, "error", err)
			return 1
		}
		defer store.Close()

		opts = append(opts, runner.WithRecorder(store))
	}

	r := runner.New(runner.Config{WarmupRuns: cfg.Warmup, Runs: cfg.Runs}, opts...)
	result, err := r.Run(ctx, s)
	if err != nil {
		slog.Error("Suite run failed", "error", err)
		return 1
	}

	if err := report.Publish(report.Generate(result), stdout, cfg.Output); err != nil {
		slog.Error("Failed to write JSON report", "error", err)
		return 1
	}

	if result.Failed() {
		return 1
	}
	return 0
}
