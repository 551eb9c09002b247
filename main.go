package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/artie-labs/tablesync/lib/config"
	"github.com/artie-labs/tablesync/lib/destination/utils"
	"github.com/artie-labs/tablesync/lib/logger"
	"github.com/artie-labs/tablesync/lib/redact"
	"github.com/artie-labs/tablesync/lib/telemetry/metrics"
	"github.com/artie-labs/tablesync/lib/telemetry/metrics/base"
	"github.com/artie-labs/tablesync/transfer"
)

func main() {
	// Parse args into settings.
	settings, err := config.LoadSettings(os.Args, true)
	if err != nil {
		logger.Fatal("Failed to initialize config", slog.Any("err", scrub(err)))
	}

	// Initialize default logger
	_logger, usingSentry := logger.NewLogger(settings)
	slog.SetDefault(_logger)
	if usingSentry {
		slog.Info("Sentry logger enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := settings.Config
	slog.Info("Config is loaded",
		slog.String("table", cfg.Table),
		slog.String("source", string(cfg.Source.Kind)),
		slog.String("destination", string(cfg.Destination.Kind)),
		slog.String("strategy", string(cfg.Strategy)),
		slog.Int("batchSize", cfg.BatchSize),
	)

	source, dest, err := utils.LoadStores(ctx, cfg)
	if err != nil {
		logger.Fatal("Unable to connect", slog.Any("err", scrub(err)))
	}
	defer source.Close()
	defer dest.Close()

	metricsClient := metrics.LoadExporter(cfg)
	syncer, err := transfer.NewSyncer(cfg, source, dest, metricsClient)
	if err != nil {
		closeMetrics(metricsClient)
		logger.Fatal("Unable to create syncer", slog.Any("err", scrub(err)))
	}

	summary, err := syncer.Run(ctx)
	// [logger.Fatal] exits without running defers.
	closeMetrics(metricsClient)
	if err != nil {
		logger.Fatal("Sync failed",
			slog.Any("err", scrub(err)),
			slog.Int("batchesWritten", summary.Batches),
			slog.Int64("rowsWritten", summary.RowsWritten),
		)
	}

	slog.Info("Done",
		slog.Int("ids", summary.IDs),
		slog.Int64("cleared", summary.Cleared),
		slog.Int("batches", summary.Batches),
		slog.Int64("rowsWritten", summary.RowsWritten),
	)
}

func closeMetrics(client base.Client) {
	if err := client.Close(); err != nil {
		slog.Warn("Failed to flush metrics", slog.Any("err", err))
	}
}

// scrub drops credentials from driver errors before they are logged or sent to Sentry.
func scrub(err error) error {
	return errors.New(redact.ScrubErrorMessage(err.Error()))
}
