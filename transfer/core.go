package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/artie-labs/tablesync/lib"
	"github.com/artie-labs/tablesync/lib/batch"
	"github.com/artie-labs/tablesync/lib/config"
	"github.com/artie-labs/tablesync/lib/destination"
	"github.com/artie-labs/tablesync/lib/sql"
	"github.com/artie-labs/tablesync/lib/telemetry/metrics/base"
	"github.com/artie-labs/tablesync/models"
)

const (
	heartbeatDelay    = 30 * time.Second
	heartbeatInterval = 30 * time.Second
)

type Summary struct {
	IDs         int
	Cleared     int64
	Batches     int
	RowsWritten int64
}

// Syncer copies every row of one table from the source to the destination, replacing whatever the destination held.
type Syncer struct {
	cfg           config.Config
	source        destination.Source
	dest          destination.Destination
	strategy      Strategy
	schema        models.Schema
	metricsClient base.Client
	limiter       *rate.Limiter
	runID         string
}

func NewSyncer(cfg config.Config, source destination.Source, dest destination.Destination, metricsClient base.Client) (*Syncer, error) {
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("batch size must be a positive number, current value: %d", cfg.BatchSize)
	}

	strategy, err := NewStrategy(cfg, dest)
	if err != nil {
		return nil, err
	}

	var schema models.Schema
	if cfg.Record != "" {
		schema, err = models.SchemaFor(cfg.Record)
		if err != nil {
			return nil, err
		}
	}

	var limiter *rate.Limiter
	if cfg.MaxBatchesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.MaxBatchesPerSecond), 1)
	}

	return &Syncer{
		cfg:           cfg,
		source:        source,
		dest:          dest,
		strategy:      strategy,
		schema:        schema,
		metricsClient: metricsClient,
		limiter:       limiter,
		runID:         uuid.NewString(),
	}, nil
}

func (s *Syncer) tags() map[string]string {
	return map[string]string{
		"table":    s.cfg.Table,
		"strategy": string(s.strategy.Kind()),
	}
}

// Run lists the source ids, clears the destination, then fetches and writes one batch at a time.
// The first error stops the run, batches that were already written are kept.
func (s *Syncer) Run(ctx context.Context) (Summary, error) {
	start := time.Now()
	summary, err := s.run(ctx)

	tags := s.tags()
	tags["what"] = "success"
	if err != nil {
		tags["what"] = "failed"
	}
	s.metricsClient.Timing("sync.run.duration", time.Since(start), tags)
	return summary, err
}

func (s *Syncer) run(ctx context.Context) (Summary, error) {
	var summary Summary
	sourceTableID := s.source.IdentifierFor(s.cfg.Source.Schema, s.cfg.Table)
	destTableID := s.dest.IdentifierFor(s.cfg.Destination.Schema, s.cfg.Table)
	logger := slog.With(
		slog.String("runID", s.runID),
		slog.String("table", s.cfg.Table),
		slog.String("strategy", string(s.strategy.Kind())),
	)

	ids, err := s.source.ListIDs(ctx, sourceTableID, s.cfg.PrimaryKey)
	if err != nil {
		return summary, err
	}

	summary.IDs = len(ids)
	totalBatches := batch.Count(len(ids), s.cfg.BatchSize)
	logger.Info("Listed source ids", slog.Int("ids", len(ids)), slog.Int("batches", totalBatches))

	stopHeartbeats := lib.NewHeartbeats(heartbeatDelay, heartbeatInterval, "clear", slog.String("runID", s.runID)).Start()
	cleared, err := s.dest.ClearTable(ctx, destTableID)
	stopHeartbeats()
	if err != nil {
		return summary, err
	}

	summary.Cleared = cleared
	s.metricsClient.Count("sync.cleared.rows", cleared, s.tags())
	logger.Info("Cleared destination table", slog.String("destination", destTableID.FullyQualifiedName()), slog.Int64("rows", cleared))

	err = batch.ByCount(ids, s.cfg.BatchSize, func(batchIDs []int64) error {
		if err := s.wait(ctx); err != nil {
			return err
		}

		start := time.Now()
		stopHeartbeats := lib.NewHeartbeats(heartbeatDelay, heartbeatInterval, "batch",
			slog.String("runID", s.runID),
			slog.Int("batch", summary.Batches+1),
		).Start()
		written, err := s.transferBatch(ctx, sourceTableID, destTableID, batchIDs)
		stopHeartbeats()
		if err != nil {
			return fmt.Errorf("failed to transfer batch %d of %d: %w", summary.Batches+1, totalBatches, err)
		}

		summary.Batches++
		summary.RowsWritten += written
		s.metricsClient.Count("sync.batch.rows", written, s.tags())
		s.metricsClient.Timing("sync.batch.duration", time.Since(start), s.tags())
		logger.Info("Transferred batch",
			slog.Int("batch", summary.Batches),
			slog.Int("batches", totalBatches),
			slog.Int("ids", len(batchIDs)),
			slog.Int64("rows", written),
			slog.Duration("duration", time.Since(start)),
		)
		return nil
	})
	if err != nil {
		return summary, err
	}

	logger.Info("Sync complete", slog.Int("batches", summary.Batches), slog.Int64("rows", summary.RowsWritten))
	return summary, nil
}

func (s *Syncer) wait(ctx context.Context) error {
	if s.limiter == nil {
		return ctx.Err()
	}

	return s.limiter.Wait(ctx)
}

func (s *Syncer) transferBatch(ctx context.Context, sourceTableID, destTableID sql.TableIdentifier, ids []int64) (int64, error) {
	tableData, err := s.source.FetchRows(ctx, sourceTableID, s.cfg.PrimaryKey, s.schema, ids)
	if err != nil {
		return 0, err
	}

	if tableData.ShouldSkipUpdate() {
		return 0, nil
	}

	return s.strategy.Transfer(ctx, destTableID, tableData)
}
