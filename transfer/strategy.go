package transfer

import (
	"context"
	"fmt"

	"github.com/artie-labs/tablesync/lib/config"
	"github.com/artie-labs/tablesync/lib/config/constants"
	"github.com/artie-labs/tablesync/lib/destination"
	"github.com/artie-labs/tablesync/lib/optimization"
	"github.com/artie-labs/tablesync/lib/sql"
)

// Strategy writes one batch of rows that was fetched from the source.
type Strategy interface {
	Kind() constants.StrategyKind
	// Transfer returns the number of rows written.
	Transfer(ctx context.Context, tableID sql.TableIdentifier, tableData *optimization.TableData) (int64, error)
}

type parameterizedInsert struct {
	dest destination.Destination
}

func (parameterizedInsert) Kind() constants.StrategyKind {
	return constants.ParameterizedInsert
}

func (p parameterizedInsert) Transfer(ctx context.Context, tableID sql.TableIdentifier, tableData *optimization.TableData) (int64, error) {
	return p.dest.InsertRows(ctx, tableID, tableData)
}

type bulkCopy struct {
	loader destination.BulkLoader
	opts   destination.BulkOptions
}

func (bulkCopy) Kind() constants.StrategyKind {
	return constants.BulkCopy
}

func (b bulkCopy) Transfer(ctx context.Context, tableID sql.TableIdentifier, tableData *optimization.TableData) (int64, error) {
	return b.loader.BulkLoad(ctx, tableID, tableData, b.opts)
}

func bulkOptions(cfg config.BulkCopy) destination.BulkOptions {
	return destination.BulkOptions{
		CheckConstraints: cfg.CheckConstraintsEnabled(),
		FireTriggers:     cfg.FireTriggersEnabled(),
	}
}

func NewStrategy(cfg config.Config, dest destination.Destination) (Strategy, error) {
	switch cfg.Strategy {
	case constants.ParameterizedInsert, "":
		return parameterizedInsert{dest: dest}, nil
	case constants.BulkCopy:
		loader, ok := dest.(destination.BulkLoader)
		if !ok {
			return nil, fmt.Errorf("destination %q does not support %s", cfg.Destination.Kind, constants.BulkCopy)
		}

		return bulkCopy{loader: loader, opts: bulkOptions(cfg.BulkCopy)}, nil
	}

	return nil, fmt.Errorf("invalid strategy: %q", cfg.Strategy)
}
