package transfer

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/artie-labs/tablesync/lib/destination"
	"github.com/artie-labs/tablesync/lib/optimization"
	"github.com/artie-labs/tablesync/lib/sql"
	"github.com/artie-labs/tablesync/models"
)

type testDialect struct{}

func (testDialect) QuoteIdentifier(identifier string) string {
	return fmt.Sprintf(`"%s"`, identifier)
}

func (testDialect) Placeholder(i int) string {
	return fmt.Sprintf("$%d", i+1)
}

func (testDialect) DefaultSchema() string {
	return ""
}

// fakeStore keeps a table in memory and records every call.
type fakeStore struct {
	columns []string
	rows    map[int64][]any
	written [][]any
	calls   []string

	listErr  error
	clearErr error
	// failOnInsert fails the nth InsertRows call (1-based), zero never fails.
	failOnInsert int
	inserts      int
}

func newFakeStore() *fakeStore {
	return &fakeStore{columns: []string{"Id", "Price"}, rows: map[int64][]any{}}
}

func (f *fakeStore) withRows(ids ...int64) *fakeStore {
	for _, id := range ids {
		f.rows[id] = []any{id, float64(id) + 0.5}
	}
	return f
}

func (f *fakeStore) IdentifierFor(schema, table string) sql.TableIdentifier {
	return sql.NewTableIdentifier(testDialect{}, schema, table)
}

func (f *fakeStore) ListIDs(_ context.Context, _ sql.TableIdentifier, _ string) ([]int64, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}

	var ids []int64
	for id := range f.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

func (f *fakeStore) FetchRows(_ context.Context, tableID sql.TableIdentifier, _ string, _ models.Schema, ids []int64) (*optimization.TableData, error) {
	f.calls = append(f.calls, fmt.Sprintf("fetch:%d", len(ids)))
	tableData := optimization.NewTableData(tableID.Table(), f.columns)
	for _, id := range ids {
		if row, ok := f.rows[id]; ok {
			if err := tableData.InsertRow(row); err != nil {
				return nil, err
			}
		}
	}
	return tableData, nil
}

func (f *fakeStore) ClearTable(_ context.Context, _ sql.TableIdentifier) (int64, error) {
	f.calls = append(f.calls, "clear")
	if f.clearErr != nil {
		return 0, f.clearErr
	}

	cleared := int64(len(f.written))
	f.written = nil
	return cleared, nil
}

func (f *fakeStore) InsertRows(_ context.Context, _ sql.TableIdentifier, tableData *optimization.TableData) (int64, error) {
	f.calls = append(f.calls, "insert")
	f.inserts++
	if f.failOnInsert == f.inserts {
		return 0, fmt.Errorf("Violation of PRIMARY KEY constraint")
	}

	f.written = append(f.written, tableData.Rows()...)
	return int64(tableData.NumberOfRows()), nil
}

func (f *fakeStore) Close() error {
	return nil
}

type fakeBulkStore struct {
	*fakeStore
	bulkOptions []destination.BulkOptions
}

func newFakeBulkStore() *fakeBulkStore {
	return &fakeBulkStore{fakeStore: newFakeStore()}
}

func (f *fakeBulkStore) BulkLoad(_ context.Context, _ sql.TableIdentifier, tableData *optimization.TableData, opts destination.BulkOptions) (int64, error) {
	f.calls = append(f.calls, "bulk")
	f.bulkOptions = append(f.bulkOptions, opts)
	f.written = append(f.written, tableData.Rows()...)
	return int64(tableData.NumberOfRows()), nil
}

type recordingMetrics struct {
	counts  map[string][]int64
	timings map[string][]map[string]string
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{counts: map[string][]int64{}, timings: map[string][]map[string]string{}}
}

func (r *recordingMetrics) Timing(name string, _ time.Duration, tags map[string]string) {
	r.timings[name] = append(r.timings[name], tags)
}

func (r *recordingMetrics) Count(name string, value int64, _ map[string]string) {
	r.counts[name] = append(r.counts[name], value)
}

func (r *recordingMetrics) Close() error {
	return nil
}
