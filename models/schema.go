package models

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
)

// Record is one row of a declared schema.
type Record interface {
	// ScanTargets returns pointers to the record's fields, in [Schema.Columns] order.
	ScanTargets() []any
	// Values returns the record's field values, in [Schema.Columns] order. NULLs are returned as nil.
	Values() []any
}

// Schema declares the columns of a table, so that rows can be read without discovering the columns from the result set.
type Schema interface {
	Name() string
	Columns() []string
	NewRecord() Record
}

var schemas = map[string]Schema{
	TradesSchema{}.Name(): TradesSchema{},
}

// SchemaFor returns the declared schema registered under [name], the lookup is case-insensitive.
func SchemaFor(name string) (Schema, error) {
	schema, ok := schemas[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(schemas))
		for key := range schemas {
			names = append(names, key)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown record %q, expected one of %v", name, names)
	}

	return schema, nil
}

func nullable[T any](value sql.Null[T]) any {
	if !value.Valid {
		return nil
	}

	return value.V
}
