package sql

type Dialect interface {
	QuoteIdentifier(identifier string) string
	// Placeholder returns the bind parameter for the zero-based argument [i].
	Placeholder(i int) string
	// DefaultSchema is used when a table identifier is built without a schema, it may be empty.
	DefaultSchema() string
}
