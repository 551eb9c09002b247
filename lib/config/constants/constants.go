package constants

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)

type DatabaseKind string

const (
	MSSQL    DatabaseKind = "mssql"
	Postgres DatabaseKind = "postgres"
	MySQL    DatabaseKind = "mysql"
	SQLite   DatabaseKind = "sqlite"
)

var validDatabases = []DatabaseKind{
	MSSQL,
	Postgres,
	MySQL,
	SQLite,
}

func IsValidDatabase(kind DatabaseKind) bool {
	for _, validKind := range validDatabases {
		if kind == validKind {
			return true
		}
	}

	return false
}

// SupportsBulkCopy returns true if the database has a native bulk load path we can drive.
func (d DatabaseKind) SupportsBulkCopy() bool {
	return d == MSSQL || d == Postgres
}

// StrategyKind selects how a batch of rows is written to the destination.
type StrategyKind string

const (
	ParameterizedInsert StrategyKind = "parameterized_insert"
	BulkCopy            StrategyKind = "bulk_copy"
)

func (s StrategyKind) IsValid() bool {
	return s == ParameterizedInsert || s == BulkCopy
}

const (
	DefaultTableName  = "Trades"
	DefaultPrimaryKey = "Id"
	DefaultBatchSize  = 2000
)

// MaxBindParameters is the maximum number of bind parameters a single statement can carry.
func (d DatabaseKind) MaxBindParameters() int {
	switch d {
	case MSSQL:
		// 2100 per RPC call, go-mssqldb sends every parameterized query through sp_executesql which takes two of them for @stmt and @params.
		// https://learn.microsoft.com/en-us/sql/sql-server/maximum-capacity-specifications-for-sql-server
		return 2098
	case Postgres, MySQL:
		return 65535
	case SQLite:
		// SQLITE_MAX_VARIABLE_NUMBER since 3.32.0
		return 32766
	}

	return 0
}
