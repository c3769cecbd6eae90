package dbx

// Supported store dialects. Migrations live in a directory of the same name.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)
