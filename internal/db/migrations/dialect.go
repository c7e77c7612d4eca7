// Package migrations holds the Go-coded schema steps whose DDL differs per
// database driver. Plain SQL steps live next to them as goose .sql files.
package migrations

var dialect string

// SetDialect selects the DDL variant: "sqlite3", "postgres" or "mysql".
// Call it before running goose.
func SetDialect(d string) { dialect = d }
