package dbx

import (
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Dialect names a supported SQL backend.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ParseDialect maps a storage type from configuration onto a Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(s)) {
	case Postgres:
		return Postgres, nil
	case SQLite:
		return SQLite, nil
	}
	return "", fmt.Errorf("unsupported sql dialect %q", s)
}

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	if d == SQLite {
		return "sqlite"
	}
	return "pgx"
}

// GooseDialect is the dialect name understood by goose.SetDialect.
func (d Dialect) GooseDialect() string {
	if d == SQLite {
		return "sqlite3"
	}
	return "pgx"
}

// Placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) Placeholder(n int) string {
	if d == SQLite {
		return "?" + strconv.Itoa(n)
	}
	return "$" + strconv.Itoa(n)
}

// Placeholders returns count comma-separated bind parameters starting at from.
func (d Dialect) Placeholders(from, count int) string {
	ps := make([]string, count)
	for i := range ps {
		ps[i] = d.Placeholder(from + i)
	}
	return strings.Join(ps, ", ")
}

// QuoteIdent validates and double-quotes a table or column name.
// Both backends accept standard SQL quoting.
func QuoteIdent(name string) (string, error) {
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("invalid sql identifier %q", name)
	}
	return `"` + name + `"`, nil
}

// Open opens a connection pool for the dialect. It does not ping.
func Open(d Dialect, dsn string) (*sql.DB, error) {
	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if d == SQLite {
		// A single connection avoids SQLITE_BUSY and keeps ":memory:" databases
		// alive. Every statement is serialised, across identities too.
		db.SetMaxOpenConns(1)
	}
	return db, nil
}
