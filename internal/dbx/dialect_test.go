package dbx

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("Postgres")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	d, err = ParseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, err = ParseDialect("oracle")
	assert.Error(t, err)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", Postgres.Placeholders(1, 3))
	assert.Equal(t, "?2, ?3", SQLite.Placeholders(2, 2))
	assert.Equal(t, "", Postgres.Placeholders(1, 0))
}

func TestDriverAndGooseNames(t *testing.T) {
	assert.Equal(t, "pgx", Postgres.DriverName())
	assert.Equal(t, "pgx", Postgres.GooseDialect())
	assert.Equal(t, "sqlite", SQLite.DriverName())
	assert.Equal(t, "sqlite3", SQLite.GooseDialect())
}

func TestQuoteIdent(t *testing.T) {
	q, err := QuoteIdent("access_token")
	require.NoError(t, err)
	assert.Equal(t, `"access_token"`, q)

	for _, bad := range []string{"", "1col", `users"; DROP TABLE users; --`, "a b"} {
		_, err := QuoteIdent(bad)
		assert.Error(t, err, bad)
	}
}

func TestOpen_SQLiteNumberedParams(t *testing.T) {
	db, err := Open(SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE t (a TEXT, b TEXT)`)
	require.NoError(t, err)

	var tx DBTX = db
	_, err = tx.ExecContext(ctx, `INSERT INTO t (a, b) VALUES (`+SQLite.Placeholders(1, 2)+`)`, "x", "y")
	require.NoError(t, err)

	var b string
	require.NoError(t, tx.QueryRowContext(ctx, `SELECT b FROM t WHERE a = `+SQLite.Placeholder(1), "x").Scan(&b))
	assert.Equal(t, "y", b)
}

func TestOpen_ConnectionPool(t *testing.T) {
	db, err := Open(SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)

	pg, err := Open(Postgres, "postgres://u:p@127.0.0.1:1/db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Close() })
	assert.Equal(t, 0, pg.Stats().MaxOpenConnections)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))

	db, err := Open(SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	_, err = db.ExecContext(ctx, `CREATE TABLE u (name TEXT UNIQUE)`)
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, `INSERT INTO u (name) VALUES ('alice')`)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO u (name) VALUES ('alice')`)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(fmt.Errorf("db error: %w", err)))
}
