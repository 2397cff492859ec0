package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/dbx"
	"github.com/dmitrijs2005/launchkeeper/internal/server/models"
	"github.com/dmitrijs2005/launchkeeper/internal/server/repositories/users"
)

func newMockManager(t *testing.T) *SQLRepositoryManager {
	t.Helper()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := NewSQLRepositoryManager(db, dbx.Postgres, users.DefaultSchema())
	require.NoError(t, err)
	return m
}

func TestNewSQLRepositoryManager_ReturnsInterface(t *testing.T) {
	m := newMockManager(t)
	var _ RepositoryManager = m
	assert.NotNil(t, m.Users())
}

func TestNewSQLRepositoryManager_BadSchema(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := users.DefaultSchema()
	s.UUIDColumn = "id--"
	_, err = NewSQLRepositoryManager(db, dbx.Postgres, s)
	assert.Error(t, err)
}

func TestRunMigrations_Success(t *testing.T) {
	m := newMockManager(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		if len(opts) != 0 {
			return errors.New("unexpected opts")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	require.NoError(t, m.RunMigrations(context.Background()))
}

func TestRunMigrations_Error(t *testing.T) {
	m := newMockManager(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	err := m.RunMigrations(context.Background())
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
}

func TestOpen_SQLiteMigratesAndServes(t *testing.T) {
	ctx := context.Background()
	m, err := Open(ctx, Options{StorageType: "sqlite", DatabaseDSN: ":memory:", Schema: users.DefaultSchema()})
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.RunMigrations(ctx))
	// goose skips already applied versions
	require.NoError(t, m.RunMigrations(ctx))

	_, err = m.Users().Create(ctx, &models.User{UserUUID: "u-1", UserName: "alice", Password: "pw"})
	require.NoError(t, err)

	u, err := m.Users().GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.UserUUID)
}

func TestOpen_Redis(t *testing.T) {
	mini := miniredis.RunT(t)
	ctx := context.Background()

	m, err := Open(ctx, Options{StorageType: StorageRedis, RedisURL: "redis://" + mini.Addr(), Schema: users.DefaultSchema()})
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.RunMigrations(ctx))
	_, err = m.Users().Create(ctx, &models.User{UserUUID: "u-1", UserName: "alice"})
	require.NoError(t, err)
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, Options{StorageType: "oracle"})
	assert.ErrorIs(t, err, common.ErrorConfiguration)

	_, err = Open(ctx, Options{StorageType: StorageRedis, RedisURL: "::not a url"})
	assert.ErrorIs(t, err, common.ErrorConfiguration)

	s := users.DefaultSchema()
	s.TableName = "bad name"
	_, err = Open(ctx, Options{StorageType: "sqlite", DatabaseDSN: ":memory:", Schema: s})
	assert.ErrorIs(t, err, common.ErrorConfiguration)
}
