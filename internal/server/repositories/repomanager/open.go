package repomanager

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/dbx"
	"github.com/dmitrijs2005/launchkeeper/internal/server/repositories/users"
)

const StorageRedis = "redis"

const pingTimeout = 5 * time.Second

// Options selects and locates the storage backend.
type Options struct {
	// StorageType is "postgres", "sqlite" or "redis".
	StorageType string
	DatabaseDSN string
	RedisURL    string
	Schema      users.Schema
}

// Open connects to the backend named by opts and verifies it is reachable.
func Open(ctx context.Context, opts Options) (RepositoryManager, error) {
	if opts.StorageType == StorageRedis {
		return openRedis(ctx, opts)
	}

	dialect, err := dbx.ParseDialect(opts.StorageType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorConfiguration, err)
	}

	if err := opts.Schema.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorConfiguration, err)
	}

	db, err := dbx.Open(dialect, opts.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	m, err := NewSQLRepositoryManager(db, dialect, opts.Schema)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %v", common.ErrorConfiguration, err)
	}
	return m, nil
}

func openRedis(ctx context.Context, opts Options) (RepositoryManager, error) {
	ropts, err := redis.ParseURL(opts.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("%w: redis url: %v", common.ErrorConfiguration, err)
	}
	client := redis.NewClient(ropts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}

	return NewRedisRepositoryManager(client, opts.Schema.TableName), nil
}
