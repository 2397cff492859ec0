package repomanager

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrijs2005/launchkeeper/internal/server/repositories/users"
)

// RedisRepositoryManager serves the Redis identity store. It has no schema,
// so RunMigrations is a no-op.
type RedisRepositoryManager struct {
	users *users.RedisRepository
}

func NewRedisRepositoryManager(client *redis.Client, prefix string) *RedisRepositoryManager {
	return &RedisRepositoryManager{users: users.NewRedisRepository(client, prefix)}
}

func (m *RedisRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *RedisRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *RedisRepositoryManager) Close() error {
	return m.users.Close()
}
