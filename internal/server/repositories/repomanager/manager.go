package repomanager

import (
	"context"

	"github.com/dmitrijs2005/launchkeeper/internal/server/repositories/users"
)

// RepositoryManager owns a storage backend and vends its repositories.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Close() error
}
