// Package users implements the identity store: PostgreSQL/SQLite through
// database/sql and a Redis alternative. Every mutating operation is a single
// conditional statement (or Lua script), so concurrent joins and token
// rotations never lose updates to a read-then-write gap.
package users

import (
	"context"

	"github.com/dmitrijs2005/launchkeeper/internal/server/models"
)

type Repository interface {
	// Create inserts a new identity. A taken username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, userName string) (*models.User, error)
	GetUserByUUID(ctx context.Context, userUUID string) (*models.User, error)
	// GetUsersByLogins returns the identities that exist; unknown names are skipped.
	GetUsersByLogins(ctx context.Context, userNames []string) ([]*models.User, error)
	// UpdateAccessToken replaces the bearer credential of an existing identity.
	UpdateAccessToken(ctx context.Context, userUUID, accessToken string) error
	// UpsertAccessToken creates the identity (userUUID, userName) with the token,
	// or rotates the token of the identity already holding userName. It returns
	// the stored record; its UserUUID may differ from the argument when the
	// identity predates the call.
	UpsertAccessToken(ctx context.Context, userUUID, userName, accessToken string) (*models.User, error)
	// BindServer stores serverID on the identity matching both accessToken and
	// userUUID, and reports whether such an identity existed.
	BindServer(ctx context.Context, accessToken, userUUID, serverID string) (bool, error)
}
