package users

import (
	"fmt"

	"github.com/dmitrijs2005/launchkeeper/internal/dbx"
)

// Schema maps the identity record onto an existing table, so the backend can
// share a user table with a website or CMS. PasswordColumn may be empty when
// the table has no verifier column (federated deployments).
type Schema struct {
	TableName         string
	UUIDColumn        string
	UsernameColumn    string
	PasswordColumn    string
	AccessTokenColumn string
	ServerIDColumn    string
}

// DefaultSchema matches the table created by the built-in migrations.
func DefaultSchema() Schema {
	return Schema{
		TableName:         "users",
		UUIDColumn:        "user_uuid",
		UsernameColumn:    "username",
		PasswordColumn:    "password",
		AccessTokenColumn: "access_token",
		ServerIDColumn:    "server_id",
	}
}

// quoted is a Schema whose names are validated and quoted for SQL.
type quoted struct {
	table, uuid, username, password, accessToken, serverID string
}

// Validate checks every configured name is a plain SQL identifier.
func (s Schema) Validate() error {
	_, err := s.quote()
	return err
}

func (s Schema) quote() (quoted, error) {
	var q quoted
	fields := []struct {
		dst      *string
		name     string
		label    string
		optional bool
	}{
		{&q.table, s.TableName, "table", false},
		{&q.uuid, s.UUIDColumn, "uuid column", false},
		{&q.username, s.UsernameColumn, "username column", false},
		{&q.password, s.PasswordColumn, "password column", true},
		{&q.accessToken, s.AccessTokenColumn, "access token column", false},
		{&q.serverID, s.ServerIDColumn, "server id column", false},
	}
	for _, f := range fields {
		if f.optional && f.name == "" {
			continue
		}
		v, err := dbx.QuoteIdent(f.name)
		if err != nil {
			return quoted{}, fmt.Errorf("%s: %w", f.label, err)
		}
		*f.dst = v
	}
	return q, nil
}
