package config

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/dbx"
)

var (
	storageTypes = []string{"postgres", "sqlite", "redis"}
	providers    = []string{"password", "federated"}
	verifiers    = []string{"plain", "sha256", "bcrypt", "argon2id"}
)

func configErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrorConfiguration, fmt.Sprintf(format, args...))
}

// Validate enforces the settings the server cannot start without. Every
// error wraps common.ErrorConfiguration.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return configErr("secret key is required")
	}

	if !slices.Contains(storageTypes, c.StorageType) {
		return configErr("unknown storage type %q", c.StorageType)
	}
	if c.StorageType == "redis" && c.RedisURL == "" {
		return configErr("redis storage needs a redis url")
	}
	if c.StorageType != "redis" && c.DatabaseDSN == "" {
		return configErr("%s storage needs a database dsn", c.StorageType)
	}

	if !slices.Contains(providers, c.AuthProvider) {
		return configErr("unknown auth provider %q", c.AuthProvider)
	}
	if c.AuthProvider == "password" {
		if !slices.Contains(verifiers, c.PasswordVerifier) {
			return configErr("unknown password verifier %q", c.PasswordVerifier)
		}
		if c.PasswordColumn == "" {
			return configErr("password provider needs a password column")
		}
	}
	if c.AuthProvider == "federated" {
		if c.AuthServerURL == "" {
			return configErr("federated provider needs an auth server url")
		}
		if c.ProjectID == "" {
			return configErr("federated provider needs a project id")
		}
	}
	if c.ProjectID != "" {
		if _, err := uuid.Parse(c.ProjectID); err != nil {
			return configErr("project id is not a uuid: %v", err)
		}
	}
	if c.AuthServerTimeout <= 0 {
		return configErr("auth server timeout must be positive")
	}

	for label, name := range map[string]string{
		"table name":          c.TableName,
		"uuid column":         c.UUIDColumn,
		"username column":     c.UsernameColumn,
		"access token column": c.AccessTokenColumn,
		"server id column":    c.ServerIDColumn,
	} {
		if _, err := dbx.QuoteIdent(name); err != nil {
			return configErr("%s: %v", label, err)
		}
	}
	if c.PasswordColumn != "" {
		if _, err := dbx.QuoteIdent(c.PasswordColumn); err != nil {
			return configErr("password column: %v", err)
		}
	}

	return nil
}
