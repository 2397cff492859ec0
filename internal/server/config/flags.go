package config

import (
	"flag"
	"fmt"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/flagx"
)

var ownedFlags = flagx.Names(
	"-a", "-http", "-storage", "-d", "-redis", "-s", "-project",
	"-provider", "-verifier", "-auth-url", "-auth-timeout",
).Bool("-migrate", "-debug")

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string            gRPC bind address (e.g. ":50051")
//	-http string         HTTP bind address (e.g. ":8080")
//	-storage string      postgres | sqlite | redis
//	-d string            database DSN
//	-redis string        redis URL
//	-migrate             run embedded migrations on start
//	-s string            secret key
//	-project string      project namespace UUID
//	-provider string     password | federated
//	-verifier string     plain | sha256 | bcrypt | argon2id
//	-auth-url string     remote authority base URL
//	-auth-timeout dur    remote authority timeout (e.g. "5s")
//	-debug               debug logging
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.EndpointAddrHTTP, "http", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.StorageType, "storage", config.StorageType, "storage type")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisURL, "redis", config.RedisURL, "redis URL")
	fs.BoolVar(&config.RunMigrations, "migrate", config.RunMigrations, "run migrations")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.ProjectID, "project", config.ProjectID, "project namespace UUID")
	fs.StringVar(&config.AuthProvider, "provider", config.AuthProvider, "auth provider")
	fs.StringVar(&config.PasswordVerifier, "verifier", config.PasswordVerifier, "password verifier")
	fs.StringVar(&config.AuthServerURL, "auth-url", config.AuthServerURL, "auth server URL")
	fs.DurationVar(&config.AuthServerTimeout, "auth-timeout", config.AuthServerTimeout, "auth server timeout")
	fs.BoolVar(&config.Debug, "debug", config.Debug, "debug logging")

	if err := fs.Parse(flagx.FilterArgs(args, ownedFlags)); err != nil {
		return fmt.Errorf("%w: flags: %v", common.ErrorConfiguration, err)
	}
	return nil
}
