// Package server assembles the launcher backend: storage, the identity
// provider, token services and both transports, run under one lifecycle.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/launchkeeper/internal/logging"
	"github.com/dmitrijs2005/launchkeeper/internal/server/auth"
	"github.com/dmitrijs2005/launchkeeper/internal/server/config"
	"github.com/dmitrijs2005/launchkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/launchkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/launchkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/launchkeeper/internal/server/secure"
	"github.com/dmitrijs2005/launchkeeper/internal/server/services"
	"github.com/dmitrijs2005/launchkeeper/internal/server/skins"

	gs "github.com/dmitrijs2005/launchkeeper/internal/server/grpc"
)

var logOutput io.Writer = os.Stdout

type App struct {
	config     *config.Config
	logger     logging.Logger
	store      repomanager.RepositoryManager
	launcher   *services.Launcher
	grpcServer *gs.GRPCServer
	httpServer *httpapi.HTTPServer
}

// NewApp builds every component once. Nothing is listening until Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSON(logOutput, c.Debug)

	store, err := repomanager.Open(ctx, repomanager.Options{
		StorageType: c.StorageType,
		DatabaseDSN: c.DatabaseDSN,
		RedisURL:    c.RedisURL,
		Schema:      schemaFromConfig(c),
	})
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	app, err := build(ctx, c, logger, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

func build(ctx context.Context, c *config.Config, logger logging.Logger, store repomanager.RepositoryManager) (*App, error) {
	if c.RunMigrations {
		if err := store.RunMigrations(ctx); err != nil {
			return nil, fmt.Errorf("migrations error: %w", err)
		}
	}

	lookup, err := newSkinLookup(ctx, c, logger)
	if err != nil {
		return nil, fmt.Errorf("skin lookup init error: %w", err)
	}

	enc, err := secure.NewEncryptor(c.SecretKey)
	if err != nil {
		return nil, err
	}
	issuer, err := secure.NewTokenIssuer(enc)
	if err != nil {
		return nil, fmt.Errorf("server token error: %w", err)
	}

	var projectID uuid.UUID
	if c.ProjectID != "" {
		if projectID, err = uuid.Parse(c.ProjectID); err != nil {
			return nil, fmt.Errorf("project id: %w", err)
		}
	}

	provider, err := auth.New(auth.Deps{
		Users:     store.Users(),
		Skins:     lookup,
		Encryptor: enc,
		Logger:    logger,
	}, auth.Options{
		Kind:             c.AuthProvider,
		PasswordVerifier: c.PasswordVerifier,
		PasswordSalt:     c.PasswordSalt,
		Federated: auth.FederatedOptions{
			URL:       c.AuthServerURL,
			Secret:    c.AuthServerSecret,
			ProjectID: projectID,
			Timeout:   c.AuthServerTimeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("auth provider init error: %w", err)
	}

	launcher := services.NewLauncher(provider, issuer, enc, logger)

	return &App{
		config:     c,
		logger:     logger,
		store:      store,
		launcher:   launcher,
		grpcServer: gs.NewGRPCServer(c.EndpointAddrGRPC, logger, launcher),
		httpServer: httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, launcher),
	}, nil
}

func schemaFromConfig(c *config.Config) users.Schema {
	return users.Schema{
		TableName:         c.TableName,
		UUIDColumn:        c.UUIDColumn,
		UsernameColumn:    c.UsernameColumn,
		PasswordColumn:    c.PasswordColumn,
		AccessTokenColumn: c.AccessTokenColumn,
		ServerIDColumn:    c.ServerIDColumn,
	}
}

// newSkinLookup presigns S3 objects when a bucket is configured; otherwise
// SkinURL and CapeURL are used as plain URL templates.
func newSkinLookup(ctx context.Context, c *config.Config, logger logging.Logger) (skins.Lookup, error) {
	if c.S3Bucket == "" {
		return skins.TemplateLookup{SkinURL: c.SkinURL, CapeURL: c.CapeURL}, nil
	}
	return skins.NewS3Lookup(ctx, skins.S3Options{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		SkinKey:      c.SkinURL,
		CapeKey:      c.CapeURL,
		TTL:          c.SkinURLTTL,
	}, logger)
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves gRPC and HTTP until ctx is cancelled, a signal arrives or
// either server fails; then both are stopped and storage is closed.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "provider", app.config.AuthProvider, "storage", app.config.StorageType)

	app.initSignalHandler(ctx, cancelFunc)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpcServer.Run(gctx) })
	g.Go(func() error { return app.httpServer.Run(gctx) })

	err := g.Wait()

	if cerr := app.store.Close(); cerr != nil {
		app.logger.Error(ctx, "storage close error", "error", cerr)
	}

	if err != nil {
		app.logger.Error(ctx, "app stopped with error", "error", err)
		return err
	}
	app.logger.Info(ctx, "App stopped")
	return nil
}
