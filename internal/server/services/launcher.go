// Package services contains server-side business logic. Launcher runs the
// join protocol (authenticate, join, hasJoined) on top of the configured
// identity provider and hands out the per-process server token.
package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/logging"
	"github.com/dmitrijs2005/launchkeeper/internal/server/auth"
	"github.com/dmitrijs2005/launchkeeper/internal/server/secure"
)

// MaxProfileNames bounds a single Profiles lookup after deduplication.
const MaxProfileNames = 1000

// Launcher is the single handle transports talk to. It is built once at
// startup and is safe for concurrent use.
type Launcher struct {
	provider auth.Provider
	issuer   *secure.TokenIssuer
	enc      *secure.Encryptor
	logger   logging.Logger
}

func NewLauncher(provider auth.Provider, issuer *secure.TokenIssuer, enc *secure.Encryptor, logger logging.Logger) *Launcher {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Launcher{
		provider: provider,
		issuer:   issuer,
		enc:      enc,
		logger:   logger.With("module", "launcher"),
	}
}

// Authenticate rejects blank credentials before reaching the provider.
func (s *Launcher) Authenticate(ctx context.Context, username, password string) (*auth.AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, common.ErrorInvalidCredentials
	}

	resp, err := s.provider.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "authenticated", "username", resp.Username, "uuid", resp.UserUUID)
	return resp, nil
}

// Join binds serverID to the identity holding accessToken. A false result
// means there is no live session for that pair.
func (s *Launcher) Join(ctx context.Context, accessToken, userUUID, serverID string) (bool, error) {
	if accessToken == "" || userUUID == "" || serverID == "" {
		return false, nil
	}

	ok, err := s.provider.Join(ctx, accessToken, userUUID, serverID)
	if err != nil {
		return false, err
	}
	if ok {
		s.logger.Debug(ctx, "joined", "uuid", userUUID, "server", serverID)
	}
	return ok, nil
}

func (s *Launcher) HasJoined(ctx context.Context, username, serverID string) (*auth.HasJoinedResponse, error) {
	if username == "" {
		return nil, common.ErrorNotFound
	}
	if serverID == "" {
		return nil, common.ErrorInvalidSession
	}
	return s.provider.HasJoined(ctx, username, serverID)
}

func (s *Launcher) Profile(ctx context.Context, userUUID string) (*auth.ProfileResponse, error) {
	if userUUID == "" {
		return nil, common.ErrorNotFound
	}
	return s.provider.Profile(ctx, userUUID)
}

// Profiles drops blank and repeated names before the lookup. More than
// MaxProfileNames distinct names fail with common.ErrorTooManyNames.
func (s *Launcher) Profiles(ctx context.Context, usernames []string) ([]auth.ProfilesResponse, error) {
	seen := make(map[string]struct{}, len(usernames))
	names := make([]string, 0, len(usernames))
	for _, n := range usernames {
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	if len(names) == 0 {
		return []auth.ProfilesResponse{}, nil
	}
	if len(names) > MaxProfileNames {
		return nil, common.ErrorTooManyNames
	}
	return s.provider.Profiles(ctx, names)
}

// ServerToken returns the encrypted per-process token.
func (s *Launcher) ServerToken(ctx context.Context) (string, error) {
	tok, err := s.issuer.EncryptedToken()
	if err != nil {
		s.logger.Error(ctx, "server token encryption failed", "error", err)
		return "", common.ErrorInternal
	}
	return tok, nil
}

// OpenSessionToken recovers the credentials sealed by Authenticate.
func (s *Launcher) OpenSessionToken(sessionToken string) (secure.Credentials, error) {
	return s.enc.DecryptCredentials(sessionToken)
}
