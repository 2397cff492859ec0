package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/logging"
	"github.com/dmitrijs2005/launchkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/launchkeeper/internal/server/secure"
	"github.com/dmitrijs2005/launchkeeper/internal/server/skins"
)

// Deps are the collaborators shared by every provider.
type Deps struct {
	Users     users.Repository
	Skins     skins.Lookup
	Encryptor *secure.Encryptor
	Logger    logging.Logger
}

// newAccessToken is a seam for tests that need predictable tokens.
var newAccessToken = func() string {
	return uuid.NewString()
}

// core implements the parts of Provider that do not depend on the backend.
type core struct {
	users  users.Repository
	skins  skins.Lookup
	enc    *secure.Encryptor
	logger logging.Logger
}

func newCore(d Deps, module string) (core, error) {
	if d.Users == nil || d.Encryptor == nil {
		return core{}, fmt.Errorf("%w: provider needs a user store and an encryptor", common.ErrorConfiguration)
	}
	if d.Skins == nil {
		d.Skins = skins.TemplateLookup{}
	}
	if d.Logger == nil {
		d.Logger = logging.Nop{}
	}
	return core{
		users:  d.Users,
		skins:  d.Skins,
		enc:    d.Encryptor,
		logger: d.Logger.With("module", module),
	}, nil
}

// respond builds the Authenticate result. login and password are the
// submitted credentials and go into the session token as-is.
func (c *core) respond(ctx context.Context, userUUID, userName, accessToken, login, password string) (*AuthResponse, error) {
	sessionToken, err := c.enc.EncryptCredentials(login, password)
	if err != nil {
		c.logger.Error(ctx, "session token encryption failed", "username", login, "error", err)
		return nil, common.ErrorAuthenticationFailed
	}

	return &AuthResponse{
		Username:     userName,
		UserUUID:     userUUID,
		AccessToken:  accessToken,
		SkinURL:      c.skins.Skin(ctx, userUUID, userName),
		CapeURL:      c.skins.Cape(ctx, userUUID, userName),
		SessionToken: sessionToken,
	}, nil
}

func (c *core) Join(ctx context.Context, accessToken, userUUID, serverID string) (bool, error) {
	ok, err := c.users.BindServer(ctx, accessToken, userUUID, serverID)
	if err != nil {
		c.logger.Error(ctx, "join failed", "uuid", userUUID, "error", err)
		return false, common.ErrorInternal
	}
	if !ok {
		c.logger.Debug(ctx, "join rejected", "uuid", userUUID)
	}
	return ok, nil
}

func (c *core) HasJoined(ctx context.Context, username, serverID string) (*HasJoinedResponse, error) {
	user, err := c.users.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		c.logger.Error(ctx, "hasJoined lookup failed", "username", username, "error", err)
		return nil, common.ErrorInternal
	}

	if user.ServerID == "" || user.ServerID != serverID {
		return nil, common.ErrorInvalidSession
	}

	return &HasJoinedResponse{
		UserUUID: user.UserUUID,
		Username: user.UserName,
		SkinURL:  c.skins.Skin(ctx, user.UserUUID, user.UserName),
		CapeURL:  c.skins.Cape(ctx, user.UserUUID, user.UserName),
	}, nil
}

func (c *core) Profile(ctx context.Context, userUUID string) (*ProfileResponse, error) {
	user, err := c.users.GetUserByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		c.logger.Error(ctx, "profile lookup failed", "uuid", userUUID, "error", err)
		return nil, common.ErrorInternal
	}

	return &ProfileResponse{
		UserUUID: user.UserUUID,
		Username: user.UserName,
		SkinURL:  c.skins.Skin(ctx, user.UserUUID, user.UserName),
		CapeURL:  c.skins.Cape(ctx, user.UserUUID, user.UserName),
	}, nil
}

func (c *core) Profiles(ctx context.Context, usernames []string) ([]ProfilesResponse, error) {
	found, err := c.users.GetUsersByLogins(ctx, usernames)
	if err != nil {
		c.logger.Error(ctx, "profiles lookup failed", "count", len(usernames), "error", err)
		return nil, common.ErrorInternal
	}

	result := make([]ProfilesResponse, 0, len(found))
	for _, u := range found {
		result = append(result, ProfilesResponse{ID: u.UserUUID, Name: u.UserName})
	}
	return result, nil
}
