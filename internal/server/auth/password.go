package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/server/auth/passwords"
)

// PasswordProvider checks credentials against verifiers kept in the user
// store. It never creates identities.
type PasswordProvider struct {
	core
	verifier passwords.Verifier
}

func NewPasswordProvider(d Deps, verifier passwords.Verifier) (*PasswordProvider, error) {
	c, err := newCore(d, "password-provider")
	if err != nil {
		return nil, err
	}
	if verifier == nil {
		return nil, fmt.Errorf("%w: password verifier is not set", common.ErrorConfiguration)
	}
	return &PasswordProvider{core: c, verifier: verifier}, nil
}

// Authenticate verifies the password and rotates the access token. Unknown
// users and wrong passwords both yield common.ErrorInvalidCredentials.
func (p *PasswordProvider) Authenticate(ctx context.Context, username, password string) (*AuthResponse, error) {
	user, err := p.users.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			p.logger.Debug(ctx, "unknown user", "username", username)
			return nil, common.ErrorInvalidCredentials
		}
		p.logger.Error(ctx, "user lookup failed", "username", username, "error", err)
		return nil, common.ErrorAuthenticationFailed
	}

	ok, err := p.verifier.Verify(password, user.Password)
	if err != nil {
		p.logger.Error(ctx, "stored verifier unusable", "username", username, "error", err)
		return nil, common.ErrorAuthenticationFailed
	}
	if !ok {
		p.logger.Debug(ctx, "wrong password", "username", username)
		return nil, common.ErrorInvalidCredentials
	}

	token := newAccessToken()
	if err := p.users.UpdateAccessToken(ctx, user.UserUUID, token); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		p.logger.Error(ctx, "token rotation failed", "username", username, "error", err)
		return nil, common.ErrorAuthenticationFailed
	}

	return p.respond(ctx, user.UserUUID, user.UserName, token, username, password)
}
