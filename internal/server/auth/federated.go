package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
)

const (
	isMePath                = "/api/auth/isMe"
	DefaultFederatedTimeout = 5 * time.Second
	maxAuthorityReply       = 64 << 10
)

// FederatedOptions configure the remote authority.
type FederatedOptions struct {
	// URL is the authority base, the check is POSTed to URL + "/api/auth/isMe".
	URL string
	// Secret, when set, signs a short-lived service token sent as a bearer.
	Secret    string
	ProjectID uuid.UUID
	Timeout   time.Duration
	// Client overrides the HTTP client; its Timeout is replaced by Timeout.
	Client *http.Client
}

type isMeRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type isMeResponse struct {
	Login string `json:"login"`
}

// FederatedProvider delegates the credential check to a remote authority
// and mirrors the identity locally, provisioning it on first login.
type FederatedProvider struct {
	core
	opts   FederatedOptions
	client *http.Client
}

func NewFederatedProvider(d Deps, opts FederatedOptions) (*FederatedProvider, error) {
	c, err := newCore(d, "federated-provider")
	if err != nil {
		return nil, err
	}
	if opts.URL == "" {
		return nil, fmt.Errorf("%w: auth server url is not set", common.ErrorConfiguration)
	}
	if opts.ProjectID == uuid.Nil {
		return nil, fmt.Errorf("%w: project id is not set", common.ErrorConfiguration)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultFederatedTimeout
	}
	opts.URL = strings.TrimRight(opts.URL, "/")

	client := &http.Client{}
	if opts.Client != nil {
		cp := *opts.Client
		client = &cp
	}
	client.Timeout = opts.Timeout

	return &FederatedProvider{core: c, opts: opts, client: client}, nil
}

// DeriveUUID maps a login onto its identity: a name-based (SHA-1, version 5)
// UUID in the project namespace. The same login always yields the same UUID.
func DeriveUUID(projectID uuid.UUID, login string) string {
	return uuid.NewSHA1(projectID, []byte(login)).String()
}

// Authenticate asks the authority to vouch for the credentials, then creates
// or refreshes the local identity named by the login the authority returned.
// Failures are logged and reported as common.ErrorAuthenticationFailed.
func (p *FederatedProvider) Authenticate(ctx context.Context, username, password string) (*AuthResponse, error) {
	login, err := p.checkRemote(ctx, username, password)
	if err != nil {
		p.logger.Warn(ctx, "remote authority rejected login", "username", username, "error", err)
		return nil, common.ErrorAuthenticationFailed
	}

	token := newAccessToken()
	user, err := p.users.UpsertAccessToken(ctx, DeriveUUID(p.opts.ProjectID, login), login, token)
	if err != nil {
		p.logger.Error(ctx, "identity provisioning failed", "username", username, "login", login, "error", err)
		return nil, common.ErrorAuthenticationFailed
	}

	return p.respond(ctx, user.UserUUID, user.UserName, user.AccessToken, username, password)
}

func (p *FederatedProvider) checkRemote(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(isMeRequest{Login: username, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.opts.URL+isMePath, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	if p.opts.Secret != "" {
		tok, err := GenerateServiceToken(p.opts.ProjectID.String(), []byte(p.opts.Secret), ServiceTokenTTL)
		if err != nil {
			return "", fmt.Errorf("service token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("authority status %d", resp.StatusCode)
	}

	var out isMeResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxAuthorityReply)).Decode(&out); err != nil {
		return "", fmt.Errorf("authority reply: %w", err)
	}
	if out.Login == "" {
		return "", fmt.Errorf("authority reply has no login")
	}

	return out.Login, nil
}
