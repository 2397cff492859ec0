// Package auth holds the identity providers. Every provider satisfies the
// same Provider contract; they differ only in how Authenticate establishes
// trust in the submitted credentials.
package auth

import "context"

// AuthResponse is returned by a successful Authenticate. SessionToken seals
// the submitted credentials so a client can later prove which credentials
// opened this session without resending them.
type AuthResponse struct {
	Username     string `json:"username"`
	UserUUID     string `json:"userUUID"`
	AccessToken  string `json:"accessToken"`
	SkinURL      string `json:"skinUrl,omitempty"`
	CapeURL      string `json:"capeUrl,omitempty"`
	SessionToken string `json:"sessionToken"`
}

type HasJoinedResponse struct {
	UserUUID string `json:"userUUID"`
	Username string `json:"username"`
	SkinURL  string `json:"skinUrl,omitempty"`
	CapeURL  string `json:"capeUrl,omitempty"`
}

type ProfileResponse struct {
	UserUUID string `json:"userUUID"`
	Username string `json:"username"`
	SkinURL  string `json:"skinUrl,omitempty"`
	CapeURL  string `json:"capeUrl,omitempty"`
}

type ProfilesResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Provider is the identity backend contract.
//
// Authenticate fails with common.ErrorInvalidCredentials or
// common.ErrorAuthenticationFailed. Join reports false, not an error, when
// (accessToken, userUUID) matches nothing. HasJoined fails with
// common.ErrorNotFound for an unknown username and common.ErrorInvalidSession
// when the bound server differs. Profile fails with common.ErrorNotFound.
// Profiles omits unknown usernames.
type Provider interface {
	Authenticate(ctx context.Context, username, password string) (*AuthResponse, error)
	Join(ctx context.Context, accessToken, userUUID, serverID string) (bool, error)
	HasJoined(ctx context.Context, username, serverID string) (*HasJoinedResponse, error)
	Profile(ctx context.Context, userUUID string) (*ProfileResponse, error)
	Profiles(ctx context.Context, usernames []string) ([]ProfilesResponse, error)
}
