package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	"github.com/dmitrijs2005/launchkeeper/internal/logging"
	"github.com/dmitrijs2005/launchkeeper/internal/server/auth/passwords"
	"github.com/dmitrijs2005/launchkeeper/internal/server/models"
	"github.com/dmitrijs2005/launchkeeper/internal/server/secure"
	"github.com/dmitrijs2005/launchkeeper/internal/server/skins"
)

const aliceUUID = "6f1c0e1c-8d3b-4a47-9d0e-2b2f8a7c9a11"

func testDeps(t *testing.T, repo *memRepo) Deps {
	t.Helper()
	enc, err := secure.NewEncryptor("test-secret")
	require.NoError(t, err)
	return Deps{
		Users:     repo,
		Skins:     skins.TemplateLookup{SkinURL: "https://cdn/skins/{username}.png"},
		Encryptor: enc,
		Logger:    logging.Nop{},
	}
}

func newPasswordProvider(t *testing.T, repo *memRepo) *PasswordProvider {
	t.Helper()
	v, err := passwords.New(passwords.KindSHA256, "salt")
	require.NoError(t, err)
	p, err := NewPasswordProvider(testDeps(t, repo), v)
	require.NoError(t, err)
	return p
}

func aliceRepo() *memRepo {
	return newMemRepo(&models.User{
		UserUUID: aliceUUID,
		UserName: "alice",
		Password: passwords.HashSHA256("pw1", "salt"),
	})
}

func TestPasswordProvider_JoinScenario(t *testing.T) {
	ctx := context.Background()
	p := newPasswordProvider(t, aliceRepo())

	resp, err := p.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, aliceUUID, resp.UserUUID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "https://cdn/skins/alice.png", resp.SkinURL)
	assert.Empty(t, resp.CapeURL)

	ok, err := p.Join(ctx, resp.AccessToken, aliceUUID, "srvA")
	require.NoError(t, err)
	assert.True(t, ok)

	hj, err := p.HasJoined(ctx, "alice", "srvA")
	require.NoError(t, err)
	assert.Equal(t, aliceUUID, hj.UserUUID)
	assert.Equal(t, "https://cdn/skins/alice.png", hj.SkinURL)

	_, err = p.HasJoined(ctx, "alice", "srvB")
	assert.ErrorIs(t, err, common.ErrorInvalidSession)
}

func TestPasswordProvider_RotationInvalidatesOldToken(t *testing.T) {
	ctx := context.Background()
	p := newPasswordProvider(t, aliceRepo())

	first, err := p.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	second, err := p.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.NotEqual(t, first.AccessToken, second.AccessToken)

	ok, err := p.Join(ctx, first.AccessToken, aliceUUID, "srv")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = p.Join(ctx, second.AccessToken, aliceUUID, "srv")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordProvider_SessionTokenSealsCredentials(t *testing.T) {
	ctx := context.Background()
	deps := testDeps(t, aliceRepo())
	v, err := passwords.New(passwords.KindSHA256, "salt")
	require.NoError(t, err)
	p, err := NewPasswordProvider(deps, v)
	require.NoError(t, err)

	resp, err := p.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)

	creds, err := deps.Encryptor.DecryptCredentials(resp.SessionToken)
	require.NoError(t, err)
	assert.Equal(t, secure.Credentials{Login: "alice", Password: "pw1"}, creds)
}

func TestPasswordProvider_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	p := newPasswordProvider(t, aliceRepo())

	_, err := p.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)

	_, err = p.Authenticate(ctx, "ghost", "pw1")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}

func TestPasswordProvider_StoreFailure(t *testing.T) {
	repo := aliceRepo()
	repo.err = errors.New("connection refused")
	p := newPasswordProvider(t, repo)
	ctx := context.Background()

	_, err := p.Authenticate(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, common.ErrorAuthenticationFailed)
	assert.NotContains(t, err.Error(), "connection refused")

	_, err = p.Join(ctx, "tok", aliceUUID, "srv")
	assert.ErrorIs(t, err, common.ErrorInternal)

	_, err = p.HasJoined(ctx, "alice", "srv")
	assert.ErrorIs(t, err, common.ErrorInternal)

	_, err = p.Profile(ctx, aliceUUID)
	assert.ErrorIs(t, err, common.ErrorInternal)

	_, err = p.Profiles(ctx, []string{"alice"})
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestPasswordProvider_UnusableVerifier(t *testing.T) {
	repo := newMemRepo(&models.User{UserUUID: aliceUUID, UserName: "alice", Password: "plain-text"})
	v, err := passwords.New(passwords.KindBcrypt, "")
	require.NoError(t, err)
	p, err := NewPasswordProvider(testDeps(t, repo), v)
	require.NoError(t, err)

	_, err = p.Authenticate(context.Background(), "alice", "plain-text")
	assert.ErrorIs(t, err, common.ErrorAuthenticationFailed)
}

func TestPasswordProvider_CorruptArgon2Cost(t *testing.T) {
	repo := newMemRepo(&models.User{
		UserUUID: aliceUUID,
		UserName: "alice",
		Password: "$argon2id$v=19$m=65536,t=1,p=0$c2FsdHNhbHQ$aGFzaGhhc2g",
	})
	v, err := passwords.New(passwords.KindArgon2id, "")
	require.NoError(t, err)
	p, err := NewPasswordProvider(testDeps(t, repo), v)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		_, err = p.Authenticate(context.Background(), "alice", "pw")
	})
	assert.ErrorIs(t, err, common.ErrorAuthenticationFailed)
}

func TestJoin_NoMatchIsNotAnError(t *testing.T) {
	ctx := context.Background()
	p := newPasswordProvider(t, aliceRepo())

	for _, tc := range []struct{ token, uuid string }{
		{"", aliceUUID},
		{"nope", aliceUUID},
		{"nope", "unknown"},
	} {
		ok, err := p.Join(ctx, tc.token, tc.uuid, "srv")
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestHasJoined_Errors(t *testing.T) {
	ctx := context.Background()
	p := newPasswordProvider(t, aliceRepo())

	_, err := p.HasJoined(ctx, "ghost", "srv")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// authenticated but never joined
	_, err = p.HasJoined(ctx, "alice", "")
	assert.ErrorIs(t, err, common.ErrorInvalidSession)
}

func TestProfileAndProfiles(t *testing.T) {
	ctx := context.Background()
	repo := aliceRepo()
	_, err := repo.Create(ctx, &models.User{UserUUID: "u-bob", UserName: "bob"})
	require.NoError(t, err)
	p := newPasswordProvider(t, repo)

	prof, err := p.Profile(ctx, aliceUUID)
	require.NoError(t, err)
	assert.Equal(t, "alice", prof.Username)
	assert.Equal(t, "https://cdn/skins/alice.png", prof.SkinURL)

	_, err = p.Profile(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	empty, err := p.Profiles(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	got, err := p.Profiles(ctx, []string{"bob", "ghost", "alice"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []ProfilesResponse{
		{ID: aliceUUID, Name: "alice"},
		{ID: "u-bob", Name: "bob"},
	}, got)
}

func TestNewPasswordProvider_Misconfigured(t *testing.T) {
	_, err := NewPasswordProvider(Deps{}, nil)
	assert.ErrorIs(t, err, common.ErrorConfiguration)

	_, err = NewPasswordProvider(testDeps(t, newMemRepo()), nil)
	assert.ErrorIs(t, err, common.ErrorConfiguration)
}
