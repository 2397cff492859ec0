package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/launchkeeper/internal/client/client"
	pb "github.com/dmitrijs2005/launchkeeper/internal/proto"
)

type fakeLauncher struct {
	addr     string
	password string
	joinArgs []string
	closed   bool
	joinOK   bool
	err      error
}

func (f *fakeLauncher) Authenticate(_ context.Context, userName, password string) (*pb.AuthenticateResponse, error) {
	f.password = password
	if f.err != nil {
		return nil, f.err
	}
	return &pb.AuthenticateResponse{Username: userName, UserUuid: "u-1", AccessToken: "tok", SkinUrl: "https://cdn/s.png", SessionToken: "sealed"}, nil
}

func (f *fakeLauncher) ServerToken(context.Context) (string, error) {
	return "enc-token", f.err
}

func (f *fakeLauncher) Join(_ context.Context, accessToken, userUUID, serverID string) (bool, error) {
	f.joinArgs = []string{accessToken, userUUID, serverID}
	return f.joinOK, f.err
}

func (f *fakeLauncher) HasJoined(_ context.Context, userName, serverID string) (*pb.HasJoinedResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.HasJoinedResponse{UserUuid: "u-1", Username: userName}, nil
}

func (f *fakeLauncher) Profile(_ context.Context, userUUID string) (*pb.ProfileResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.ProfileResponse{UserUuid: userUUID, Username: "alice", CapeUrl: "https://cdn/c.png"}, nil
}

func (f *fakeLauncher) Profiles(_ context.Context, userNames []string) ([]*pb.ProfileRef, error) {
	return []*pb.ProfileRef{{Id: "u-1", Name: userNames[0]}}, f.err
}

func (f *fakeLauncher) Close() error {
	f.closed = true
	return nil
}

func run(t *testing.T, f *fakeLauncher, args ...string) (string, error) {
	t.Helper()

	old := dial
	t.Cleanup(func() { dial = old })
	dial = func(addr string, _ time.Duration) (launcherAPI, error) {
		f.addr = addr
		return f, nil
	}

	var out bytes.Buffer
	cmd := NewRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAuth_PasswordFlag(t *testing.T) {
	f := &fakeLauncher{}
	out, err := run(t, f, "--addr", "srv:1", "auth", "alice", "--password", "pw1")
	require.NoError(t, err)

	assert.Equal(t, "srv:1", f.addr)
	assert.Equal(t, "pw1", f.password)
	assert.Contains(t, out, "accessToken: tok")
	assert.Contains(t, out, "skin: https://cdn/s.png")
	assert.NotContains(t, out, "cape:")
	assert.True(t, f.closed)
}

func TestAuth_PromptsForPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }

	f := &fakeLauncher{}
	out, err := run(t, f, "auth", "alice")
	require.NoError(t, err)
	assert.Equal(t, "secret", f.password)
	assert.Contains(t, out, "Enter password: ")
	assert.Equal(t, "127.0.0.1:50051", f.addr)
}

func TestAuth_PromptError(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) { return nil, errors.New("no tty") }

	_, err := run(t, &fakeLauncher{}, "auth", "alice")
	assert.ErrorContains(t, err, "read password")
}

func TestAuth_Rejected(t *testing.T) {
	_, err := run(t, &fakeLauncher{err: client.ErrUnauthorized}, "auth", "alice", "--password", "x")
	assert.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestJoin(t *testing.T) {
	f := &fakeLauncher{joinOK: true}
	out, err := run(t, f, "join", "tok", "u-1", "srvA")
	require.NoError(t, err)
	assert.Equal(t, []string{"tok", "u-1", "srvA"}, f.joinArgs)
	assert.Equal(t, "joined\n", out)

	f.joinOK = false
	_, err = run(t, f, "join", "tok", "u-1", "srvA")
	assert.ErrorContains(t, err, "join rejected")

	_, err = run(t, f, "join", "tok")
	assert.Error(t, err)
}

func TestLookups(t *testing.T) {
	f := &fakeLauncher{}

	out, err := run(t, f, "token")
	require.NoError(t, err)
	assert.Equal(t, "enc-token\n", out)

	out, err = run(t, f, "has-joined", "alice", "srvA")
	require.NoError(t, err)
	assert.Contains(t, out, "uuid: u-1")

	out, err = run(t, f, "profile", "u-1")
	require.NoError(t, err)
	assert.Contains(t, out, "cape: https://cdn/c.png")

	out, err = run(t, f, "profiles", "alice")
	require.NoError(t, err)
	assert.Equal(t, "u-1 alice\n", out)

	f.err = client.ErrInvalidSession
	_, err = run(t, f, "has-joined", "alice", "srvB")
	assert.ErrorIs(t, err, client.ErrInvalidSession)
}

func TestAddrFromEnvironment(t *testing.T) {
	t.Setenv("LAUNCHKEEPER_CLI_ADDR", "env:7")

	f := &fakeLauncher{}
	_, err := run(t, f, "token")
	require.NoError(t, err)
	assert.Equal(t, "env:7", f.addr)

	_, err = run(t, f, "--addr", "flag:8", "token")
	require.NoError(t, err)
	assert.Equal(t, "flag:8", f.addr)
}

func TestDialError(t *testing.T) {
	old := dial
	t.Cleanup(func() { dial = old })
	dial = func(string, time.Duration) (launcherAPI, error) { return nil, errors.New("bad target") }

	cmd := NewRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"token"})
	assert.ErrorContains(t, cmd.Execute(), "bad target")
}
