package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/launchkeeper/internal/proto"
)

/*************
 * Fake pb client
 *************/

type fakePB struct {
	lastAuthReq      *pb.AuthenticateRequest
	lastJoinReq      *pb.JoinRequest
	lastHasJoinedReq *pb.HasJoinedRequest
	lastProfileReq   *pb.ProfileRequest
	lastProfilesReq  *pb.ProfilesRequest

	authResp *pb.AuthenticateResponse
	authErr  error

	tokenResp *pb.GetTokenResponse
	tokenErr  error

	joinResp *pb.JoinResponse
	joinErr  error

	hasJoinedResp *pb.HasJoinedResponse
	hasJoinedErr  error

	profileResp *pb.ProfileResponse
	profileErr  error

	profilesResp *pb.ProfilesResponse
	profilesErr  error

	pingResp *pb.PingResponse
	pingErr  error
}

func (f *fakePB) Authenticate(ctx context.Context, in *pb.AuthenticateRequest, opts ...grpc.CallOption) (*pb.AuthenticateResponse, error) {
	f.lastAuthReq = in
	return f.authResp, f.authErr
}

func (f *fakePB) GetToken(ctx context.Context, in *pb.GetTokenRequest, opts ...grpc.CallOption) (*pb.GetTokenResponse, error) {
	return f.tokenResp, f.tokenErr
}

func (f *fakePB) Join(ctx context.Context, in *pb.JoinRequest, opts ...grpc.CallOption) (*pb.JoinResponse, error) {
	f.lastJoinReq = in
	return f.joinResp, f.joinErr
}

func (f *fakePB) HasJoined(ctx context.Context, in *pb.HasJoinedRequest, opts ...grpc.CallOption) (*pb.HasJoinedResponse, error) {
	f.lastHasJoinedReq = in
	return f.hasJoinedResp, f.hasJoinedErr
}

func (f *fakePB) Profile(ctx context.Context, in *pb.ProfileRequest, opts ...grpc.CallOption) (*pb.ProfileResponse, error) {
	f.lastProfileReq = in
	return f.profileResp, f.profileErr
}

func (f *fakePB) Profiles(ctx context.Context, in *pb.ProfilesRequest, opts ...grpc.CallOption) (*pb.ProfilesResponse, error) {
	f.lastProfilesReq = in
	return f.profilesResp, f.profilesErr
}

func (f *fakePB) Ping(ctx context.Context, in *pb.PingRequest, opts ...grpc.CallOption) (*pb.PingResponse, error) {
	return f.pingResp, f.pingErr
}

func newTestClient(f *fakePB) *GRPCClient {
	return &GRPCClient{client: f}
}

func TestAuthenticate(t *testing.T) {
	f := &fakePB{authResp: &pb.AuthenticateResponse{Username: "alice", AccessToken: "tok"}}
	c := newTestClient(f)

	resp, err := c.Authenticate(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, &pb.AuthenticateRequest{Username: "alice", Password: "pw"}, f.lastAuthReq)

	f.authErr = status.Error(codes.Unauthenticated, "invalid credentials")
	_, err = c.Authenticate(context.Background(), "alice", "bad")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJoinAndHasJoined(t *testing.T) {
	f := &fakePB{
		joinResp:      &pb.JoinResponse{Ok: true},
		hasJoinedResp: &pb.HasJoinedResponse{UserUuid: "u-1", Username: "alice"},
	}
	c := newTestClient(f)

	ok, err := c.Join(context.Background(), "tok", "u-1", "srv")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, &pb.JoinRequest{AccessToken: "tok", UserUuid: "u-1", ServerId: "srv"}, f.lastJoinReq)

	hj, err := c.HasJoined(context.Background(), "alice", "srv")
	require.NoError(t, err)
	assert.Equal(t, "u-1", hj.GetUserUuid())

	f.hasJoinedErr = status.Error(codes.PermissionDenied, "invalid session")
	_, err = c.HasJoined(context.Background(), "alice", "other")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestProfiles(t *testing.T) {
	f := &fakePB{
		profileErr:   status.Error(codes.NotFound, "not found"),
		profilesResp: &pb.ProfilesResponse{Profiles: []*pb.ProfileRef{{Id: "u-1", Name: "alice"}}},
	}
	c := newTestClient(f)

	_, err := c.Profile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	ps, err := c.Profiles(context.Background(), []string{"alice", "ghost"})
	require.NoError(t, err)
	assert.Len(t, ps, 1)
	assert.Equal(t, []string{"alice", "ghost"}, f.lastProfilesReq.GetUsernames())
}

func TestServerTokenAndPing(t *testing.T) {
	f := &fakePB{tokenResp: &pb.GetTokenResponse{Token: "enc"}, pingResp: &pb.PingResponse{Status: "OK"}}
	c := newTestClient(f)

	tok, err := c.ServerToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "enc", tok)
	require.NoError(t, c.Ping(context.Background()))

	f.pingResp = &pb.PingResponse{Status: "DEGRADED"}
	assert.Error(t, c.Ping(context.Background()))

	f.pingErr = status.Error(codes.Unavailable, "down")
	assert.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}
	assert.NoError(t, c.mapError(nil))
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "")), ErrUnavailable)

	other := status.Error(codes.Internal, "internal error")
	err := c.mapError(other)
	assert.True(t, errors.Is(err, other))
	assert.Contains(t, err.Error(), "rpc error")
}

func TestNewLauncherClientService(t *testing.T) {
	c, err := NewLauncherClientService("passthrough:///localhost:50051", 0)
	require.NoError(t, err)
	assert.NotNil(t, c.client)
	assert.Equal(t, defaultRequestTimeout, c.timeout)
	assert.NoError(t, c.Close())
	assert.NoError(t, (&GRPCClient{}).Close())
}
