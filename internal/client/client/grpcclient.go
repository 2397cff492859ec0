package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/dmitrijs2005/launchkeeper/internal/proto"
)

const defaultRequestTimeout = 12 * time.Second

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.LauncherClient
}

// NewLauncherClientService connects lazily to endpointURL. Every call is
// bounded by timeout, or by a 12s default when timeout is not positive.
func NewLauncherClientService(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewLauncherClient(conn)
	return nil
}

func (s *GRPCClient) requestTimeout() time.Duration {
	if s.timeout <= 0 {
		return defaultRequestTimeout
	}
	return s.timeout
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Authenticate(ctx context.Context, userName, password string) (*pb.AuthenticateResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	resp, err := s.client.Authenticate(ctx, &pb.AuthenticateRequest{Username: userName, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) ServerToken(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	resp, err := s.client.GetToken(ctx, &pb.GetTokenRequest{})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.Token, nil
}

func (s *GRPCClient) Join(ctx context.Context, accessToken, userUUID, serverID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	resp, err := s.client.Join(ctx, &pb.JoinRequest{AccessToken: accessToken, UserUuid: userUUID, ServerId: serverID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Ok, nil
}

func (s *GRPCClient) HasJoined(ctx context.Context, userName, serverID string) (*pb.HasJoinedResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	resp, err := s.client.HasJoined(ctx, &pb.HasJoinedRequest{Username: userName, ServerId: serverID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Profile(ctx context.Context, userUUID string) (*pb.ProfileResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	resp, err := s.client.Profile(ctx, &pb.ProfileRequest{UserUuid: userUUID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp, nil
}

func (s *GRPCClient) Profiles(ctx context.Context, userNames []string) ([]*pb.ProfileRef, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout())
	defer cancel()

	resp, err := s.client.Profiles(ctx, &pb.ProfilesRequest{Usernames: userNames})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Profiles, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return fmt.Errorf("unexpected ping status %q", resp.Status)
	}
	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrInvalidSession
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
