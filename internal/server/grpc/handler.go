package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/launchkeeper/internal/common"
	pb "github.com/dmitrijs2005/launchkeeper/internal/proto"
)

// toStatus maps the error taxonomy onto gRPC codes. Messages are the sentinel
// texts only, never backend detail.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrorInvalidCredentials.Error())
	case errors.Is(err, common.ErrorAuthenticationFailed):
		return status.Error(codes.Unauthenticated, common.ErrorAuthenticationFailed.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, common.ErrorNotFound.Error())
	case errors.Is(err, common.ErrorInvalidSession):
		return status.Error(codes.PermissionDenied, common.ErrorInvalidSession.Error())
	case errors.Is(err, common.ErrorTooManyNames):
		return status.Error(codes.InvalidArgument, common.ErrorTooManyNames.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

func tokenFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(common.AccessTokenHeaderName); len(v) > 0 {
		return v[0]
	}
	return ""
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {
	resp, err := s.launcher.Authenticate(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.AuthenticateResponse{
		Username:     resp.Username,
		UserUuid:     resp.UserUUID,
		AccessToken:  resp.AccessToken,
		SkinUrl:      resp.SkinURL,
		CapeUrl:      resp.CapeURL,
		SessionToken: resp.SessionToken,
	}, nil
}

func (s *GRPCServer) GetToken(ctx context.Context, req *pb.GetTokenRequest) (*pb.GetTokenResponse, error) {
	tok, err := s.launcher.ServerToken(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetTokenResponse{Token: tok}, nil
}

// Join takes the bearer credential from the request body, or from the
// access_token metadata key when the body leaves it empty.
func (s *GRPCServer) Join(ctx context.Context, req *pb.JoinRequest) (*pb.JoinResponse, error) {
	token := req.GetAccessToken()
	if token == "" {
		token = tokenFromMetadata(ctx)
	}

	ok, err := s.launcher.Join(ctx, token, req.GetUserUuid(), req.GetServerId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.JoinResponse{Ok: ok}, nil
}

func (s *GRPCServer) HasJoined(ctx context.Context, req *pb.HasJoinedRequest) (*pb.HasJoinedResponse, error) {
	resp, err := s.launcher.HasJoined(ctx, req.GetUsername(), req.GetServerId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.HasJoinedResponse{
		UserUuid: resp.UserUUID,
		Username: resp.Username,
		SkinUrl:  resp.SkinURL,
		CapeUrl:  resp.CapeURL,
	}, nil
}

func (s *GRPCServer) Profile(ctx context.Context, req *pb.ProfileRequest) (*pb.ProfileResponse, error) {
	resp, err := s.launcher.Profile(ctx, req.GetUserUuid())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ProfileResponse{
		UserUuid: resp.UserUUID,
		Username: resp.Username,
		SkinUrl:  resp.SkinURL,
		CapeUrl:  resp.CapeURL,
	}, nil
}

func (s *GRPCServer) Profiles(ctx context.Context, req *pb.ProfilesRequest) (*pb.ProfilesResponse, error) {
	found, err := s.launcher.Profiles(ctx, req.GetUsernames())
	if err != nil {
		return nil, toStatus(err)
	}

	out := &pb.ProfilesResponse{Profiles: make([]*pb.ProfileRef, 0, len(found))}
	for _, p := range found {
		out.Profiles = append(out.Profiles, &pb.ProfileRef{Id: p.ID, Name: p.Name})
	}
	return out, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
