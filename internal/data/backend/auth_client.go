package backend

import (
	"context"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"

	"go.uber.org/zap"
)

type AuthClient interface {
	Login(ctx context.Context, req *request.LoginRequest) (*entity.AdminSession, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*entity.AdminSession, error)
}

type authClient struct {
	api *Client
	log *zap.Logger
}

func NewAuthClient(api *Client, log *zap.Logger) AuthClient {
	return &authClient{api: api, log: log}
}

func (ac *authClient) Login(ctx context.Context, req *request.LoginRequest) (*entity.AdminSession, error) {
	var session entity.AdminSession
	if err := ac.api.Post(ctx, "/auth/login", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (ac *authClient) Register(ctx context.Context, req *request.RegisterRequest) (*entity.AdminSession, error) {
	var session entity.AdminSession
	if err := ac.api.Post(ctx, "/auth/register", req, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
