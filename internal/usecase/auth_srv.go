package usecase

import (
	"context"
	"errors"
	"fmt"

	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

const accessDeniedMessage = "Access denied. Admin privileges required."

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResult, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.LoginResult, error)
	Logout()
	ForceLogout()
	CurrentAdmin() *response.AdminProfile
	IsAuthenticated() bool
}

type authService struct {
	auth  backend.AuthClient
	store *session.Store
	log   *zap.Logger
}

func NewAuthService(auth backend.AuthClient, store *session.Store, log *zap.Logger) AuthService {
	return &authService{
		auth:  auth,
		store: store,
		log:   log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResult, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Authenticate against the backend
	admin, err := s.auth.Login(ctx, req)
	if err != nil {
		// Rejected credentials resolve to a failure result carrying the
		// backend's message, not an error
		var apiErr *backend.Error
		if errors.As(err, &apiErr) {
			s.log.Warn("Login rejected by backend",
				zap.String("email", req.Email),
				zap.Int("status", apiErr.StatusCode),
			)
			return &response.LoginResult{Success: false, Message: apiErr.Message}, nil
		}

		s.log.Error("Login request failed", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// 3. Only admins may use the console; nothing is persisted otherwise
	if !admin.IsAdmin() {
		s.log.Warn("Non-admin login attempt",
			zap.String("email", admin.Email),
			zap.String("role", string(admin.Role)),
		)
		return &response.LoginResult{Success: false, Message: accessDeniedMessage}, nil
	}

	// 4. Persist the session slot
	if err := s.store.Save(admin); err != nil {
		s.log.Error("Failed to persist session", zap.Error(err), zap.String("email", admin.Email))
		return nil, fmt.Errorf("failed to persist session")
	}

	s.log.Info("Admin logged in",
		zap.String("user_id", admin.UserID),
		zap.String("email", admin.Email),
	)

	return &response.LoginResult{
		Success: true,
		Admin:   response.NewAdminProfile(admin),
	}, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.LoginResult, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	admin, err := s.auth.Register(ctx, req)
	if err != nil {
		var apiErr *backend.Error
		if errors.As(err, &apiErr) {
			return &response.LoginResult{Success: false, Message: apiErr.Message}, nil
		}
		s.log.Error("Register request failed", zap.String("email", req.Email), zap.Error(err))
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.log.Info("Admin registered", zap.String("email", admin.Email))

	// Registration does not log the new account in
	return &response.LoginResult{
		Success: true,
		Admin:   response.NewAdminProfile(admin),
	}, nil
}

func (s *authService) Logout() {
	admin := s.store.Current()
	s.store.Logout()
	if admin != nil {
		s.log.Info("Admin logged out", zap.String("email", admin.Email))
	}
}

// ForceLogout is wired as the backend client's 401 hook: the whole console
// deauthenticates on a single expired-session event
func (s *authService) ForceLogout() {
	if s.store.Current() == nil {
		return
	}
	s.log.Warn("Session expired, logging out")
	s.store.Logout()
}

func (s *authService) CurrentAdmin() *response.AdminProfile {
	return response.NewAdminProfile(s.store.Current())
}

func (s *authService) IsAuthenticated() bool {
	return s.store.Current() != nil
}
