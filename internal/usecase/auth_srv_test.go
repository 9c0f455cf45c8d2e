package usecase

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"), zap.NewNop())
}

func adminSession() *entity.AdminSession {
	return &entity.AdminSession{
		UserID:   "u-1",
		Email:    "admin@foodgram.id",
		FullName: "Admin Satu",
		Role:     entity.RoleAdmin,
		Status:   entity.UserActive,
		Token:    "tok-abc",
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("successful admin login persists the session", func(t *testing.T) {
		store := newTestStore(t)
		auth := &stubAuthClient{
			loginFn: func(ctx context.Context, req *request.LoginRequest) (*entity.AdminSession, error) {
				return adminSession(), nil
			},
		}
		svc := NewAuthService(auth, store, zap.NewNop())

		result, err := svc.Login(ctx, &request.LoginRequest{Email: "admin@foodgram.id", Password: "secret123"})

		require.NoError(t, err)
		assert.True(t, result.Success)
		require.NotNil(t, result.Admin)
		assert.Equal(t, "admin@foodgram.id", result.Admin.Email)
		require.NotNil(t, store.Current())
		assert.Equal(t, "tok-abc", store.Token())
	})

	t.Run("rejected credentials become a failure result", func(t *testing.T) {
		store := newTestStore(t)
		auth := &stubAuthClient{
			loginFn: func(ctx context.Context, req *request.LoginRequest) (*entity.AdminSession, error) {
				return nil, &backend.Error{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
			},
		}
		svc := NewAuthService(auth, store, zap.NewNop())

		result, err := svc.Login(ctx, &request.LoginRequest{Email: "admin@foodgram.id", Password: "wrongpass"})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Invalid credentials", result.Message)
		assert.Nil(t, store.Current())
	})

	t.Run("non-admin account is denied and never persisted", func(t *testing.T) {
		store := newTestStore(t)
		auth := &stubAuthClient{
			loginFn: func(ctx context.Context, req *request.LoginRequest) (*entity.AdminSession, error) {
				customer := adminSession()
				customer.Role = entity.RoleCustomer
				return customer, nil
			},
		}
		svc := NewAuthService(auth, store, zap.NewNop())

		result, err := svc.Login(ctx, &request.LoginRequest{Email: "user@foodgram.id", Password: "secret123"})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Access denied. Admin privileges required.", result.Message)
		assert.Nil(t, store.Current())
	})

	t.Run("invalid input fails validation before dispatch", func(t *testing.T) {
		store := newTestStore(t)
		svc := NewAuthService(&stubAuthClient{}, store, zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Email: "not-an-email", Password: "123"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("transport failure surfaces as an error", func(t *testing.T) {
		store := newTestStore(t)
		auth := &stubAuthClient{
			loginFn: func(ctx context.Context, req *request.LoginRequest) (*entity.AdminSession, error) {
				return nil, errUpstream
			},
		}
		svc := NewAuthService(auth, store, zap.NewNop())

		_, err := svc.Login(ctx, &request.LoginRequest{Email: "admin@foodgram.id", Password: "secret123"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "login failed")
	})
}

func TestAuthService_Register(t *testing.T) {
	t.Run("registration succeeds without logging in", func(t *testing.T) {
		store := newTestStore(t)
		auth := &stubAuthClient{
			registerFn: func(ctx context.Context, req *request.RegisterRequest) (*entity.AdminSession, error) {
				return adminSession(), nil
			},
		}
		svc := NewAuthService(auth, store, zap.NewNop())

		result, err := svc.Register(context.Background(), &request.RegisterRequest{
			FullName: "Admin Dua",
			Email:    "admin2@foodgram.id",
			Password: "secret123",
			Phone:    "08123456789",
		})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Nil(t, store.Current())
	})

	t.Run("duplicate email becomes a failure result", func(t *testing.T) {
		store := newTestStore(t)
		auth := &stubAuthClient{
			registerFn: func(ctx context.Context, req *request.RegisterRequest) (*entity.AdminSession, error) {
				return nil, &backend.Error{StatusCode: http.StatusBadRequest, Message: "Email already registered"}
			},
		}
		svc := NewAuthService(auth, store, zap.NewNop())

		result, err := svc.Register(context.Background(), &request.RegisterRequest{
			FullName: "Admin Dua",
			Email:    "admin2@foodgram.id",
			Password: "secret123",
			Phone:    "08123456789",
		})

		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Email already registered", result.Message)
	})
}

func TestAuthService_ForceLogout(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(adminSession()))

	svc := NewAuthService(&stubAuthClient{}, store, zap.NewNop())
	require.True(t, svc.IsAuthenticated())

	svc.ForceLogout()

	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.CurrentAdmin())

	// Idempotent when already logged out
	svc.ForceLogout()
	assert.False(t, svc.IsAuthenticated())
}
