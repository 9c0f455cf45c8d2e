package usecase

import (
	"context"
	"fmt"

	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	List(ctx context.Context, q request.UserListQuery) (*response.Page[entity.User], error)
	Get(ctx context.Context, id string) (*entity.User, error)
	ByRole(ctx context.Context, role string) ([]entity.User, error)
	Update(ctx context.Context, id string, draft *request.UserDraft) (*entity.User, error)
	UpdateStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users backend.UserClient
	log   *zap.Logger
}

func NewUserService(users backend.UserClient, log *zap.Logger) UserService {
	return &userService{users: users, log: log}
}

func (us *userService) List(ctx context.Context, q request.UserListQuery) (*response.Page[entity.User], error) {
	if q.Role != "" && !entity.UserRole(q.Role).Valid() {
		return nil, fmt.Errorf("invalid role filter: %s", q.Role)
	}
	if q.Status != "" && !entity.UserStatus(q.Status).Valid() {
		return nil, fmt.Errorf("invalid status filter: %s", q.Status)
	}

	return us.users.List(ctx, q)
}

func (us *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid user ID")
	}
	return us.users.Get(ctx, id)
}

func (us *userService) ByRole(ctx context.Context, role string) ([]entity.User, error) {
	if !entity.UserRole(role).Valid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return us.users.ByRole(ctx, role)
}

func (us *userService) Update(ctx context.Context, id string, draft *request.UserDraft) (*entity.User, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid user ID")
	}
	if errs := utils.ValidateStruct(draft); len(errs) > 0 {
		us.log.Warn("User draft validation failed", zap.String("user_id", id), zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.users.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}

	us.log.Info("User updated", zap.String("user_id", id), zap.String("email", user.Email))
	return user, nil
}

// UpdateStatus refuses any status outside the user enum before the network
// call is ever made
func (us *userService) UpdateStatus(ctx context.Context, id string, status entity.UserStatus) (*entity.User, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid user ID")
	}
	if !status.Valid() {
		us.log.Warn("Rejected invalid user status", zap.String("user_id", id), zap.String("status", string(status)))
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	user, err := us.users.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return nil, err
	}

	us.log.Info("User status updated", zap.String("user_id", id), zap.String("status", string(status)))
	return user, nil
}

func (us *userService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("invalid user ID")
	}
	if err := us.users.Delete(ctx, id); err != nil {
		return err
	}

	us.log.Info("User deleted", zap.String("user_id", id))
	return nil
}
