package backend

import (
	"context"
	"net/url"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"

	"go.uber.org/zap"
)

type UserClient interface {
	List(ctx context.Context, q request.UserListQuery) (*response.Page[entity.User], error)
	Get(ctx context.Context, id string) (*entity.User, error)
	ByRole(ctx context.Context, role string) ([]entity.User, error)
	Update(ctx context.Context, id string, draft *request.UserDraft) (*entity.User, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}

type userClient struct {
	api *Client
	log *zap.Logger
}

func NewUserClient(api *Client, log *zap.Logger) UserClient {
	return &userClient{api: api, log: log}
}

func (uc *userClient) List(ctx context.Context, q request.UserListQuery) (*response.Page[entity.User], error) {
	query := pageValues(q.Page, q.Size)
	setOptional(query, "role", q.Role)
	setOptional(query, "status", q.Status)

	return listPage[entity.User](ctx, uc.api, "/users", query)
}

func (uc *userClient) Get(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := uc.api.Get(ctx, "/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *userClient) ByRole(ctx context.Context, role string) ([]entity.User, error) {
	var users []entity.User
	if err := uc.api.Get(ctx, "/users/role/"+role, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (uc *userClient) Update(ctx context.Context, id string, draft *request.UserDraft) (*entity.User, error) {
	var user entity.User
	if err := uc.api.Put(ctx, "/users/"+id, nil, draft, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateStatus uses the dedicated sub-path; the new value travels as a
// query parameter, not a request body
func (uc *userClient) UpdateStatus(ctx context.Context, id, status string) (*entity.User, error) {
	query := url.Values{}
	query.Set("status", status)

	var user entity.User
	if err := uc.api.Patch(ctx, "/users/"+id+"/status", query, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (uc *userClient) Delete(ctx context.Context, id string) error {
	return uc.api.Delete(ctx, "/users/"+id, nil)
}
