package backend

import (
	"context"
	"net/url"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"

	"go.uber.org/zap"
)

type RestaurantClient interface {
	List(ctx context.Context, q request.RestaurantListQuery) (*response.Page[entity.Restaurant], error)
	Pending(ctx context.Context) ([]entity.Restaurant, error)
	Get(ctx context.Context, id string) (*entity.Restaurant, error)
	Update(ctx context.Context, id string, draft *request.RestaurantDraft) (*entity.Restaurant, error)
	UpdateVerification(ctx context.Context, id, status string) (*entity.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

type restaurantClient struct {
	api *Client
	log *zap.Logger
}

func NewRestaurantClient(api *Client, log *zap.Logger) RestaurantClient {
	return &restaurantClient{api: api, log: log}
}

func (rc *restaurantClient) List(ctx context.Context, q request.RestaurantListQuery) (*response.Page[entity.Restaurant], error) {
	query := pageValues(q.Page, q.Size)
	setOptional(query, "verificationStatus", q.VerificationStatus)
	setOptional(query, "cuisineType", q.CuisineType)

	return listPage[entity.Restaurant](ctx, rc.api, "/restaurants", query)
}

// Pending returns the unpaged list of restaurants awaiting verification
func (rc *restaurantClient) Pending(ctx context.Context) ([]entity.Restaurant, error) {
	var restaurants []entity.Restaurant
	if err := rc.api.Get(ctx, "/restaurants/pending", nil, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (rc *restaurantClient) Get(ctx context.Context, id string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := rc.api.Get(ctx, "/restaurants/"+id, nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (rc *restaurantClient) Update(ctx context.Context, id string, draft *request.RestaurantDraft) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	if err := rc.api.Put(ctx, "/restaurants/"+id, nil, draft, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (rc *restaurantClient) UpdateVerification(ctx context.Context, id, status string) (*entity.Restaurant, error) {
	query := url.Values{}
	query.Set("status", status)

	var restaurant entity.Restaurant
	if err := rc.api.Patch(ctx, "/restaurants/"+id+"/verification", query, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (rc *restaurantClient) Delete(ctx context.Context, id string) error {
	return rc.api.Delete(ctx, "/restaurants/"+id, nil)
}
