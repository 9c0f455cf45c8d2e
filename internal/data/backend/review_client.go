package backend

import (
	"context"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewClient interface {
	List(ctx context.Context, q request.ReviewListQuery) (*response.Page[entity.Review], error)
	Get(ctx context.Context, id string) (*entity.Review, error)
	ByRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error)
	ByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]entity.Review, error)
	RestaurantRating(ctx context.Context, restaurantID string) (float64, error)
	DeliveryPersonRating(ctx context.Context, deliveryPersonID string) (float64, error)
	Delete(ctx context.Context, id string) error
}

type reviewClient struct {
	api *Client
	log *zap.Logger
}

func NewReviewClient(api *Client, log *zap.Logger) ReviewClient {
	return &reviewClient{api: api, log: log}
}

func (rc *reviewClient) List(ctx context.Context, q request.ReviewListQuery) (*response.Page[entity.Review], error) {
	query := pageValues(q.Page, q.Size)
	setOptional(query, "restaurantId", q.RestaurantID)
	setOptional(query, "deliveryPersonId", q.DeliveryPersonID)

	return listPage[entity.Review](ctx, rc.api, "/reviews", query)
}

func (rc *reviewClient) Get(ctx context.Context, id string) (*entity.Review, error) {
	var review entity.Review
	if err := rc.api.Get(ctx, "/reviews/"+id, nil, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (rc *reviewClient) ByRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := rc.api.Get(ctx, "/reviews/restaurant/"+restaurantID, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (rc *reviewClient) ByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]entity.Review, error) {
	var reviews []entity.Review
	if err := rc.api.Get(ctx, "/reviews/delivery-person/"+deliveryPersonID, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (rc *reviewClient) RestaurantRating(ctx context.Context, restaurantID string) (float64, error) {
	var rating float64
	if err := rc.api.Get(ctx, "/reviews/restaurant/"+restaurantID+"/rating", nil, &rating); err != nil {
		return 0, err
	}
	return rating, nil
}

func (rc *reviewClient) DeliveryPersonRating(ctx context.Context, deliveryPersonID string) (float64, error) {
	var rating float64
	if err := rc.api.Get(ctx, "/reviews/delivery-person/"+deliveryPersonID+"/rating", nil, &rating); err != nil {
		return 0, err
	}
	return rating, nil
}

func (rc *reviewClient) Delete(ctx context.Context, id string) error {
	return rc.api.Delete(ctx, "/reviews/"+id, nil)
}
