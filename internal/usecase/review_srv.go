package usecase

import (
	"context"
	"fmt"

	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"

	"go.uber.org/zap"
)

type ReviewService interface {
	List(ctx context.Context, q request.ReviewListQuery) (*response.Page[entity.Review], error)
	Get(ctx context.Context, id string) (*entity.Review, error)
	ByRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error)
	ByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]entity.Review, error)
	RestaurantRating(ctx context.Context, restaurantID string) (float64, error)
	DeliveryPersonRating(ctx context.Context, deliveryPersonID string) (float64, error)
	Delete(ctx context.Context, id string) error
}

type reviewService struct {
	reviews backend.ReviewClient
	log     *zap.Logger
}

func NewReviewService(reviews backend.ReviewClient, log *zap.Logger) ReviewService {
	return &reviewService{reviews: reviews, log: log}
}

func (rs *reviewService) List(ctx context.Context, q request.ReviewListQuery) (*response.Page[entity.Review], error) {
	return rs.reviews.List(ctx, q)
}

func (rs *reviewService) Get(ctx context.Context, id string) (*entity.Review, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid review ID")
	}
	return rs.reviews.Get(ctx, id)
}

func (rs *reviewService) ByRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error) {
	if restaurantID == "" {
		return nil, fmt.Errorf("invalid restaurant ID")
	}
	return rs.reviews.ByRestaurant(ctx, restaurantID)
}

func (rs *reviewService) ByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]entity.Review, error) {
	if deliveryPersonID == "" {
		return nil, fmt.Errorf("invalid delivery person ID")
	}
	return rs.reviews.ByDeliveryPerson(ctx, deliveryPersonID)
}

func (rs *reviewService) RestaurantRating(ctx context.Context, restaurantID string) (float64, error) {
	if restaurantID == "" {
		return 0, fmt.Errorf("invalid restaurant ID")
	}
	return rs.reviews.RestaurantRating(ctx, restaurantID)
}

func (rs *reviewService) DeliveryPersonRating(ctx context.Context, deliveryPersonID string) (float64, error) {
	if deliveryPersonID == "" {
		return 0, fmt.Errorf("invalid delivery person ID")
	}
	return rs.reviews.DeliveryPersonRating(ctx, deliveryPersonID)
}

// Reviews carry no status; deletion is the only moderation action
func (rs *reviewService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("invalid review ID")
	}
	if err := rs.reviews.Delete(ctx, id); err != nil {
		return err
	}

	rs.log.Info("Review deleted", zap.String("review_id", id))
	return nil
}
