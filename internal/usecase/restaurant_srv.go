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

type RestaurantService interface {
	List(ctx context.Context, q request.RestaurantListQuery) (*response.Page[entity.Restaurant], error)
	Pending(ctx context.Context) ([]entity.Restaurant, error)
	Get(ctx context.Context, id string) (*entity.Restaurant, error)
	Update(ctx context.Context, id string, draft *request.RestaurantDraft) (*entity.Restaurant, error)
	UpdateVerification(ctx context.Context, id string, status entity.VerificationStatus) (*entity.Restaurant, error)
	Delete(ctx context.Context, id string) error
}

type restaurantService struct {
	restaurants backend.RestaurantClient
	log         *zap.Logger
}

func NewRestaurantService(restaurants backend.RestaurantClient, log *zap.Logger) RestaurantService {
	return &restaurantService{restaurants: restaurants, log: log}
}

func (rs *restaurantService) List(ctx context.Context, q request.RestaurantListQuery) (*response.Page[entity.Restaurant], error) {
	if q.VerificationStatus != "" && !entity.VerificationStatus(q.VerificationStatus).Valid() {
		return nil, fmt.Errorf("invalid verification status filter: %s", q.VerificationStatus)
	}

	return rs.restaurants.List(ctx, q)
}

func (rs *restaurantService) Pending(ctx context.Context) ([]entity.Restaurant, error) {
	return rs.restaurants.Pending(ctx)
}

func (rs *restaurantService) Get(ctx context.Context, id string) (*entity.Restaurant, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid restaurant ID")
	}
	return rs.restaurants.Get(ctx, id)
}

func (rs *restaurantService) Update(ctx context.Context, id string, draft *request.RestaurantDraft) (*entity.Restaurant, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid restaurant ID")
	}
	if errs := utils.ValidateStruct(draft); len(errs) > 0 {
		rs.log.Warn("Restaurant draft validation failed", zap.String("restaurant_id", id), zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	restaurant, err := rs.restaurants.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}

	rs.log.Info("Restaurant updated", zap.String("restaurant_id", id), zap.String("name", restaurant.Name))
	return restaurant, nil
}

// UpdateVerification guards the tri-state enum client-side before dispatch
func (rs *restaurantService) UpdateVerification(ctx context.Context, id string, status entity.VerificationStatus) (*entity.Restaurant, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid restaurant ID")
	}
	if !status.Valid() {
		rs.log.Warn("Rejected invalid verification status",
			zap.String("restaurant_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("invalid verification status: %s", status)
	}

	restaurant, err := rs.restaurants.UpdateVerification(ctx, id, string(status))
	if err != nil {
		return nil, err
	}

	rs.log.Info("Restaurant verification updated",
		zap.String("restaurant_id", id),
		zap.String("status", string(status)),
	)
	return restaurant, nil
}

func (rs *restaurantService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("invalid restaurant ID")
	}
	if err := rs.restaurants.Delete(ctx, id); err != nil {
		return err
	}

	rs.log.Info("Restaurant deleted", zap.String("restaurant_id", id))
	return nil
}
