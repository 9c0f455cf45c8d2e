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

type DeliveryPersonService interface {
	List(ctx context.Context, q request.DeliveryPersonListQuery) (*response.Page[entity.DeliveryPerson], error)
	Pending(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error)
	Get(ctx context.Context, id string) (*entity.DeliveryPerson, error)
	Update(ctx context.Context, id string, draft *request.DeliveryPersonDraft) (*entity.DeliveryPerson, error)
	UpdateVerification(ctx context.Context, id string, status entity.VerificationStatus) (*entity.DeliveryPerson, error)
	Delete(ctx context.Context, id string) error
}

type deliveryPersonService struct {
	persons backend.DeliveryPersonClient
	log     *zap.Logger
}

func NewDeliveryPersonService(persons backend.DeliveryPersonClient, log *zap.Logger) DeliveryPersonService {
	return &deliveryPersonService{persons: persons, log: log}
}

func (ds *deliveryPersonService) List(ctx context.Context, q request.DeliveryPersonListQuery) (*response.Page[entity.DeliveryPerson], error) {
	if q.VerificationStatus != "" && !entity.VerificationStatus(q.VerificationStatus).Valid() {
		return nil, fmt.Errorf("invalid verification status filter: %s", q.VerificationStatus)
	}

	return ds.persons.List(ctx, q)
}

func (ds *deliveryPersonService) Pending(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error) {
	return ds.persons.Pending(ctx, page, size)
}

func (ds *deliveryPersonService) Get(ctx context.Context, id string) (*entity.DeliveryPerson, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid delivery person ID")
	}
	return ds.persons.Get(ctx, id)
}

func (ds *deliveryPersonService) Update(ctx context.Context, id string, draft *request.DeliveryPersonDraft) (*entity.DeliveryPerson, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid delivery person ID")
	}
	if errs := utils.ValidateStruct(draft); len(errs) > 0 {
		ds.log.Warn("Delivery person draft validation failed", zap.String("delivery_person_id", id), zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	person, err := ds.persons.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}

	ds.log.Info("Delivery person updated", zap.String("delivery_person_id", id))
	return person, nil
}

func (ds *deliveryPersonService) UpdateVerification(ctx context.Context, id string, status entity.VerificationStatus) (*entity.DeliveryPerson, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid delivery person ID")
	}
	if !status.Valid() {
		ds.log.Warn("Rejected invalid verification status",
			zap.String("delivery_person_id", id),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("invalid verification status: %s", status)
	}

	person, err := ds.persons.UpdateVerification(ctx, id, string(status))
	if err != nil {
		return nil, err
	}

	ds.log.Info("Delivery person verification updated",
		zap.String("delivery_person_id", id),
		zap.String("status", string(status)),
	)
	return person, nil
}

func (ds *deliveryPersonService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("invalid delivery person ID")
	}
	if err := ds.persons.Delete(ctx, id); err != nil {
		return err
	}

	ds.log.Info("Delivery person deleted", zap.String("delivery_person_id", id))
	return nil
}
