package backend

import (
	"context"
	"net/url"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"

	"go.uber.org/zap"
)

type DeliveryPersonClient interface {
	List(ctx context.Context, q request.DeliveryPersonListQuery) (*response.Page[entity.DeliveryPerson], error)
	Pending(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error)
	Get(ctx context.Context, id string) (*entity.DeliveryPerson, error)
	Update(ctx context.Context, id string, draft *request.DeliveryPersonDraft) (*entity.DeliveryPerson, error)
	UpdateVerification(ctx context.Context, id, status string) (*entity.DeliveryPerson, error)
	Delete(ctx context.Context, id string) error
}

type deliveryPersonClient struct {
	api *Client
	log *zap.Logger
}

func NewDeliveryPersonClient(api *Client, log *zap.Logger) DeliveryPersonClient {
	return &deliveryPersonClient{api: api, log: log}
}

func (dc *deliveryPersonClient) List(ctx context.Context, q request.DeliveryPersonListQuery) (*response.Page[entity.DeliveryPerson], error) {
	query := pageValues(q.Page, q.Size)
	setOptional(query, "verificationStatus", q.VerificationStatus)
	setOptional(query, "operatingArea", q.OperatingArea)

	return listPage[entity.DeliveryPerson](ctx, dc.api, "/delivery-persons", query)
}

// Pending is paged on this resource, unlike restaurants
func (dc *deliveryPersonClient) Pending(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error) {
	var persons []entity.DeliveryPerson
	if err := dc.api.Get(ctx, "/delivery-persons/pending", pageValues(page, size), &persons); err != nil {
		return nil, err
	}
	return persons, nil
}

func (dc *deliveryPersonClient) Get(ctx context.Context, id string) (*entity.DeliveryPerson, error) {
	var person entity.DeliveryPerson
	if err := dc.api.Get(ctx, "/delivery-persons/"+id, nil, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (dc *deliveryPersonClient) Update(ctx context.Context, id string, draft *request.DeliveryPersonDraft) (*entity.DeliveryPerson, error) {
	var person entity.DeliveryPerson
	if err := dc.api.Put(ctx, "/delivery-persons/"+id, nil, draft, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (dc *deliveryPersonClient) UpdateVerification(ctx context.Context, id, status string) (*entity.DeliveryPerson, error) {
	query := url.Values{}
	query.Set("status", status)

	var person entity.DeliveryPerson
	if err := dc.api.Patch(ctx, "/delivery-persons/"+id+"/verification", query, &person); err != nil {
		return nil, err
	}
	return &person, nil
}

func (dc *deliveryPersonClient) Delete(ctx context.Context, id string) error {
	return dc.api.Delete(ctx, "/delivery-persons/"+id, nil)
}
