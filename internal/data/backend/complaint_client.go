package backend

import (
	"context"
	"net/url"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"

	"go.uber.org/zap"
)

type ComplaintClient interface {
	List(ctx context.Context, q request.ComplaintListQuery) (*response.Page[entity.Complaint], error)
	New(ctx context.Context) ([]entity.Complaint, error)
	Unresolved(ctx context.Context) ([]entity.Complaint, error)
	Get(ctx context.Context, id string) (*entity.Complaint, error)
	AddResponse(ctx context.Context, id, text string) (*entity.Complaint, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Complaint, error)
	Delete(ctx context.Context, id string) error
}

type complaintClient struct {
	api *Client
	log *zap.Logger
}

func NewComplaintClient(api *Client, log *zap.Logger) ComplaintClient {
	return &complaintClient{api: api, log: log}
}

func (cc *complaintClient) List(ctx context.Context, q request.ComplaintListQuery) (*response.Page[entity.Complaint], error) {
	query := pageValues(q.Page, q.Size)
	setOptional(query, "status", q.Status)

	return listPage[entity.Complaint](ctx, cc.api, "/complaints", query)
}

func (cc *complaintClient) New(ctx context.Context) ([]entity.Complaint, error) {
	var complaints []entity.Complaint
	if err := cc.api.Get(ctx, "/complaints/new", nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (cc *complaintClient) Unresolved(ctx context.Context) ([]entity.Complaint, error) {
	var complaints []entity.Complaint
	if err := cc.api.Get(ctx, "/complaints/unresolved", nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (cc *complaintClient) Get(ctx context.Context, id string) (*entity.Complaint, error) {
	var complaint entity.Complaint
	if err := cc.api.Get(ctx, "/complaints/"+id, nil, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// AddResponse carries the reply text as a query parameter on the response
// sub-path. The closed-complaint policy check happens in the usecase layer,
// before this call is ever dispatched.
func (cc *complaintClient) AddResponse(ctx context.Context, id, text string) (*entity.Complaint, error) {
	query := url.Values{}
	query.Set("response", text)

	var complaint entity.Complaint
	if err := cc.api.Put(ctx, "/complaints/"+id+"/response", query, nil, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (cc *complaintClient) UpdateStatus(ctx context.Context, id, status string) (*entity.Complaint, error) {
	query := url.Values{}
	query.Set("status", status)

	var complaint entity.Complaint
	if err := cc.api.Patch(ctx, "/complaints/"+id+"/status", query, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (cc *complaintClient) Delete(ctx context.Context, id string) error {
	return cc.api.Delete(ctx, "/complaints/"+id, nil)
}
