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

type ComplaintService interface {
	List(ctx context.Context, q request.ComplaintListQuery) (*response.Page[entity.Complaint], error)
	New(ctx context.Context) ([]entity.Complaint, error)
	Unresolved(ctx context.Context) ([]entity.Complaint, error)
	Get(ctx context.Context, id string) (*entity.Complaint, error)
	AddResponse(ctx context.Context, id string, draft *request.ComplaintResponseDraft) (*entity.Complaint, error)
	UpdateStatus(ctx context.Context, id string, status entity.ComplaintStatus) (*entity.Complaint, error)
	Delete(ctx context.Context, id string) error
}

type complaintService struct {
	complaints backend.ComplaintClient
	log        *zap.Logger
}

func NewComplaintService(complaints backend.ComplaintClient, log *zap.Logger) ComplaintService {
	return &complaintService{complaints: complaints, log: log}
}

func (cs *complaintService) List(ctx context.Context, q request.ComplaintListQuery) (*response.Page[entity.Complaint], error) {
	if q.Status != "" && !entity.ComplaintStatus(q.Status).Valid() {
		return nil, fmt.Errorf("invalid status filter: %s", q.Status)
	}

	return cs.complaints.List(ctx, q)
}

func (cs *complaintService) New(ctx context.Context) ([]entity.Complaint, error) {
	return cs.complaints.New(ctx)
}

func (cs *complaintService) Unresolved(ctx context.Context) ([]entity.Complaint, error) {
	return cs.complaints.Unresolved(ctx)
}

func (cs *complaintService) Get(ctx context.Context, id string) (*entity.Complaint, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid complaint ID")
	}
	return cs.complaints.Get(ctx, id)
}

// AddResponse enforces the closed-complaint policy here, before any network
// dispatch: a closed complaint never accepts further response edits, and
// the backend is not trusted to be the only gate.
func (cs *complaintService) AddResponse(ctx context.Context, id string, draft *request.ComplaintResponseDraft) (*entity.Complaint, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid complaint ID")
	}
	if errs := utils.ValidateStruct(draft); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	complaint, err := cs.complaints.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !complaint.AcceptsResponse() {
		cs.log.Warn("Blocked response to closed complaint", zap.String("complaint_id", id))
		return nil, fmt.Errorf("complaint is closed and no longer accepts responses")
	}

	updated, err := cs.complaints.AddResponse(ctx, id, draft.Response)
	if err != nil {
		return nil, err
	}

	cs.log.Info("Complaint response added", zap.String("complaint_id", id))
	return updated, nil
}

func (cs *complaintService) UpdateStatus(ctx context.Context, id string, status entity.ComplaintStatus) (*entity.Complaint, error) {
	if id == "" {
		return nil, fmt.Errorf("invalid complaint ID")
	}
	if !status.Valid() {
		cs.log.Warn("Rejected invalid complaint status", zap.String("complaint_id", id), zap.String("status", string(status)))
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	complaint, err := cs.complaints.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return nil, err
	}

	cs.log.Info("Complaint status updated", zap.String("complaint_id", id), zap.String("status", string(status)))
	return complaint, nil
}

func (cs *complaintService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("invalid complaint ID")
	}
	if err := cs.complaints.Delete(ctx, id); err != nil {
		return err
	}

	cs.log.Info("Complaint deleted", zap.String("complaint_id", id))
	return nil
}
