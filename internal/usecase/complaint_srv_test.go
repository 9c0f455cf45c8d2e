package usecase

import (
	"context"
	"testing"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestComplaintService_AddResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("closed complaint refuses a response before dispatch", func(t *testing.T) {
		dispatched := false
		client := &stubComplaintClient{
			getFn: func(ctx context.Context, id string) (*entity.Complaint, error) {
				return &entity.Complaint{ComplaintID: id, Status: entity.ComplaintClosed}, nil
			},
			addResponseFn: func(ctx context.Context, id, text string) (*entity.Complaint, error) {
				dispatched = true
				return nil, nil
			},
		}
		svc := NewComplaintService(client, zap.NewNop())

		_, err := svc.AddResponse(ctx, "c-1", &request.ComplaintResponseDraft{Response: "We looked into it"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "closed")
		assert.False(t, dispatched)
	})

	t.Run("open complaint accepts a response", func(t *testing.T) {
		client := &stubComplaintClient{
			getFn: func(ctx context.Context, id string) (*entity.Complaint, error) {
				return &entity.Complaint{ComplaintID: id, Status: entity.ComplaintInProgress}, nil
			},
			addResponseFn: func(ctx context.Context, id, text string) (*entity.Complaint, error) {
				return &entity.Complaint{
					ComplaintID:   id,
					AdminResponse: text,
					Status:        entity.ComplaintInProgress,
				}, nil
			},
		}
		svc := NewComplaintService(client, zap.NewNop())

		updated, err := svc.AddResponse(ctx, "c-1", &request.ComplaintResponseDraft{Response: "We looked into it"})

		require.NoError(t, err)
		assert.Equal(t, "We looked into it", updated.AdminResponse)
	})

	t.Run("empty response fails validation", func(t *testing.T) {
		svc := NewComplaintService(&stubComplaintClient{}, zap.NewNop())

		_, err := svc.AddResponse(ctx, "c-1", &request.ComplaintResponseDraft{Response: ""})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})
}

func TestComplaintService_UpdateStatus(t *testing.T) {
	t.Run("rejects a status outside the enum", func(t *testing.T) {
		svc := NewComplaintService(&stubComplaintClient{}, zap.NewNop())

		_, err := svc.UpdateStatus(context.Background(), "c-1", entity.ComplaintStatus("escalated"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status")
	})
}

func TestComplaintService_List(t *testing.T) {
	t.Run("rejects an invalid status filter", func(t *testing.T) {
		svc := NewComplaintService(&stubComplaintClient{}, zap.NewNop())

		_, err := svc.List(context.Background(), request.ComplaintListQuery{
			PageQuery: request.PageQuery{Page: 0, Size: 20},
			Status:    "bogus",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid status filter")
	})
}
