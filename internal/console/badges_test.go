package console

import (
	"context"
	"testing"
	"time"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRestaurantSvc struct {
	pendingFn func(ctx context.Context) ([]entity.Restaurant, error)
}

func (s *stubRestaurantSvc) List(ctx context.Context, q request.RestaurantListQuery) (*response.Page[entity.Restaurant], error) {
	panic("unexpected List call")
}

func (s *stubRestaurantSvc) Pending(ctx context.Context) ([]entity.Restaurant, error) {
	return s.pendingFn(ctx)
}

func (s *stubRestaurantSvc) Get(ctx context.Context, id string) (*entity.Restaurant, error) {
	panic("unexpected Get call")
}

func (s *stubRestaurantSvc) Update(ctx context.Context, id string, draft *request.RestaurantDraft) (*entity.Restaurant, error) {
	panic("unexpected Update call")
}

func (s *stubRestaurantSvc) UpdateVerification(ctx context.Context, id string, status entity.VerificationStatus) (*entity.Restaurant, error) {
	panic("unexpected UpdateVerification call")
}

func (s *stubRestaurantSvc) Delete(ctx context.Context, id string) error {
	panic("unexpected Delete call")
}

type stubDeliverySvc struct {
	pendingFn func(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error)
}

func (s *stubDeliverySvc) List(ctx context.Context, q request.DeliveryPersonListQuery) (*response.Page[entity.DeliveryPerson], error) {
	panic("unexpected List call")
}

func (s *stubDeliverySvc) Pending(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error) {
	return s.pendingFn(ctx, page, size)
}

func (s *stubDeliverySvc) Get(ctx context.Context, id string) (*entity.DeliveryPerson, error) {
	panic("unexpected Get call")
}

func (s *stubDeliverySvc) Update(ctx context.Context, id string, draft *request.DeliveryPersonDraft) (*entity.DeliveryPerson, error) {
	panic("unexpected Update call")
}

func (s *stubDeliverySvc) UpdateVerification(ctx context.Context, id string, status entity.VerificationStatus) (*entity.DeliveryPerson, error) {
	panic("unexpected UpdateVerification call")
}

func (s *stubDeliverySvc) Delete(ctx context.Context, id string) error {
	panic("unexpected Delete call")
}

type stubComplaintSvc struct {
	unresolvedFn func(ctx context.Context) ([]entity.Complaint, error)
}

func (s *stubComplaintSvc) List(ctx context.Context, q request.ComplaintListQuery) (*response.Page[entity.Complaint], error) {
	panic("unexpected List call")
}

func (s *stubComplaintSvc) New(ctx context.Context) ([]entity.Complaint, error) {
	panic("unexpected New call")
}

func (s *stubComplaintSvc) Unresolved(ctx context.Context) ([]entity.Complaint, error) {
	return s.unresolvedFn(ctx)
}

func (s *stubComplaintSvc) Get(ctx context.Context, id string) (*entity.Complaint, error) {
	panic("unexpected Get call")
}

func (s *stubComplaintSvc) AddResponse(ctx context.Context, id string, draft *request.ComplaintResponseDraft) (*entity.Complaint, error) {
	panic("unexpected AddResponse call")
}

func (s *stubComplaintSvc) UpdateStatus(ctx context.Context, id string, status entity.ComplaintStatus) (*entity.Complaint, error) {
	panic("unexpected UpdateStatus call")
}

func (s *stubComplaintSvc) Delete(ctx context.Context, id string) error {
	panic("unexpected Delete call")
}

func TestBadgePoller_Refresh(t *testing.T) {
	ctx := context.Background()

	restaurantErr := error(nil)
	restaurants := &stubRestaurantSvc{
		pendingFn: func(ctx context.Context) ([]entity.Restaurant, error) {
			return make([]entity.Restaurant, 4), restaurantErr
		},
	}
	persons := &stubDeliverySvc{
		pendingFn: func(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error) {
			return make([]entity.DeliveryPerson, 2), nil
		},
	}
	complaints := &stubComplaintSvc{
		unresolvedFn: func(ctx context.Context) ([]entity.Complaint, error) {
			return make([]entity.Complaint, 3), nil
		},
	}

	poller := NewBadgePoller(restaurants, persons, complaints, time.Minute, zap.NewNop())

	poller.refresh(ctx)

	badges := poller.Badges()
	assert.Equal(t, 4, badges.Restaurants)
	assert.Equal(t, 2, badges.DeliveryPersons)
	assert.Equal(t, 3, badges.Complaints)

	// A failed branch keeps its previous count
	restaurantErr = context.DeadlineExceeded
	poller.refresh(ctx)

	badges = poller.Badges()
	assert.Equal(t, 4, badges.Restaurants)
	assert.Equal(t, 2, badges.DeliveryPersons)
}

func TestBadgePoller_StartStop(t *testing.T) {
	restaurants := &stubRestaurantSvc{
		pendingFn: func(ctx context.Context) ([]entity.Restaurant, error) {
			return nil, nil
		},
	}
	persons := &stubDeliverySvc{
		pendingFn: func(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error) {
			return nil, nil
		},
	}
	complaints := &stubComplaintSvc{
		unresolvedFn: func(ctx context.Context) ([]entity.Complaint, error) {
			return nil, nil
		},
	}

	poller := NewBadgePoller(restaurants, persons, complaints, time.Minute, zap.NewNop())

	poller.Start(context.Background())
	poller.Stop()

	// Stop is idempotent
	poller.Stop()
}
