package usecase

import (
	"context"
	"fmt"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"
)

// Hand-rolled client stubs. Every method panics unless its function field is
// set, so a test fails loudly when a service dispatches something unexpected.

type stubAuthClient struct {
	loginFn    func(ctx context.Context, req *request.LoginRequest) (*entity.AdminSession, error)
	registerFn func(ctx context.Context, req *request.RegisterRequest) (*entity.AdminSession, error)
}

func (s *stubAuthClient) Login(ctx context.Context, req *request.LoginRequest) (*entity.AdminSession, error) {
	if s.loginFn == nil {
		panic("unexpected Login call")
	}
	return s.loginFn(ctx, req)
}

func (s *stubAuthClient) Register(ctx context.Context, req *request.RegisterRequest) (*entity.AdminSession, error) {
	if s.registerFn == nil {
		panic("unexpected Register call")
	}
	return s.registerFn(ctx, req)
}

type stubUserClient struct {
	listFn func(ctx context.Context, q request.UserListQuery) (*response.Page[entity.User], error)
}

func (s *stubUserClient) List(ctx context.Context, q request.UserListQuery) (*response.Page[entity.User], error) {
	if s.listFn == nil {
		panic("unexpected List call")
	}
	return s.listFn(ctx, q)
}

func (s *stubUserClient) Get(ctx context.Context, id string) (*entity.User, error) {
	panic("unexpected Get call")
}

func (s *stubUserClient) ByRole(ctx context.Context, role string) ([]entity.User, error) {
	panic("unexpected ByRole call")
}

func (s *stubUserClient) Update(ctx context.Context, id string, draft *request.UserDraft) (*entity.User, error) {
	panic("unexpected Update call")
}

func (s *stubUserClient) UpdateStatus(ctx context.Context, id, status string) (*entity.User, error) {
	panic("unexpected UpdateStatus call")
}

func (s *stubUserClient) Delete(ctx context.Context, id string) error {
	panic("unexpected Delete call")
}

type stubRestaurantClient struct {
	listFn    func(ctx context.Context, q request.RestaurantListQuery) (*response.Page[entity.Restaurant], error)
	pendingFn func(ctx context.Context) ([]entity.Restaurant, error)
}

func (s *stubRestaurantClient) List(ctx context.Context, q request.RestaurantListQuery) (*response.Page[entity.Restaurant], error) {
	if s.listFn == nil {
		panic("unexpected List call")
	}
	return s.listFn(ctx, q)
}

func (s *stubRestaurantClient) Pending(ctx context.Context) ([]entity.Restaurant, error) {
	if s.pendingFn == nil {
		panic("unexpected Pending call")
	}
	return s.pendingFn(ctx)
}

func (s *stubRestaurantClient) Get(ctx context.Context, id string) (*entity.Restaurant, error) {
	panic("unexpected Get call")
}

func (s *stubRestaurantClient) Update(ctx context.Context, id string, draft *request.RestaurantDraft) (*entity.Restaurant, error) {
	panic("unexpected Update call")
}

func (s *stubRestaurantClient) UpdateVerification(ctx context.Context, id, status string) (*entity.Restaurant, error) {
	panic("unexpected UpdateVerification call")
}

func (s *stubRestaurantClient) Delete(ctx context.Context, id string) error {
	panic("unexpected Delete call")
}

type stubDeliveryClient struct {
	listFn    func(ctx context.Context, q request.DeliveryPersonListQuery) (*response.Page[entity.DeliveryPerson], error)
	pendingFn func(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error)
}

func (s *stubDeliveryClient) List(ctx context.Context, q request.DeliveryPersonListQuery) (*response.Page[entity.DeliveryPerson], error) {
	if s.listFn == nil {
		panic("unexpected List call")
	}
	return s.listFn(ctx, q)
}

func (s *stubDeliveryClient) Pending(ctx context.Context, page, size int) ([]entity.DeliveryPerson, error) {
	if s.pendingFn == nil {
		panic("unexpected Pending call")
	}
	return s.pendingFn(ctx, page, size)
}

func (s *stubDeliveryClient) Get(ctx context.Context, id string) (*entity.DeliveryPerson, error) {
	panic("unexpected Get call")
}

func (s *stubDeliveryClient) Update(ctx context.Context, id string, draft *request.DeliveryPersonDraft) (*entity.DeliveryPerson, error) {
	panic("unexpected Update call")
}

func (s *stubDeliveryClient) UpdateVerification(ctx context.Context, id, status string) (*entity.DeliveryPerson, error) {
	panic("unexpected UpdateVerification call")
}

func (s *stubDeliveryClient) Delete(ctx context.Context, id string) error {
	panic("unexpected Delete call")
}

type stubComplaintClient struct {
	listFn        func(ctx context.Context, q request.ComplaintListQuery) (*response.Page[entity.Complaint], error)
	newFn         func(ctx context.Context) ([]entity.Complaint, error)
	getFn         func(ctx context.Context, id string) (*entity.Complaint, error)
	addResponseFn func(ctx context.Context, id, text string) (*entity.Complaint, error)
}

func (s *stubComplaintClient) List(ctx context.Context, q request.ComplaintListQuery) (*response.Page[entity.Complaint], error) {
	if s.listFn == nil {
		panic("unexpected List call")
	}
	return s.listFn(ctx, q)
}

func (s *stubComplaintClient) New(ctx context.Context) ([]entity.Complaint, error) {
	if s.newFn == nil {
		panic("unexpected New call")
	}
	return s.newFn(ctx)
}

func (s *stubComplaintClient) Unresolved(ctx context.Context) ([]entity.Complaint, error) {
	panic("unexpected Unresolved call")
}

func (s *stubComplaintClient) Get(ctx context.Context, id string) (*entity.Complaint, error) {
	if s.getFn == nil {
		panic("unexpected Get call")
	}
	return s.getFn(ctx, id)
}

func (s *stubComplaintClient) AddResponse(ctx context.Context, id, text string) (*entity.Complaint, error) {
	if s.addResponseFn == nil {
		panic("unexpected AddResponse call")
	}
	return s.addResponseFn(ctx, id, text)
}

func (s *stubComplaintClient) UpdateStatus(ctx context.Context, id, status string) (*entity.Complaint, error) {
	panic("unexpected UpdateStatus call")
}

func (s *stubComplaintClient) Delete(ctx context.Context, id string) error {
	panic("unexpected Delete call")
}

type stubReviewClient struct {
	listFn func(ctx context.Context, q request.ReviewListQuery) (*response.Page[entity.Review], error)
}

func (s *stubReviewClient) List(ctx context.Context, q request.ReviewListQuery) (*response.Page[entity.Review], error) {
	if s.listFn == nil {
		panic("unexpected List call")
	}
	return s.listFn(ctx, q)
}

func (s *stubReviewClient) Get(ctx context.Context, id string) (*entity.Review, error) {
	panic("unexpected Get call")
}

func (s *stubReviewClient) ByRestaurant(ctx context.Context, restaurantID string) ([]entity.Review, error) {
	panic("unexpected ByRestaurant call")
}

func (s *stubReviewClient) ByDeliveryPerson(ctx context.Context, deliveryPersonID string) ([]entity.Review, error) {
	panic("unexpected ByDeliveryPerson call")
}

func (s *stubReviewClient) RestaurantRating(ctx context.Context, restaurantID string) (float64, error) {
	panic("unexpected RestaurantRating call")
}

func (s *stubReviewClient) DeliveryPersonRating(ctx context.Context, deliveryPersonID string) (float64, error) {
	panic("unexpected DeliveryPersonRating call")
}

func (s *stubReviewClient) Delete(ctx context.Context, id string) error {
	panic("unexpected Delete call")
}

// errUpstream is a convenience transport-style failure
var errUpstream = fmt.Errorf("backend unreachable: connection refused")
