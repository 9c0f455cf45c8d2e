package console

import (
	"context"
	"fmt"
	"strings"

	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"
	"foodgram-admin/internal/usecase"

	"go.uber.org/zap"
)

// Per-page filter state. Filters are page state, not query DTOs: an empty
// field means "no constraint".

type UserFilters struct {
	Role   string
	Status string
}

type RestaurantFilters struct {
	VerificationStatus string
	CuisineType        string
}

type DeliveryPersonFilters struct {
	VerificationStatus string
	OperatingArea      string
}

type ComplaintFilters struct {
	Status string
}

type ReviewFilters struct {
	RestaurantID     string
	DeliveryPersonID string
}

// Controllers groups the five resource page controllers
type Controllers struct {
	Users           *ListController[entity.User, UserFilters]
	Restaurants     *ListController[entity.Restaurant, RestaurantFilters]
	DeliveryPersons *ListController[entity.DeliveryPerson, DeliveryPersonFilters]
	Complaints      *ListController[entity.Complaint, ComplaintFilters]
	Reviews         *ListController[entity.Review, ReviewFilters]
}

func NewControllers(service *usecase.Service, log *zap.Logger) *Controllers {
	return &Controllers{
		Users:           NewUserController(service.User, log),
		Restaurants:     NewRestaurantController(service.Restaurant, log),
		DeliveryPersons: NewDeliveryPersonController(service.DeliveryPerson, log),
		Complaints:      NewComplaintController(service.Complaint, log),
		Reviews:         NewReviewController(service.Review, log),
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func statusStrings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func NewUserController(svc usecase.UserService, log *zap.Logger) *ListController[entity.User, UserFilters] {
	return NewListController(Ops[entity.User, UserFilters]{
		Resource: "users",
		Fetch: func(ctx context.Context, page, size int, f UserFilters) (*response.Page[entity.User], error) {
			return svc.List(ctx, request.UserListQuery{
				PageQuery: request.PageQuery{Page: page, Size: size},
				Role:      f.Role,
				Status:    f.Status,
			})
		},
		Get: svc.Get,
		Update: func(ctx context.Context, id string, draft any) (*entity.User, error) {
			d, ok := draft.(*request.UserDraft)
			if !ok {
				return nil, fmt.Errorf("invalid user draft")
			}
			return svc.Update(ctx, id, d)
		},
		SetStatus: func(ctx context.Context, id, status string) (*entity.User, error) {
			return svc.UpdateStatus(ctx, id, entity.UserStatus(status))
		},
		Delete: svc.Delete,
		ID:     func(u *entity.User) string { return u.UserID },
		SeedDraft: func(u *entity.User) any {
			return &request.UserDraft{
				FullName: u.FullName,
				Email:    u.Email,
				Phone:    u.Phone,
				Role:     string(u.Role),
			}
		},
		Match: func(u *entity.User, term string) bool {
			return containsFold(u.FullName, term) || containsFold(u.Email, term)
		},
		AllowedStatuses: statusStrings(entity.UserStatuses),
	}, log)
}

func NewRestaurantController(svc usecase.RestaurantService, log *zap.Logger) *ListController[entity.Restaurant, RestaurantFilters] {
	return NewListController(Ops[entity.Restaurant, RestaurantFilters]{
		Resource: "restaurants",
		Fetch: func(ctx context.Context, page, size int, f RestaurantFilters) (*response.Page[entity.Restaurant], error) {
			return svc.List(ctx, request.RestaurantListQuery{
				PageQuery:          request.PageQuery{Page: page, Size: size},
				VerificationStatus: f.VerificationStatus,
				CuisineType:        f.CuisineType,
			})
		},
		Get: svc.Get,
		Update: func(ctx context.Context, id string, draft any) (*entity.Restaurant, error) {
			d, ok := draft.(*request.RestaurantDraft)
			if !ok {
				return nil, fmt.Errorf("invalid restaurant draft")
			}
			return svc.Update(ctx, id, d)
		},
		SetStatus: func(ctx context.Context, id, status string) (*entity.Restaurant, error) {
			return svc.UpdateVerification(ctx, id, entity.VerificationStatus(status))
		},
		Delete: svc.Delete,
		ID:     func(r *entity.Restaurant) string { return r.RestaurantID },
		SeedDraft: func(r *entity.Restaurant) any {
			return &request.RestaurantDraft{
				Name:          r.Name,
				CuisineType:   r.CuisineType,
				ContactNumber: r.ContactNumber,
				Address:       r.Address,
				OpenTime:      r.OpenTime,
				CloseTime:     r.CloseTime,
			}
		},
		Match: func(r *entity.Restaurant, term string) bool {
			return containsFold(r.Name, term) || containsFold(r.CuisineType, term)
		},
		AllowedStatuses: statusStrings(entity.VerificationStatuses),
	}, log)
}

func NewDeliveryPersonController(svc usecase.DeliveryPersonService, log *zap.Logger) *ListController[entity.DeliveryPerson, DeliveryPersonFilters] {
	return NewListController(Ops[entity.DeliveryPerson, DeliveryPersonFilters]{
		Resource: "delivery-persons",
		Fetch: func(ctx context.Context, page, size int, f DeliveryPersonFilters) (*response.Page[entity.DeliveryPerson], error) {
			return svc.List(ctx, request.DeliveryPersonListQuery{
				PageQuery:          request.PageQuery{Page: page, Size: size},
				VerificationStatus: f.VerificationStatus,
				OperatingArea:      f.OperatingArea,
			})
		},
		Get: svc.Get,
		Update: func(ctx context.Context, id string, draft any) (*entity.DeliveryPerson, error) {
			d, ok := draft.(*request.DeliveryPersonDraft)
			if !ok {
				return nil, fmt.Errorf("invalid delivery person draft")
			}
			return svc.Update(ctx, id, d)
		},
		SetStatus: func(ctx context.Context, id, status string) (*entity.DeliveryPerson, error) {
			return svc.UpdateVerification(ctx, id, entity.VerificationStatus(status))
		},
		Delete: svc.Delete,
		ID:     func(p *entity.DeliveryPerson) string { return p.DeliveryPersonID },
		SeedDraft: func(p *entity.DeliveryPerson) any {
			return &request.DeliveryPersonDraft{
				VehicleNumber: p.VehicleNumber,
				OperatingArea: p.OperatingArea,
			}
		},
		Match: func(p *entity.DeliveryPerson, term string) bool {
			return containsFold(p.FullName, term) || containsFold(p.OperatingArea, term)
		},
		AllowedStatuses: statusStrings(entity.VerificationStatuses),
	}, log)
}

func NewComplaintController(svc usecase.ComplaintService, log *zap.Logger) *ListController[entity.Complaint, ComplaintFilters] {
	return NewListController(Ops[entity.Complaint, ComplaintFilters]{
		Resource: "complaints",
		Fetch: func(ctx context.Context, page, size int, f ComplaintFilters) (*response.Page[entity.Complaint], error) {
			return svc.List(ctx, request.ComplaintListQuery{
				PageQuery: request.PageQuery{Page: page, Size: size},
				Status:    f.Status,
			})
		},
		Get: svc.Get,
		// Complaints are not edited wholesale; the response sub-path and
		// status transitions are the only mutations
		SetStatus: func(ctx context.Context, id, status string) (*entity.Complaint, error) {
			return svc.UpdateStatus(ctx, id, entity.ComplaintStatus(status))
		},
		Delete: svc.Delete,
		ID:     func(c *entity.Complaint) string { return c.ComplaintID },
		Match: func(c *entity.Complaint, term string) bool {
			return containsFold(c.UserName, term) || containsFold(c.Message, term)
		},
		AllowedStatuses: statusStrings(entity.ComplaintStatuses),
	}, log)
}

func NewReviewController(svc usecase.ReviewService, log *zap.Logger) *ListController[entity.Review, ReviewFilters] {
	return NewListController(Ops[entity.Review, ReviewFilters]{
		Resource: "reviews",
		Fetch: func(ctx context.Context, page, size int, f ReviewFilters) (*response.Page[entity.Review], error) {
			return svc.List(ctx, request.ReviewListQuery{
				PageQuery:        request.PageQuery{Page: page, Size: size},
				RestaurantID:     f.RestaurantID,
				DeliveryPersonID: f.DeliveryPersonID,
			})
		},
		Get:    svc.Get,
		Delete: svc.Delete,
		ID:     func(r *entity.Review) string { return r.ReviewID },
		Match: func(r *entity.Review, term string) bool {
			return containsFold(r.UserName, term) || containsFold(r.Comment, term)
		},
	}, log)
}
