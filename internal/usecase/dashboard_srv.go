package usecase

import (
	"context"
	"sync"

	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/dto/response"

	"go.uber.org/zap"
)

type DashboardService interface {
	Stats(ctx context.Context) *response.DashboardStats
}

type dashboardService struct {
	api *backend.Backend
	log *zap.Logger
}

func NewDashboardService(api *backend.Backend, log *zap.Logger) DashboardService {
	return &dashboardService{api: api, log: log}
}

// countQuery asks for a single-row page just to read totalElements
func countQuery() request.PageQuery {
	return request.PageQuery{Page: 0, Size: 1}
}

// Stats fans out one request per statistic and joins them with per-branch
// error isolation: a failing branch contributes zero for its statistic and
// never blocks or blanks the dashboard. This method deliberately has no
// error return.
func (ds *dashboardService) Stats(ctx context.Context) *response.DashboardStats {
	stats := &response.DashboardStats{}

	var wg sync.WaitGroup
	run := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				ds.log.Warn("Dashboard branch failed, using zero",
					zap.String("branch", name),
					zap.Error(err),
				)
			}
		}()
	}

	run("total_users", func() error {
		page, err := ds.api.User.List(ctx, request.UserListQuery{PageQuery: countQuery()})
		if err != nil {
			return err
		}
		stats.TotalUsers = page.TotalElements
		return nil
	})

	run("total_customers", func() error {
		page, err := ds.api.User.List(ctx, request.UserListQuery{PageQuery: countQuery(), Role: "customer"})
		if err != nil {
			return err
		}
		stats.TotalCustomers = page.TotalElements
		return nil
	})

	run("total_restaurant_owners", func() error {
		page, err := ds.api.User.List(ctx, request.UserListQuery{PageQuery: countQuery(), Role: "restaurant_owner"})
		if err != nil {
			return err
		}
		stats.TotalRestaurantOwners = page.TotalElements
		return nil
	})

	run("total_delivery_person_users", func() error {
		page, err := ds.api.User.List(ctx, request.UserListQuery{PageQuery: countQuery(), Role: "delivery_person"})
		if err != nil {
			return err
		}
		stats.TotalDeliveryPersonsUsers = page.TotalElements
		return nil
	})

	run("total_restaurants", func() error {
		page, err := ds.api.Restaurant.List(ctx, request.RestaurantListQuery{PageQuery: countQuery()})
		if err != nil {
			return err
		}
		stats.TotalRestaurants = page.TotalElements
		return nil
	})

	run("pending_restaurants", func() error {
		pending, err := ds.api.Restaurant.Pending(ctx)
		if err != nil {
			return err
		}
		stats.PendingRestaurants = int64(len(pending))
		return nil
	})

	run("total_delivery_persons", func() error {
		page, err := ds.api.DeliveryPerson.List(ctx, request.DeliveryPersonListQuery{PageQuery: countQuery()})
		if err != nil {
			return err
		}
		stats.TotalDeliveryPersons = page.TotalElements
		return nil
	})

	run("pending_delivery_persons", func() error {
		pending, err := ds.api.DeliveryPerson.Pending(ctx, 0, 100)
		if err != nil {
			return err
		}
		stats.PendingDeliveryPersons = int64(len(pending))
		return nil
	})

	run("total_complaints", func() error {
		page, err := ds.api.Complaint.List(ctx, request.ComplaintListQuery{PageQuery: countQuery()})
		if err != nil {
			return err
		}
		stats.TotalComplaints = page.TotalElements
		return nil
	})

	run("new_complaints", func() error {
		complaints, err := ds.api.Complaint.New(ctx)
		if err != nil {
			return err
		}
		stats.NewComplaints = int64(len(complaints))
		return nil
	})

	run("total_reviews", func() error {
		page, err := ds.api.Review.List(ctx, request.ReviewListQuery{PageQuery: countQuery()})
		if err != nil {
			return err
		}
		stats.TotalReviews = page.TotalElements
		return nil
	})

	wg.Wait()

	return stats
}
