package usecase

import (
	"context"
	"fmt"
	"sync"

	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/response"

	"go.uber.org/zap"
)

type NotificationService interface {
	Feed(ctx context.Context) []response.Notification
}

// notificationService composes the actionable backlog (pending restaurants,
// pending couriers, new complaints) into one feed. Same isolation policy as
// the dashboard: a failed branch contributes nothing, the feed still renders.
type notificationService struct {
	api *backend.Backend
	log *zap.Logger
}

func NewNotificationService(api *backend.Backend, log *zap.Logger) NotificationService {
	return &notificationService{api: api, log: log}
}

func (ns *notificationService) Feed(ctx context.Context) []response.Notification {
	var (
		wg          sync.WaitGroup
		restaurants []entity.Restaurant
		persons     []entity.DeliveryPerson
		complaints  []entity.Complaint
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		var err error
		if restaurants, err = ns.api.Restaurant.Pending(ctx); err != nil {
			ns.log.Warn("Notification branch failed", zap.String("branch", "restaurants"), zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if persons, err = ns.api.DeliveryPerson.Pending(ctx, 0, 100); err != nil {
			ns.log.Warn("Notification branch failed", zap.String("branch", "delivery_persons"), zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if complaints, err = ns.api.Complaint.New(ctx); err != nil {
			ns.log.Warn("Notification branch failed", zap.String("branch", "complaints"), zap.Error(err))
		}
	}()
	wg.Wait()

	feed := make([]response.Notification, 0, len(restaurants)+len(persons)+len(complaints))

	for _, r := range restaurants {
		feed = append(feed, response.Notification{
			Type:    response.NotificationRestaurantPending,
			Title:   "Restaurant awaiting verification",
			Message: fmt.Sprintf("%s (%s) is pending verification", r.Name, r.CuisineType),
			RefID:   r.RestaurantID,
		})
	}
	for _, p := range persons {
		feed = append(feed, response.Notification{
			Type:    response.NotificationDeliveryPersonPending,
			Title:   "Delivery person awaiting verification",
			Message: fmt.Sprintf("%s is pending verification", p.FullName),
			RefID:   p.DeliveryPersonID,
		})
	}
	for _, c := range complaints {
		feed = append(feed, response.Notification{
			Type:    response.NotificationComplaintNew,
			Title:   "New complaint",
			Message: fmt.Sprintf("From %s: %s", c.UserName, c.Message),
			RefID:   c.ComplaintID,
		})
	}

	return feed
}
