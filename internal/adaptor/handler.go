package adaptor

import (
	"foodgram-admin/internal/console"
	"foodgram-admin/internal/usecase"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth           *AuthHandler
	User           *UserHandler
	Restaurant     *RestaurantHandler
	DeliveryPerson *DeliveryPersonHandler
	Complaint      *ComplaintHandler
	Review         *ReviewHandler
	Dashboard      *DashboardHandler
	Shell          *ShellHandler
}

func NewHandler(
	service *usecase.Service,
	controllers *console.Controllers,
	poller *console.BadgePoller,
	config *utils.Config,
	log *zap.Logger,
) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(service.Auth, log),
		User:           NewUserHandler(service.User, controllers.Users, config, log),
		Restaurant:     NewRestaurantHandler(service.Restaurant, controllers.Restaurants, config, log),
		DeliveryPerson: NewDeliveryPersonHandler(service.DeliveryPerson, controllers.DeliveryPersons, config, log),
		Complaint:      NewComplaintHandler(service.Complaint, controllers.Complaints, config, log),
		Review:         NewReviewHandler(service.Review, controllers.Reviews, config, log),
		Dashboard:      NewDashboardHandler(service.Dashboard, log),
		Shell:          NewShellHandler(service.Auth, service.Notification, service.Settings, poller, log),
	}
}
