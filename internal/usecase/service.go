package usecase

import (
	"foodgram-admin/internal/data/backend"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth           AuthService
	User           UserService
	Restaurant     RestaurantService
	DeliveryPerson DeliveryPersonService
	Complaint      ComplaintService
	Review         ReviewService
	Dashboard      DashboardService
	Notification   NotificationService
	Settings       SettingsService
}

func NewService(api *backend.Backend, store *session.Store, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:           NewAuthService(api.Auth, store, log),
		User:           NewUserService(api.User, log),
		Restaurant:     NewRestaurantService(api.Restaurant, log),
		DeliveryPerson: NewDeliveryPersonService(api.DeliveryPerson, log),
		Complaint:      NewComplaintService(api.Complaint, log),
		Review:         NewReviewService(api.Review, log),
		Dashboard:      NewDashboardService(api, log),
		Notification:   NewNotificationService(api, log),
		Settings:       NewSettingsService(config.Console.SettingsFile, log),
	}
}
