package backend

import (
	"go.uber.org/zap"
)

// Backend groups every resource client over one shared HTTP client
type Backend struct {
	Auth           AuthClient
	User           UserClient
	Restaurant     RestaurantClient
	DeliveryPerson DeliveryPersonClient
	Complaint      ComplaintClient
	Review         ReviewClient
}

func NewBackend(api *Client, log *zap.Logger) *Backend {
	return &Backend{
		Auth:           NewAuthClient(api, log),
		User:           NewUserClient(api, log),
		Restaurant:     NewRestaurantClient(api, log),
		DeliveryPerson: NewDeliveryPersonClient(api, log),
		Complaint:      NewComplaintClient(api, log),
		Review:         NewReviewClient(api, log),
	}
}
