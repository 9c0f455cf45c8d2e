package wire

import (
	"foodgram-admin/internal/adaptor"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	store *session.Store,
	log *zap.Logger,
) {
	r.With(middleware.Guard(store, log)).Route("/console/reviews", func(r chi.Router) {
		r.Get("/", reviewHandler.List) // GET /console/reviews?page=0&size=20&restaurantId=&deliveryPersonId=
		r.Get("/restaurant/{id}", reviewHandler.ByRestaurant)
		r.Get("/restaurant/{id}/rating", reviewHandler.RestaurantRating)
		r.Get("/delivery-person/{id}", reviewHandler.ByDeliveryPerson)
		r.Get("/delivery-person/{id}/rating", reviewHandler.DeliveryPersonRating)
		r.Get("/{id}", reviewHandler.Get)
		r.Delete("/{id}", reviewHandler.Delete)
	})
}
