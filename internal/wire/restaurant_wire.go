package wire

import (
	"foodgram-admin/internal/adaptor"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	store *session.Store,
	log *zap.Logger,
) {
	r.With(middleware.Guard(store, log)).Route("/console/restaurants", func(r chi.Router) {
		r.Get("/", restaurantHandler.List)            // GET /console/restaurants?page=0&size=20&verificationStatus=all&cuisineType=
		r.Get("/pending", restaurantHandler.Pending)  // GET /console/restaurants/pending
		r.Get("/{id}", restaurantHandler.Get)
		r.Put("/{id}", restaurantHandler.Update)
		r.Patch("/{id}/verification", restaurantHandler.UpdateVerification) // PATCH ?status=verified
		r.Delete("/{id}", restaurantHandler.Delete)
	})
}
