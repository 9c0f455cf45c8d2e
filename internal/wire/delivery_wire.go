package wire

import (
	"foodgram-admin/internal/adaptor"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDeliveryPerson(
	r chi.Router,
	deliveryHandler *adaptor.DeliveryPersonHandler,
	store *session.Store,
	log *zap.Logger,
) {
	r.With(middleware.Guard(store, log)).Route("/console/delivery-persons", func(r chi.Router) {
		r.Get("/", deliveryHandler.List)           // GET /console/delivery-persons?page=0&size=20&status=all&operatingArea=
		r.Get("/pending", deliveryHandler.Pending) // GET /console/delivery-persons/pending?page=0&size=20
		r.Get("/{id}", deliveryHandler.Get)
		r.Put("/{id}", deliveryHandler.Update)
		r.Patch("/{id}/verification", deliveryHandler.UpdateVerification)
		r.Delete("/{id}", deliveryHandler.Delete)
	})
}
