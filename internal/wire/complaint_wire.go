package wire

import (
	"foodgram-admin/internal/adaptor"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireComplaint(
	r chi.Router,
	complaintHandler *adaptor.ComplaintHandler,
	store *session.Store,
	log *zap.Logger,
) {
	r.With(middleware.Guard(store, log)).Route("/console/complaints", func(r chi.Router) {
		r.Get("/", complaintHandler.List)                 // GET /console/complaints?page=0&size=20&status=all&q=
		r.Get("/new", complaintHandler.New)               // GET /console/complaints/new
		r.Get("/unresolved", complaintHandler.Unresolved) // GET /console/complaints/unresolved
		r.Get("/{id}", complaintHandler.Get)
		r.Post("/{id}/response", complaintHandler.AddResponse)   // POST ?response=... (refused once closed)
		r.Patch("/{id}/status", complaintHandler.UpdateStatus)   // PATCH ?status=in_progress
		r.Delete("/{id}", complaintHandler.Delete)
	})
}
