package wire

import (
	"foodgram-admin/internal/adaptor"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	store *session.Store,
	log *zap.Logger,
) {
	// ==================== PROTECTED USER ROUTES ====================
	r.With(middleware.Guard(store, log)).Route("/console/users", func(r chi.Router) {
		r.Get("/", userHandler.List)                       // GET /console/users?page=0&size=20&role=all&status=all&q=
		r.Get("/role/{role}", userHandler.ByRole)          // GET /console/users/role/{role}
		r.Get("/{id}", userHandler.Get)                    // GET /console/users/{user-id}
		r.Put("/{id}", userHandler.Update)                 // PUT /console/users/{user-id}
		r.Patch("/{id}/status", userHandler.UpdateStatus)  // PATCH /console/users/{user-id}/status?status=
		r.Delete("/{id}", userHandler.Delete)              // DELETE /console/users/{user-id}
	})
}
