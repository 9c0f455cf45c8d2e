package wire

import (
	"foodgram-admin/internal/adaptor"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	store *session.Store,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Public routes (tanpa auth middleware)
	r.Post("/console/auth/login", authHandler.Login)
	r.Post("/console/auth/register", authHandler.Register)

	// ==================== PROTECTED ROUTES ====================
	// Logout - PROTECTED (butuh auth)
	r.With(middleware.Guard(store, log)).Post("/console/auth/logout", authHandler.Logout)
}
