package wire

import (
	"foodgram-admin/internal/adaptor"
	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireConsole mounts the dashboard and the shell chrome (badges, feed,
// profile, settings). Everything here requires a signed-in admin.
func wireConsole(
	r chi.Router,
	dashboardHandler *adaptor.DashboardHandler,
	shellHandler *adaptor.ShellHandler,
	store *session.Store,
	log *zap.Logger,
) {
	guarded := r.With(middleware.Guard(store, log))

	guarded.Get("/console/dashboard", dashboardHandler.Stats)
	guarded.Get("/console/nav", shellHandler.NavBadges)
	guarded.Get("/console/notifications", shellHandler.Notifications)
	guarded.Get("/console/profile", shellHandler.Profile)
	guarded.Get("/console/settings", shellHandler.GetSettings)
	guarded.Put("/console/settings", shellHandler.UpdateSettings)
}
