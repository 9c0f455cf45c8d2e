package middleware

import (
	"net/http"

	"foodgram-admin/internal/session"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

// Guard is the route-level authentication gate: every console route behind
// it requires a live admin session. The session store already refuses
// non-admin records, so presence of a session is sufficient here.
func Guard(store *session.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin := store.Current()
			if admin == nil {
				logger.Warn("Unauthenticated console access",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			ctx := utils.SetAdminContext(r.Context(), admin.UserID, admin.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
