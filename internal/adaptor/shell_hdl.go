package adaptor

import (
	"encoding/json"
	"net/http"

	"foodgram-admin/internal/console"
	"foodgram-admin/internal/usecase"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

// ShellHandler serves the chrome around the resource pages: navigation
// badges, the notification feed, the signed-in profile, and console settings.
type ShellHandler struct {
	auth          usecase.AuthService
	notifications usecase.NotificationService
	settings      usecase.SettingsService
	poller        *console.BadgePoller
	log           *zap.Logger
}

func NewShellHandler(
	auth usecase.AuthService,
	notifications usecase.NotificationService,
	settings usecase.SettingsService,
	poller *console.BadgePoller,
	log *zap.Logger,
) *ShellHandler {
	return &ShellHandler{
		auth:          auth,
		notifications: notifications,
		settings:      settings,
		poller:        poller,
		log:           log,
	}
}

// NavBadges handles GET /console/nav. Counts come from the background poller
// snapshot, not a live fan-out, so the sidebar stays cheap to render.
func (h *ShellHandler) NavBadges(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Navigation badges retrieved successfully", h.poller.Badges())
}

// Notifications handles GET /console/notifications
func (h *ShellHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	feed := h.notifications.Feed(r.Context())
	utils.ResponseSuccess(w, "Notifications retrieved successfully", feed)
}

// Profile handles GET /console/profile
func (h *ShellHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile := h.auth.CurrentAdmin()
	if profile == nil {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// GetSettings handles GET /console/settings
func (h *ShellHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Settings retrieved successfully", h.settings.Get())
}

// UpdateSettings handles PUT /console/settings
func (h *ShellHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req usecase.Settings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("Failed to decode settings body", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.settings.Update(req)
	if err != nil {
		handleServiceError(w, h.log, err, "update settings")
		return
	}

	utils.ResponseSuccess(w, "Settings updated successfully", updated)
}
