package adaptor

import (
	"net/http"

	"foodgram-admin/internal/usecase"
	"foodgram-admin/pkg/utils"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	service usecase.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service usecase.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

// Stats handles GET /console/dashboard. Branches that fail upstream report
// zero, so this endpoint never errors outright.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats(r.Context())
	utils.ResponseSuccess(w, "Dashboard statistics retrieved successfully", stats)
}
