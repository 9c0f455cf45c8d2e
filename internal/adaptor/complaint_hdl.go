package adaptor

import (
	"encoding/json"
	"net/http"

	"foodgram-admin/internal/console"
	"foodgram-admin/internal/data/entity"
	"foodgram-admin/internal/dto/request"
	"foodgram-admin/internal/usecase"
	"foodgram-admin/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ComplaintHandler struct {
	service     usecase.ComplaintService
	ctrl        *console.ListController[entity.Complaint, console.ComplaintFilters]
	defaultSize int
	maxSize     int
	log         *zap.Logger
}

func NewComplaintHandler(
	service usecase.ComplaintService,
	ctrl *console.ListController[entity.Complaint, console.ComplaintFilters],
	config *utils.Config,
	log *zap.Logger,
) *ComplaintHandler {
	return &ComplaintHandler{
		service:     service,
		ctrl:        ctrl,
		defaultSize: config.Console.DefaultPageSize,
		maxSize:     config.Console.MaxPageSize,
		log:         log,
	}
}

// List handles GET /console/complaints
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := utils.ParsePage(query.Get("page"))
	size := utils.ParseSize(query.Get("size"), h.defaultSize, h.maxSize)

	filters := console.ComplaintFilters{
		Status: normalizeFilter(query.Get("status")),
	}

	view, err := h.ctrl.Load(r.Context(), page, size, filters)
	if err != nil {
		handleServiceError(w, h.log, err, "get all complaints")
		return
	}

	if term := query.Get("q"); term != "" {
		view.Items = h.ctrl.Search(term)
	}

	utils.ResponseSuccess(w, "Complaints retrieved successfully", view)
}

// New handles GET /console/complaints/new
func (h *ComplaintHandler) New(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.service.New(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get new complaints")
		return
	}

	utils.ResponseSuccess(w, "New complaints retrieved successfully", complaints)
}

// Unresolved handles GET /console/complaints/unresolved
func (h *ComplaintHandler) Unresolved(w http.ResponseWriter, r *http.Request) {
	complaints, err := h.service.Unresolved(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get unresolved complaints")
		return
	}

	utils.ResponseSuccess(w, "Unresolved complaints retrieved successfully", complaints)
}

// Get handles GET /console/complaints/{id}. The response payload includes
// acceptsResponse so the view knows whether to render the reply box.
func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	complaintID := chi.URLParam(r, "id")
	if complaintID == "" {
		utils.ResponseBadRequest(w, "Complaint ID is required", nil)
		return
	}

	complaint, err := h.ctrl.OpenView(r.Context(), complaintID)
	if err != nil {
		handleServiceError(w, h.log, err, "get complaint")
		return
	}

	utils.ResponseSuccess(w, "Complaint retrieved successfully", map[string]any{
		"complaint":       complaint,
		"acceptsResponse": complaint.AcceptsResponse(),
	})
}

// AddResponse handles PUT /console/complaints/{id}/response. The closed
// check lives in the usecase layer and blocks dispatch.
func (h *ComplaintHandler) AddResponse(w http.ResponseWriter, r *http.Request) {
	complaintID := chi.URLParam(r, "id")
	if complaintID == "" {
		utils.ResponseBadRequest(w, "Complaint ID is required", nil)
		return
	}

	var draft request.ComplaintResponseDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if _, err := h.service.AddResponse(r.Context(), complaintID, &draft); err != nil {
		handleServiceError(w, h.log, err, "add complaint response")
		return
	}

	view, err := h.ctrl.Reload(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "reload complaints")
		return
	}

	utils.ResponseSuccess(w, "Response added successfully", view)
}

// UpdateStatus handles PATCH /console/complaints/{id}/status?status=
func (h *ComplaintHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	complaintID := chi.URLParam(r, "id")
	status := r.URL.Query().Get("status")
	if complaintID == "" || status == "" {
		utils.ResponseBadRequest(w, "Complaint ID and status are required", nil)
		return
	}

	view, err := h.ctrl.ChangeStatus(r.Context(), complaintID, status)
	if err != nil {
		handleServiceError(w, h.log, err, "update complaint status")
		return
	}

	utils.ResponseSuccess(w, "Complaint status updated to "+status, view)
}

// Delete handles DELETE /console/complaints/{id}
func (h *ComplaintHandler) Delete(w http.ResponseWriter, r *http.Request) {
	complaintID := chi.URLParam(r, "id")
	if complaintID == "" {
		utils.ResponseBadRequest(w, "Complaint ID is required", nil)
		return
	}

	view, err := h.ctrl.Delete(r.Context(), complaintID)
	if err != nil {
		handleServiceError(w, h.log, err, "delete complaint")
		return
	}

	utils.ResponseSuccess(w, "Complaint deleted successfully", view)
}
